package dto

type PostingResponse struct {
	Title      string   `json:"title,omitempty"`
	Company    string   `json:"company"`
	Category   string   `json:"category"`
	Location   string   `json:"location"`
	Remote     bool     `json:"remote"`
	Skills     []string `json:"skills"`
	HasSalary  bool     `json:"has_salary"`
	PostedDate string   `json:"posted_date,omitempty"`
	SourceURL  string   `json:"source_url,omitempty"`
}

type PostingListResponse struct {
	Total    int               `json:"total"`
	Postings []PostingResponse `json:"postings"`
}
