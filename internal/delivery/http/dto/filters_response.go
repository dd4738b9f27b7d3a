package dto

type FilterOptionsResponse struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	Skills     []string `json:"skills"`
	WorkTypes  []string `json:"work_types"`
}
