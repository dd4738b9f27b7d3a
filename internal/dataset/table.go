package dataset

// Table is the immutable in-memory collection of postings produced by Load.
type Table struct {
	postings []JobPosting
	skipped  int
}

// NewTable wraps postings in a Table. The slice is owned by the table after
// this call.
func NewTable(postings []JobPosting) *Table {
	return &Table{postings: postings}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.postings)
}

// SkippedRows reports how many malformed rows the loader dropped.
func (t *Table) SkippedRows() int {
	if t == nil {
		return 0
	}
	return t.skipped
}

// All returns a view over every row.
func (t *Table) All() View {
	if t == nil {
		return View{}
	}
	indices := make([]int, len(t.postings))
	for i := range indices {
		indices[i] = i
	}
	return View{table: t, indices: indices}
}

// View is a read-only subset of a table. It holds indices into the backing
// slice, so deriving a view never copies row data.
type View struct {
	table   *Table
	indices []int
}

func (v View) Len() int { return len(v.indices) }

// At returns the posting at position i within the view.
func (v View) At(i int) JobPosting {
	return v.table.postings[v.indices[i]]
}

// Narrow returns a sub-view containing only the rows for which keep returns
// true. The parent view is left untouched.
func (v View) Narrow(keep func(JobPosting) bool) View {
	indices := make([]int, 0, len(v.indices))
	for _, idx := range v.indices {
		if keep(v.table.postings[idx]) {
			indices = append(indices, idx)
		}
	}
	return View{table: v.table, indices: indices}
}
