package types

// PageInfo is the pagination envelope shared by every list endpoint.
// NextPage and PreviousPage are null exactly at the last and first page.
type PageInfo struct {
	Count        int64 `json:"count"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	NextPage     *int  `json:"next_page"`
	PreviousPage *int  `json:"previous_page"`
}

// NewPageInfo computes the envelope for a result set of count rows at
// perPage rows per page. An empty result set still reports one page.
func NewPageInfo(count int64, page, perPage int) PageInfo {
	totalPages := int((count + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	info := PageInfo{
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
	if page < totalPages {
		next := page + 1
		info.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		info.PreviousPage = &prev
	}
	return info
}

// Offset returns the row offset for the current page.
func (p PageInfo) Offset(perPage int) int {
	return (p.CurrentPage - 1) * perPage
}
