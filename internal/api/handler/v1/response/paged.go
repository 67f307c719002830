package response

// Paged wraps any listed collection with its pagination bookkeeping.
type Paged struct {
	List        any   `json:"list"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}
