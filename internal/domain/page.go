package domain

// PageQuery is the offset/limit pagination every listing endpoint accepts.
type PageQuery struct {
	CurrentPage int
	PageSize    int
}

func (p PageQuery) Normalize() PageQuery {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	return p
}

func (p PageQuery) Offset() int {
	return (p.CurrentPage - 1) * p.PageSize
}
