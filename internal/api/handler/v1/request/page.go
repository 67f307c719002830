package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sportsmate/sportsmate-api/internal/domain"
)

// ParsePageQuery reads currentPage/pageSize query params, falling back to
// defaults on anything unparseable.
func ParsePageQuery(ctx *gin.Context) domain.PageQuery {
	page := domain.PageQuery{}

	if v, err := strconv.Atoi(ctx.Query("currentPage")); err == nil {
		page.CurrentPage = v
	}
	if v, err := strconv.Atoi(ctx.Query("pageSize")); err == nil {
		page.PageSize = v
	}

	return page.Normalize()
}
