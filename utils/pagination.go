package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination represents pagination parameters
type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// NewPagination creates a Pagination instance from query parameters.
// Malformed or out-of-range values fall back to page=1 and the given
// default limit.
func NewPagination(c *gin.Context, defaultLimit int) *Pagination {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// SetTotal records the total row count for metadata computation
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
}

// TotalPages returns the number of pages for the recorded total
func (p *Pagination) TotalPages() int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
}

// Meta returns the pagination metadata block for list responses
func (p *Pagination) Meta() gin.H {
	totalPages := p.TotalPages()
	return gin.H{
		"page":       p.Page,
		"limit":      p.Limit,
		"total":      p.Total,
		"totalPages": totalPages,
		"hasNext":    int64(p.Page) < totalPages,
		"hasPrev":    p.Page > 1,
	}
}
