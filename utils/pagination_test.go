package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/deals?"+rawQuery, nil)
	return c
}

func TestNewPaginationDefaults(t *testing.T) {
	p := NewPagination(paginationContext(""), DefaultDealPageSize)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultDealPageSize, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationMalformedParams(t *testing.T) {
	p := NewPagination(paginationContext("page=abc&limit=xyz"), 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = NewPagination(paginationContext("page=-3&limit=0"), 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestNewPaginationCapsLimit(t *testing.T) {
	p := NewPagination(paginationContext("limit=5000"), 20)
	assert.Equal(t, MaxPageSize, p.Limit)
}

func TestNewPaginationOffset(t *testing.T) {
	p := NewPagination(paginationContext("page=3&limit=12"), 20)
	assert.Equal(t, 24, p.Offset)
}

func TestPaginationMeta(t *testing.T) {
	p := NewPagination(paginationContext("page=2&limit=10"), 20)
	p.SetTotal(25)

	assert.Equal(t, int64(3), p.TotalPages())

	meta := p.Meta()
	assert.Equal(t, 2, meta["page"])
	assert.Equal(t, 10, meta["limit"])
	assert.Equal(t, int64(25), meta["total"])
	assert.Equal(t, int64(3), meta["totalPages"])
	assert.Equal(t, true, meta["hasNext"])
	assert.Equal(t, true, meta["hasPrev"])
}

func TestPaginationMetaEmpty(t *testing.T) {
	p := NewPagination(paginationContext(""), 20)
	p.SetTotal(0)

	meta := p.Meta()
	assert.Equal(t, int64(0), meta["totalPages"])
	assert.Equal(t, false, meta["hasNext"])
	assert.Equal(t, false, meta["hasPrev"])
}
