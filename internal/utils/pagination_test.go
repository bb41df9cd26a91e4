package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"1":   1,
		"3":   3,
		" 2 ": 2,
		"0":   1,
		"-4":  1,
		"abc": 1,
		"2.5": 1,

		"1000000000000000000":   1000000000000000000,
		"99999999999999999999":  math.MaxInt,
		"-99999999999999999999": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParsePage(raw), "raw=%q", raw)
	}
}

func TestNewPaginationParams(t *testing.T) {
	p := NewPaginationParams(3, 10)
	assert.Equal(t, 20, p.Offset)
	assert.Equal(t, 10, p.Limit)

	p = NewPaginationParams(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationParams_HugePageKeepsOffsetPositive(t *testing.T) {
	for _, page := range []int{1000000000000000000, math.MaxInt} {
		p := NewPaginationParams(page, 10)
		assert.Positive(t, p.Offset, "page=%d", page)
		assert.Equal(t, (p.Page-1)*p.Limit, p.Offset)
		assert.True(t, p.Page > 1)
	}
}

func TestGetPaginationParams_FixedPageSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/tasks/?page=2&limit=50", nil)

	p := GetPaginationParams(c)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 10, p.Offset)
}

func TestNewPaginationResponse(t *testing.T) {
	resp := NewPaginationResponse(NewPaginationParams(2, 10), 25)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPrevious)
	assert.True(t, resp.HasNext)

	resp = NewPaginationResponse(NewPaginationParams(5, 10), 25)
	assert.False(t, resp.HasNext)

	resp = NewPaginationResponse(NewPaginationParams(1, 10), 0)
	assert.Equal(t, 0, resp.TotalPages)
	assert.False(t, resp.HasNext)
	assert.False(t, resp.HasPrevious)
}
