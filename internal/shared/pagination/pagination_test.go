package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, PageSize: 10}},
		{"explicit", "page=3&page_size=25", Params{Page: 3, PageSize: 25}},
		{"garbage", "page=abc&page_size=-1", Params{Page: 1, PageSize: 10}},
		{"capped", "page_size=1000", Params{Page: 1, PageSize: MaxPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(contextWithQuery(tt.query)))
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(items, Params{Page: 1, PageSize: 2}))
	assert.Equal(t, []int{5}, Slice(items, Params{Page: 3, PageSize: 2}))
	assert.Equal(t, []int{}, Slice(items, Params{Page: 4, PageSize: 2}))
}
