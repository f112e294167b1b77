package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-manpower/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)

	meta = response.NewPaginationMeta(5, 1, 0)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x?page=2&page_size=2", nil)

	page, meta := response.Paginate(c, items)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/x?page=9&page_size=2", nil)
	page, _ = response.Paginate(c2, items)
	assert.Empty(t, page)
}
