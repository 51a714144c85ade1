package utils

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		total      int64
		wantNumber int
		wantPages  int
	}{
		{"default first page", "", 25, 1, 3},
		{"explicit page", "2", 25, 2, 3},
		{"last keyword", "last", 25, 3, 3},
		{"exact multiple", "2", 20, 2, 2},
		{"empty listing has one page", "", 0, 1, 1},
		{"page one of empty listing", "1", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ResolvePage(tt.raw, tt.total, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestResolvePage_OutOfRange(t *testing.T) {
	_, err := ResolvePage("9", 25, 10)
	var oor *PageOutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 3, oor.Nearest)

	_, err = ResolvePage("0", 25, 10)
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 1, oor.Nearest)

	_, err = ResolvePage("2", 0, 10)
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 1, oor.Nearest)
}

func TestResolvePage_Invalid(t *testing.T) {
	_, err := ResolvePage("abc", 25, 10)
	assert.ErrorIs(t, err, ErrInvalidPage)
}

func TestPage_Navigation(t *testing.T) {
	page, err := ResolvePage("2", 25, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, page.Offset())
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.Previous())
	assert.Equal(t, 3, page.Next())
}

func TestPageURL_PreservesOtherParams(t *testing.T) {
	query := url.Values{"page": {"9"}, "sort": {"name"}, "q": {"pop"}}

	got := PageURL("/", query, 3)

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/", parsed.Path)
	assert.Equal(t, "3", parsed.Query().Get("page"))
	assert.Equal(t, "name", parsed.Query().Get("sort"))
	assert.Equal(t, "pop", parsed.Query().Get("q"))
	assert.Equal(t, "9", query.Get("page"), "input values must not be modified")
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/admin/profiles?page=3&limit=5", nil)

	params := GetPaginationParams(c)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, 10, params.Offset)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/admin/profiles?page=-1&limit=1000", nil)
	params = GetPaginationParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
}
