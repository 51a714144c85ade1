package utils

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/constants"
)

// ErrInvalidPage is returned for page values that are neither a number nor "last".
var ErrInvalidPage = errors.New("invalid page number")

// PageOutOfRangeError carries the nearest valid page for a requested page outside the range.
type PageOutOfRangeError struct {
	Requested int
	Nearest   int
}

func (e *PageOutOfRangeError) Error() string {
	return "page " + strconv.Itoa(e.Requested) + " is out of range"
}

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Page describes one page of a fixed-size listing.
type Page struct {
	Number     int
	Size       int
	Total      int64
	TotalPages int
}

func (p Page) Offset() int       { return (p.Number - 1) * p.Size }
func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasNext() bool     { return p.Number < p.TotalPages }
func (p Page) Previous() int     { return p.Number - 1 }
func (p Page) Next() int         { return p.Number + 1 }

// ResolvePage turns the raw page query value into a page of a listing with
// total rows. An empty listing still has one (empty) page. A numeric page
// outside [1, last] yields *PageOutOfRangeError pointing at the nearest page.
func ResolvePage(raw string, total int64, size int) (Page, error) {
	if size < 1 {
		size = 1
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	page := Page{Number: 1, Size: size, Total: total, TotalPages: totalPages}

	switch raw {
	case "":
		return page, nil
	case "last":
		page.Number = totalPages
		return page, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return page, ErrInvalidPage
	}
	if n < 1 {
		return page, &PageOutOfRangeError{Requested: n, Nearest: 1}
	}
	if n > totalPages {
		return page, &PageOutOfRangeError{Requested: n, Nearest: totalPages}
	}

	page.Number = n
	return page, nil
}

// PageURL returns path with query, where the page parameter is replaced by n
// and every other parameter is kept.
func PageURL(path string, query url.Values, n int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(n))
	return path + "?" + q.Encode()
}
