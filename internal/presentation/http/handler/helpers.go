package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/granjatech/granja-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// ParseUUIDParam parses a UUID path parameter, returning uuid.Nil and false
// when it is missing or malformed
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ParsePagination binds page/per_page query parameters with defaults
func ParsePagination(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		return pagination.DefaultPagination()
	}
	params.Validate()
	return params
}

// ParseDateRangeQuery reads optional start_date/end_date query parameters.
// A malformed date returns false.
func ParseDateRangeQuery(c *gin.Context) (*time.Time, *time.Time, bool) {
	var start, end *time.Time
	if value := c.Query("start_date"); value != "" {
		parsed, err := ParseDate(value)
		if err != nil {
			return nil, nil, false
		}
		start = &parsed
	}
	if value := c.Query("end_date"); value != "" {
		parsed, err := ParseDate(value)
		if err != nil {
			return nil, nil, false
		}
		end = &parsed
	}
	return start, end, true
}
