package contract

import (
	"strconv"
	"strings"
)

const (
	DefaultOffset    = 0
	DefaultLimit     = 25
	DefaultSortField = "id"
)

// SortOrder is either asc or desc.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SQL returns the keyword used in an ORDER BY clause.
func (o SortOrder) SQL() string {
	if o == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// PageQuery is a resolved list request. SortField is always one of the
// whitelisted fields handed to ResolvePage, so it can be used as a column.
type PageQuery struct {
	Offset    int       `json:"offset"`
	Limit     int       `json:"limit"`
	SortField string    `json:"sort_field"`
	SortOrder SortOrder `json:"sort_order"`
}

// DefaultPage is what ResolvePage returns for an empty request.
func DefaultPage() PageQuery {
	return PageQuery{
		Offset:    DefaultOffset,
		Limit:     DefaultLimit,
		SortField: DefaultSortField,
		SortOrder: SortAsc,
	}
}

// ResolvePage applies defaults to raw query parameters. Each of the four
// values falls back independently of the others.
func ResolvePage(rawOffset, rawLimit, rawSortField, rawSortOrder string, allowedSortFields []string) PageQuery {
	page := DefaultPage()

	if n, err := strconv.Atoi(strings.TrimSpace(rawOffset)); err == nil {
		if n < 0 {
			n = 0
		}
		page.Offset = n
	}

	if n, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && n > 0 {
		page.Limit = n
	}

	for _, f := range allowedSortFields {
		if rawSortField != "" && f == rawSortField {
			page.SortField = f
			break
		}
	}

	if strings.EqualFold(rawSortOrder, string(SortDesc)) {
		page.SortOrder = SortDesc
	}

	return page
}
