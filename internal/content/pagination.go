package content

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"blog-cms/internal/domain"
)

// PageInfo is the navigation metadata returned with every listing.
type PageInfo struct {
	CurrentPage int  `json:"current_page"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"-"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// Paginate computes the page descriptor for a listing of total rows.
// A page below 1 is treated as the first page and one above MaxPage(limit)
// as that page. An empty listing still has one (empty) page.
func Paginate(page, limit, total int) (PageInfo, error) {
	if limit < 1 {
		return PageInfo{}, domain.ErrInvalidLimit
	}
	if page < 1 {
		page = 1
	}
	if maxPage := MaxPage(limit); page > maxPage {
		page = maxPage
	}
	if total < 0 {
		total = 0
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}

	return PageInfo{
		CurrentPage: page,
		Limit:       limit,
		Offset:      (page - 1) * limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, nil
}

// PageParams are the raw paging inputs of a request after defaults.
type PageParams struct {
	Page  int
	Limit int
}

// ParsePageParams interprets the page and limit query values. Missing or
// unusable pages fall back to 1 and a missing limit to defaultLimit. A limit
// that is present but not a positive integer is rejected; one above
// maxLimit is clamped.
func ParsePageParams(rawPage, rawLimit string, defaultLimit, maxLimit int) (PageParams, error) {
	params := PageParams{Page: 1, Limit: defaultLimit}

	if v := strings.TrimSpace(rawPage); v != "" {
		page, err := strconv.Atoi(v)
		switch {
		case err == nil && page > 0:
			params.Page = page
		case errors.Is(err, strconv.ErrRange) && page > 0:
			params.Page = math.MaxInt
		}
	}

	if v := strings.TrimSpace(rawLimit); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return PageParams{}, domain.ErrInvalidLimit
		}
		params.Limit = limit
	}

	if maxLimit > 0 && params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	if params.Limit < 1 {
		return PageParams{}, domain.ErrInvalidLimit
	}
	if maxPage := MaxPage(params.Limit); params.Page > maxPage {
		params.Page = maxPage
	}
	return params, nil
}

// MaxPage is the largest page whose end offset page*limit fits in an int.
func MaxPage(limit int) int {
	if limit < 1 {
		return 1
	}
	return math.MaxInt / limit
}
