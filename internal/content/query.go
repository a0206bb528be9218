package content

import (
	"fmt"
	"strconv"
	"strings"

	"blog-cms/internal/domain"
)

// FilterKind is the secondary dimension narrowing a listing.
type FilterKind string

const (
	FilterNone         FilterKind = "none"
	FilterCategorySlug FilterKind = "category"
	FilterTagSlug      FilterKind = "tag"
	FilterAuthorID     FilterKind = "author"
)

// Filter is a resolved secondary filter. Exactly one of Slug or AuthorID is
// meaningful, depending on Kind.
type Filter struct {
	Kind     FilterKind
	Slug     string
	AuthorID int64
}

// Order is the sort order of a listing.
type Order string

// OrderNewestFirst sorts by creation time descending with id as tie-breaker.
// Every listing uses it.
const OrderNewestFirst Order = "created_at_desc"

// QueryDescriptor is the complete description of a listing query handed to
// the Store.
type QueryDescriptor struct {
	Visibility Predicate
	Filter     Filter
	Order      Order
}

// BuildQuery combines the viewer's visibility with the secondary filter.
// Slugs and ids are not checked for existence; an unknown value simply
// matches nothing.
func BuildQuery(kind FilterKind, value string, viewer domain.Viewer) (QueryDescriptor, error) {
	visibility, err := VisiblePredicate(viewer)
	if err != nil {
		return QueryDescriptor{}, err
	}

	q := QueryDescriptor{
		Visibility: visibility,
		Filter:     Filter{Kind: FilterNone},
		Order:      OrderNewestFirst,
	}

	value = strings.TrimSpace(value)
	switch kind {
	case FilterNone, "":
	case FilterCategorySlug, FilterTagSlug:
		q.Filter = Filter{Kind: kind, Slug: value}
	case FilterAuthorID:
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return QueryDescriptor{}, fmt.Errorf("author id %q: %w", value, domain.ErrInvalidFilter)
		}
		q.Filter = Filter{Kind: FilterAuthorID, AuthorID: id}
	default:
		return QueryDescriptor{}, fmt.Errorf("filter kind %q: %w", kind, domain.ErrInvalidFilter)
	}

	return q, nil
}

// Matches reports whether post satisfies both the visibility rule and the
// secondary filter. It mirrors the SQL the Postgres store generates.
func (q QueryDescriptor) Matches(post domain.Post) bool {
	if !q.Visibility.Admits(post) {
		return false
	}

	switch q.Filter.Kind {
	case FilterCategorySlug:
		for _, c := range post.Categories {
			if c.Slug == q.Filter.Slug {
				return true
			}
		}
		return false
	case FilterTagSlug:
		for _, t := range post.Tags {
			if t.Slug == q.Filter.Slug {
				return true
			}
		}
		return false
	case FilterAuthorID:
		return post.AuthorID == q.Filter.AuthorID
	}
	return true
}
