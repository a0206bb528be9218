package content

import (
	"context"
	"fmt"

	"blog-cms/internal/domain"
)

// Store is the persistence collaborator that executes a listing query.
type Store interface {
	FetchPage(ctx context.Context, q QueryDescriptor, offset, limit int) ([]domain.Post, int, error)
}

// ListRequest is one listing call.
type ListRequest struct {
	Viewer      domain.Viewer
	FilterKind  FilterKind
	FilterValue string
	Page        int
	Limit       int
}

// Listing is a page of posts and its navigation metadata.
type Listing struct {
	Items    []domain.Post `json:"items"`
	PageInfo PageInfo      `json:"pagination"`
}

// ListContent builds the query for req, fetches the requested page from
// store and computes the page metadata.
func ListContent(ctx context.Context, store Store, req ListRequest) (Listing, error) {
	q, err := BuildQuery(req.FilterKind, req.FilterValue, req.Viewer)
	if err != nil {
		return Listing{}, err
	}

	// Validates the limit and clamps the page before touching the store.
	window, err := Paginate(req.Page, req.Limit, 0)
	if err != nil {
		return Listing{}, err
	}

	items, total, err := store.FetchPage(ctx, q, window.Offset, window.Limit)
	if err != nil {
		return Listing{}, fmt.Errorf("fetch page: %w", err)
	}

	info, err := Paginate(window.CurrentPage, window.Limit, total)
	if err != nil {
		return Listing{}, err
	}
	if items == nil {
		items = []domain.Post{}
	}

	return Listing{Items: items, PageInfo: info}, nil
}
