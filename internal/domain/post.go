package domain

import "time"

// PostStatus represents the publication status of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPending   PostStatus = "PENDING"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

// ValidPostStatuses contains all valid post statuses.
var ValidPostStatuses = []PostStatus{
	PostStatusDraft,
	PostStatusPending,
	PostStatusPublished,
	PostStatusArchived,
}

// IsValidPostStatus checks if a status is valid.
func IsValidPostStatus(status PostStatus) bool {
	for _, s := range ValidPostStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Post represents a blog post.
type Post struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ShortDescription string     `json:"short_description"`
	Content          string     `json:"content,omitempty"`
	ThumbnailURL     *string    `json:"thumbnail_url,omitempty"`
	Status           PostStatus `json:"status"`
	AuthorID         int64      `json:"author_id"`
	AuthorName       string     `json:"author_name,omitempty"`
	Categories       []Category `json:"categories"`
	Tags             []Tag      `json:"tags"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PostInput carries the writable fields of a post for create and update.
type PostInput struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ShortDescription string     `json:"short_description"`
	Content          string     `json:"content"`
	ThumbnailURL     string     `json:"thumbnail_url"`
	Status           PostStatus `json:"status"`
	AuthorID         int64      `json:"author_id"`
	CategoryIDs      []int64    `json:"category_ids"`
	TagIDs           []int64    `json:"tag_ids"`
}
