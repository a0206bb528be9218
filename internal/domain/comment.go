package domain

import "time"

// CommentStatus represents the moderation state of a comment.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "PENDING"
	CommentStatusApproved CommentStatus = "APPROVED"
	CommentStatusRejected CommentStatus = "REJECTED"
	CommentStatusSpam     CommentStatus = "SPAM"
)

// ValidCommentStatuses contains all valid comment statuses.
var ValidCommentStatuses = []CommentStatus{
	CommentStatusPending,
	CommentStatusApproved,
	CommentStatusRejected,
	CommentStatusSpam,
}

// IsValidCommentStatus checks if a comment status is valid.
func IsValidCommentStatus(status CommentStatus) bool {
	for _, s := range ValidCommentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Comment represents a reader comment on a post.
type Comment struct {
	ID          int64         `json:"id"`
	PostID      int64         `json:"post_id"`
	PostTitle   string        `json:"post_title,omitempty"`
	AuthorName  string        `json:"author_name"`
	AuthorEmail *string       `json:"author_email,omitempty"`
	Content     string        `json:"content"`
	Status      CommentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CommentInput is the public payload for a new comment.
type CommentInput struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}
