package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of roles an author can hold.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleAuthor Role = "AUTHOR"
)

// ValidRoles contains all valid roles.
var ValidRoles = []Role{RoleAdmin, RoleAuthor}

// ParseRole converts a raw role claim into a Role. Matching is
// case-insensitive because stored role names are not normalised.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleAuthor:
		return RoleAuthor, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAuthor
}

// Author represents a registered writer or administrator.
type Author struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Bio             *string   `json:"bio,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	Role            Role      `json:"role"`
	PublishedPosts  int       `json:"published_posts"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthorInput carries the fields needed to register an author.
type AuthorInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Role     Role   `json:"role"`
}

// Credentials is a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
