package content

import "blog-cms/internal/domain"

// Predicate describes which posts a viewer is permitted to see.
//
// When Unrestricted is set every post is admitted. Otherwise a post is
// admitted when its status equals Status, or, if OwnerID is non-zero, when
// the post belongs to that author regardless of status.
type Predicate struct {
	Unrestricted bool
	Status       domain.PostStatus
	OwnerID      int64
}

// VisiblePredicate returns the visibility rule for viewer.
func VisiblePredicate(viewer domain.Viewer) (Predicate, error) {
	if err := viewer.Validate(); err != nil {
		return Predicate{}, err
	}
	if viewer.IsAnonymous() {
		return Predicate{Status: domain.PostStatusPublished}, nil
	}

	switch viewer.Role {
	case domain.RoleAdmin:
		return Predicate{Unrestricted: true}, nil
	case domain.RoleAuthor:
		return Predicate{Status: domain.PostStatusPublished, OwnerID: viewer.ID}, nil
	}
	return Predicate{}, domain.ErrInvalidViewer
}

// Admits reports whether post satisfies the predicate.
func (p Predicate) Admits(post domain.Post) bool {
	if p.Unrestricted {
		return true
	}
	if p.OwnerID != 0 && post.AuthorID == p.OwnerID {
		return true
	}
	return post.Status == p.Status
}
