package content

import "blog-cms/internal/domain"

// Scope is the area of the site a route belongs to.
type Scope string

const (
	ScopePublic Scope = "public"
	ScopeAuthor Scope = "author"
	ScopeAdmin  Scope = "admin"
)

// Decision is the outcome of an access check.
type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
)

// Authorize decides whether viewer may enter scope. The author scope admits
// any authenticated viewer; the admin scope admits administrators only.
func Authorize(viewer domain.Viewer, scope Scope) (Decision, error) {
	if scope == ScopePublic {
		return Allow, nil
	}
	if viewer.IsAnonymous() {
		return Deny, nil
	}
	if err := viewer.Validate(); err != nil {
		return Deny, err
	}

	switch scope {
	case ScopeAuthor:
		return Allow, nil
	case ScopeAdmin:
		switch viewer.Role {
		case domain.RoleAdmin:
			return Allow, nil
		case domain.RoleAuthor:
			return Deny, nil
		}
	}
	return Deny, nil
}
