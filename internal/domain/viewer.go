package domain

// Viewer is the resolved identity of the caller for one request. The zero
// value is the anonymous viewer.
type Viewer struct {
	ID            int64
	Role          Role
	Authenticated bool
}

// Anonymous returns the unauthenticated viewer.
func Anonymous() Viewer {
	return Viewer{}
}

// Authenticated returns a viewer for a signed-in principal. The role is not
// checked here; consumers call Validate.
func Authenticated(id int64, role Role) Viewer {
	return Viewer{ID: id, Role: role, Authenticated: true}
}

// IsAnonymous reports whether the viewer has no session.
func (v Viewer) IsAnonymous() bool {
	return !v.Authenticated
}

// Validate returns ErrInvalidViewer when an authenticated viewer carries a
// missing role or a non-positive id.
func (v Viewer) Validate() error {
	if !v.Authenticated {
		return nil
	}
	if v.ID <= 0 || !v.Role.IsValid() {
		return ErrInvalidViewer
	}
	return nil
}

// IsAdmin reports whether the viewer is a signed-in administrator.
func (v Viewer) IsAdmin() bool {
	return v.Authenticated && v.Role == RoleAdmin
}
