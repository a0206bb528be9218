package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-cms/internal/domain"
)

func TestAuthorize(t *testing.T) {
	admin := domain.Authenticated(1, domain.RoleAdmin)
	author := domain.Authenticated(2, domain.RoleAuthor)
	anon := domain.Anonymous()

	tests := []struct {
		name   string
		viewer domain.Viewer
		scope  Scope
		want   Decision
	}{
		{"public anonymous", anon, ScopePublic, Allow},
		{"public author", author, ScopePublic, Allow},
		{"author scope anonymous", anon, ScopeAuthor, Deny},
		{"author scope author", author, ScopeAuthor, Allow},
		{"author scope admin", admin, ScopeAuthor, Allow},
		{"admin scope anonymous", anon, ScopeAdmin, Deny},
		{"admin scope author", author, ScopeAdmin, Deny},
		{"admin scope admin", admin, ScopeAdmin, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Authorize(tt.viewer, tt.scope)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorize_InvalidViewer(t *testing.T) {
	broken := domain.Authenticated(9, "SUPERUSER")

	got, err := Authorize(broken, ScopeAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidViewer)
	assert.Equal(t, Deny, got)

	got, err = Authorize(broken, ScopePublic)
	assert.NoError(t, err)
	assert.Equal(t, Allow, got)
}
