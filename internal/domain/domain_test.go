package domain

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw     string
		want    Role
		wantErr bool
	}{
		{"ADMIN", RoleAdmin, false},
		{"admin", RoleAdmin, false},
		{"Author", RoleAuthor, false},
		{" AUTHOR ", RoleAuthor, false},
		{"", "", true},
		{"moderator", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseRole(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsValidPostStatus(t *testing.T) {
	tests := []struct {
		status PostStatus
		valid  bool
	}{
		{PostStatusDraft, true},
		{PostStatusPending, true},
		{PostStatusPublished, true},
		{PostStatusArchived, true},
		{"published", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := IsValidPostStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidPostStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidCommentStatus(t *testing.T) {
	for _, s := range ValidCommentStatuses {
		if !IsValidCommentStatus(s) {
			t.Errorf("IsValidCommentStatus(%q) = false, want true", s)
		}
	}
	if IsValidCommentStatus("DELETED") {
		t.Error("IsValidCommentStatus(DELETED) = true, want false")
	}
}

func TestViewerValidate(t *testing.T) {
	tests := []struct {
		name    string
		viewer  Viewer
		wantErr error
	}{
		{"anonymous", Anonymous(), nil},
		{"admin", Authenticated(1, RoleAdmin), nil},
		{"author", Authenticated(7, RoleAuthor), nil},
		{"missing role", Authenticated(7, ""), ErrInvalidViewer},
		{"unknown role", Authenticated(7, "EDITOR"), ErrInvalidViewer},
		{"zero id", Authenticated(0, RoleAuthor), ErrInvalidViewer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.viewer.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
