package domain

import "errors"

var (
	// ErrInvalidViewer is returned when an authentication claim is malformed.
	ErrInvalidViewer = errors.New("invalid viewer")
	// ErrInvalidLimit is returned for a zero or negative page size.
	ErrInvalidLimit = errors.New("invalid page size")
	// ErrInvalidFilter is returned when a filter value cannot be interpreted.
	ErrInvalidFilter = errors.New("invalid filter value")
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned by login for unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden is returned when the viewer may reach an operation but not
	// with the requested values, such as an author publishing directly.
	ErrForbidden = errors.New("forbidden")
)
