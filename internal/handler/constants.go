package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Paging carries the page size settings shared by listing endpoints.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}
