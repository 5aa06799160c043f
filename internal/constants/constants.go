package constants

import "time"

// Context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyUserRole = "user_role"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Auth
const (
	TokenTTL = 8 * time.Hour
)

// Uploads
const (
	MaxAttachmentSize = 10 << 20 // 10MB
	AttachmentField   = "momReport"
)
