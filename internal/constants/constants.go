package constants

// Session
const (
	SessionCookieName = "task_session"
	ContextKeyUserID  = "user_id"
	SessionKeyVisits  = "num_visits"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Search query parameters
const (
	SearchParamName     = "name"
	SearchParamUsername = "username"
)

// Field limits
const (
	MaxNameLength     = 100
	MaxTagNameLength  = 50
	MaxUsernameLength = 150
	MaxPersonName     = 150
	MaxEmailLength    = 254
	MinPasswordLength = 8
)

// DefaultPositionName is the position assigned to the seeded admin worker.
const DefaultPositionName = "Unknown"
