package contextkeys

// Custom type to avoid collisions with other packages' context keys.
type contextKey string

const (
	// UserIDKey holds the authenticated user's id in the gin context.
	UserIDKey = contextKey("userID")
	// UserEmailKey holds the asserted identity email before it is resolved.
	UserEmailKey = contextKey("userEmail")
)
