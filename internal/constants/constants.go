package constants

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 6

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72

	// MaxTaskTitleLength is measured in runes after trimming.
	MaxTaskTitleLength = 100
)
