package constants

// Session keys. The auth guard treats a session as authenticated iff
// SessionUserID holds a non-zero value.
const (
	SessionUserID          = "userId"
	SessionUserName        = "userName"
	SessionUserEmail       = "userEmail"
	SessionUserPhoneNumber = "userPhoneNumber"
)

// Fiber locals keys for request-scoped values.
const (
	LocalUserID        = "userID"
	LocalValidatedBody = "validatedBody"
)
