package types

// LoginResponse is the user snapshot returned on a successful login. The
// password hash is deliberately absent.
type LoginResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
