package types

// RegisterRequest is the body accepted by POST /register.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=1"`
	Password    string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body accepted by POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionSnapshot is what GET /login/session returns for an authenticated session.
type SessionSnapshot struct {
	UserID          uint   `json:"userId"`
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
	UserPhoneNumber string `json:"userPhoneNumber"`
}
