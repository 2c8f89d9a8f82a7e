package login

import (
	"errors"
	"testing"

	userModel "booking-portal/models/user"
	"booking-portal/types"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	user *userModel.User
	err  error
}

func (f *fakeUserStore) FindByEmail(email string) (*userModel.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

func storedUser(t *testing.T, password string) *userModel.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &userModel.User{
		ID:          3,
		Name:        "Jordan Smith",
		Email:       "jordan@example.com",
		Password:    string(hashed),
		PhoneNumber: "+61400000000",
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewService(&fakeUserStore{user: storedUser(t, "sup3rsecret")})

	sr := svc.Login(types.LoginRequest{Email: "jordan@example.com", Password: "sup3rsecret"})

	if !sr.Success || sr.StatusCode != 200 {
		t.Fatalf("expected 200 success, got success=%v status=%d message=%q", sr.Success, sr.StatusCode, sr.Message)
	}
	u, ok := sr.ResponseObject.(*types.LoginResponse)
	if !ok {
		t.Fatalf("expected *types.LoginResponse, got %T", sr.ResponseObject)
	}
	if u.ID != 3 || u.Email != "jordan@example.com" {
		t.Errorf("unexpected snapshot: %+v", u)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeUserStore
		req   types.LoginRequest
	}{
		{
			name:  "unknown email",
			store: &fakeUserStore{},
			req:   types.LoginRequest{Email: "nobody@example.com", Password: "sup3rsecret"},
		},
		{
			name:  "wrong password",
			store: &fakeUserStore{user: storedUser(t, "sup3rsecret")},
			req:   types.LoginRequest{Email: "jordan@example.com", Password: "wrong"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := NewService(tt.store).Login(tt.req)

			if sr.Success || sr.StatusCode != 401 {
				t.Fatalf("expected 401 failure, got success=%v status=%d", sr.Success, sr.StatusCode)
			}
			// Both halves must share the same message.
			if sr.Message != "Invalid email or password" {
				t.Errorf("unexpected message: %q", sr.Message)
			}
			if sr.ResponseObject != nil {
				t.Errorf("failure envelope must carry a nil response object")
			}
		})
	}
}

func TestLoginStoreFailure(t *testing.T) {
	svc := NewService(&fakeUserStore{err: errors.New("connection refused")})

	sr := svc.Login(types.LoginRequest{Email: "jordan@example.com", Password: "sup3rsecret"})

	if sr.Success || sr.StatusCode != 500 {
		t.Fatalf("expected 500 failure, got success=%v status=%d", sr.Success, sr.StatusCode)
	}
	if sr.Message != "An error occurred during login." {
		t.Errorf("internal failures must use the generic message, got %q", sr.Message)
	}
}
