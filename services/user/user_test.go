package user

import (
	"errors"
	"testing"

	userModel "booking-portal/models/user"
)

type fakeUserStore struct {
	users []userModel.User
	err   error
}

func (f *fakeUserStore) FindAll() ([]userModel.User, error) {
	return f.users, f.err
}

func (f *fakeUserStore) FindByID(id uint) (*userModel.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func TestGetUsers(t *testing.T) {
	svc := NewService(&fakeUserStore{users: []userModel.User{{ID: 1, Name: "Jordan"}, {ID: 2, Name: "Sam"}}})

	sr := svc.GetUsers()

	if !sr.Success || sr.StatusCode != 200 || sr.Message != "Users found" {
		t.Fatalf("expected 200 success, got success=%v status=%d message=%q", sr.Success, sr.StatusCode, sr.Message)
	}
	users, ok := sr.ResponseObject.([]userModel.User)
	if !ok || len(users) != 2 {
		t.Errorf("expected two users, got %T %v", sr.ResponseObject, sr.ResponseObject)
	}
}

func TestGetUsersEmpty(t *testing.T) {
	sr := NewService(&fakeUserStore{}).GetUsers()

	if sr.Success || sr.StatusCode != 404 || sr.Message != "No users found" {
		t.Fatalf("expected 404 'No users found', got success=%v status=%d message=%q", sr.Success, sr.StatusCode, sr.Message)
	}
}

func TestGetUser(t *testing.T) {
	svc := NewService(&fakeUserStore{users: []userModel.User{{ID: 5, Name: "Jordan"}}})

	if sr := svc.GetUser(5); !sr.Success || sr.StatusCode != 200 {
		t.Errorf("expected 200 success for existing user, got success=%v status=%d", sr.Success, sr.StatusCode)
	}
	if sr := svc.GetUser(99); sr.Success || sr.StatusCode != 404 || sr.Message != "User not found" {
		t.Errorf("expected 404 'User not found', got success=%v status=%d message=%q", sr.Success, sr.StatusCode, sr.Message)
	}
}

func TestGetUserStoreFailure(t *testing.T) {
	sr := NewService(&fakeUserStore{err: errors.New("connection refused")}).GetUser(1)

	if sr.Success || sr.StatusCode != 500 {
		t.Fatalf("expected 500 failure, got success=%v status=%d", sr.Success, sr.StatusCode)
	}
}
