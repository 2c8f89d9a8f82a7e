package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-portal/constants"
	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

func newAuthApp(t *testing.T) (*fiber.App, *session.Store) {
	t.Helper()
	store := session.New(session.Config{KeyLookup: "cookie:sessionId"})
	app := fiber.New()

	// Test-only route that logs a caller in.
	app.Post("/test-login", func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		sess.Set(constants.SessionUserID, uint(7))
		if err := sess.Save(); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/protected", RequireAuth(store), func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("user:%d", AuthenticatedUserID(c)))
	})

	return app, store
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app, _ := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var envelope types.ServiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Success || envelope.Message != "Authentication required" || envelope.StatusCode != 401 {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
	if envelope.ResponseObject != nil {
		t.Errorf("failure envelope must carry a null responseObject")
	}
}

func TestRequireAuthPassesAuthenticatedCaller(t *testing.T) {
	app, _ := newAuthApp(t)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test-login", nil))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	loginResp.Body.Close()

	var sessionCookie *http.Cookie
	for _, ck := range loginResp.Cookies() {
		if ck.Name == "sessionId" {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("no sessionId cookie was issued")
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "user:7" {
		t.Errorf("expected the handler to see the session principal, got %q", body)
	}
}
