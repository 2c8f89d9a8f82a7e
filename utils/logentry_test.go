package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
)

// capture runs one request through a fiber app and returns the entry built
// after the handler finished, mirroring how the request logger middleware
// uses it.
func capture(t *testing.T, req *http.Request) types.LogEntry {
	t.Helper()
	var entry types.LogEntry
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		entry = CreateSanitizedLogEntry(c)
		return err
	})
	app.Post("/any", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return entry
}

func TestLogEntryRedactsPassword(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/any",
		strings.NewReader(`{"email":"jordan@example.com","password":"sup3rsecret"}`))
	req.Header.Set("Content-Type", "application/json")

	entry := capture(t, req)

	if strings.Contains(entry.RequestBody, "sup3rsecret") {
		t.Errorf("password leaked into the log entry: %s", entry.RequestBody)
	}
	if !strings.Contains(entry.RequestBody, "[REDACTED]") {
		t.Errorf("expected redaction marker, got %s", entry.RequestBody)
	}
	if !strings.Contains(entry.RequestBody, "jordan@example.com") {
		t.Errorf("non-sensitive fields must survive, got %s", entry.RequestBody)
	}
}

func TestLogEntrySummarizesMultipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("content", "see attached")
	part, err := w.CreateFormFile("files", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("raw-png-bytes"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/any", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	entry := capture(t, req)

	if strings.Contains(entry.RequestBody, "raw-png-bytes") {
		t.Errorf("file content leaked into the log entry: %s", entry.RequestBody)
	}
	if !strings.Contains(entry.RequestBody, "photo.png") || !strings.Contains(entry.RequestBody, "[FILE_CONTENT_REMOVED]") {
		t.Errorf("expected file metadata with content removed, got %s", entry.RequestBody)
	}
	if !strings.Contains(entry.RequestBody, "see attached") {
		t.Errorf("form fields must survive, got %s", entry.RequestBody)
	}
}

func TestLogEntryRecordsResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/any", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	entry := capture(t, req)

	if entry.Method != "POST" || entry.URL != "/any" {
		t.Errorf("unexpected request identity: %s %s", entry.Method, entry.URL)
	}
	if entry.StatusCode != 200 || entry.ResponseBody != "ok" {
		t.Errorf("unexpected response capture: %d %q", entry.StatusCode, entry.ResponseBody)
	}
}
