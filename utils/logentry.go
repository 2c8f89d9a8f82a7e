package utils

import (
	"encoding/json"
	"strings"
	"time"

	"booking-portal/types"

	"github.com/gofiber/fiber/v2"
)

// Request body fields that must never reach the log table.
var redactedFields = map[string]bool{
	"password": true,
}

// CreateSanitizedLogEntry creates a deep-copied and sanitized log entry.
// Bodies are copied because fasthttp reuses its buffers after the handler
// returns.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

func sanitizeRequestBody(c *fiber.Ctx) string {
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		// For multipart requests, log field names and file metadata only.
		formData := make(map[string]interface{})

		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) == 0 {
					continue
				}
				if redactedFields[strings.ToLower(key)] {
					formData[key] = "[REDACTED]"
				} else {
					formData[key] = values[0]
				}
			}

			for key, files := range form.File {
				fileInfo := make([]map[string]interface{}, len(files))
				for i, file := range files {
					fileInfo[i] = map[string]interface{}{
						"filename": file.Filename,
						"size":     file.Size,
						"content":  "[FILE_CONTENT_REMOVED]",
					}
				}
				formData[key] = fileInfo
			}
		}

		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(append([]byte(nil), c.Body()...))

	// Redact credential fields in JSON bodies.
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(body), &parsed); err == nil {
		changed := false
		for key := range parsed {
			if redactedFields[strings.ToLower(key)] {
				parsed[key] = "[REDACTED]"
				changed = true
			}
		}
		if changed {
			if jsonBytes, err := json.Marshal(parsed); err == nil {
				return string(jsonBytes)
			}
		}
		return body
	}

	// Avoid persisting embedded file payloads.
	if len(body) > 1000 && (strings.Contains(body, "data:image/") || strings.Contains(body, "base64")) {
		return "[LARGE_BINARY_CONTENT_REMOVED]"
	}

	return body
}
