package storage

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// buildForm assembles a real multipart form so the returned FileHeaders can
// be opened like genuine uploads.
func buildForm(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, name))
		h.Set("Content-Type", "image/png")
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["files"]
}

func header(name, mimeType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", mimeType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestSaveMessageFiles(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	headers := buildForm(t, map[string][]byte{"photo.png": []byte("png-bytes")})
	saved, err := fs.SaveMessageFiles(headers)
	if err != nil {
		t.Fatalf("SaveMessageFiles: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected one saved file, got %d", len(saved))
	}

	sf := saved[0]
	if sf.FileName != "photo.png" || sf.FileSize != int64(len("png-bytes")) || sf.MimeType != "image/png" {
		t.Errorf("unexpected metadata: %+v", sf)
	}
	pattern := regexp.MustCompile(`^photo-\d+-\d+\.png$`)
	if !pattern.MatchString(filepath.Base(sf.FilePath)) {
		t.Errorf("disk name %q does not match <base>-<timestamp>-<random><ext>", filepath.Base(sf.FilePath))
	}
	content, err := os.ReadFile(sf.FilePath)
	if err != nil || string(content) != "png-bytes" {
		t.Errorf("stored content mismatch: %q err=%v", content, err)
	}
}

func TestSaveMessageFilesUniqueNames(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	first := buildForm(t, map[string][]byte{"photo.png": []byte("one")})
	second := buildForm(t, map[string][]byte{"photo.png": []byte("two")})

	a, err := fs.SaveMessageFiles(first)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	b, err := fs.SaveMessageFiles(second)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if a[0].FilePath == b[0].FilePath {
		t.Errorf("same original filename produced the same disk path %q", a[0].FilePath)
	}
}

func TestSaveMessageFilesRejections(t *testing.T) {
	sixHeaders := make([]*multipart.FileHeader, MaxFilesPerMessage+1)
	for i := range sixHeaders {
		sixHeaders[i] = header(fmt.Sprintf("f%d.png", i), "image/png", 10)
	}

	tests := []struct {
		name  string
		files []*multipart.FileHeader
	}{
		{"too many files", sixHeaders},
		{"oversized file", []*multipart.FileHeader{header("big.png", "image/png", MaxFileSize+1)}},
		{"disallowed mime type", []*multipart.FileHeader{header("tool.exe", "application/x-msdownload", 10)}},
	}

	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fs.SaveMessageFiles(tt.files)
			var rejected *RejectedError
			if !errors.As(err, &rejected) {
				t.Fatalf("expected *RejectedError, got %v", err)
			}
			if rejected.Reason == "" {
				t.Error("rejection must carry a reason")
			}
		})
	}
}

func TestSaveMessageFilesEmptyInput(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	saved, err := fs.SaveMessageFiles(nil)
	if err != nil {
		t.Fatalf("a message without files must be accepted: %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("expected no saved files, got %d", len(saved))
	}
}
