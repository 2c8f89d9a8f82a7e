package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxFileSize is the per-file upload limit.
	MaxFileSize = 10 * 1024 * 1024 // 10MB
	// MaxFilesPerMessage caps how many files one message may carry.
	MaxFilesPerMessage = 5
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
	"text/csv":   true,
}

// RejectedError marks an upload the caller should answer with 400 rather
// than 500: too many files, an oversized file, or a disallowed MIME type.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

// SavedFile is the metadata of a file written to disk.
type SavedFile struct {
	FileName string
	FilePath string
	FileSize int64
	MimeType string
}

// FileStore streams uploaded files to local disk under a base directory.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// SaveMessageFiles validates and persists the uploaded files, returning
// their stored metadata. Validation failures return a *RejectedError before
// anything is written; nothing is kept on a later write failure either.
func (f *FileStore) SaveMessageFiles(files []*multipart.FileHeader) ([]SavedFile, error) {
	if len(files) > MaxFilesPerMessage {
		return nil, &RejectedError{Reason: fmt.Sprintf("Too many files: at most %d files are allowed", MaxFilesPerMessage)}
	}

	for _, fh := range files {
		if fh.Size > MaxFileSize {
			return nil, &RejectedError{Reason: fmt.Sprintf("File %s exceeds the %dMB size limit", fh.Filename, MaxFileSize/(1024*1024))}
		}
		mimeType := fh.Header.Get("Content-Type")
		if !allowedMimeTypes[mimeType] {
			return nil, &RejectedError{Reason: fmt.Sprintf("File type %s is not allowed", mimeType)}
		}
	}

	saved := make([]SavedFile, 0, len(files))
	for _, fh := range files {
		sf, err := f.saveOne(fh)
		if err != nil {
			f.Remove(saved)
			return nil, err
		}
		saved = append(saved, sf)
	}
	return saved, nil
}

// Remove deletes previously saved files, e.g. when the message row that
// should reference them was never written.
func (f *FileStore) Remove(saved []SavedFile) {
	for _, sf := range saved {
		os.Remove(sf.FilePath)
	}
}

func (f *FileStore) saveOne(fh *multipart.FileHeader) (SavedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return SavedFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	target := filepath.Join(f.basePath, uniqueName(fh.Filename))
	out, err := os.Create(target)
	if err != nil {
		return SavedFile{}, fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, src)
	if err != nil {
		os.Remove(target)
		return SavedFile{}, fmt.Errorf("write file: %w", err)
	}

	return SavedFile{
		FileName: filepath.Base(fh.Filename),
		FilePath: target,
		FileSize: written,
		MimeType: fh.Header.Get("Content-Type"),
	}, nil
}

// uniqueName builds "<basename>-<timestamp>-<random><ext>" so concurrent
// uploads of the same filename never collide.
func uniqueName(original string) string {
	original = filepath.Base(original)
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(original, ext)
	if base == "" {
		base = "file"
	}
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	return fmt.Sprintf("%s-%s%s", base, suffix, ext)
}
