package service

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"portfolio/config"
	"portfolio/util/common"
	"portfolio/util/metrics"

	"github.com/google/uuid"
)

// UploadService writes uploaded files below the static web root and hands
// back the URL path the static handler serves them from.
//
// It does no content-type or size validation; callers accepting uploads
// from untrusted users must add both.
type UploadService struct {
	// WebRoot overrides the configured static-assets root. Used by tests.
	WebRoot string
}

func (s *UploadService) webRoot() string {
	if s.WebRoot != "" {
		return s.WebRoot
	}
	return config.GetWebRoot()
}

// Store saves the file under webroot/<folder> with a generated unique name
// that keeps the original extension, and returns "/<folder>/<name>".
// The folder is created if absent.
func (s *UploadService) Store(file io.Reader, originalFilename, folder string) (string, error) {
	if folder == "" || strings.Contains(folder, "..") {
		return "", common.NewError("invalid upload folder:", folder)
	}

	uploadDir := filepath.Join(s.webRoot(), filepath.FromSlash(folder))
	if err := os.MkdirAll(uploadDir, 0o750); err != nil {
		return "", common.NewErrorf("create upload folder %s: %v", folder, err)
	}

	fileName := uuid.New().String() + path.Ext(originalFilename)
	dst, err := os.Create(filepath.Join(uploadDir, fileName))
	if err != nil {
		return "", common.NewErrorf("save upload %s: %v", fileName, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	metrics.RecordUpload(folder)
	return "/" + path.Join(folder, fileName), nil
}

// StoreImage saves an image into the images/<folder> subtree, e.g. folder
// "news" yields "/images/news/<name>".
func (s *UploadService) StoreImage(file io.Reader, originalFilename, folder string) (string, error) {
	return s.Store(file, originalFilename, path.Join("images", folder))
}
