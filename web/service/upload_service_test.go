package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreImageNamesAndUrl(t *testing.T) {
	uploadService := UploadService{WebRoot: t.TempDir()}

	url, err := uploadService.StoreImage(strings.NewReader("png bytes"), "photo.png", "news")
	require.NoError(t, err)

	// /images/news/<token>.png with the original extension preserved.
	assert.Regexp(t, `^/images/news/[0-9a-f-]{36}\.png$`, url)

	content, err := os.ReadFile(filepath.Join(uploadService.WebRoot, filepath.FromSlash(strings.TrimPrefix(url, "/"))))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))
}

func TestStoreGeneratesDistinctNames(t *testing.T) {
	uploadService := UploadService{WebRoot: t.TempDir()}

	first, err := uploadService.Store(strings.NewReader("a"), "report.pdf", "documents")
	require.NoError(t, err)
	second, err := uploadService.Store(strings.NewReader("b"), "report.pdf", "documents")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "/documents/"))
	assert.True(t, strings.HasSuffix(first, ".pdf"))
}

func TestStoreRejectsEscapingFolder(t *testing.T) {
	uploadService := UploadService{WebRoot: t.TempDir()}

	_, err := uploadService.Store(strings.NewReader("x"), "a.png", "../outside")
	assert.Error(t, err)

	_, err = uploadService.Store(strings.NewReader("x"), "a.png", "")
	assert.Error(t, err)
}

func TestStoreFilenameWithoutExtension(t *testing.T) {
	uploadService := UploadService{WebRoot: t.TempDir()}

	url, err := uploadService.Store(strings.NewReader("raw"), "README", "documents")
	require.NoError(t, err)
	assert.Regexp(t, `^/documents/[0-9a-f-]{36}$`, url)
}
