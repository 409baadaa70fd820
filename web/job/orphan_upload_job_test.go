package job

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio/database"
	"portfolio/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, database.InitDB(filepath.Join(dir, "test.db")))
	t.Cleanup(func() {
		database.CloseDB()
	})
	return dir
}

func writeUpload(t *testing.T, webRoot, rel string, age time.Duration) {
	t.Helper()
	path := filepath.Join(webRoot, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o640))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
}

func TestSweepRemovesOrphansKeepsReferenced(t *testing.T) {
	dir := setup(t)
	webRoot := filepath.Join(dir, "wwwroot")

	writeUpload(t, webRoot, "images/projects/kept.png", 48*time.Hour)
	writeUpload(t, webRoot, "images/projects/orphan.png", 48*time.Hour)
	writeUpload(t, webRoot, "documents/orphan.pdf", 48*time.Hour)

	db := database.GetDB()
	require.NoError(t, db.Create(&model.User{
		Username:      "alice",
		Email:         "alice@example.com",
		CoverImageUrl: "/images/projects/kept.png",
	}).Error)

	job := &OrphanUploadJob{WebRoot: webRoot, Grace: time.Hour}
	removed, err := job.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = os.Stat(filepath.Join(webRoot, "images", "projects", "kept.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(webRoot, "images", "projects", "orphan.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestSweepSparesRecentFiles(t *testing.T) {
	dir := setup(t)
	webRoot := filepath.Join(dir, "wwwroot")

	writeUpload(t, webRoot, "images/news/fresh.png", 0)

	job := &OrphanUploadJob{WebRoot: webRoot, Grace: time.Hour}
	removed, err := job.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	_, err = os.Stat(filepath.Join(webRoot, "images", "news", "fresh.png"))
	assert.NoError(t, err)
}

func TestSweepMissingWebRoot(t *testing.T) {
	dir := setup(t)

	job := &OrphanUploadJob{WebRoot: filepath.Join(dir, "missing"), Grace: time.Hour}
	removed, err := job.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}
