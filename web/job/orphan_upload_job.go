// Package job contains the scheduled maintenance tasks of the panel.
package job

import (
	"os"
	"path/filepath"
	"time"

	"portfolio/config"
	"portfolio/database"
	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/util/common"
)

// orphanGracePeriod keeps just-uploaded files safe while the form that
// references them is still in flight.
const orphanGracePeriod = 24 * time.Hour

// OrphanUploadJob removes files under the upload tree that no row
// references anymore, e.g. covers replaced by an edit.
type OrphanUploadJob struct {
	WebRoot string
	Grace   time.Duration
}

func NewOrphanUploadJob() *OrphanUploadJob {
	return &OrphanUploadJob{}
}

func (j *OrphanUploadJob) webRoot() string {
	if j.WebRoot != "" {
		return j.WebRoot
	}
	return config.GetWebRoot()
}

func (j *OrphanUploadJob) grace() time.Duration {
	if j.Grace > 0 {
		return j.Grace
	}
	return orphanGracePeriod
}

// Run is the cron entry point.
func (j *OrphanUploadJob) Run() {
	defer common.Recover("orphan upload sweep")

	removed, err := j.Sweep()
	if err != nil {
		logger.Warning("orphan upload sweep err:", err)
		return
	}
	if removed > 0 {
		logger.Infof("orphan upload sweep removed %d files", removed)
	}
}

// Sweep walks the images and documents subtrees and deletes unreferenced
// files older than the grace period. It returns how many files were
// removed.
func (j *OrphanUploadJob) Sweep() (int, error) {
	referenced, err := j.referencedUrls()
	if err != nil {
		return 0, err
	}

	webRoot := j.webRoot()
	cutoff := time.Now().Add(-j.grace())
	removed := 0

	for _, sub := range []string{"images", "documents"} {
		root := filepath.Join(webRoot, sub)
		if _, err := os.Stat(root); os.IsNotExist(err) {
			continue
		}
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			rel, err := filepath.Rel(webRoot, path)
			if err != nil {
				return err
			}
			url := "/" + filepath.ToSlash(rel)
			if referenced[url] || info.ModTime().After(cutoff) {
				return nil
			}
			if err := os.Remove(path); err != nil {
				logger.Warningf("remove orphan %s: %v", path, err)
				return nil
			}
			removed++
			return nil
		})
		if err != nil {
			return removed, err
		}
	}
	return removed, nil
}

// referencedUrls collects every stored file URL across all entities.
func (j *OrphanUploadJob) referencedUrls() (map[string]bool, error) {
	db := database.GetDB()
	referenced := make(map[string]bool)

	collect := func(m any, columns ...string) error {
		for _, column := range columns {
			var urls []string
			err := db.Model(m).
				Where(column + " != ''").
				Pluck(column, &urls).Error
			if err != nil {
				return err
			}
			for _, url := range urls {
				referenced[url] = true
			}
		}
		return nil
	}

	if err := collect(&model.User{}, "cover_image_url"); err != nil {
		return nil, err
	}
	if err := collect(&model.Project{}, "cover_image_url"); err != nil {
		return nil, err
	}
	if err := collect(&model.Service{}, "cover_image_url"); err != nil {
		return nil, err
	}
	if err := collect(&model.News{}, "cover_image_url"); err != nil {
		return nil, err
	}
	if err := collect(&model.Document{}, "cover_image_url", "document_url"); err != nil {
		return nil, err
	}
	return referenced, nil
}
