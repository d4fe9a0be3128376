package utils

import (
	"cinevault/config"
	"cinevault/database"
	"cinevault/models"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[POSTER-CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// cleanupOrphanPosters removes files in the upload directory that no
// movie references anymore (left behind by edits and deletions).
func cleanupOrphanPosters() {
	db := database.Database.Db

	var referenced []string
	if err := db.Model(&models.Movie{}).Where("poster <> ''").Pluck("poster", &referenced).Error; err != nil {
		logScheduler("Error fetching poster references: " + err.Error())
		return
	}

	inUse := make(map[string]bool, len(referenced))
	for _, name := range referenced {
		inUse[name] = true
	}

	entries, err := os.ReadDir(config.AppConfig.UploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		logScheduler("Error reading upload dir: " + err.Error())
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || inUse[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(config.AppConfig.UploadDir, entry.Name())); err != nil {
			logScheduler("Error removing orphan poster " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logScheduler("Removed " + strconv.Itoa(removed) + " orphan posters")
	}
}

// StartPosterCleanup schedules the daily orphan-poster sweep.
func StartPosterCleanup() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", cleanupOrphanPosters); err != nil {
		log.Fatalf("Failed to schedule poster cleanup: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
