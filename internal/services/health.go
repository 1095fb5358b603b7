package services

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/utils"
	"gorm.io/gorm"
)

// HealthReport summarizes the service's dependencies.
type HealthReport struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	MediaStorage string `json:"mediaStorage"`
}

// CheckHealth pings the database and the media storage endpoint.
// Status is "ok" only when the database answers; media storage being
// unreachable degrades the report without failing it.
func CheckHealth(db *gorm.DB) HealthReport {
	report := HealthReport{Status: "ok", Database: "up", MediaStorage: "up"}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		report.Status = "unhealthy"
		report.Database = "down"
	}
	if err := utils.PingMediaStorage(); err != nil {
		report.MediaStorage = "down"
	}
	return report
}
