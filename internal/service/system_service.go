package service

import (
	"database/sql"
	"runtime"

	"finance-tracker/internal/database"
	"finance-tracker/internal/model"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// SystemService reports process health and build information.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// Health reports whether the process and its database are reachable.
func (s *SystemService) Health() model.HealthStatus {
	status := model.HealthStatus{Status: "ok", Database: "ok"}

	if err := database.HealthCheck(s.db); err != nil {
		status.Status = "degraded"
		status.Database = err.Error()
	}

	return status
}

// VersionInfo reports the build version and Go runtime version.
func (s *SystemService) VersionInfo() model.VersionInfo {
	return model.VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
	}
}
