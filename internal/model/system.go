package model

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// VersionInfo represents the version information response.
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}
