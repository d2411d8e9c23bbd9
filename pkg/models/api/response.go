package api

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// JobResponse describes one registered job and its schedule
type JobResponse struct {
	Name     string `json:"name"`
	Schedule string `json:"schedule"`
}

// JobListResponse is the /jobs payload
type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Count int           `json:"count"`
}
