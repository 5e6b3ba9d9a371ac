// ABOUTME: Shared API response envelopes
// ABOUTME: JSON-serializable error and health payloads used by server and client

package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status        string    `json:"status"`
	Version       string    `json:"version"`
	StartedAt     time.Time `json:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	CacheEnabled  bool      `json:"cache_enabled"`
}
