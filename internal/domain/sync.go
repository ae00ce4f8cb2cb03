package domain

import "time"

type SyncStatus struct {
	Name                string    `json:"name"`
	Enabled             bool      `json:"sync_enabled"`
	CronSchedule        string    `json:"sync_cron"`
	MaxConcurrentJobs   int       `json:"sync_max_concurrent"`
	Running             bool      `json:"running"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
	LastSyncConnections int       `json:"last_sync_connections"`
	LastSyncFailures    int       `json:"last_sync_failures"`
}
