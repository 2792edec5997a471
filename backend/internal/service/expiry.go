package service

import (
	"time"
)

// IsExpired reports whether a thread is eligible for deletion: true iff
// now - lastActivity > ttl, where lastActivity is the newest post's creation
// time, or the thread's own creation time when it has no posts. A thread idle
// for exactly ttl is NOT expired.
func IsExpired(createdAt time.Time, latestPost *time.Time, now time.Time, ttl time.Duration) bool {
	lastActivity := createdAt
	if latestPost != nil {
		lastActivity = *latestPost
	}
	return now.Sub(lastActivity) > ttl
}

// CleanupStats tracks the outcome of the last expiry cleanup pass.
type CleanupStats struct {
	RunAt          time.Time
	ThreadsDeleted int64
	DurationMs     int64
	Error          string
}
