package service

import (
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
	"github.com/uraita-dev/uraita/shared/logger"
)

// ThreadStorage defines the database operations the thread service needs.
type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.ThreadId, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	GetThreads() ([]domain.Thread, error)
	DeleteExpiredThreads(cutoff time.Time) (int64, error)
}

type Thread struct {
	storage     ThreadStorage
	ttl         time.Duration
	titleMaxLen int

	mu          sync.Mutex
	lastCleanup CleanupStats
}

func NewThread(storage ThreadStorage, ttl time.Duration, titleMaxLen int) *Thread {
	return &Thread{storage: storage, ttl: ttl, titleMaxLen: titleMaxLen}
}

func (s *Thread) Create(creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	title := strings.TrimSpace(creationData.Title)
	if title == "" {
		return -1, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread title is empty",
			StatusCode: http.StatusBadRequest,
		}
	}
	if utf8.RuneCountInString(title) > s.titleMaxLen {
		return -1, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread title is too long",
			StatusCode: http.StatusBadRequest,
		}
	}
	return s.storage.CreateThread(domain.ThreadCreationData{Title: title})
}

func (s *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	return s.storage.GetThread(id)
}

// List runs a best-effort expiry cleanup pass and then reads the remaining
// threads, newest first. A failed cleanup is logged and swallowed: listing
// must proceed with whatever threads currently exist.
func (s *Thread) List() ([]domain.Thread, error) {
	s.cleanupExpired(time.Now().UTC())
	return s.storage.GetThreads()
}

func (s *Thread) cleanupExpired(now time.Time) {
	start := time.Now()
	stats := CleanupStats{RunAt: now}

	deleted, err := s.storage.DeleteExpiredThreads(now.Add(-s.ttl))
	stats.ThreadsDeleted = deleted
	stats.DurationMs = time.Since(start).Milliseconds()
	if err != nil {
		stats.Error = err.Error()
		logger.Log.Error("thread expiry cleanup failed", "error", err)
	} else if deleted > 0 {
		logger.Log.Info("expired threads deleted", "count", deleted, "duration_ms", stats.DurationMs)
	}

	s.mu.Lock()
	s.lastCleanup = stats
	s.mu.Unlock()
}

// LastCleanupStats returns statistics from the last cleanup pass.
func (s *Thread) LastCleanupStats() CleanupStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCleanup
}
