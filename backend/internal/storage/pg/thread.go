package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
)

// threadColumns selects thread rows together with derived activity fields.
// last_activity is the newest post's created_at, falling back to the thread's
// own created_at when it has no posts.
const threadColumns = `
        t.id,
        t.title,
        t.created_at,
        COUNT(p.id) AS num_posts,
        COALESCE(MAX(p.created_at), t.created_at) AS last_activity
    FROM threads t
    LEFT JOIN posts p ON p.thread_id = t.id
`

func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.ThreadId, error) {
	var id domain.ThreadId
	err := s.db.QueryRow(
		"INSERT INTO threads (title) VALUES ($1) RETURNING id",
		creationData.Title,
	).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert thread: %w", err)
	}
	return id, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT`+threadColumns+`
        WHERE t.id = $1
        GROUP BY t.id
    `, id).Scan(
		&thread.Id, &thread.Title, &thread.CreatedAt,
		&thread.NumPosts, &thread.LastActivity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

func (s *Storage) GetThreads() ([]domain.Thread, error) {
	rows, err := s.db.Query(`
        SELECT` + threadColumns + `
        GROUP BY t.id
        ORDER BY t.created_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(
			&thread.Id, &thread.Title, &thread.CreatedAt,
			&thread.NumPosts, &thread.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, thread)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// DeleteExpiredThreads removes every thread whose last activity is strictly
// before cutoff. A single bulk statement, safe to run concurrently from
// multiple clients: deleting an already-deleted thread simply matches no rows.
// Posts go with their thread via ON DELETE CASCADE.
func (s *Storage) DeleteExpiredThreads(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec(`
        DELETE FROM threads t
        WHERE COALESCE(
            (SELECT MAX(p.created_at) FROM posts p WHERE p.thread_id = t.id),
            t.created_at
        ) < $1
    `, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired threads: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted threads: %w", err)
	}
	return deleted, nil
}
