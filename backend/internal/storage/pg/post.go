package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/uraita-dev/uraita/shared/domain"
	internal_errors "github.com/uraita-dev/uraita/shared/errors"
)

func (s *Storage) CreatePost(creationData domain.PostCreationData) (domain.PostId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify thread exists
	var threadId domain.ThreadId
	err = tx.QueryRow(
		"SELECT id FROM threads WHERE id = $1",
		creationData.ThreadId,
	).Scan(&threadId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return -1, fmt.Errorf("failed to validate thread: %w", err)
	}

	var id domain.PostId
	err = tx.QueryRow(`
        INSERT INTO posts (thread_id, name, content)
        VALUES ($1, $2, $3)
        RETURNING id
    `, creationData.ThreadId, creationData.Name, creationData.Content).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// GetPosts returns the thread's posts ordered by created_at ascending, id as a
// tie-break. This order defines each post's display index on the client.
func (s *Storage) GetPosts(threadId domain.ThreadId) ([]domain.Post, error) {
	rows, err := s.db.Query(`
        SELECT id, thread_id, name, content, created_at
        FROM posts
        WHERE thread_id = $1
        ORDER BY created_at, id
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.Id, &post.ThreadId, &post.Name, &post.Content, &post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}
