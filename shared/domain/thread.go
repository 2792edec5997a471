package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle
}

type Thread struct {
	Id        ThreadId
	Title     ThreadTitle
	CreatedAt time.Time

	// Derived on read. LastActivity is the creation time of the newest post,
	// or CreatedAt when the thread has no posts yet.
	NumPosts     int
	LastActivity time.Time
}
