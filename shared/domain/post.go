package domain

import (
	"fmt"
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	ThreadId ThreadId
	Name     PostName
	Content  PostText
}

// Posts are immutable once created. Within a thread they are totally ordered
// by CreatedAt ascending; a post's 1-based rank in that order is its display
// index, recomputed on every fetch and never stored.
type Post struct {
	Id        PostId
	ThreadId  ThreadId
	Name      PostName
	Content   PostText
	CreatedAt time.Time
}

// for debug
func (p *Post) String() string {
	return fmt.Sprintf("[id:%d, thread:%d, name:%s, created:%s, content:%s]",
		p.Id, p.ThreadId, p.Name, p.CreatedAt.Format(time.StampMilli), p.Content)
}
