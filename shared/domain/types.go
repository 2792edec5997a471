package domain

type (
	ThreadId    = int64
	ThreadTitle = string

	PostId   = int64
	PostName = string
	PostText = string
)

// DefaultPostName is used when the submitted display name is blank after trimming.
const DefaultPostName = "名無しさん"
