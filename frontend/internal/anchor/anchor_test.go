package anchor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uraita-dev/uraita/shared/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Segment
	}{
		{
			name:    "reference surrounded by text",
			content: "hi >>2 there",
			expected: []Segment{
				{Kind: Text, Value: "hi "},
				{Kind: Reference, Value: ">>2", TargetIndex: 2},
				{Kind: Text, Value: " there"},
			},
		},
		{
			name:     "non numeric token stays text",
			content:  ">>abc",
			expected: []Segment{{Kind: Text, Value: ">>abc"}},
		},
		{
			name:    "adjacent references",
			content: ">>3>>4",
			expected: []Segment{
				{Kind: Reference, Value: ">>3", TargetIndex: 3},
				{Kind: Reference, Value: ">>4", TargetIndex: 4},
			},
		},
		{
			name:     "bare arrows",
			content:  ">> what",
			expected: []Segment{{Kind: Text, Value: ">> what"}},
		},
		{
			name:     "empty body",
			content:  "",
			expected: nil,
		},
		{
			name:    "reference only",
			content: ">>1",
			expected: []Segment{
				{Kind: Reference, Value: ">>1", TargetIndex: 1},
			},
		},
		{
			name:    "reference across newline",
			content: "see\n>>12",
			expected: []Segment{
				{Kind: Text, Value: "see\n"},
				{Kind: Reference, Value: ">>12", TargetIndex: 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.content))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	// Concatenating segment values reproduces the input exactly.
	for _, content := range []string{"hi >>2 there", ">>3>>4", "plain", ">>", "a >>1 b >>x c"} {
		var rebuilt string
		for _, seg := range Parse(content) {
			rebuilt += seg.Value
		}
		assert.Equal(t, content, rebuilt)
	}
}

func newPosts(n int) []domain.Post {
	posts := make([]domain.Post, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range posts {
		posts[i] = domain.Post{
			Id:        domain.PostId(i + 100),
			ThreadId:  1,
			Name:      domain.DefaultPostName,
			Content:   "post",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return posts
}

func TestResolve(t *testing.T) {
	posts := newPosts(3)

	post, ok := Resolve(2, posts)
	require.True(t, ok)
	assert.Equal(t, posts[1].Id, post.Id)

	post, ok = Resolve(1, posts)
	require.True(t, ok)
	assert.Equal(t, posts[0].Id, post.Id)

	_, ok = Resolve(0, posts)
	assert.False(t, ok)
	_, ok = Resolve(4, posts)
	assert.False(t, ok)
	_, ok = Resolve(-1, posts)
	assert.False(t, ok)
	_, ok = Resolve(1, nil)
	assert.False(t, ok)
}

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		postCount int
		expected  string
	}{
		{
			name:      "resolvable reference becomes link",
			content:   "hi >>2",
			postCount: 3,
			expected:  `hi <a class="ref" href="#p2" data-index="2">&gt;&gt;2</a>`,
		},
		{
			name:      "dead reference becomes span",
			content:   ">>9",
			postCount: 3,
			expected:  `<span class="ref dead">&gt;&gt;9</span>`,
		},
		{
			name:      "newlines become br",
			content:   "a\nb",
			postCount: 0,
			expected:  "a<br>b",
		},
		{
			name:      "html in body stays escaped",
			content:   "<script>alert(1)</script>",
			postCount: 0,
			expected:  "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name:      "non numeric token stays literal",
			content:   ">>abc",
			postCount: 5,
			expected:  "&gt;&gt;abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(RenderHTML(tt.content, tt.postCount)))
		})
	}
}
