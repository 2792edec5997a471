package anchor

import (
	"regexp"
	"strconv"

	"github.com/uraita-dev/uraita/shared/domain"
)

// A reference token is ">>" immediately followed by one or more digits.
// Anything else, including ">>abc" and a bare ">>", is plain text.
var refRegex = regexp.MustCompile(`>>(\d+)`)

type SegmentKind int

const (
	Text SegmentKind = iota
	Reference
)

// Segment is one token of a parsed post body. Text segments carry the raw
// text in Value; Reference segments carry the 1-based display index they
// point at in TargetIndex.
type Segment struct {
	Kind        SegmentKind
	Value       string
	TargetIndex int
}

// Parse splits a normalized post body into text and reference segments.
// Parsing never fails: malformed tokens stay literal text.
func Parse(content string) []Segment {
	var segments []Segment
	last := 0
	for _, m := range refRegex.FindAllStringSubmatchIndex(content, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Kind: Text, Value: content[last:m[0]]})
		}
		idx, err := strconv.Atoi(content[m[2]:m[3]])
		if err != nil {
			// Digits too long for an int; keep the token as text.
			segments = append(segments, Segment{Kind: Text, Value: content[m[0]:m[1]]})
		} else {
			segments = append(segments, Segment{Kind: Reference, Value: content[m[0]:m[1]], TargetIndex: idx})
		}
		last = m[1]
	}
	if last < len(content) {
		segments = append(segments, Segment{Kind: Text, Value: content[last:]})
	}
	return segments
}

// Resolve maps a display index to the post at that position. Posts must be
// in display order (created_at ascending); index 1 is the first post.
// Out-of-range indexes resolve to nothing, never to an error.
func Resolve(targetIndex int, posts []domain.Post) (domain.Post, bool) {
	if targetIndex < 1 || targetIndex > len(posts) {
		return domain.Post{}, false
	}
	return posts[targetIndex-1], true
}
