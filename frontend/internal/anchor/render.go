package anchor

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^ref( dead)?$`)).OnElements("a", "span")
	p.AllowAttrs("href", "data-index").OnElements("a")
	p.AllowRelativeURLs(true)
	p.RequireNoFollowOnLinks(false)
	return p
}

// RenderHTML converts a post body into sanitized HTML. References to posts
// that exist become links to the target's #p<index> element; references past
// the end of the thread render as inert dead spans. Everything else is
// escaped text with newlines as <br>.
func RenderHTML(content string, postCount int) template.HTML {
	var b strings.Builder
	for _, seg := range Parse(content) {
		switch seg.Kind {
		case Reference:
			if seg.TargetIndex >= 1 && seg.TargetIndex <= postCount {
				fmt.Fprintf(&b, `<a class="ref" href="#p%d" data-index="%d">&gt;&gt;%d</a>`,
					seg.TargetIndex, seg.TargetIndex, seg.TargetIndex)
			} else {
				fmt.Fprintf(&b, `<span class="ref dead">&gt;&gt;%d</span>`, seg.TargetIndex)
			}
		default:
			escaped := template.HTMLEscapeString(seg.Value)
			b.WriteString(strings.ReplaceAll(escaped, "\n", "<br>"))
		}
	}
	return template.HTML(sanitizer.Sanitize(b.String()))
}
