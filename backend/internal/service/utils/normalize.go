package utils

import (
	"regexp"
	"strings"
)

var newlineRun = regexp.MustCompile(`\n{3,}`)

// Normalize collapses any run of three or more consecutive newlines down to
// exactly two (paragraph breaks survive, vertical whitespace is capped) and
// trims leading/trailing whitespace. Idempotent. Callers must treat an empty
// result as "nothing to submit".
func Normalize(raw string) string {
	return strings.TrimSpace(newlineRun.ReplaceAllString(raw, "\n\n"))
}
