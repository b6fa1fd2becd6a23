// Package smfile parses the StepMania .sm notation: semicolon-terminated
// metadata tags, beat-indexed timing lists, and per-measure note grids.
package smfile

import (
	"regexp"
	"strings"
)

// ExtractTag returns the trimmed body of the first #<tag>:...; block, or
// "" when the tag is absent. A missing tag is never an error; callers
// treat "" as absent. Whitespace-only bodies normalise to "".
func ExtractTag(content, tag string) string {
	re := regexp.MustCompile(`#` + regexp.QuoteMeta(tag) + `:([^;]*);`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
