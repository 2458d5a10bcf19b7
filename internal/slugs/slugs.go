// Package slugs derives URL-safe identifiers from display names.
// The algorithm must stay stable: persisted category slugs and the product
// and offer references pointing at them depend on it.
package slugs

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`--+`)
)

// Make converts a display name into a slug: lowercase, trim, whitespace runs
// to a single hyphen, strip anything outside [a-z0-9-], collapse repeated
// hyphens, trim leading/trailing hyphens.
// "Men's Jackets!!" -> "mens-jackets".
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
