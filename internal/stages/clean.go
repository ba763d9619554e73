package stages

import (
	"regexp"
	"strings"

	"github.com/kbukum/textpipe/internal/scheduler"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	disallowedPattern = regexp.MustCompile(`[^a-zA-Z0-9\sÀ-ÿ]`)

	htmlEntities = map[string]string{
		"&amp;":  "&",
		"&lt;":   "<",
		"&gt;":   ">",
		"&quot;": `"`,
		"&apos;": "'",
		"&nbsp;": " ",
	}
)

// Clean returns the Clean stage body: strips HTML-like tags, decodes a
// fixed entity set, drops anything outside ASCII letters/digits, the
// Latin-1 accented range À-ÿ, and whitespace, collapses whitespace, and
// trims.
func Clean() scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			batch[i] = cleanDocument(doc)
		}
		return nil
	}
}

func cleanDocument(doc string) string {
	s := htmlTagPattern.ReplaceAllString(doc, " ")

	for entity, replacement := range htmlEntities {
		s = strings.ReplaceAll(s, entity, replacement)
	}

	s = disallowedPattern.ReplaceAllString(s, "")

	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
