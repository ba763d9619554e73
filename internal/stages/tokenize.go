package stages

import (
	"regexp"
	"strings"

	"github.com/kbukum/textpipe/internal/scheduler"
)

var wordTokenPattern = regexp.MustCompile(`[a-zA-Z0-9À-ÿ]+|[.,!?;:"'()\[\]{}]`)

// WordTokenize returns the WordTokenize stage body: re-segments each
// document into alphanumeric runs and single punctuation characters,
// rejoining the result with single spaces.
func WordTokenize() scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			tokens := wordTokenPattern.FindAllString(doc, -1)
			batch[i] = strings.Join(tokens, " ")
		}
		return nil
	}
}
