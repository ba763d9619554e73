package stages

import (
	"strings"

	"github.com/kbukum/textpipe/internal/scheduler"
	"github.com/kbukum/textpipe/internal/vocab"
)

// BpeTokenize returns the BpeTokenize stage body: segments each
// whitespace-delimited word against v using greedy longest-prefix
// matching and wraps the result in a leading [CLS] and trailing [SEP].
// The vocabulary is captured at construction time rather than read from
// a package-level global.
func BpeTokenize(v *vocab.Vocabulary) scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			words := strings.Fields(doc)
			out := make([]string, 0, len(words)+2)
			out = append(out, vocab.TokenCLS)
			for _, w := range words {
				out = append(out, v.Segment(w)...)
			}
			out = append(out, vocab.TokenSEP)
			batch[i] = strings.Join(out, " ")
		}
		return nil
	}
}
