package stages

import (
	"strconv"
	"strings"

	"github.com/kbukum/textpipe/internal/scheduler"
	"github.com/kbukum/textpipe/internal/vocab"
)

// IndexLookup returns the IndexLookup stage body: replaces each
// whitespace-separated token with its decimal vocabulary id, or the
// reserved unknown id if the token is absent from v.
func IndexLookup(v *vocab.Vocabulary) scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			tokens := strings.Fields(doc)
			for j, t := range tokens {
				tokens[j] = strconv.Itoa(v.IDOrUnknown(t))
			}
			batch[i] = strings.Join(tokens, " ")
		}
		return nil
	}
}
