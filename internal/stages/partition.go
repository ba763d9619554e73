package stages

import (
	"strings"

	"github.com/kbukum/textpipe/internal/scheduler"
)

// Partition returns the Partition stage body: truncates each document to
// its first maxSequenceLength whitespace-separated tokens, leaving
// shorter documents unchanged. It is idempotent whenever
// maxSequenceLength is at least the document's token count.
func Partition(maxSequenceLength int) scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			tokens := strings.Fields(doc)
			if len(tokens) > maxSequenceLength {
				batch[i] = strings.Join(tokens[:maxSequenceLength], " ")
			}
		}
		return nil
	}
}
