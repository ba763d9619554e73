package stages

import (
	"fmt"

	"github.com/kbukum/textpipe/internal/scheduler"
)

// Embed returns the Embed stage body: replaces each document with a
// placeholder identifying its 1-based position in the batch.
// startOffset is added to the in-batch index before
// formatting, so a chunk processed by the partitioned executor produces
// the same placeholder a whole-batch run would have assigned to the
// same document (its original, global position) rather than numbering
// itself from 1 within the chunk.
func Embed(startOffset int) scheduler.Body {
	return func(batch []string) error {
		for i := range batch {
			batch[i] = fmt.Sprintf("EMBEDDED_DOCUMENT_%d", startOffset+i+1)
		}
		return nil
	}
}
