package stages

import (
	"strings"

	"github.com/kbukum/textpipe/internal/scheduler"
	"github.com/kbukum/textpipe/internal/vocab"
)

// AddSpecialTokens returns the AddSpecialTokens stage body: ensures each
// document starts with [CLS], contains [SEP] before a trailing [EOF],
// and ends with [EOF], inserting any missing marker without duplicating
// one already present.
func AddSpecialTokens() scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			batch[i] = addSpecialTokens(doc)
		}
		return nil
	}
}

func addSpecialTokens(doc string) string {
	tokens := strings.Fields(doc)

	if len(tokens) == 0 || tokens[0] != vocab.TokenCLS {
		tokens = append([]string{vocab.TokenCLS}, tokens...)
	}

	if !containsToken(tokens, vocab.TokenSEP) {
		if len(tokens) > 0 && tokens[len(tokens)-1] == vocab.TokenEOF {
			tail := append([]string{vocab.TokenSEP}, tokens[len(tokens)-1:]...)
			tokens = append(tokens[:len(tokens)-1], tail...)
		} else {
			tokens = append(tokens, vocab.TokenSEP)
		}
	}

	if len(tokens) == 0 || tokens[len(tokens)-1] != vocab.TokenEOF {
		tokens = append(tokens, vocab.TokenEOF)
	}

	return strings.Join(tokens, " ")
}

func containsToken(tokens []string, target string) bool {
	for _, t := range tokens {
		if t == target {
			return true
		}
	}
	return false
}
