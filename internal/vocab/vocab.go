package vocab

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Reserved special-token identifiers, fixed by spec across any externally
// supplied vocabulary file.
const (
	TokenCLS = "[CLS]"
	TokenSEP = "[SEP]"
	TokenEOF = "[EOF]"
	TokenUNK = "[UNK]"

	IDCLS = 101
	IDSEP = 102
	IDEOF = 103
	IDUNK = 0
)

// Vocabulary is an immutable token-to-id mapping. It is built once per
// pipeline configuration and shared read-only across every stage closure
// that needs it, avoiding static mutable state.
type Vocabulary struct {
	ids    map[string]int
	tokens map[int]string
}

// file is the on-disk shape of an external vocabulary file: a flat
// token-to-id map under `tokens`, plus an ordered `merges` list. Load
// keeps only the keys of `tokens` (the ids listed beside them are not
// used) and passes them, followed by `merges`, to New, which assigns
// every subword a sequential id after the reserved special tokens.
type file struct {
	Tokens map[string]int `yaml:"tokens"`
	Merges []string       `yaml:"merges"`
}

// New builds a vocabulary from the four reserved special tokens plus the
// given additional subwords, assigned sequential ids starting after the
// highest reserved id.
func New(subwords []string) *Vocabulary {
	v := &Vocabulary{
		ids:    make(map[string]int, len(subwords)+4),
		tokens: make(map[int]string, len(subwords)+4),
	}
	v.reserve(TokenUNK, IDUNK)
	v.reserve(TokenCLS, IDCLS)
	v.reserve(TokenSEP, IDSEP)
	v.reserve(TokenEOF, IDEOF)

	next := IDEOF + 1
	for _, sw := range subwords {
		if _, exists := v.ids[sw]; exists {
			continue
		}
		v.reserve(sw, next)
		next++
	}
	return v
}

func (v *Vocabulary) reserve(token string, id int) {
	v.ids[token] = id
	v.tokens[id] = token
}

// Load builds a Vocabulary from an optional vocab file and an optional
// merges file. Either or both may be empty; an empty path is skipped,
// and when both are empty the built-in minimal vocabulary (the four
// special tokens only) is used.
func Load(vocabFile, mergesFile string) (*Vocabulary, error) {
	var subwords []string

	if vocabFile != "" {
		data, err := os.ReadFile(vocabFile)
		if err != nil {
			return nil, fmt.Errorf("vocab: reading %s: %w", vocabFile, err)
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("vocab: parsing %s: %w", vocabFile, err)
		}
		for tok := range f.Tokens {
			subwords = append(subwords, tok)
		}
		subwords = append(subwords, f.Merges...)
	}

	if mergesFile != "" {
		data, err := os.ReadFile(mergesFile)
		if err != nil {
			return nil, fmt.Errorf("vocab: reading %s: %w", mergesFile, err)
		}
		var merges []string
		if err := yaml.Unmarshal(data, &merges); err != nil {
			return nil, fmt.Errorf("vocab: parsing %s: %w", mergesFile, err)
		}
		subwords = append(subwords, merges...)
	}

	return New(subwords), nil
}

// ID returns the id for token, and whether it is known to the vocabulary.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// IDOrUnknown returns token's id, or the reserved unknown-token id if
// token is not in the vocabulary.
func (v *Vocabulary) IDOrUnknown(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	return IDUNK
}

// Token returns the token for id, and whether it is known to the
// vocabulary.
func (v *Vocabulary) Token(id int) (string, bool) {
	tok, ok := v.tokens[id]
	return tok, ok
}

// Segment applies greedy longest-prefix matching to word: at each
// position it looks for the longest known subword starting there; any run
// of characters that cannot be matched to a known subword is emitted as a
// single literal span (resolved to the unknown-token id later, by
// IndexLookup — not expanded character-by-character here).
func (v *Vocabulary) Segment(word string) []string {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return nil
	}

	var out []string
	i := 0
	for i < n {
		if l, ok := v.longestMatchAt(runes, i); ok {
			out = append(out, string(runes[i:i+l]))
			i += l
			continue
		}

		start := i
		i++
		for i < n {
			if _, ok := v.longestMatchAt(runes, i); ok {
				break
			}
			i++
		}
		out = append(out, string(runes[start:i]))
	}
	return out
}

// longestMatchAt returns the length of the longest known subword starting
// at position i in runes, and whether any match was found.
func (v *Vocabulary) longestMatchAt(runes []rune, i int) (int, bool) {
	for l := len(runes) - i; l >= 1; l-- {
		if _, ok := v.ids[string(runes[i:i+l])]; ok {
			return l, true
		}
	}
	return 0, false
}
