package stages

import "github.com/kbukum/textpipe/internal/scheduler"

// Normalize returns the Normalize stage body: ASCII-range case folding
// applied byte by byte. Multi-byte UTF-8 sequences are left untouched
// since their continuation bytes never fall in the 'A'-'Z' range, so
// treating the string as a byte slice is safe.
func Normalize() scheduler.Body {
	return func(batch []string) error {
		for i, doc := range batch {
			batch[i] = lowerASCII(doc)
		}
		return nil
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
