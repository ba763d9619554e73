// Package vocab implements the shared, immutable token vocabulary used by
// the BpeTokenize and IndexLookup stages: a string-to-id mapping seeded
// with the four reserved special tokens plus an optional externally
// supplied subword list.
package vocab
