// Package stages implements the deterministic, in-place text transforms
// that make up the fixed Clean -> Normalize -> WordTokenize -> BpeTokenize
// -> Partition -> AddSpecialTokens -> IndexLookup -> Embed chain.
//
// Each constructor returns a scheduler.Body closure: a pure function of
// the shared document batch, with any required configuration (max
// sequence length, vocabulary) captured at construction time rather than
// read from global state.
package stages
