// Package codec implements the encode and decode engine of the bigraph
// substitution codec.
//
// Encoding maps uppercased text to an ordered token stream: words become
// bigram symbols looked up in a shared key.Model, word boundaries become
// rotating space-marker symbols, and sentence boundaries become two
// consecutive space markers. Odd-length words resolve their final letter
// through partial-marked tokens that borrow a bigram already present in the
// word, or fall back to a synthetic <letter>A bigram.
//
// Decoding is a single left-to-right pass with one-token lookahead: two
// consecutive space markers collapse into a sentence boundary, and the sign
// of the digit following an operator marker reconstructs multiplication
// versus division.
//
// # Concurrency
//
// Encoder and Decoder hold only an immutable *key.Model and are safe for
// concurrent use. The three rotation counters that advance during an encode
// are call-scoped: every Encode call creates a fresh encodingContext and
// threads it through the sentence and word encoders, so no state leaks
// between calls or goroutines.
//
// # Error Handling
//
// Encode and decode are pure transformations; failures surface immediately
// as typed errors (errs.ErrUnknownMeaning, errs.ErrUnknownSymbol,
// errs.ErrMalformedTokenStream, errs.ErrMalformedMathExpression) rather than
// being silently dropped.
package codec
