// Package errs defines the sentinel errors shared across bigraph packages.
//
// Callers should match against these sentinels with errors.Is; packages wrap
// them with fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

var (
	// ErrUnknownMeaning indicates a meaning that has no assigned symbol in the
	// key, or input text that maps to no meaning in the closed universe.
	ErrUnknownMeaning = errors.New("unknown meaning")

	// ErrUnknownSymbol indicates a symbol index outside the key's symbol table.
	ErrUnknownSymbol = errors.New("unknown symbol index")

	// ErrMalformedTokenStream indicates a token stream that cannot be decoded:
	// an unparsable integer, a symbol reference out of range, or a partial
	// marker applied to a non-bigram meaning.
	ErrMalformedTokenStream = errors.New("malformed token stream")

	// ErrMalformedMathExpression indicates a math expression with fewer than
	// three whitespace-separated parts.
	ErrMalformedMathExpression = errors.New("malformed math expression")

	// ErrSymbolRangeExceeded indicates a meaning universe whose size reaches
	// the partial-after offset, which would make the token encoding ambiguous.
	ErrSymbolRangeExceeded = errors.New("symbol range exceeded")

	// ErrDuplicateMeaning indicates a meaning universe containing the same
	// meaning twice, which would break the symbol mapping bijectivity.
	ErrDuplicateMeaning = errors.New("duplicate meaning in universe")

	// ErrInvalidKeyFile indicates a key file with a bad magic number, an
	// unsupported version, or a symbol table that does not round-trip.
	ErrInvalidKeyFile = errors.New("invalid key file")

	// ErrKeyNotFound indicates a key file that does not exist in the store.
	ErrKeyNotFound = errors.New("key not found")
)
