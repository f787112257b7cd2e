package meaning

import (
	"fmt"
	"strings"

	"github.com/arloliu/bigraph/errs"
)

// Kind identifies which variant of the closed meaning universe a value holds.
type Kind uint8

const (
	KindBigram      Kind = 0x1 // KindBigram represents an ordered two-letter combination.
	KindDigit       Kind = 0x2 // KindDigit represents a positive numeral 0-9.
	KindNegDigit    Kind = 0x3 // KindNegDigit represents a negative numeral 0-9 (division operand).
	KindMulDiv      Kind = 0x4 // KindMulDiv represents the multiply/divide operator marker.
	KindSpecial     Kind = 0x5 // KindSpecial represents one of the reserved punctuation characters.
	KindSpaceMarker Kind = 0x6 // KindSpaceMarker represents a rare bigram repurposed as a word separator.
)

func (k Kind) String() string {
	switch k {
	case KindBigram:
		return "Bigram"
	case KindDigit:
		return "Digit"
	case KindNegDigit:
		return "NegDigit"
	case KindMulDiv:
		return "MulDiv"
	case KindSpecial:
		return "Special"
	case KindSpaceMarker:
		return "SpaceMarker"
	default:
		return "Unknown"
	}
}

// Meaning is one semantic value a symbol index can stand for.
//
// Meaning is a small comparable value type: it is safe to copy, compare with
// ==, and use as a map key. The zero Meaning is invalid and never appears in
// the universe.
type Meaning struct {
	kind Kind
	a    byte // first bigram letter, digit value, or punctuation character
	b    byte // second bigram letter (bigram and space-marker kinds only)
}

// Bigram creates a bigram meaning from two uppercase letters.
//
// Returns:
//   - Meaning: Bigram meaning for the two letters
//   - error: ErrUnknownMeaning if either byte is not an uppercase A-Z letter
func Bigram(first, second byte) (Meaning, error) {
	if !isLetter(first) || !isLetter(second) {
		return Meaning{}, fmt.Errorf("%w: %q is not a bigram of uppercase letters", errs.ErrUnknownMeaning, string([]byte{first, second}))
	}

	return Meaning{kind: KindBigram, a: first, b: second}, nil
}

// Digit creates a positive digit meaning for d in [0, 9].
func Digit(d int) (Meaning, error) {
	if d < 0 || d > 9 {
		return Meaning{}, fmt.Errorf("%w: digit %d out of range", errs.ErrUnknownMeaning, d)
	}

	return Meaning{kind: KindDigit, a: byte(d)}, nil
}

// NegDigit creates a negative digit meaning for d in [0, 9].
//
// Negative digits encode the second operand of a division; the sign alone
// conveys the operator on decode.
func NegDigit(d int) (Meaning, error) {
	if d < 0 || d > 9 {
		return Meaning{}, fmt.Errorf("%w: negative digit %d out of range", errs.ErrUnknownMeaning, d)
	}

	return Meaning{kind: KindNegDigit, a: byte(d)}, nil
}

// MulDiv returns the single multiply/divide operator meaning.
func MulDiv() Meaning {
	return Meaning{kind: KindMulDiv}
}

// Special creates a punctuation meaning for one of the reserved special
// characters (see SpecialChars).
func Special(c byte) (Meaning, error) {
	if strings.IndexByte(SpecialChars, c) < 0 {
		return Meaning{}, fmt.Errorf("%w: %q is not a reserved special character", errs.ErrUnknownMeaning, string(c))
	}

	return Meaning{kind: KindSpecial, a: c}, nil
}

// SpaceMarkerAt returns the space-marker meaning at rotation position i.
//
// The position wraps modulo SpaceMarkerCount, so callers may pass a raw
// monotonically increasing rotation counter.
func SpaceMarkerAt(i int) Meaning {
	m := SpaceMarkers[((i%SpaceMarkerCount)+SpaceMarkerCount)%SpaceMarkerCount]

	return Meaning{kind: KindSpaceMarker, a: m[0], b: m[1]}
}

// Kind returns the variant tag of the meaning.
func (m Meaning) Kind() Kind {
	return m.kind
}

// IsBigram reports whether the meaning is a plain bigram.
func (m Meaning) IsBigram() bool {
	return m.kind == KindBigram
}

// First returns the first letter of a bigram or space-marker meaning.
// It returns 0 for other kinds.
func (m Meaning) First() byte {
	if m.kind == KindBigram || m.kind == KindSpaceMarker {
		return m.a
	}

	return 0
}

// Second returns the second letter of a bigram or space-marker meaning.
// It returns 0 for other kinds.
func (m Meaning) Second() byte {
	if m.kind == KindBigram || m.kind == KindSpaceMarker {
		return m.b
	}

	return 0
}

// Digit returns the numeral value of a digit or negative-digit meaning.
// It returns -1 for other kinds.
func (m Meaning) Digit() int {
	if m.kind == KindDigit || m.kind == KindNegDigit {
		return int(m.a)
	}

	return -1
}

// Char returns the punctuation character of a special meaning.
// It returns 0 for other kinds.
func (m Meaning) Char() byte {
	if m.kind == KindSpecial {
		return m.a
	}

	return 0
}

// String returns a human-readable description for logs and diagnostics.
// For the stable persistence form, use Code.
func (m Meaning) String() string {
	switch m.kind {
	case KindBigram:
		return fmt.Sprintf("Bigram(%c%c)", m.a, m.b)
	case KindDigit:
		return fmt.Sprintf("Digit(%d)", m.a)
	case KindNegDigit:
		return fmt.Sprintf("NegDigit(%d)", m.a)
	case KindMulDiv:
		return "MulDiv"
	case KindSpecial:
		return fmt.Sprintf("Special(%c)", m.a)
	case KindSpaceMarker:
		return fmt.Sprintf("SpaceMarker(%c%c)", m.a, m.b)
	default:
		return "Unknown"
	}
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
