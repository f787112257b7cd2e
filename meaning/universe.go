package meaning

import "fmt"

// Letters enumerates the uppercase alphabet in the canonical order used for
// bigram enumeration and rotation positions.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SpecialChars enumerates the reserved punctuation characters, in the
// canonical universe order.
const SpecialChars = "!@#$%^&*()=<>?"

// SyntheticCompanion is the letter appended when an odd-length word's final
// letter has no earlier occurrence to borrow from: the encoder emits the
// bigram <letter>A with a partial-before marker.
const SyntheticCompanion byte = 'A'

// SpaceMarkers lists the rare bigrams repurposed as word separators.
// The encoder rotates through them in this order; two consecutive markers
// denote a sentence boundary.
var SpaceMarkers = [...]string{"JQ", "QG", "QK", "QY", "QZ", "WQ", "WZ"}

const (
	// BigramCount is the number of two-letter combinations AA-ZZ.
	BigramCount = 26 * 26

	// DigitCount is the number of numerals per sign.
	DigitCount = 10

	// SpaceMarkerCount is the number of space-marker rotation positions.
	SpaceMarkerCount = len(SpaceMarkers)

	// SpecialCount is the number of reserved punctuation characters.
	SpecialCount = len(SpecialChars)

	// TotalSymbols is the size of the closed meaning universe:
	// 676 bigrams + 10 digits + 10 negative digits + 1 operator marker +
	// 14 specials + 7 space markers.
	TotalSymbols = BigramCount + 2*DigitCount + 1 + SpecialCount + SpaceMarkerCount
)

// Universe returns the full meaning universe in its canonical deterministic
// order: bigrams AA..ZZ (first letter outermost), digits 0-9, negative digits
// 0-9, the operator marker, the special characters, then the space markers.
//
// Every call returns a fresh slice; the order never changes between calls or
// processes. Key generation shuffles a copy of this slice, so the canonical
// order is load-bearing for key determinism.
func Universe() []Meaning {
	universe := make([]Meaning, 0, TotalSymbols)

	for i := 0; i < len(Letters); i++ {
		for j := 0; j < len(Letters); j++ {
			universe = append(universe, Meaning{kind: KindBigram, a: Letters[i], b: Letters[j]})
		}
	}

	for d := 0; d < DigitCount; d++ {
		universe = append(universe, Meaning{kind: KindDigit, a: byte(d)})
	}
	for d := 0; d < DigitCount; d++ {
		universe = append(universe, Meaning{kind: KindNegDigit, a: byte(d)})
	}

	universe = append(universe, Meaning{kind: KindMulDiv})

	for i := 0; i < len(SpecialChars); i++ {
		universe = append(universe, Meaning{kind: KindSpecial, a: SpecialChars[i]})
	}

	for i := 0; i < SpaceMarkerCount; i++ {
		m := SpaceMarkers[i]
		universe = append(universe, Meaning{kind: KindSpaceMarker, a: m[0], b: m[1]})
	}

	return universe
}

// Code returns the stable persistence form of the meaning, used in key files.
//
// The form is compatible with the historical key format: bigrams are the two
// raw letters, other kinds carry a textual prefix (NUM_, NUM_NEG_, SPECIAL_,
// SPACE_, or the literal MULDIV).
func (m Meaning) Code() string {
	switch m.kind {
	case KindBigram:
		return string([]byte{m.a, m.b})
	case KindDigit:
		return fmt.Sprintf("NUM_%d", m.a)
	case KindNegDigit:
		return fmt.Sprintf("NUM_NEG_%d", m.a)
	case KindMulDiv:
		return "MULDIV"
	case KindSpecial:
		return "SPECIAL_" + string(m.a)
	case KindSpaceMarker:
		return "SPACE_" + string([]byte{m.a, m.b})
	default:
		return ""
	}
}

// Parse converts a persistence code produced by Code back into a Meaning.
func Parse(code string) (Meaning, error) {
	switch {
	case code == "MULDIV":
		return MulDiv(), nil
	case len(code) == 2:
		return Bigram(code[0], code[1])
	case len(code) == 5 && code[:4] == "NUM_":
		return Digit(int(code[4] - '0'))
	case len(code) == 9 && code[:8] == "NUM_NEG_":
		return NegDigit(int(code[8] - '0'))
	case len(code) == 9 && code[:8] == "SPECIAL_":
		return Special(code[8])
	case len(code) == 8 && code[:6] == "SPACE_":
		for i, m := range SpaceMarkers {
			if m == code[6:] {
				return SpaceMarkerAt(i), nil
			}
		}
	}

	return Meaning{}, fmt.Errorf("invalid meaning code: %q", code)
}
