package token

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/bigraph/errs"
)

// Format renders a token stream in the wire format: comma-separated decimal
// integers with no surrounding whitespace. An empty stream renders as the
// empty string.
func Format(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(t.Wire()))
	}

	return sb.String()
}

// Parse reads a wire-format token stream.
//
// Segments are split on commas; blank segments and surrounding whitespace are
// ignored, matching the historical message file format.
//
// Returns:
//   - []Token: Parsed tokens in stream order (nil for an all-blank input)
//   - error: ErrMalformedTokenStream if any non-blank segment is not a
//     decimal integer
func Parse(s string) ([]Token, error) {
	var tokens []Token

	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		v, err := strconv.Atoi(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errs.ErrMalformedTokenStream, seg)
		}

		tokens = append(tokens, FromWire(v))
	}

	return tokens, nil
}

// WriteFile writes a token stream to a message file in the wire format.
func WriteFile(path string, tokens []Token) error {
	if err := os.WriteFile(path, []byte(Format(tokens)), 0o644); err != nil {
		return fmt.Errorf("write message file: %w", err)
	}

	return nil
}

// ReadFile reads and parses a message file in the wire format.
func ReadFile(path string) ([]Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message file: %w", err)
	}

	return Parse(string(data))
}
