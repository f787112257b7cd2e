package codec

import "strings"

// SplitSentences splits text into sentence fragments on '.', '!' and '?'.
//
// The terminating punctuation character is retained at the end of each
// fragment, a trailing fragment without terminal punctuation is kept as-is,
// and fragments that are empty after trimming are dropped. Text without any
// sentence boundary comes back as a single sentence. Text that reduces to
// nothing yields no sentences at all.
func SplitSentences(text string) []string {
	var sentences []string

	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			body := strings.TrimSpace(text[start:i])
			if body != "" {
				sentences = append(sentences, body+string(text[i]))
			}
			start = i + 1
		}
	}

	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// SplitWords splits a sentence into whitespace-delimited words, each reduced
// to its alphanumeric characters.
//
// Punctuation inside a word is silently discarded; that is the codec's
// deliberate lossy preprocessing, not an error. A word consisting entirely
// of punctuation reduces to the empty string but keeps its slot, so the
// encoder still places one space marker between every pair of original word
// positions.
func SplitWords(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, len(fields))
	for i, f := range fields {
		words[i] = cleanWord(f)
	}

	return words
}

// cleanWord keeps only the alphanumeric characters of a word.
func cleanWord(word string) string {
	var sb strings.Builder
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
