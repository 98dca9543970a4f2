package analyzer

import "strings"

// Tokenize lowercases text and splits it into maximal runs of ASCII
// letters. Every other character is a separator and is discarded, so
// "C++" tokenizes to ["c"] and "2024" produces nothing.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// significant reports whether a token survives filtering: longer than
// two characters and not a stopword.
func significant(tok string) bool {
	return len(tok) > 2 && !Stopwords[tok]
}

// filterTokenSet collapses tokens into a set, keeping only the
// significant ones.
func filterTokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if significant(tok) {
			set[tok] = true
		}
	}
	return set
}
