package analyzer

import (
	"fmt"
	"strings"
	"unicode"
)

// fallbackSuggestion is returned when no bullet line needs
// quantifying, including when the text has no bullets at all.
const fallbackSuggestion = "Include more action verbs and quantify achievements with numbers and percentages."

// Suggestions inspects the résumé's bullet lines and recommends
// quantifying each one that carries no number, in source order. A
// bullet is any line starting with '-', '*' or '•' after trimming.
func Suggestions(resumeText string) []string {
	suggestions := make([]string, 0)
	for _, line := range strings.Split(resumeText, "\n") {
		trimmed := strings.TrimSpace(line)
		if !isBullet(trimmed) {
			continue
		}
		if !strings.ContainsFunc(trimmed, unicode.IsDigit) {
			suggestions = append(suggestions, fmt.Sprintf("Consider quantifying this bullet: '%s'", trimmed))
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, fallbackSuggestion)
	}
	return suggestions
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•")
}
