package analyzer

import (
	"sort"
	"strings"
)

// ExtractKeywords derives the keyword set for a résumé text. Skill
// dictionary entries found anywhere in the lowercased text are added
// verbatim, then the topN most frequent significant tokens are merged
// in. Ties in frequency go to the token seen first. The result is
// deduplicated and sorted ascending; topN == 0 disables the
// frequency-ranked half entirely.
func ExtractKeywords(text string, topN int) []string {
	found := make(map[string]bool)

	lower := strings.ToLower(text)
	for _, skill := range SkillDictionary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found[skill] = true
		}
	}

	// Frequency ranking. Encounter order is kept alongside the counts
	// so a stable sort resolves ties first-seen-wins.
	counts := make(map[string]int)
	var order []string
	for _, tok := range Tokenize(text) {
		if !significant(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if topN < 0 {
		topN = 0
	}
	if topN < len(order) {
		order = order[:topN]
	}
	for _, tok := range order {
		found[tok] = true
	}

	keywords := make([]string, 0, len(found))
	for kw := range found {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}
