package analyzer

// Stopwords are common English words excluded from frequency-based
// keyword selection and from score computation. Initialized once,
// never mutated.
var Stopwords = map[string]bool{
	"the": true, "and": true, "to": true, "of": true, "in": true,
	"a": true, "for": true, "on": true, "with": true, "as": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "it": true, "that": true, "this": true, "by": true,
	"at": true, "an": true, "from": true, "or": true, "we": true,
	"you": true, "your": true, "our": true, "their": true, "they": true,
	"i": true, "have": true, "has": true, "had": true, "will": true,
	"would": true, "can": true, "could": true, "should": true, "may": true,
	"if": true, "but": true, "about": true, "into": true, "up": true,
	"out": true, "than": true, "more": true, "so": true, "such": true,
}

// SkillDictionary lists known skill and competency phrases. Entries
// are matched by case-insensitive substring containment against the
// full text, not against tokens, so multi-word phrases and names with
// non-alphabetic characters ("c++", "c#") stay matchable.
var SkillDictionary = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "sql",
	"html", "css", "react", "angular", "node", "django", "flask",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "linux",
	"pandas", "numpy", "tensorflow", "pytorch", "machine learning",
	"data analysis", "communication", "leadership", "project management",
	"problem solving", "teamwork", "time management", "analysis",
}
