// Package analyzer implements the résumé analysis pipeline: document
// text extraction, keyword extraction, ATS match scoring and
// bullet-point suggestions. Every stage is a pure function over its
// inputs plus the static dictionaries; no stage returns an error, so
// callers never need pipeline-specific failure handling.
package analyzer

// DefaultTopN is the number of frequency-ranked tokens merged into
// the keyword set.
const DefaultTopN = 10

// Result is the outcome of one résumé analysis.
type Result struct {
	Keywords    []string `json:"keywords"`
	ATSScore    float64  `json:"ats_score"`
	Suggestions []string `json:"suggestions"`
}

// Analyze runs the full pipeline over one document and one job
// description. Identical inputs always yield identical results.
func Analyze(data []byte, filename, jobDescription string) Result {
	text := Extract(data, filename)
	return Result{
		Keywords:    ExtractKeywords(text, DefaultTopN),
		ATSScore:    Score(text, jobDescription),
		Suggestions: Suggestions(text),
	}
}
