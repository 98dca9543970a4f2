package analyzer

import "math"

// Score computes the ATS match between a résumé and a job
// description: the percentage of unique significant job-description
// tokens that also occur in the résumé. An empty filtered
// job-description set scores exactly 0. The percentage is rounded to
// two decimals, halves away from zero.
func Score(resumeText, jobDescription string) float64 {
	resumeSet := filterTokenSet(Tokenize(resumeText))
	jobSet := filterTokenSet(Tokenize(jobDescription))

	if len(jobSet) == 0 {
		return 0
	}

	matched := 0
	for tok := range jobSet {
		if resumeSet[tok] {
			matched++
		}
	}

	score := float64(matched) / float64(len(jobSet)) * 100
	return math.Round(score*100) / 100
}
