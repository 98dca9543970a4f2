package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyJobDescription(t *testing.T) {
	assert.Equal(t, 0.0, Score("any resume text", ""))
	assert.Equal(t, 0.0, Score("", ""))
}

func TestScoreJobDescriptionFiltersToEmpty(t *testing.T) {
	// all stopwords or too short: defined to score 0, not divide by zero
	assert.Equal(t, 0.0, Score("golang engineer", "the and to of it"))
}

func TestScoreIdenticalTexts(t *testing.T) {
	text := "senior golang engineer with kubernetes experience"
	assert.Equal(t, 100.0, Score(text, text))
}

func TestScoreZeroIntersection(t *testing.T) {
	assert.Equal(t, 0.0, Score("", "hiring golang engineers"))
}

func TestScorePartialOverlap(t *testing.T) {
	// job set {python, docker, kubernetes}; two match
	assert.InDelta(t, 66.67, Score("python docker golang", "python docker kubernetes"), 1e-9)
}

func TestScoreRoundsToTwoDecimals(t *testing.T) {
	// 1/3 of the job set matches
	assert.InDelta(t, 33.33, Score("alpha", "alpha beta gamma"), 1e-9)
}

func TestScoreDuplicatesCollapse(t *testing.T) {
	// repeated job tokens count once
	assert.Equal(t, 100.0, Score("python", "python python python"))
}

func TestScoreMonotonicity(t *testing.T) {
	resume := "python docker terraform"

	base := Score(resume, "python docker")
	withUnmatched := Score(resume, "python docker fortran cobol")
	assert.LessOrEqual(t, withUnmatched, base, "unmatched job tokens must not raise the score")

	withMatched := Score(resume+" fortran", "python docker fortran cobol")
	assert.GreaterOrEqual(t, withMatched, withUnmatched, "matching resume tokens must not lower the score")
}
