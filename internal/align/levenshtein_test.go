package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, similarity("hello", "hello"))
}

func TestSimilarity_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
}

func TestSimilarity_OneEmpty(t *testing.T) {
	assert.Zero(t, similarity("", "hello"))
	assert.Zero(t, similarity("hello", ""))
}

func TestSimilarity_AboveThresholdForCloseComments(t *testing.T) {
	s := similarity("the quick brown fox", "the quick brown cat")
	assert.Greater(t, s, commentSimilarityThreshold)
}

func TestSimilarity_BelowThresholdForUnrelatedComments(t *testing.T) {
	s := similarity("the quick brown fox", "foo bar")
	assert.Less(t, s, commentSimilarityThreshold)
}
