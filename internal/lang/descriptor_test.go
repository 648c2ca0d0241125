package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor_DelimiterCountsMatch(t *testing.T) {
	d := Descriptor{
		OpenPatterns:  []string{"\\(", "\\{"},
		ClosePatterns: []string{"\\)", "\\}"},
	}
	assert.True(t, d.delimiterCountsMatch())
}

func TestDescriptor_DelimiterCountsMismatch(t *testing.T) {
	d := Descriptor{
		OpenPatterns:  []string{"\\(", "\\{"},
		ClosePatterns: []string{"\\)"},
	}
	assert.False(t, d.delimiterCountsMatch())
}

func TestDescriptor_DelimiterCountsMatchWhenBothEmpty(t *testing.T) {
	var d Descriptor
	assert.True(t, d.delimiterCountsMatch())
}
