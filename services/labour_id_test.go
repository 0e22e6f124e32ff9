package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLabourID(t *testing.T) {
	assert.Equal(t, "LAB-2026-0001", FormatLabourID(2026, 1))
	assert.Equal(t, "LAB-2026-0042", FormatLabourID(2026, 42))
	assert.Equal(t, "LAB-2026-9999", FormatLabourID(2026, 9999))
}

func TestFormatLabourIDMatchesPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^LAB-\d{4}-\d{4}$`)
	for _, seq := range []int{1, 7, 123, 4567, 9999} {
		id := FormatLabourID(2026, seq)
		assert.True(t, pattern.MatchString(id), "unexpected format: %s", id)
	}
}
