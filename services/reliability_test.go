package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyNoShowDecays(t *testing.T) {
	assert.Equal(t, 85, ApplyNoShow(100))
	assert.Equal(t, 70, ApplyNoShow(85))
}

func TestApplyNoShowClampsAtZero(t *testing.T) {
	assert.Equal(t, 0, ApplyNoShow(10))
	assert.Equal(t, 0, ApplyNoShow(0))
}

func TestApplyCompletionRecovers(t *testing.T) {
	assert.Equal(t, 86, ApplyCompletion(85))
}

func TestApplyCompletionCapsAtHundred(t *testing.T) {
	assert.Equal(t, 100, ApplyCompletion(100))
	assert.Equal(t, 100, ApplyCompletion(99))
}

func TestScoreStaysBounded(t *testing.T) {
	score := 100
	for i := 0; i < 20; i++ {
		score = ApplyNoShow(score)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
	for i := 0; i < 200; i++ {
		score = ApplyCompletion(score)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(0, 0))
	assert.Equal(t, 0.0, CompletionRate(5, 0))
	assert.Equal(t, 0.5, CompletionRate(1, 2))
	assert.Equal(t, 1.0, CompletionRate(3, 3))
}
