package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	apperrors "labourlink/errors"
)

func TestApplicationForwardChain(t *testing.T) {
	for i := 0; i < len(applicationOrder)-1; i++ {
		from, to := applicationOrder[i], applicationOrder[i+1]
		assert.True(t, CanTransitionApplication(from, to), "%s -> %s", from, to)
	}
}

func TestApplicationSkippingStagesRejected(t *testing.T) {
	assert.False(t, CanTransitionApplication(
		constants.ApplicationStatusApplied, constants.ApplicationStatusVideoVerified))
	assert.False(t, CanTransitionApplication(
		constants.ApplicationStatusShortlisted, constants.ApplicationStatusAccepted))
	assert.False(t, CanTransitionApplication(
		constants.ApplicationStatusApplied, constants.ApplicationStatusBoardingConfirmed))
}

func TestApplicationBackwardMovesRejected(t *testing.T) {
	for i := 1; i < len(applicationOrder); i++ {
		from, to := applicationOrder[i], applicationOrder[i-1]
		assert.False(t, CanTransitionApplication(from, to), "%s -> %s", from, to)
	}
}

func TestApplicationTerminalReachableFromAnyStage(t *testing.T) {
	for _, from := range applicationOrder {
		assert.True(t, CanTransitionApplication(from, constants.ApplicationStatusRejected),
			"%s -> rejected", from)
		assert.True(t, CanTransitionApplication(from, constants.ApplicationStatusNoShow),
			"%s -> no_show", from)
	}
}

func TestApplicationTerminalStatesAreFinal(t *testing.T) {
	terminals := []string{constants.ApplicationStatusRejected, constants.ApplicationStatusNoShow}
	targets := append(applicationOrder, terminals...)

	for _, from := range terminals {
		for _, to := range targets {
			assert.False(t, CanTransitionApplication(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminalApplicationStatus(t *testing.T) {
	assert.True(t, IsTerminalApplicationStatus(constants.ApplicationStatusRejected))
	assert.True(t, IsTerminalApplicationStatus(constants.ApplicationStatusNoShow))
	assert.True(t, IsTerminalApplicationStatus(constants.ApplicationStatusBoardingConfirmed))
	assert.False(t, IsTerminalApplicationStatus(constants.ApplicationStatusAccepted))
}

func TestValidateApplicationTransitionErrorCodes(t *testing.T) {
	err := ValidateApplicationTransition(
		constants.ApplicationStatusRejected, constants.ApplicationStatusShortlisted)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidTransition))

	err = ValidateApplicationTransition("waitlisted", constants.ApplicationStatusShortlisted)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidStatus))
}
