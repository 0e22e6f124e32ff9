package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	apperrors "labourlink/errors"
)

func TestProfileTransitionMatrix(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.ProfileStatusPending, constants.ProfileStatusApproved, true},
		{constants.ProfileStatusPending, constants.ProfileStatusRevoked, true},
		{constants.ProfileStatusPending, constants.ProfileStatusSuspended, false},
		{constants.ProfileStatusApproved, constants.ProfileStatusSuspended, true},
		{constants.ProfileStatusApproved, constants.ProfileStatusPending, false},
		{constants.ProfileStatusApproved, constants.ProfileStatusRevoked, false},
		{constants.ProfileStatusSuspended, constants.ProfileStatusApproved, true},
		{constants.ProfileStatusSuspended, constants.ProfileStatusRevoked, false},
		{constants.ProfileStatusSuspended, constants.ProfileStatusPending, false},
		{constants.ProfileStatusRevoked, constants.ProfileStatusApproved, false},
		{constants.ProfileStatusRevoked, constants.ProfileStatusPending, false},
		{constants.ProfileStatusRevoked, constants.ProfileStatusSuspended, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionProfile(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestProfileSelfTransitionRejected(t *testing.T) {
	for from := range profileTransitions {
		assert.False(t, CanTransitionProfile(from, from), "%s -> %s", from, from)
	}
}

func TestValidateProfileTransitionErrorCode(t *testing.T) {
	err := ValidateProfileTransition(constants.ProfileStatusRevoked, constants.ProfileStatusApproved)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidTransition))
}

func TestValidateProfileTransitionUnknownStatus(t *testing.T) {
	err := ValidateProfileTransition("archived", constants.ProfileStatusApproved)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidStatus))
}

func TestSuspendReinstateRoundTrip(t *testing.T) {
	require.NoError(t, ValidateProfileTransition(constants.ProfileStatusApproved, constants.ProfileStatusSuspended))
	require.NoError(t, ValidateProfileTransition(constants.ProfileStatusSuspended, constants.ProfileStatusApproved))
}
