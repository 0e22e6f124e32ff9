package models

import (
	"labourlink/constants"
	"labourlink/errors"
)

// profileTransitions lists every legal profile status change. Anything not
// in this table is rejected; the status column never holds an arbitrary
// string.
var profileTransitions = map[string][]string{
	constants.ProfileStatusPending:   {constants.ProfileStatusApproved, constants.ProfileStatusRevoked},
	constants.ProfileStatusApproved:  {constants.ProfileStatusSuspended},
	constants.ProfileStatusSuspended: {constants.ProfileStatusApproved},
	constants.ProfileStatusRevoked:   {},
}

// IsProfileStatus reports whether s is a known profile status
func IsProfileStatus(s string) bool {
	_, ok := profileTransitions[s]
	return ok
}

// CanTransitionProfile reports whether from -> to is a legal profile move
func CanTransitionProfile(from, to string) bool {
	for _, next := range profileTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateProfileTransition returns an INVALID_TRANSITION error when
// from -> to is not in the table
func ValidateProfileTransition(from, to string) error {
	if !IsProfileStatus(from) || !IsProfileStatus(to) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "unknown profile status", nil)
	}
	if !CanTransitionProfile(from, to) {
		return errors.NewAppError(errors.ErrCodeInvalidTransition,
			"cannot move profile from "+from+" to "+to, errors.ErrInvalidTransition)
	}
	return nil
}
