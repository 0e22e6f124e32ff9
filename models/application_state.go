package models

import (
	"labourlink/constants"
	"labourlink/errors"
)

// applicationOrder is the forward hiring pipeline. A transition is legal only
// to the immediate next stage, or to a terminal status from any non-terminal
// stage.
var applicationOrder = []string{
	constants.ApplicationStatusApplied,
	constants.ApplicationStatusShortlisted,
	constants.ApplicationStatusVideoVerified,
	constants.ApplicationStatusOfferSent,
	constants.ApplicationStatusAccepted,
	constants.ApplicationStatusTicketIssued,
	constants.ApplicationStatusBoardingConfirmed,
}

var applicationTerminal = map[string]bool{
	constants.ApplicationStatusRejected: true,
	constants.ApplicationStatusNoShow:   true,
}

func applicationStage(status string) int {
	for i, s := range applicationOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// IsApplicationStatus reports whether s is a known application status
func IsApplicationStatus(s string) bool {
	return applicationStage(s) >= 0 || applicationTerminal[s]
}

// IsTerminalApplicationStatus reports whether s ends the pipeline
func IsTerminalApplicationStatus(s string) bool {
	return applicationTerminal[s] || s == constants.ApplicationStatusBoardingConfirmed
}

// CanTransitionApplication reports whether from -> to is a legal move
func CanTransitionApplication(from, to string) bool {
	if applicationTerminal[from] {
		return false
	}
	fromStage := applicationStage(from)
	if fromStage < 0 {
		return false
	}
	if applicationTerminal[to] {
		return true
	}
	toStage := applicationStage(to)
	return toStage == fromStage+1
}

// ValidateApplicationTransition returns an INVALID_TRANSITION error when
// from -> to is not allowed
func ValidateApplicationTransition(from, to string) error {
	if !IsApplicationStatus(from) || !IsApplicationStatus(to) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "unknown application status", nil)
	}
	if !CanTransitionApplication(from, to) {
		return errors.NewAppError(errors.ErrCodeInvalidTransition,
			"cannot move application from "+from+" to "+to, errors.ErrInvalidTransition)
	}
	return nil
}
