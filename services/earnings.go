package services

import (
	"fmt"

	"labourlink/constants"
	"labourlink/errors"
	"labourlink/models"
)

// ComputeEarnings derives the day's pay from an attendance status and a day
// rate. Half days floor the division; earnings are whole rupees.
func ComputeEarnings(status string, ratePerDay int) (int, error) {
	if ratePerDay < 0 {
		return 0, errors.NewAppError(errors.ErrCodeArithmeticBound,
			fmt.Sprintf("day rate must not be negative, got %d", ratePerDay), nil)
	}

	switch status {
	case constants.AttendanceStatusPresent:
		return ratePerDay, nil
	case constants.AttendanceStatusHalfDay:
		return ratePerDay / 2, nil
	case constants.AttendanceStatusAbsent:
		return 0, nil
	}

	return 0, errors.NewAppError(errors.ErrCodeInvalidStatus,
		"unknown attendance status: "+status, nil)
}

// EffectiveRate returns the profile's day rate, falling back to the
// skill-based default when none is set.
func EffectiveRate(profile *models.LabourProfile) int {
	if profile.RatePerDay > 0 {
		return profile.RatePerDay
	}
	if profile.SkillType == constants.SkillTypeSkilled {
		return constants.DefaultRateSkilled
	}
	return constants.DefaultRateUnskilled
}
