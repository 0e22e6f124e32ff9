package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
)

func TestComputeEarningsPresent(t *testing.T) {
	earnings, err := ComputeEarnings(constants.AttendanceStatusPresent, 800)
	require.NoError(t, err)
	assert.Equal(t, 800, earnings)
}

func TestComputeEarningsHalfDayFloorsOddRates(t *testing.T) {
	earnings, err := ComputeEarnings(constants.AttendanceStatusHalfDay, 551)
	require.NoError(t, err)
	assert.Equal(t, 275, earnings)

	earnings, err = ComputeEarnings(constants.AttendanceStatusHalfDay, 800)
	require.NoError(t, err)
	assert.Equal(t, 400, earnings)
}

func TestComputeEarningsAbsent(t *testing.T) {
	earnings, err := ComputeEarnings(constants.AttendanceStatusAbsent, 800)
	require.NoError(t, err)
	assert.Equal(t, 0, earnings)
}

func TestComputeEarningsZeroRate(t *testing.T) {
	earnings, err := ComputeEarnings(constants.AttendanceStatusPresent, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, earnings)
}

func TestComputeEarningsNegativeRate(t *testing.T) {
	_, err := ComputeEarnings(constants.AttendanceStatusPresent, -100)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeArithmeticBound))
}

func TestComputeEarningsUnknownStatus(t *testing.T) {
	_, err := ComputeEarnings("on_leave", 800)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidStatus))
}

func TestEffectiveRateUsesProfileRate(t *testing.T) {
	profile := &models.LabourProfile{RatePerDay: 950, SkillType: constants.SkillTypeSkilled}
	assert.Equal(t, 950, EffectiveRate(profile))
}

func TestEffectiveRateDefaults(t *testing.T) {
	skilled := &models.LabourProfile{SkillType: constants.SkillTypeSkilled}
	assert.Equal(t, constants.DefaultRateSkilled, EffectiveRate(skilled))

	unskilled := &models.LabourProfile{SkillType: constants.SkillTypeUnskilled}
	assert.Equal(t, constants.DefaultRateUnskilled, EffectiveRate(unskilled))
}
