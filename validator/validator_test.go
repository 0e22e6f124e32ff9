package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Email:       "ramesh@example.com",
		Password:    "secret123",
		PhoneNumber: "9876543210",
		Role:        constants.RoleLabour,
	}
	require.NoError(t, ValidateUser(&valid))

	noEmail := valid
	noEmail.Email = ""
	assert.True(t, apperrors.HasCode(ValidateUser(&noEmail), apperrors.ErrCodeRequiredField))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.True(t, apperrors.HasCode(ValidateUser(&badEmail), apperrors.ErrCodeInvalidEmail))

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.True(t, apperrors.HasCode(ValidateUser(&shortPassword), apperrors.ErrCodeValidation))

	badPhone := valid
	badPhone.PhoneNumber = "12345"
	assert.True(t, apperrors.HasCode(ValidateUser(&badPhone), apperrors.ErrCodeInvalidPhone))

	badRole := valid
	badRole.Role = 7
	assert.True(t, apperrors.HasCode(ValidateUser(&badRole), apperrors.ErrCodeInvalidRole))
}

func TestValidateLabourProfile(t *testing.T) {
	valid := models.LabourProfile{
		DisplayName: "Ramesh Kumar",
		SkillType:   constants.SkillTypeSkilled,
		RatePerDay:  800,
		State:       "Bihar",
		City:        "Patna",
	}
	require.NoError(t, ValidateLabourProfile(&valid))

	badSkill := valid
	badSkill.SkillType = "expert"
	assert.True(t, apperrors.HasCode(ValidateLabourProfile(&badSkill), apperrors.ErrCodeValidation))

	negativeRate := valid
	negativeRate.RatePerDay = -50
	assert.True(t, apperrors.HasCode(ValidateLabourProfile(&negativeRate), apperrors.ErrCodeInvalidAmount))

	noCity := valid
	noCity.City = ""
	assert.True(t, apperrors.HasCode(ValidateLabourProfile(&noCity), apperrors.ErrCodeRequiredField))
}

func TestValidateContractorProfile(t *testing.T) {
	valid := models.ContractorProfile{
		DisplayName: "Sharma Constructions",
		CompanyName: "Sharma Constructions Pvt Ltd",
		State:       "Maharashtra",
		City:        "Mumbai",
	}
	require.NoError(t, ValidateContractorProfile(&valid))

	noCompany := valid
	noCompany.CompanyName = ""
	assert.True(t, apperrors.HasCode(ValidateContractorProfile(&noCompany), apperrors.ErrCodeRequiredField))
}

func TestValidateProject(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	valid := models.Project{
		SiteName:          "Metro Line 4 Site B",
		SkillRequired:     constants.SkillTypeUnskilled,
		TotalLabourNeeded: 25,
		Salary:            600,
		StartDate:         start,
		EndDate:           &end,
	}
	require.NoError(t, ValidateProject(&valid))

	noLabour := valid
	noLabour.TotalLabourNeeded = 0
	assert.Error(t, ValidateProject(&noLabour))

	endBeforeStart := valid
	early := start.AddDate(0, 0, -1)
	endBeforeStart.EndDate = &early
	assert.True(t, apperrors.HasCode(ValidateProject(&endBeforeStart), apperrors.ErrCodeValidation))
}

func TestValidateAttendanceInput(t *testing.T) {
	require.NoError(t, ValidateAttendanceInput("2026-09-01", constants.AttendanceStatusPresent))
	require.NoError(t, ValidateAttendanceInput("2026-09-01", constants.AttendanceStatusHalfDay))

	err := ValidateAttendanceInput("01-09-2026", constants.AttendanceStatusPresent)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat))

	err = ValidateAttendanceInput("2026-09-01", "late")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidStatus))
}

func TestValidatePhone(t *testing.T) {
	require.NoError(t, ValidatePhone("9876543210"))
	assert.Error(t, ValidatePhone("98765"))
	assert.Error(t, ValidatePhone("98765432101"))
	assert.Error(t, ValidatePhone("98765abcde"))
}
