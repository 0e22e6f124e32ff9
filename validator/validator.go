package validator

import (
	"regexp"
	"time"

	"labourlink/constants"
	"labourlink/errors"
	"labourlink/models"
)

// ValidateUser validates registration input
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number is required", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}

	if user.Role < constants.RoleAdmin || user.Role > constants.RoleLabour {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}

// ValidateLabourProfile validates a labour profile before it is written
func ValidateLabourProfile(profile *models.LabourProfile) error {
	if profile.DisplayName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Display name is required", nil)
	}

	if profile.SkillType != constants.SkillTypeSkilled && profile.SkillType != constants.SkillTypeUnskilled {
		return errors.NewAppError(errors.ErrCodeValidation, "Skill type must be skilled or unskilled", nil)
	}

	if profile.RatePerDay < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Day rate must not be negative", nil)
	}

	if profile.State == "" || profile.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "State and city are required", nil)
	}

	return nil
}

// ValidateContractorProfile validates a contractor profile
func ValidateContractorProfile(profile *models.ContractorProfile) error {
	if profile.DisplayName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Display name is required", nil)
	}

	if profile.CompanyName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Company name is required", nil)
	}

	if profile.State == "" || profile.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "State and city are required", nil)
	}

	return nil
}

// ValidateProject validates a project before creation
func ValidateProject(project *models.Project) error {
	if project.SiteName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Site name is required", nil)
	}

	if project.SkillRequired != constants.SkillTypeSkilled && project.SkillRequired != constants.SkillTypeUnskilled {
		return errors.NewAppError(errors.ErrCodeValidation, "Skill required must be skilled or unskilled", nil)
	}

	if project.TotalLabourNeeded <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Total labour needed must be positive", nil)
	}

	if project.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Salary must not be negative", nil)
	}

	if project.StartDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Start date is required", nil)
	}

	if project.EndDate != nil && project.EndDate.Before(project.StartDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "End date must be after start date", nil)
	}

	return nil
}

// ValidateAttendanceInput validates an attendance mark request
func ValidateAttendanceInput(date, status string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Date must be YYYY-MM-DD", err)
	}

	switch status {
	case constants.AttendanceStatusPresent, constants.AttendanceStatusAbsent, constants.AttendanceStatusHalfDay:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Attendance status must be present, absent or half_day", nil)
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// ValidateEmail checks an email address
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	return nil
}

// ValidatePhone checks a 10-digit phone number
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}
