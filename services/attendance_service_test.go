package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
)

func newAttendanceFixture(t *testing.T) (*AttendanceService, *models.Project) {
	db := newTestDB(t)
	svc := NewAttendanceService(AttendanceServiceOptions{DB: db, Logger: newTestLogger()})

	require.NoError(t, db.Create(&models.LabourProfile{
		UserID:      7,
		DisplayName: "Ramesh Kumar",
		SkillType:   constants.SkillTypeSkilled,
		RatePerDay:  800,
		Status:      constants.ProfileStatusApproved,
	}).Error)

	project := &models.Project{
		ContractorID:      2,
		SiteName:          "Riverside Towers",
		SkillRequired:     constants.SkillTypeSkilled,
		TotalLabourNeeded: 5,
		Salary:            800,
		Status:            constants.ProjectStatusActive,
		StartDate:         time.Now(),
	}
	require.NoError(t, db.Create(project).Error)
	return svc, project
}

func TestMarkAttendanceRemarkOverwritesInPlace(t *testing.T) {
	svc, project := newAttendanceFixture(t)

	in := MarkAttendanceInput{
		LabourUserID: 7,
		ProjectID:    project.ID,
		Date:         "2026-08-12",
		Status:       constants.AttendanceStatusPresent,
		MarkedBy:     2,
	}
	first, err := svc.MarkAttendance(in)
	require.NoError(t, err)
	assert.Equal(t, 800, first.Earnings)

	in.Status = constants.AttendanceStatusHalfDay
	second, err := svc.MarkAttendance(in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 400, second.Earnings)

	var records int64
	svc.db.Model(&models.AttendanceRecord{}).Count(&records)
	assert.Equal(t, int64(1), records)

	// One flat commission per labourer per month, however many marks
	var commissions int64
	svc.db.Model(&models.CommissionRecord{}).
		Where("type = ? AND month = ?", constants.CommissionTypeMonthlyLabour, "2026-08").
		Count(&commissions)
	assert.Equal(t, int64(1), commissions)
}

func TestCreateAttendanceRecordTranslatesUniqueViolation(t *testing.T) {
	svc, project := newAttendanceFixture(t)

	first := models.AttendanceRecord{
		LabourID: 7, ProjectID: project.ID, Date: "2026-08-12",
		Status: constants.AttendanceStatusPresent, Earnings: 800, MarkedBy: 2,
	}
	require.NoError(t, createAttendanceRecord(svc.db, &first))

	// Same (labour, project, date): the unique index is the backstop when
	// two first-time marks race past the existence check
	duplicate := models.AttendanceRecord{
		LabourID: 7, ProjectID: project.ID, Date: "2026-08-12",
		Status: constants.AttendanceStatusPresent, Earnings: 800, MarkedBy: 2,
	}
	err := createAttendanceRecord(svc.db, &duplicate)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDuplicateAttendance))

	var records int64
	svc.db.Model(&models.AttendanceRecord{}).Count(&records)
	assert.Equal(t, int64(1), records)
}
