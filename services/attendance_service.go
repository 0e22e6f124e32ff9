package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
	"labourlink/services/logger"
)

// AttendanceService owns the attendance-to-earnings pipeline: one record per
// (labourer, project, day), earnings derived from the day rate, and one
// monthly_labour commission per labourer per calendar month.
type AttendanceService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AttendanceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	return &AttendanceService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

type MarkAttendanceInput struct {
	LabourUserID uint
	ProjectID    uint
	Date         string // YYYY-MM-DD
	Status       string
	MarkedBy     uint
}

// MarkAttendance creates or overwrites the attendance record for the given
// day and returns it. Re-marking the same day recomputes earnings in place
// and never duplicates the monthly commission.
func (s *AttendanceService) MarkAttendance(in MarkAttendanceInput) (*models.AttendanceRecord, error) {
	day, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "date must be YYYY-MM-DD", err)
	}

	var profile models.LabourProfile
	if err := s.db.Where("user_id = ?", in.LabourUserID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "labour profile not found", err)
		}
		return nil, err
	}
	if profile.Status != constants.ProfileStatusApproved {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			"labour profile is not approved", apperrors.ErrProfileNotActive)
	}

	var project models.Project
	if err := s.db.First(&project, in.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "project not found", err)
		}
		return nil, err
	}
	if project.Status != constants.ProjectStatusActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			"project is not active", apperrors.ErrProjectNotActive)
	}

	earnings, err := ComputeEarnings(in.Status, EffectiveRate(&profile))
	if err != nil {
		return nil, err
	}

	var record models.AttendanceRecord

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("labour_id = ? AND project_id = ? AND date = ?",
			in.LabourUserID, in.ProjectID, in.Date).First(&record)

		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			record = models.AttendanceRecord{
				LabourID:  in.LabourUserID,
				ProjectID: in.ProjectID,
				Date:      in.Date,
				Status:    in.Status,
				Earnings:  earnings,
				MarkedBy:  in.MarkedBy,
			}
			if err := createAttendanceRecord(tx, &record); err != nil {
				return err
			}
		} else {
			// Idempotent re-mark: overwrite status and earnings on the
			// existing row
			record.Status = in.Status
			record.Earnings = earnings
			record.MarkedBy = in.MarkedBy
			if err := tx.Save(&record).Error; err != nil {
				return err
			}
		}

		return s.ensureMonthlyCommission(tx, &project, profile.UserID, day)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("attendance marked: labour %d project %d date %s status %s earnings %d",
		in.LabourUserID, in.ProjectID, in.Date, in.Status, earnings)

	return &record, nil
}

// createAttendanceRecord inserts a first-time mark. Concurrent first marks
// for the same (labour, project, date) race the existence check above; the
// loser hits the unique index and gets the duplicate-attendance error.
func createAttendanceRecord(tx *gorm.DB, record *models.AttendanceRecord) error {
	if err := tx.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAppError(apperrors.ErrCodeDuplicateAttendance,
				"attendance already marked for this day", err)
		}
		return err
	}
	return nil
}

// ensureMonthlyCommission appends the flat monthly_labour commission for the
// labourer's calendar month if it does not exist yet.
func (s *AttendanceService) ensureMonthlyCommission(tx *gorm.DB, project *models.Project, labourUserID uint, day time.Time) error {
	month := day.Format("2006-01")

	var count int64
	if err := tx.Model(&models.CommissionRecord{}).
		Where("labour_id = ? AND type = ? AND month = ?",
			labourUserID, constants.CommissionTypeMonthlyLabour, month).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	commission := models.CommissionRecord{
		ProjectID:    project.ID,
		ContractorID: project.ContractorID,
		LabourID:     &labourUserID,
		Amount:       constants.MonthlyLabourCommissionAmount,
		Type:         constants.CommissionTypeMonthlyLabour,
		Month:        month,
	}
	return tx.Create(&commission).Error
}

// GetAttendanceByProject lists records for a project, optionally one day
func (s *AttendanceService) GetAttendanceByProject(projectID uint, date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	query := s.db.Where("project_id = ?", projectID)
	if date != "" {
		query = query.Where("date = ?", date)
	}
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetAttendanceByLabour lists a labourer's recent records
func (s *AttendanceService) GetAttendanceByLabour(labourUserID uint, limit int) ([]models.AttendanceRecord, error) {
	if limit <= 0 {
		limit = 30
	}
	var records []models.AttendanceRecord
	if err := s.db.Where("labour_id = ?", labourUserID).
		Order("date DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// MonthlyEarnings sums a labourer's earnings for a YYYY-MM month
func (s *AttendanceService) MonthlyEarnings(labourUserID uint, month string) (int, error) {
	var total int64
	err := s.db.Model(&models.AttendanceRecord{}).
		Where("labour_id = ? AND date LIKE ?", labourUserID, fmt.Sprintf("%s-%%", month)).
		Select("COALESCE(SUM(earnings), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

// TotalEarnings sums all of a labourer's earnings
func (s *AttendanceService) TotalEarnings(labourUserID uint) (int, error) {
	var total int64
	err := s.db.Model(&models.AttendanceRecord{}).
		Where("labour_id = ?", labourUserID).
		Select("COALESCE(SUM(earnings), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}
