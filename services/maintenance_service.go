package services

import (
	"fmt"

	"github.com/olahol/melody"
	"gorm.io/gorm"

	"labourlink/constants"
	"labourlink/models"
	"labourlink/services/logger"
)

// MaintenanceService backs the scheduled jobs: the nightly attendance-rate
// refresh and the monthly commission sweep.
type MaintenanceService struct {
	db          *gorm.DB
	logger      logger.Logger
	reliability *ReliabilityService
}

type MaintenanceServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Reliability *ReliabilityService
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	return &MaintenanceService{
		db:          opts.DB,
		logger:      opts.Logger,
		reliability: opts.Reliability,
	}
}

// RefreshAttendanceRates recomputes the trailing attendance rate for every
// labourer that has a reliability snapshot
func (s *MaintenanceService) RefreshAttendanceRates(m *melody.Melody) error {
	var labourIDs []uint
	if err := s.db.Model(&models.ReliabilityScore{}).
		Pluck("labour_id", &labourIDs).Error; err != nil {
		return err
	}

	refreshed := 0
	for _, id := range labourIDs {
		if err := s.reliability.RefreshAttendanceRate(id); err != nil {
			s.logger.Error("failed to refresh attendance rate for labour %d: %v", id, err)
			continue
		}
		refreshed++
	}

	s.logger.Info("attendance rates refreshed for %d of %d labourers", refreshed, len(labourIDs))

	if m != nil {
		m.Broadcast([]byte(fmt.Sprintf("Attendance rates refreshed for %d labourers.", refreshed)))
	}
	return nil
}

// SweepMonthlyCommissions backfills the monthly_labour commission for every
// labourer who worked during the month but has no commission row yet. The
// per-mark guard normally writes these rows; the sweep catches anything it
// missed.
func (s *MaintenanceService) SweepMonthlyCommissions(month string) error {
	type workedRow struct {
		LabourID  uint
		ProjectID uint
	}

	var worked []workedRow
	if err := s.db.Model(&models.AttendanceRecord{}).
		Select("labour_id, MIN(project_id) AS project_id").
		Where("date LIKE ?", fmt.Sprintf("%s-%%", month)).
		Group("labour_id").
		Scan(&worked).Error; err != nil {
		return err
	}

	created := 0
	for _, row := range worked {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.CommissionRecord{}).
				Where("labour_id = ? AND type = ? AND month = ?",
					row.LabourID, constants.CommissionTypeMonthlyLabour, month).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return nil
			}

			var project models.Project
			if err := tx.First(&project, row.ProjectID).Error; err != nil {
				return err
			}

			labourID := row.LabourID
			commission := models.CommissionRecord{
				ProjectID:    project.ID,
				ContractorID: project.ContractorID,
				LabourID:     &labourID,
				Amount:       constants.MonthlyLabourCommissionAmount,
				Type:         constants.CommissionTypeMonthlyLabour,
				Month:        month,
			}
			if err := tx.Create(&commission).Error; err != nil {
				return err
			}
			created++
			return nil
		})
		if err != nil {
			s.logger.Error("commission sweep failed for labour %d month %s: %v", row.LabourID, month, err)
		}
	}

	s.logger.Info("commission sweep for %s created %d rows", month, created)
	return nil
}
