package services

import (
	"errors"

	"gorm.io/gorm"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
	"labourlink/services/logger"
)

// ProjectService owns project lifecycle and the flat project commission
type ProjectService struct {
	db          *gorm.DB
	logger      logger.Logger
	reliability *ReliabilityService
}

type ProjectServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Reliability *ReliabilityService
}

func NewProjectService(opts ProjectServiceOptions) *ProjectService {
	return &ProjectService{
		db:          opts.DB,
		logger:      opts.Logger,
		reliability: opts.Reliability,
	}
}

// Create persists a project together with its one-off project commission
func (s *ProjectService) Create(project *models.Project) error {
	if err := project.ValidateStatus(); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, err.Error(), err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.CommissionRecord{}).
			Where("project_id = ? AND type = ?", project.ID, constants.CommissionTypeProject).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		commission := models.CommissionRecord{
			ProjectID:    project.ID,
			ContractorID: project.ContractorID,
			Amount:       constants.ProjectCommissionAmount,
			Type:         constants.CommissionTypeProject,
		}
		return tx.Create(&commission).Error
	})
}

// GetByID loads a project
func (s *ProjectService) GetByID(projectID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "project not found", err)
		}
		return nil, err
	}
	return &project, nil
}

// Complete closes an active project and credits a completion to every
// labourer whose application reached boarding_confirmed. The status change
// and the credits commit in one transaction.
func (s *ProjectService) Complete(projectID uint) error {
	var boarded []models.ProjectApplication

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "project not found", err)
			}
			return err
		}
		if project.Status != constants.ProjectStatusActive {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
				"only active projects can be completed", apperrors.ErrInvalidTransition)
		}

		if err := tx.Model(&project).Update("status", constants.ProjectStatusCompleted).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ? AND status = ?",
			projectID, constants.ApplicationStatusBoardingConfirmed).
			Find(&boarded).Error; err != nil {
			return err
		}

		for _, app := range boarded {
			if _, err := s.reliability.recordCompletionTx(tx, app.LabourID, projectID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("project %d completed, %d labourers credited", projectID, len(boarded))
	return nil
}

// Cancel moves an active or draft project to cancelled
func (s *ProjectService) Cancel(projectID uint) error {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "project not found", err)
		}
		return err
	}
	if project.Status != constants.ProjectStatusActive && project.Status != constants.ProjectStatusDraft {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
			"only active or draft projects can be cancelled", apperrors.ErrInvalidTransition)
	}
	return s.db.Model(&project).Update("status", constants.ProjectStatusCancelled).Error
}

// Publish moves a draft project to active
func (s *ProjectService) Publish(projectID uint) error {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "project not found", err)
		}
		return err
	}
	if project.Status != constants.ProjectStatusDraft {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
			"only draft projects can be published", apperrors.ErrInvalidTransition)
	}
	return s.db.Model(&project).Update("status", constants.ProjectStatusActive).Error
}
