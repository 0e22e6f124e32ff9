package services

import (
	"errors"

	"gorm.io/gorm"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
	"labourlink/services/logger"
)

// ApplicationService moves applications through the hiring pipeline. Every
// status change goes through the transition table; acceptance claims a
// position on the project, no-show feeds the reliability scorer.
type ApplicationService struct {
	db          *gorm.DB
	logger      logger.Logger
	reliability *ReliabilityService
}

type ApplicationServiceOptions struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Reliability *ReliabilityService
}

func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{
		db:          opts.DB,
		logger:      opts.Logger,
		reliability: opts.Reliability,
	}
}

// Apply creates an application for an approved labourer on an active project
func (s *ApplicationService) Apply(labourUserID, projectID uint) (*models.ProjectApplication, error) {
	var profile models.LabourProfile
	if err := s.db.Where("user_id = ?", labourUserID).First(&profile).Error; err != nil {
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
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "project not found", err)
		}
		return nil, err
	}
	if project.Status != constants.ProjectStatusActive {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			"project is not active", apperrors.ErrProjectNotActive)
	}

	var existing models.ProjectApplication
	if err := s.db.Where("project_id = ? AND labour_id = ?", projectID, labourUserID).
		First(&existing).Error; err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBDuplicate,
			"already applied to this project", apperrors.ErrApplicationExists)
	}

	application := models.ProjectApplication{
		ProjectID:        projectID,
		LabourID:         labourUserID,
		LabourName:       profile.DisplayName,
		LabourSkillType:  profile.SkillType,
		ReliabilityScore: profile.ReliabilityScore,
		Status:           constants.ApplicationStatusApplied,
	}
	if err := s.db.Create(&application).Error; err != nil {
		return nil, err
	}

	s.logger.Info("labour %d applied to project %d", labourUserID, projectID)
	return &application, nil
}

// Transition validates and applies a status change on an application.
// Accepting claims one of the project's positions; marking no_show records
// the reliability penalty. The status write, the position claim and the
// penalty commit together or not at all.
func (s *ApplicationService) Transition(applicationID uint, target string) (*models.ProjectApplication, error) {
	var application models.ProjectApplication

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&application, applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "application not found", err)
			}
			return err
		}

		if err := models.ValidateApplicationTransition(application.Status, target); err != nil {
			return err
		}

		if target == constants.ApplicationStatusAccepted {
			// Conditional increment: two concurrent accepts of the last
			// open slot cannot both pass the capacity check
			result := tx.Model(&models.Project{}).
				Where("id = ? AND assigned_labour_count < total_labour_needed", application.ProjectID).
				Update("assigned_labour_count", gorm.Expr("assigned_labour_count + 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.NewAppError(apperrors.ErrCodeProjectFull,
					"project has no open positions", apperrors.ErrProjectFull)
			}
		}

		if err := tx.Model(&application).Update("status", target).Error; err != nil {
			return err
		}

		if target == constants.ApplicationStatusNoShow {
			if _, err := s.reliability.recordNoShowTx(tx, application.LabourID, application.ProjectID, ""); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	application.Status = target
	s.logger.Info("application %d moved to %s", applicationID, target)
	return &application, nil
}

// ListByProject returns a project's applications, newest first
func (s *ApplicationService) ListByProject(projectID uint) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	if err := s.db.Where("project_id = ?", projectID).
		Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// ListByLabour returns a labourer's applications, newest first
func (s *ApplicationService) ListByLabour(labourUserID uint) ([]models.ProjectApplication, error) {
	var applications []models.ProjectApplication
	if err := s.db.Where("labour_id = ?", labourUserID).
		Order("applied_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
