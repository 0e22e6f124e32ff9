package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
	"labourlink/services/logger"
	"labourlink/services/notification"
)

// ApprovalFacade runs admin status changes on profiles. Approval of a labour
// profile assigns the labour ID and touches two tables; both writes commit
// in one transaction or not at all.
type ApprovalFacade struct {
	db           *gorm.DB
	logger       logger.Logger
	notification notification.Service
}

type ApprovalFacadeOptions struct {
	DB           *gorm.DB
	Logger       logger.Logger
	Notification notification.Service
}

func NewApprovalFacade(opts ApprovalFacadeOptions) *ApprovalFacade {
	return &ApprovalFacade{
		db:           opts.DB,
		logger:       opts.Logger,
		notification: opts.Notification,
	}
}

type ApprovalResult struct {
	UserID   uint    `json:"userId"`
	Role     int     `json:"role"`
	Status   string  `json:"status"`
	LabourID *string `json:"labourId,omitempty"`
}

// ApproveLabour moves a pending labour profile to approved and assigns its
// labour ID exactly once.
func (f *ApprovalFacade) ApproveLabour(userID uint) (*ApprovalResult, error) {
	var result *ApprovalResult

	err := f.db.Transaction(func(tx *gorm.DB) error {
		var profile models.LabourProfile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "labour profile not found", err)
			}
			return err
		}

		if err := models.ValidateProfileTransition(profile.Status, constants.ProfileStatusApproved); err != nil {
			return err
		}
		if profile.LabourID != nil {
			return apperrors.NewAppError(apperrors.ErrCodeAlreadyAssigned,
				"labour ID already assigned: "+*profile.LabourID, apperrors.ErrLabourIDAssigned)
		}

		labourID, err := NextLabourID(tx, time.Now().Year())
		if err != nil {
			return err
		}

		profile.Status = constants.ProfileStatusApproved
		profile.LabourID = &labourID
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("status", constants.ProfileStatusApproved).Error; err != nil {
			return err
		}

		result = &ApprovalResult{
			UserID:   userID,
			Role:     constants.RoleLabour,
			Status:   profile.Status,
			LabourID: profile.LabourID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("labour approved: user %d assigned %s", userID, *result.LabourID)
	f.notify(notification.ApprovalMessage(userID, *result.LabourID))
	return result, nil
}

// ApproveContractor moves a pending contractor profile to approved
func (f *ApprovalFacade) ApproveContractor(userID uint) (*ApprovalResult, error) {
	var result *ApprovalResult

	err := f.db.Transaction(func(tx *gorm.DB) error {
		var profile models.ContractorProfile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "contractor profile not found", err)
			}
			return err
		}

		if err := models.ValidateProfileTransition(profile.Status, constants.ProfileStatusApproved); err != nil {
			return err
		}

		profile.Status = constants.ProfileStatusApproved
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("status", constants.ProfileStatusApproved).Error; err != nil {
			return err
		}

		result = &ApprovalResult{
			UserID: userID,
			Role:   constants.RoleContractor,
			Status: profile.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("contractor approved: user %d", userID)
	return result, nil
}

// ChangeProfileStatus applies suspend/revoke/reinstate moves through the
// transition table, updating profile and user rows together.
func (f *ApprovalFacade) ChangeProfileStatus(userID uint, role int, target string) (*ApprovalResult, error) {
	if target == constants.ProfileStatusApproved {
		// Approval from pending goes through the assigning paths above;
		// this handles reinstatement from suspended as well
		switch role {
		case constants.RoleLabour:
			var profile models.LabourProfile
			if err := f.db.Where("user_id = ?", userID).First(&profile).Error; err == nil &&
				profile.Status == constants.ProfileStatusPending {
				return f.ApproveLabour(userID)
			}
		case constants.RoleContractor:
			var profile models.ContractorProfile
			if err := f.db.Where("user_id = ?", userID).First(&profile).Error; err == nil &&
				profile.Status == constants.ProfileStatusPending {
				return f.ApproveContractor(userID)
			}
		}
	}

	var result *ApprovalResult

	err := f.db.Transaction(func(tx *gorm.DB) error {
		var current string
		switch role {
		case constants.RoleLabour:
			var profile models.LabourProfile
			if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewAppError(apperrors.ErrCodeNotFound, "labour profile not found", err)
				}
				return err
			}
			current = profile.Status
			if err := models.ValidateProfileTransition(current, target); err != nil {
				return err
			}
			if err := tx.Model(&profile).Update("status", target).Error; err != nil {
				return err
			}
		case constants.RoleContractor:
			var profile models.ContractorProfile
			if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewAppError(apperrors.ErrCodeNotFound, "contractor profile not found", err)
				}
				return err
			}
			current = profile.Status
			if err := models.ValidateProfileTransition(current, target); err != nil {
				return err
			}
			if err := tx.Model(&profile).Update("status", target).Error; err != nil {
				return err
			}
		default:
			return apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "role has no profile", nil)
		}

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("status", target).Error; err != nil {
			return err
		}

		result = &ApprovalResult{UserID: userID, Role: role, Status: target}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.logger.Info("profile status changed: user %d role %d -> %s", userID, role, target)
	return result, nil
}

func (f *ApprovalFacade) notify(message string) {
	if f.notification == nil {
		return
	}
	if err := f.notification.SendMessage(message); err != nil {
		f.logger.Error("failed to send notification: %v", err)
	}
}
