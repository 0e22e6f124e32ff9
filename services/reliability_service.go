package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"labourlink/constants"
	apperrors "labourlink/errors"
	"labourlink/models"
	"labourlink/services/logger"
)

// ApplyNoShow decays a reliability score by the fixed penalty, clamped at 0
func ApplyNoShow(score int) int {
	score -= constants.ReliabilityNoShowPenalty
	if score < 0 {
		return 0
	}
	return score
}

// ApplyCompletion recovers a reliability score by the fixed bonus, capped
// at 100
func ApplyCompletion(score int) int {
	score += constants.ReliabilityCompletionBonus
	if score > 100 {
		return 100
	}
	return score
}

// CompletionRate is completed/total, 0 when there are no projects yet
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// ReliabilityService maintains the per-labourer reliability snapshot and
// mirrors the score onto the labour profile.
type ReliabilityService struct {
	db     *gorm.DB
	logger logger.Logger
}

type ReliabilityServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReliabilityService(opts ReliabilityServiceOptions) *ReliabilityService {
	return &ReliabilityService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

func (s *ReliabilityService) loadOrInit(tx *gorm.DB, labourUserID uint) (*models.ReliabilityScore, error) {
	var score models.ReliabilityScore
	err := tx.Where("labour_id = ?", labourUserID).First(&score).Error
	if err == nil {
		return &score, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	score = models.ReliabilityScore{
		LabourID: labourUserID,
		Score:    constants.ReliabilityInitialScore,
	}
	if err := tx.Create(&score).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

// RecordCompletion registers a finished project without a no-show: recovery
// bonus, counters, and rates, in one transaction.
func (s *ReliabilityService) RecordCompletion(labourUserID, projectID uint) (*models.ReliabilityScore, error) {
	var updated *models.ReliabilityScore

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = s.recordCompletionTx(tx, labourUserID, projectID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("completion recorded: labour %d project %d score %d", labourUserID, projectID, updated.Score)
	return updated, nil
}

// recordCompletionTx applies the completion credit inside the caller's
// transaction, so the status change it accompanies commits with it or not
// at all.
func (s *ReliabilityService) recordCompletionTx(tx *gorm.DB, labourUserID, projectID uint) (*models.ReliabilityScore, error) {
	score, err := s.loadOrInit(tx, labourUserID)
	if err != nil {
		return nil, err
	}

	score.TotalProjects++
	score.CompletedProjects++
	score.Score = ApplyCompletion(score.Score)
	score.CompletionRate = CompletionRate(score.CompletedProjects, score.TotalProjects)

	rate, err := s.attendanceRate(tx, labourUserID)
	if err != nil {
		return nil, err
	}
	score.AttendanceRate = rate

	if err := tx.Save(score).Error; err != nil {
		return nil, err
	}
	if err := s.mirrorToProfile(tx, labourUserID, score); err != nil {
		return nil, err
	}
	return score, nil
}

// RecordNoShow registers a no-show event: decay, counters, rates, and a
// NoShowRecord row, in one transaction.
func (s *ReliabilityService) RecordNoShow(labourUserID, projectID uint, reason string) (*models.ReliabilityScore, error) {
	var updated *models.ReliabilityScore

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = s.recordNoShowTx(tx, labourUserID, projectID, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("no-show recorded: labour %d project %d score %d", labourUserID, projectID, updated.Score)
	return updated, nil
}

// recordNoShowTx applies the no-show penalty inside the caller's
// transaction.
func (s *ReliabilityService) recordNoShowTx(tx *gorm.DB, labourUserID, projectID uint, reason string) (*models.ReliabilityScore, error) {
	score, err := s.loadOrInit(tx, labourUserID)
	if err != nil {
		return nil, err
	}

	score.TotalProjects++
	score.NoShowCount++
	score.Score = ApplyNoShow(score.Score)
	score.CompletionRate = CompletionRate(score.CompletedProjects, score.TotalProjects)

	rate, err := s.attendanceRate(tx, labourUserID)
	if err != nil {
		return nil, err
	}
	score.AttendanceRate = rate

	if err := tx.Save(score).Error; err != nil {
		return nil, err
	}

	noShow := models.NoShowRecord{
		LabourID:  labourUserID,
		ProjectID: projectID,
		Reason:    reason,
	}
	if err := tx.Create(&noShow).Error; err != nil {
		return nil, err
	}

	if err := s.mirrorToProfile(tx, labourUserID, score); err != nil {
		return nil, err
	}
	return score, nil
}

// attendanceRate is present days over marked days in the trailing window
func (s *ReliabilityService) attendanceRate(tx *gorm.DB, labourUserID uint) (float64, error) {
	since := time.Now().AddDate(0, 0, -constants.ReliabilityAttendanceWindow).Format("2006-01-02")

	var total, present int64
	if err := tx.Model(&models.AttendanceRecord{}).
		Where("labour_id = ? AND date >= ?", labourUserID, since).
		Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	if err := tx.Model(&models.AttendanceRecord{}).
		Where("labour_id = ? AND date >= ? AND status = ?",
			labourUserID, since, constants.AttendanceStatusPresent).
		Count(&present).Error; err != nil {
		return 0, err
	}
	return float64(present) / float64(total), nil
}

// RefreshAttendanceRate recomputes a labourer's windowed attendance rate.
// Used by the nightly job.
func (s *ReliabilityService) RefreshAttendanceRate(labourUserID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		score, err := s.loadOrInit(tx, labourUserID)
		if err != nil {
			return err
		}
		rate, err := s.attendanceRate(tx, labourUserID)
		if err != nil {
			return err
		}
		score.AttendanceRate = rate
		return tx.Save(score).Error
	})
}

// GetScore returns the current snapshot for a labourer
func (s *ReliabilityService) GetScore(labourUserID uint) (*models.ReliabilityScore, error) {
	var score models.ReliabilityScore
	if err := s.db.Where("labour_id = ?", labourUserID).First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "reliability score not found", err)
		}
		return nil, err
	}
	return &score, nil
}

func (s *ReliabilityService) mirrorToProfile(tx *gorm.DB, labourUserID uint, score *models.ReliabilityScore) error {
	return tx.Model(&models.LabourProfile{}).
		Where("user_id = ?", labourUserID).
		Updates(map[string]interface{}{
			"reliability_score":        score.Score,
			"total_projects_completed": score.CompletedProjects,
			"total_no_shows":           score.NoShowCount,
		}).Error
}
