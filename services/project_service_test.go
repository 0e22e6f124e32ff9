package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	"labourlink/models"
)

func newProjectFixture(t *testing.T) (*ProjectService, *models.Project) {
	db := newTestDB(t)
	reliability := NewReliabilityService(ReliabilityServiceOptions{DB: db, Logger: newTestLogger()})
	projects := NewProjectService(ProjectServiceOptions{DB: db, Logger: newTestLogger(), Reliability: reliability})

	project := &models.Project{
		ContractorID:      1,
		SiteName:          "Metro Line Extension",
		SkillRequired:     constants.SkillTypeSkilled,
		TotalLabourNeeded: 2,
		Salary:            800,
		Status:            constants.ProjectStatusActive,
		StartDate:         time.Now(),
	}
	require.NoError(t, db.Create(project).Error)
	return projects, project
}

func TestCompleteCreditsBoardedLabourers(t *testing.T) {
	projects, project := newProjectFixture(t)
	db := projects.db

	require.NoError(t, db.Create(&models.LabourProfile{
		UserID: 7, DisplayName: "Ramesh Kumar", SkillType: constants.SkillTypeSkilled,
		Status: constants.ProfileStatusApproved,
	}).Error)

	boarded := models.ProjectApplication{
		ProjectID: project.ID, LabourID: 7, Status: constants.ApplicationStatusBoardingConfirmed,
	}
	rejected := models.ProjectApplication{
		ProjectID: project.ID, LabourID: 8, Status: constants.ApplicationStatusRejected,
	}
	require.NoError(t, db.Create(&boarded).Error)
	require.NoError(t, db.Create(&rejected).Error)

	require.NoError(t, projects.Complete(project.ID))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, constants.ProjectStatusCompleted, reloaded.Status)

	var score models.ReliabilityScore
	require.NoError(t, db.Where("labour_id = ?", uint(7)).First(&score).Error)
	assert.Equal(t, 1, score.CompletedProjects)
	assert.Equal(t, 1, score.TotalProjects)
	assert.Equal(t, 100, score.Score)

	var profile models.LabourProfile
	require.NoError(t, db.Where("user_id = ?", uint(7)).First(&profile).Error)
	assert.Equal(t, 1, profile.TotalProjectsCompleted)

	// Only boarded labourers earn a credit
	var scores int64
	db.Model(&models.ReliabilityScore{}).Count(&scores)
	assert.Equal(t, int64(1), scores)
}

func TestCompleteRollsBackWhenCreditFails(t *testing.T) {
	projects, project := newProjectFixture(t)
	db := projects.db

	boarded := models.ProjectApplication{
		ProjectID: project.ID, LabourID: 7, Status: constants.ApplicationStatusBoardingConfirmed,
	}
	require.NoError(t, db.Create(&boarded).Error)

	require.NoError(t, db.Exec("DROP TABLE reliability_scores").Error)

	err := projects.Complete(project.ID)
	require.Error(t, err)

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, constants.ProjectStatusActive, reloaded.Status)
}
