package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/constants"
	"labourlink/models"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "patna", normalizeInput("  Patna "))
	assert.Equal(t, "mason", normalizeInput("MASON"))
}

func TestParseSkillType(t *testing.T) {
	assert.Equal(t, constants.SkillTypeSkilled, parseSkillType("mason work in patna"))
	assert.Equal(t, constants.SkillTypeSkilled, parseSkillType("electrician"))
	assert.Equal(t, constants.SkillTypeUnskilled, parseSkillType("helper needed"))
	assert.Equal(t, "", parseSkillType("xyzzy"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("patna", "patna"))
	assert.Greater(t, calculateSimilarity("patna", "patnaa"), 0.7)
	assert.Less(t, calculateSimilarity("patna", "mumbai"), 0.5)
}

func TestSearchProjectsRanksSkillAndCityMatches(t *testing.T) {
	projects := []models.Project{
		{
			ID:            1,
			SiteName:      "Riverside Towers",
			City:          "Patna",
			SkillRequired: constants.SkillTypeSkilled,
			Status:        constants.ProjectStatusActive,
		},
		{
			ID:            2,
			SiteName:      "Harbour Warehouse",
			City:          "Mumbai",
			SkillRequired: constants.SkillTypeUnskilled,
			Status:        constants.ProjectStatusActive,
		},
	}

	scored := SearchProjects("mason patna", projects)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Project.ID)

	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestSearchProjectsDropsIrrelevant(t *testing.T) {
	projects := []models.Project{
		{
			ID:            3,
			SiteName:      "Harbour Warehouse",
			City:          "Mumbai",
			SkillRequired: constants.SkillTypeUnskilled,
		},
	}

	scored := SearchProjects("mason patna riverside", projects)
	for _, sp := range scored {
		assert.NotZero(t, sp.Score)
	}
}
