package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labourlink/config"
	"labourlink/constants"
	"labourlink/models"
)

type projectListBody struct {
	Code  int              `json:"code"`
	Total int              `json:"total"`
	Data  []models.Project `json:"data"`
}

func newProjectListFixture(t *testing.T) (*ProjectController, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	mr := miniredis.RunT(t)

	config.DB = db
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { config.RedisClient.Close() })

	require.NoError(t, db.Create(&models.Project{
		ContractorID:      1,
		SiteName:          "Riverside Towers",
		SkillRequired:     constants.SkillTypeSkilled,
		TotalLabourNeeded: 5,
		Salary:            800,
		Status:            constants.ProjectStatusActive,
		StartDate:         time.Now(),
	}).Error)

	return NewProjectController(db, nil), mr
}

func listActiveProjects(t *testing.T, ctl *ProjectController) projectListBody {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)

	ctl.GetActiveProjects(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body projectListBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// An empty cache must fall through to the database, not serve an empty list
func TestGetActiveProjectsColdCacheServesFromDB(t *testing.T) {
	ctl, mr := newProjectListFixture(t)

	body := listActiveProjects(t, ctl)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Riverside Towers", body.Data[0].SiteName)
	assert.Equal(t, 1, body.Total)

	// The miss warmed the cache
	assert.True(t, mr.Exists("projects:active"))
}

func TestGetActiveProjectsServesWarmCache(t *testing.T) {
	ctl, _ := newProjectListFixture(t)

	listActiveProjects(t, ctl)

	// Subsequent reads come from the cache even after the row goes away
	require.NoError(t, ctl.DB.Exec("DELETE FROM projects").Error)

	body := listActiveProjects(t, ctl)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Riverside Towers", body.Data[0].SiteName)
}
