package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"labourlink/config"
	"labourlink/constants"
	"labourlink/models"
	"labourlink/response"
	"labourlink/services"
)

const activeProjectsCacheKey = "projects:active"
const activeProjectsCacheTTL = 5 * time.Minute

type ProjectController struct {
	DB       *gorm.DB
	Projects *services.ProjectService
}

func NewProjectController(db *gorm.DB, projects *services.ProjectService) *ProjectController {
	return &ProjectController{
		DB:       db,
		Projects: projects,
	}
}

// GetActiveProjects lists open sites, cached for the browse screen
func (ctl *ProjectController) GetActiveProjects(c *gin.Context) {
	var projects []models.Project

	// A cache miss comes back as a nil error with the slice untouched, so
	// only a non-empty result counts as a hit
	err := services.GetFromRedis(config.Ctx, config.RedisClient, activeProjectsCacheKey, &projects)
	if err == nil && len(projects) > 0 {
		response.SuccessWithTotal(c, projects, len(projects))
		return
	}

	if err := ctl.DB.Where("status = ?", constants.ProjectStatusActive).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.SetToRedis(config.Ctx, config.RedisClient, activeProjectsCacheKey, projects, activeProjectsCacheTTL)

	response.SuccessWithTotal(c, projects, len(projects))
}

// SearchProjects ranks active sites against a free-text query
func (ctl *ProjectController) SearchProjects(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		ctl.GetActiveProjects(c)
		return
	}

	var projects []models.Project
	if err := ctl.DB.Where("status = ?", constants.ProjectStatusActive).
		Find(&projects).Error; err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchProjects(query, projects)

	response.SuccessWithTotal(c, scored, len(scored))
}

func (ctl *ProjectController) GetProjectDetail(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid project id")
		return
	}

	project, err := ctl.Projects.GetByID(uint(projectID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, project)
}
