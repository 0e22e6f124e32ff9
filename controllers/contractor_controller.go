package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"labourlink/config"
	"labourlink/constants"
	"labourlink/dto"
	"labourlink/models"
	"labourlink/response"
	"labourlink/services"
	"labourlink/services/notification"
	"labourlink/validator"
)

type ContractorController struct {
	DB           *gorm.DB
	Projects     *services.ProjectService
	Applications *services.ApplicationService
	Attendance   *services.AttendanceService
	Notification notification.Service
}

func NewContractorController(db *gorm.DB, projects *services.ProjectService,
	applications *services.ApplicationService, attendance *services.AttendanceService,
	notify notification.Service) *ContractorController {
	return &ContractorController{
		DB:           db,
		Projects:     projects,
		Applications: applications,
		Attendance:   attendance,
		Notification: notify,
	}
}

func contractorProfileToResponse(p *models.ContractorProfile) dto.ContractorProfileResponse {
	return dto.ContractorProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		CompanyName: p.CompanyName,
		GSTNumber:   p.GSTNumber,
		State:       p.State,
		City:        p.City,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (ctl *ContractorController) CreateContractorProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateContractorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.ContractorProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		response.Conflict(c, "Contractor profile already exists")
		return
	}

	profile := models.ContractorProfile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		CompanyName: req.CompanyName,
		GSTNumber:   req.GSTNumber,
		State:       req.State,
		City:        req.City,
	}

	if err := validator.ValidateContractorProfile(&profile); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.DB.Create(&profile).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contractorProfileToResponse(&profile))
}

func (ctl *ContractorController) GetMyContractorProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var profile models.ContractorProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, contractorProfileToResponse(&profile))
}

// CreateProject posts a new site. Draft projects stay invisible to labourers
// until published; posting also books the platform's project commission.
func (ctl *ContractorController) CreateProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var profile models.ContractorProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		response.BadRequest(c, "Create a contractor profile first")
		return
	}
	if profile.Status != constants.ProfileStatusApproved {
		response.BadRequest(c, "Contractor profile is not approved")
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.BadRequest(c, "startDate must be YYYY-MM-DD")
		return
	}

	status := constants.ProjectStatusActive
	if req.Draft {
		status = constants.ProjectStatusDraft
	}

	project := models.Project{
		ContractorID:      userID,
		SiteName:          req.SiteName,
		Description:       req.Description,
		State:             req.State,
		City:              req.City,
		Address:           req.Address,
		SkillRequired:     req.SkillRequired,
		SkillsNeeded:      req.SkillsNeeded,
		TotalLabourNeeded: req.TotalLabourNeeded,
		Salary:            req.Salary,
		TravelProvided:    req.TravelProvided,
		BoardingPoint:     req.BoardingPoint,
		AdvancePolicy:     req.AdvancePolicy,
		Status:            status,
		StartDate:         startDate,
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "endDate must be YYYY-MM-DD")
			return
		}
		project.EndDate = &endDate
	}

	if err := validator.ValidateProject(&project); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Projects.Create(&project); err != nil {
		handleServiceError(c, err)
		return
	}

	services.DeleteFromRedis(config.Ctx, config.RedisClient, activeProjectsCacheKey)

	response.Success(c, project)
}

func (ctl *ContractorController) GetMyProjects(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var projects []models.Project
	if err := ctl.DB.Where("contractor_id = ?", userID).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, projects, len(projects))
}

// ownProject loads a project and checks it belongs to the caller
func (ctl *ContractorController) ownProject(c *gin.Context, userID uint) (*models.Project, bool) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid project id")
		return nil, false
	}

	var project models.Project
	if err := ctl.DB.First(&project, uint(projectID)).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}
	if project.ContractorID != userID {
		response.Forbidden(c)
		return nil, false
	}
	return &project, true
}

func (ctl *ContractorController) PublishProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, ok := ctl.ownProject(c, userID)
	if !ok {
		return
	}

	if err := ctl.Projects.Publish(project.ID); err != nil {
		handleServiceError(c, err)
		return
	}

	services.DeleteFromRedis(config.Ctx, config.RedisClient, activeProjectsCacheKey)
	response.Success(c, gin.H{"projectId": project.ID, "status": constants.ProjectStatusActive})
}

func (ctl *ContractorController) CompleteProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, ok := ctl.ownProject(c, userID)
	if !ok {
		return
	}

	if err := ctl.Projects.Complete(project.ID); err != nil {
		handleServiceError(c, err)
		return
	}

	services.DeleteFromRedis(config.Ctx, config.RedisClient, activeProjectsCacheKey)
	response.Success(c, gin.H{"projectId": project.ID, "status": constants.ProjectStatusCompleted})
}

func (ctl *ContractorController) CancelProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, ok := ctl.ownProject(c, userID)
	if !ok {
		return
	}

	if err := ctl.Projects.Cancel(project.ID); err != nil {
		handleServiceError(c, err)
		return
	}

	services.DeleteFromRedis(config.Ctx, config.RedisClient, activeProjectsCacheKey)
	response.Success(c, gin.H{"projectId": project.ID, "status": constants.ProjectStatusCancelled})
}

func (ctl *ContractorController) GetApplicants(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, ok := ctl.ownProject(c, userID)
	if !ok {
		return
	}

	applications, err := ctl.Applications.ListByProject(project.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, applications, len(applications))
}

// TransitionApplication moves an applicant through the hiring pipeline
func (ctl *ContractorController) TransitionApplication(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ApplicationTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var application models.ProjectApplication
	if err := ctl.DB.First(&application, req.ApplicationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var project models.Project
	if err := ctl.DB.First(&project, application.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if project.ContractorID != userID {
		response.Forbidden(c)
		return
	}

	updated, err := ctl.Applications.Transition(req.ApplicationID, req.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, updated)
}

// MarkAttendance records a labourer's day on one of the caller's projects
func (ctl *ContractorController) MarkAttendance(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAttendanceInput(req.Date, req.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var project models.Project
	if err := ctl.DB.First(&project, req.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if project.ContractorID != userID {
		response.Forbidden(c)
		return
	}

	record, err := ctl.Attendance.MarkAttendance(services.MarkAttendanceInput{
		LabourUserID: req.LabourID,
		ProjectID:    req.ProjectID,
		Date:         req.Date,
		Status:       req.Status,
		MarkedBy:     userID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	ctl.Notification.SendMessage(notification.AttendanceMessage(record.LabourID, record.Date, record.Earnings))

	response.Success(c, dto.AttendanceResponse{
		ID:        record.ID,
		LabourID:  record.LabourID,
		ProjectID: record.ProjectID,
		Date:      record.Date,
		Status:    record.Status,
		Earnings:  record.Earnings,
		MarkedBy:  record.MarkedBy,
		CreatedAt: record.CreatedAt,
	})
}

// GetProjectAttendance returns the attendance sheet for a project day
func (ctl *ContractorController) GetProjectAttendance(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, ok := ctl.ownProject(c, userID)
	if !ok {
		return
	}

	records, err := ctl.Attendance.GetAttendanceByProject(project.ID, c.Query("date"))
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, records, len(records))
}

// GetContractorStats backs the contractor dashboard
func (ctl *ContractorController) GetContractorStats(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var stats dto.ContractorStatsResponse

	var active int64
	ctl.DB.Model(&models.Project{}).
		Where("contractor_id = ? AND status = ?", userID, constants.ProjectStatusActive).
		Count(&active)
	stats.ActiveProjects = int(active)

	var totalLabour int64
	ctl.DB.Model(&models.Project{}).
		Where("contractor_id = ? AND status = ?", userID, constants.ProjectStatusActive).
		Select("COALESCE(SUM(assigned_labour_count), 0)").Scan(&totalLabour)
	stats.TotalLabour = int(totalLabour)

	today := time.Now().Format("2006-01-02")
	var dailyCost int64
	ctl.DB.Model(&models.AttendanceRecord{}).
		Joins("JOIN projects ON projects.id = attendance_records.project_id").
		Where("projects.contractor_id = ? AND attendance_records.date = ?", userID, today).
		Select("COALESCE(SUM(attendance_records.earnings), 0)").Scan(&dailyCost)
	stats.DailyCost = int(dailyCost)

	month := time.Now().Format("2006-01")
	var monthlySpend int64
	ctl.DB.Model(&models.AttendanceRecord{}).
		Joins("JOIN projects ON projects.id = attendance_records.project_id").
		Where("projects.contractor_id = ? AND attendance_records.date LIKE ?", userID, month+"-%").
		Select("COALESCE(SUM(attendance_records.earnings), 0)").Scan(&monthlySpend)
	stats.MonthlySpend = int(monthlySpend)

	var pending int64
	ctl.DB.Model(&models.ProjectApplication{}).
		Joins("JOIN projects ON projects.id = project_applications.project_id").
		Where("projects.contractor_id = ? AND project_applications.status = ?",
			userID, constants.ApplicationStatusApplied).
		Count(&pending)
	stats.PendingApplicants = int(pending)

	response.Success(c, stats)
}
