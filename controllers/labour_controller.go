package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"labourlink/config"
	"labourlink/dto"
	"labourlink/models"
	"labourlink/response"
	"labourlink/services"
	"labourlink/validator"
)

type LabourController struct {
	DB           *gorm.DB
	Attendance   *services.AttendanceService
	Applications *services.ApplicationService
	Reliability  *services.ReliabilityService
}

func NewLabourController(db *gorm.DB, attendance *services.AttendanceService,
	applications *services.ApplicationService, reliability *services.ReliabilityService) *LabourController {
	return &LabourController{
		DB:           db,
		Attendance:   attendance,
		Applications: applications,
		Reliability:  reliability,
	}
}

func labourProfileToResponse(p *models.LabourProfile) dto.LabourProfileResponse {
	return dto.LabourProfileResponse{
		ID:                     p.ID,
		UserID:                 p.UserID,
		DisplayName:            p.DisplayName,
		SkillType:              p.SkillType,
		Skills:                 p.Skills,
		RatePerDay:             p.RatePerDay,
		AadhaarVerified:        p.AadhaarVerified,
		State:                  p.State,
		City:                   p.City,
		LabourID:               p.LabourID,
		QRCodeURL:              p.QRCodeURL,
		IDCardURL:              p.IDCardURL,
		ReliabilityScore:       p.ReliabilityScore,
		TotalProjectsCompleted: p.TotalProjectsCompleted,
		TotalNoShows:           p.TotalNoShows,
		Status:                 p.Status,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

// CreateLabourProfile godoc
// @Summary Create the caller's labour profile
// @Tags labour
// @Router /labour/profile [post]
func (ctl *LabourController) CreateLabourProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateLabourProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.LabourProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		response.Conflict(c, "Labour profile already exists")
		return
	}

	profile := models.LabourProfile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		SkillType:   req.SkillType,
		Skills:      req.Skills,
		RatePerDay:  req.RatePerDay,
		State:       req.State,
		City:        req.City,
	}
	if profile.RatePerDay == 0 {
		profile.RatePerDay = services.EffectiveRate(&profile)
	}

	if err := validator.ValidateLabourProfile(&profile); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.DB.Create(&profile).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, labourProfileToResponse(&profile))
}

func (ctl *LabourController) GetMyLabourProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var profile models.LabourProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, labourProfileToResponse(&profile))
}

func (ctl *LabourController) UpdateLabourProfile(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateLabourProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var profile models.LabourProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.DisplayName != "" {
		profile.DisplayName = req.DisplayName
	}
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.RatePerDay > 0 {
		profile.RatePerDay = req.RatePerDay
	}
	if req.State != "" {
		profile.State = req.State
	}
	if req.City != "" {
		profile.City = req.City
	}

	if err := validator.ValidateLabourProfile(&profile); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ctl.DB.Save(&profile).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, labourProfileToResponse(&profile))
}

// GetLabourStats backs the labour dashboard: earnings, attendance rate,
// reliability and completions in one payload
func (ctl *LabourController) GetLabourStats(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var profile models.LabourProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		response.NotFound(c)
		return
	}

	total, err := ctl.Attendance.TotalEarnings(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	monthly, err := ctl.Attendance.MonthlyEarnings(userID, time.Now().Format("2006-01"))
	if err != nil {
		response.ServerError(c)
		return
	}

	stats := dto.LabourStatsResponse{
		TotalEarnings:     total,
		MonthlyEarnings:   monthly,
		ReliabilityScore:  profile.ReliabilityScore,
		ProjectsCompleted: profile.TotalProjectsCompleted,
	}

	if score, err := ctl.Reliability.GetScore(userID); err == nil {
		stats.AttendanceRate = score.AttendanceRate
	}

	response.Success(c, stats)
}

func (ctl *LabourController) GetAttendanceHistory(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	records, err := ctl.Attendance.GetAttendanceByLabour(userID, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, records, len(records))
}

// GetIDCard returns the digital ID card for an approved labourer
func (ctl *LabourController) GetIDCard(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var profile models.LabourProfile
	if err := ctl.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		response.NotFound(c)
		return
	}

	if profile.LabourID == nil {
		response.BadRequest(c, "Profile has not been approved yet")
		return
	}

	response.Success(c, dto.IDCardResponse{
		LabourID:    *profile.LabourID,
		DisplayName: profile.DisplayName,
		SkillType:   profile.SkillType,
		State:       profile.State,
		City:        profile.City,
		QRCodeURL:   profile.QRCodeURL,
		IDCardURL:   profile.IDCardURL,
		Status:      profile.Status,
	})
}

func (ctl *LabourController) ApplyToProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid project id")
		return
	}

	application, err := ctl.Applications.Apply(userID, uint(projectID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, application)
}

func (ctl *LabourController) GetMyApplications(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	applications, err := ctl.Applications.ListByLabour(userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, applications, len(applications))
}

// UploadWorkPhoto stores a site photo on Cloudinary and records it against
// the labourer's portfolio
func (ctl *LabourController) UploadWorkPhoto(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}

	opened, err := file.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer opened.Close()

	uploadResult, err := config.Cloudinary.Upload.Upload(context.Background(), opened, uploader.UploadParams{
		Folder: "labourlink/work_photos",
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	photo := models.WorkPhoto{
		LabourID:    userID,
		PhotoURL:    uploadResult.SecureURL,
		Description: c.PostForm("description"),
	}
	if projectID, err := strconv.ParseUint(c.PostForm("projectId"), 10, 64); err == nil {
		id := uint(projectID)
		photo.ProjectID = &id
	}

	if err := ctl.DB.Create(&photo).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, photo)
}

func (ctl *LabourController) ListWorkPhotos(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var photos []models.WorkPhoto
	if err := ctl.DB.Where("labour_id = ?", userID).
		Order("created_at DESC").Find(&photos).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, photos, len(photos))
}
