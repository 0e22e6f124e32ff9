package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"labourlink/constants"
	"labourlink/dto"
	"labourlink/models"
	"labourlink/response"
	"labourlink/services"
	"labourlink/utils"
)

type AdminController struct {
	DB        *gorm.DB
	Approvals *services.ApprovalFacade
}

func NewAdminController(db *gorm.DB, approvals *services.ApprovalFacade) *AdminController {
	return &AdminController{
		DB:        db,
		Approvals: approvals,
	}
}

// GetPendingApprovals lists labour and contractor profiles waiting for review
func (ctl *AdminController) GetPendingApprovals(c *gin.Context) {
	var labour []models.LabourProfile
	if err := ctl.DB.Preload("User").
		Where("status = ?", constants.ProfileStatusPending).
		Order("created_at ASC").Find(&labour).Error; err != nil {
		response.ServerError(c)
		return
	}

	var contractors []models.ContractorProfile
	if err := ctl.DB.Preload("User").
		Where("status = ?", constants.ProfileStatusPending).
		Order("created_at ASC").Find(&contractors).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"labour":      labour,
		"contractors": contractors,
	})
}

// ChangeProfileStatus runs an admin status change: approve, suspend, revoke
// or reinstate. Labour approval assigns the permanent labour ID.
func (ctl *AdminController) ChangeProfileStatus(c *gin.Context) {
	var req dto.ProfileStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminID, _, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := ctl.Approvals.ChangeProfileStatus(req.UserID, req.Role, req.Status)
	if err != nil {
		utils.LogError("admin %d failed status change on user %d to %s: %v", adminID, req.UserID, req.Status, err)
		handleServiceError(c, err)
		return
	}

	utils.LogInfo("admin %d changed user %d status to %s", adminID, req.UserID, req.Status)
	response.Success(c, result)
}

func (ctl *AdminController) GetLabourDirectory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := ctl.DB.Model(&models.LabourProfile{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if skillType := c.Query("skillType"); skillType != "" {
		query = query.Where("skill_type = ?", skillType)
	}
	if state := c.Query("state"); state != "" {
		query = query.Where("state = ?", state)
	}

	var total int64
	query.Count(&total)

	var profiles []models.LabourProfile
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&profiles).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, profiles, page, limit, int(total))
}

func (ctl *AdminController) GetContractorDirectory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := ctl.DB.Model(&models.ContractorProfile{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var profiles []models.ContractorProfile
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&profiles).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, profiles, page, limit, int(total))
}

// VerifyQRCode resolves a scanned labour ID and logs the scan. Scans of
// suspended or revoked profiles come back flagged, not hidden.
func (ctl *AdminController) VerifyQRCode(c *gin.Context) {
	scannerID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.QRVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var profile models.LabourProfile
	err := ctl.DB.Where("labour_id = ?", req.LabourID).First(&profile).Error

	result := "valid"
	if err != nil {
		result = "not_found"
	} else if profile.Status != constants.ProfileStatusApproved {
		result = profile.Status
	}

	utils.LogInfo("qr scan by user %d on %s: %s", scannerID, req.LabourID, result)

	if result == "not_found" {
		// No profile to attach a log row to; the file log keeps the attempt
		response.NotFound(c)
		return
	}

	log := models.QRVerificationLog{
		LabourID:  profile.UserID,
		ScannedBy: scannerID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Result:    result,
	}
	ctl.DB.Create(&log)

	response.Success(c, dto.QRVerifyResponse{
		LabourID:    req.LabourID,
		DisplayName: profile.DisplayName,
		SkillType:   profile.SkillType,
		Result:      result,
	})
}

func (ctl *AdminController) GetQRVerificationLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var logs []models.QRVerificationLog
	if err := ctl.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, logs, len(logs))
}

// GetAdminStats backs the admin dashboard
func (ctl *AdminController) GetAdminStats(c *gin.Context) {
	var stats dto.AdminStatsResponse

	ctl.DB.Model(&models.LabourProfile{}).Count(&stats.TotalLabour)
	ctl.DB.Model(&models.ContractorProfile{}).Count(&stats.TotalContractors)
	ctl.DB.Model(&models.Project{}).
		Where("status = ?", constants.ProjectStatusActive).Count(&stats.ActiveProjects)

	var pendingLabour, pendingContractors int64
	ctl.DB.Model(&models.LabourProfile{}).
		Where("status = ?", constants.ProfileStatusPending).Count(&pendingLabour)
	ctl.DB.Model(&models.ContractorProfile{}).
		Where("status = ?", constants.ProfileStatusPending).Count(&pendingContractors)
	stats.PendingApprovals = pendingLabour + pendingContractors

	month := time.Now().Format("2006-01")
	var monthly int64
	ctl.DB.Model(&models.CommissionRecord{}).
		Where("month = ? OR to_char(created_at, 'YYYY-MM') = ?", month, month).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthly)
	stats.MonthlyRevenue = int(monthly)

	var total int64
	ctl.DB.Model(&models.CommissionRecord{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&total)
	stats.TotalCommission = int(total)

	response.Success(c, stats)
}

// GetCommissionRecords lists commission rows for the reports screen
func (ctl *AdminController) GetCommissionRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := ctl.DB.Model(&models.CommissionRecord{})
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}

	var total int64
	query.Count(&total)

	var records []models.CommissionRecord
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&records).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, records, page, limit, int(total))
}
