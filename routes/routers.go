package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"labourlink/constants"
	"labourlink/controllers"
	middlewares "labourlink/middleware"
	"labourlink/services"
	"labourlink/services/logger"
	"labourlink/services/notification"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := notification.NewMelodyService(m)

	reliabilityService := services.NewReliabilityService(services.ReliabilityServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	applicationService := services.NewApplicationService(services.ApplicationServiceOptions{
		DB:          db,
		Logger:      appLogger,
		Reliability: reliabilityService,
	})
	projectService := services.NewProjectService(services.ProjectServiceOptions{
		DB:          db,
		Logger:      appLogger,
		Reliability: reliabilityService,
	})
	approvalFacade := services.NewApprovalFacade(services.ApprovalFacadeOptions{
		DB:           db,
		Logger:       appLogger,
		Notification: notifier,
	})

	labourController := controllers.NewLabourController(db, attendanceService, applicationService, reliabilityService)
	contractorController := controllers.NewContractorController(db, projectService, applicationService, attendanceService, notifier)
	projectController := controllers.NewProjectController(db, projectService)
	adminController := controllers.NewAdminController(db, approvalFacade)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/resendCode", controllers.ResendVerificationCode)

	v1.GET("/projects", projectController.GetActiveProjects)
	v1.GET("/projects/search", projectController.SearchProjects)
	v1.GET("/projects/:id", projectController.GetProjectDetail)

	v1.POST("/labour/profile", middlewares.AuthMiddleware(constants.RoleLabour), labourController.CreateLabourProfile)
	v1.GET("/labour/profile", middlewares.AuthMiddleware(constants.RoleLabour), labourController.GetMyLabourProfile)
	v1.PUT("/labour/profile", middlewares.AuthMiddleware(constants.RoleLabour), labourController.UpdateLabourProfile)
	v1.GET("/labour/stats", middlewares.AuthMiddleware(constants.RoleLabour), labourController.GetLabourStats)
	v1.GET("/labour/attendance", middlewares.AuthMiddleware(constants.RoleLabour), labourController.GetAttendanceHistory)
	v1.GET("/labour/idcard", middlewares.AuthMiddleware(constants.RoleLabour), labourController.GetIDCard)
	v1.POST("/labour/projects/:id/apply", middlewares.AuthMiddleware(constants.RoleLabour), labourController.ApplyToProject)
	v1.GET("/labour/applications", middlewares.AuthMiddleware(constants.RoleLabour), labourController.GetMyApplications)
	v1.POST("/labour/workPhotos", middlewares.AuthMiddleware(constants.RoleLabour), labourController.UploadWorkPhoto)
	v1.GET("/labour/workPhotos", middlewares.AuthMiddleware(constants.RoleLabour), labourController.ListWorkPhotos)

	v1.POST("/contractor/profile", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.CreateContractorProfile)
	v1.GET("/contractor/profile", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.GetMyContractorProfile)
	v1.GET("/contractor/stats", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.GetContractorStats)
	v1.POST("/contractor/projects", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.CreateProject)
	v1.GET("/contractor/projects", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.GetMyProjects)
	v1.PUT("/contractor/projects/:id/publish", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.PublishProject)
	v1.PUT("/contractor/projects/:id/complete", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.CompleteProject)
	v1.PUT("/contractor/projects/:id/cancel", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.CancelProject)
	v1.GET("/contractor/projects/:id/applicants", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.GetApplicants)
	v1.PUT("/contractor/applications", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.TransitionApplication)
	v1.POST("/contractor/attendance", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.MarkAttendance)
	v1.GET("/contractor/projects/:id/attendance", middlewares.AuthMiddleware(constants.RoleContractor), contractorController.GetProjectAttendance)

	v1.GET("/admin/approvals", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetPendingApprovals)
	v1.PUT("/admin/profileStatus", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.ChangeProfileStatus)
	v1.GET("/admin/labour", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetLabourDirectory)
	v1.GET("/admin/contractors", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetContractorDirectory)
	v1.GET("/admin/stats", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetAdminStats)
	v1.GET("/admin/commissions", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetCommissionRecords)
	v1.GET("/admin/qrLogs", middlewares.AuthMiddleware(constants.RoleAdmin), adminController.GetQRVerificationLogs)

	// Field scan, used by both admins and contractors on site
	v1.POST("/qr/verify", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleContractor), adminController.VerifyQRCode)

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "labourlink/avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(constants.RoleAdmin), func(c *gin.Context) {
		message := []byte("Broadcast test from backend")
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
