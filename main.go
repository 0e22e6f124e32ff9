package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"labourlink/config"
	"labourlink/jobs"
	"labourlink/routes"
	"labourlink/services"
	"labourlink/services/logger"
)

func migrateTables() {
	// if err := config.DB.AutoMigrate(&models.User{}, &models.LabourProfile{},
	// 	&models.ContractorProfile{}, &models.Project{}, &models.ProjectApplication{},
	// 	&models.AttendanceRecord{}, &models.CommissionRecord{}, &models.ReliabilityScore{},
	// 	&models.NoShowRecord{}, &models.LabourIDCounter{}, &models.QRVerificationLog{},
	// 	&models.WorkPhoto{}); err != nil {
	// 	panic("Failed to migrate tables: " + err.Error())
	// }
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	reliabilityService := services.NewReliabilityService(services.ReliabilityServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
	maintenanceService := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		DB:          config.DB,
		Logger:      appLogger,
		Reliability: reliabilityService,
	})
	jobs.SetAttendanceRateRefresher(maintenanceService)
	jobs.SetCommissionSweeper(maintenanceService)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
