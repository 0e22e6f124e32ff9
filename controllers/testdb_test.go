package controllers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"labourlink/models"
)

// newTestDB opens an in-memory database for handler tests. The tables with
// Postgres array columns are created by hand with plain text columns.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ProjectApplication{},
		&models.AttendanceRecord{},
		&models.CommissionRecord{},
		&models.ReliabilityScore{},
		&models.NoShowRecord{},
		&models.QRVerificationLog{},
		&models.WorkPhoto{},
		&models.LabourIDCounter{},
	))

	// AutoMigrate creates projects as a side effect of the
	// ProjectApplication association; drop it so the hand-made schema
	// below (plain text columns for the array fields) takes effect.
	require.NoError(t, db.Migrator().DropTable("projects"))

	require.NoError(t, db.Exec(`CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		contractor_id INTEGER NOT NULL,
		site_name TEXT, description TEXT, state TEXT, city TEXT, address TEXT,
		skill_required TEXT, skills_needed TEXT,
		total_labour_needed INTEGER, assigned_labour_count INTEGER DEFAULT 0,
		salary INTEGER, travel_provided NUMERIC DEFAULT false,
		boarding_point TEXT, advance_policy TEXT,
		status TEXT DEFAULT 'draft',
		start_date DATETIME, end_date DATETIME,
		created_at DATETIME, updated_at DATETIME
	)`).Error)

	require.NoError(t, db.Exec(`CREATE TABLE labour_profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		display_name TEXT, skill_type TEXT, skills TEXT,
		rate_per_day INTEGER, aadhaar_verified NUMERIC DEFAULT false,
		state TEXT, city TEXT,
		labour_id TEXT UNIQUE, qr_code_url TEXT, id_card_url TEXT,
		reliability_score INTEGER DEFAULT 100,
		total_projects_completed INTEGER DEFAULT 0,
		total_no_shows INTEGER DEFAULT 0,
		status TEXT DEFAULT 'pending',
		created_at DATETIME, updated_at DATETIME
	)`).Error)

	return db
}
