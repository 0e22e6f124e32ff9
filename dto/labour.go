package dto

import "time"

type CreateLabourProfileRequest struct {
	DisplayName string   `json:"displayName" binding:"required"`
	SkillType   string   `json:"skillType" binding:"required"`
	Skills      []string `json:"skills"`
	RatePerDay  int      `json:"ratePerDay"`
	State       string   `json:"state" binding:"required"`
	City        string   `json:"city" binding:"required"`
}

type UpdateLabourProfileRequest struct {
	DisplayName string   `json:"displayName"`
	Skills      []string `json:"skills"`
	RatePerDay  int      `json:"ratePerDay"`
	State       string   `json:"state"`
	City        string   `json:"city"`
}

type LabourProfileResponse struct {
	ID                     uint      `json:"id"`
	UserID                 uint      `json:"userId"`
	DisplayName            string    `json:"displayName"`
	SkillType              string    `json:"skillType"`
	Skills                 []string  `json:"skills"`
	RatePerDay             int       `json:"ratePerDay"`
	AadhaarVerified        bool      `json:"aadhaarVerified"`
	State                  string    `json:"state"`
	City                   string    `json:"city"`
	LabourID               *string   `json:"labourId,omitempty"`
	QRCodeURL              string    `json:"qrCodeUrl,omitempty"`
	IDCardURL              string    `json:"idCardUrl,omitempty"`
	ReliabilityScore       int       `json:"reliabilityScore"`
	TotalProjectsCompleted int       `json:"totalProjectsCompleted"`
	TotalNoShows           int       `json:"totalNoShows"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// LabourStatsResponse backs the labour dashboard
type LabourStatsResponse struct {
	TotalEarnings     int     `json:"totalEarnings"`
	MonthlyEarnings   int     `json:"monthlyEarnings"`
	AttendanceRate    float64 `json:"attendanceRate"`
	ReliabilityScore  int     `json:"reliabilityScore"`
	ProjectsCompleted int     `json:"projectsCompleted"`
}

// IDCardResponse is the digital ID card payload
type IDCardResponse struct {
	LabourID    string `json:"labourId"`
	DisplayName string `json:"displayName"`
	SkillType   string `json:"skillType"`
	State       string `json:"state"`
	City        string `json:"city"`
	QRCodeURL   string `json:"qrCodeUrl,omitempty"`
	IDCardURL   string `json:"idCardUrl,omitempty"`
	Status      string `json:"status"`
}
