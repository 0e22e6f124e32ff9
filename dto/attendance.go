package dto

import "time"

type MarkAttendanceRequest struct {
	LabourID  uint   `json:"labourId" binding:"required"`
	ProjectID uint   `json:"projectId" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Status    string `json:"status" binding:"required"`
}

type AttendanceResponse struct {
	ID        uint      `json:"id"`
	LabourID  uint      `json:"labourId"`
	ProjectID uint      `json:"projectId"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	Earnings  int       `json:"earnings"`
	MarkedBy  uint      `json:"markedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type QRVerifyRequest struct {
	LabourID  string  `json:"labourId" binding:"required"` // LAB-YYYY-XXXX
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type QRVerifyResponse struct {
	LabourID    string `json:"labourId"`
	DisplayName string `json:"displayName"`
	SkillType   string `json:"skillType"`
	Result      string `json:"result"`
}

type ProfileStatusRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Role   int    `json:"role" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// AdminStatsResponse backs the admin dashboard and reports screen
type AdminStatsResponse struct {
	TotalLabour      int64 `json:"totalLabour"`
	TotalContractors int64 `json:"totalContractors"`
	ActiveProjects   int64 `json:"activeProjects"`
	PendingApprovals int64 `json:"pendingApprovals"`
	MonthlyRevenue   int   `json:"monthlyRevenue"`
	TotalCommission  int   `json:"totalCommission"`
}
