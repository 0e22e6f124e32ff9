package models

import "time"

// ReliabilityScore is the derived scoring snapshot per labourer. Score and
// counters are also mirrored onto LabourProfile for display.
type ReliabilityScore struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	LabourID          uint      `gorm:"uniqueIndex;not null" json:"labourId"`
	Score             int       `gorm:"default:100" json:"score"`
	TotalProjects     int       `gorm:"default:0" json:"totalProjects"`
	CompletedProjects int       `gorm:"default:0" json:"completedProjects"`
	NoShowCount       int       `gorm:"default:0" json:"noShowCount"`
	CompletionRate    float64   `gorm:"default:0" json:"completionRate"`
	AttendanceRate    float64   `gorm:"default:0" json:"attendanceRate"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type NoShowRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LabourID  uint      `gorm:"index;not null" json:"labourId"`
	ProjectID uint      `gorm:"index;not null" json:"projectId"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
