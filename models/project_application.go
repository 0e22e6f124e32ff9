package models

import "time"

type ProjectApplication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProjectID       uint      `gorm:"index:idx_app_project_labour,unique;not null" json:"projectId"`
	Project         Project   `json:"project" gorm:"foreignKey:ProjectID"`
	LabourID        uint      `gorm:"index:idx_app_project_labour,unique;not null" json:"labourId"`
	Labour          User      `json:"labour" gorm:"foreignKey:LabourID"`
	LabourName      string    `json:"labourName"`
	LabourSkillType string    `json:"labourSkillType"`
	// Reliability snapshot at apply time, shown to contractors when screening
	ReliabilityScore int       `json:"reliabilityScore"`
	Status           string    `gorm:"default:applied" json:"status"`
	AppliedAt        time.Time `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
