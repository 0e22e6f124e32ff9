package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"labourlink/constants"
)

type Project struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	ContractorID        uint           `gorm:"index;not null" json:"contractorId"`
	Contractor          User           `json:"contractor" gorm:"foreignKey:ContractorID"`
	SiteName            string         `json:"siteName"`
	Description         string         `json:"description"`
	State               string         `json:"state"`
	City                string         `json:"city"`
	Address             string         `json:"address"`
	SkillRequired       string         `json:"skillRequired"`
	SkillsNeeded        pq.StringArray `json:"skillsNeeded" gorm:"type:text[]"`
	TotalLabourNeeded   int            `json:"totalLabourNeeded"`
	AssignedLabourCount int            `gorm:"default:0" json:"assignedLabourCount"`
	Salary              int            `json:"salary"`
	TravelProvided      bool           `gorm:"default:false" json:"travelProvided"`
	BoardingPoint       string         `json:"boardingPoint,omitempty"`
	AdvancePolicy       string         `json:"advancePolicy,omitempty"`
	Status              string         `gorm:"default:draft" json:"status"`
	StartDate           time.Time      `json:"startDate"`
	EndDate             *time.Time     `json:"endDate,omitempty"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Project) ValidateStatus() error {
	switch p.Status {
	case constants.ProjectStatusActive, constants.ProjectStatusCompleted,
		constants.ProjectStatusCancelled, constants.ProjectStatusDraft:
		return nil
	}
	return fmt.Errorf("invalid project status: %s", p.Status)
}

// HasOpenPositions reports whether the project can still take labourers
func (p *Project) HasOpenPositions() bool {
	return p.AssignedLabourCount < p.TotalLabourNeeded
}
