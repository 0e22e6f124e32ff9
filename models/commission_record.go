package models

import "time"

// CommissionRecord rows are generated, never user-edited. One type=project
// row per project; one type=monthly_labour row per labourer per month.
type CommissionRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"index;not null" json:"projectId"`
	ContractorID uint      `gorm:"index;not null" json:"contractorId"`
	LabourID     *uint     `gorm:"index" json:"labourId,omitempty"`
	Amount       int       `gorm:"not null" json:"amount"`
	Type         string    `gorm:"not null" json:"type"`
	Month        string    `gorm:"type:varchar(7)" json:"month,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
