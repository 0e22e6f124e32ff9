package models

import "time"

type ContractorProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"userId"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	DisplayName string    `json:"displayName"`
	CompanyName string    `json:"companyName"`
	GSTNumber   string    `json:"gstNumber,omitempty"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	Status      string    `gorm:"default:pending" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
