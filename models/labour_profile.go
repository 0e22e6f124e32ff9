package models

import (
	"time"

	"github.com/lib/pq"
)

type LabourProfile struct {
	ID                     uint           `gorm:"primaryKey" json:"id"`
	UserID                 uint           `gorm:"uniqueIndex;not null" json:"userId"`
	User                   User           `json:"user" gorm:"foreignKey:UserID"`
	DisplayName            string         `json:"displayName"`
	SkillType              string         `json:"skillType"`
	Skills                 pq.StringArray `json:"skills" gorm:"type:text[]"`
	RatePerDay             int            `json:"ratePerDay"`
	AadhaarVerified        bool           `gorm:"default:false" json:"aadhaarVerified"`
	State                  string         `json:"state"`
	City                   string         `json:"city"`
	LabourID               *string        `gorm:"uniqueIndex" json:"labourId,omitempty"`
	QRCodeURL              string         `json:"qrCodeUrl,omitempty"`
	IDCardURL              string         `json:"idCardUrl,omitempty"`
	ReliabilityScore       int            `gorm:"default:100" json:"reliabilityScore"`
	TotalProjectsCompleted int            `gorm:"default:0" json:"totalProjectsCompleted"`
	TotalNoShows           int            `gorm:"default:0" json:"totalNoShows"`
	Status                 string         `gorm:"default:pending" json:"status"`
	CreatedAt              time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
