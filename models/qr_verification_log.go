package models

import "time"

type QRVerificationLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LabourID  uint      `gorm:"index;not null" json:"labourId"`
	ScannedBy uint      `json:"scannedBy"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Result    string    `json:"result"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type WorkPhoto struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LabourID    uint      `gorm:"index;not null" json:"labourId"`
	ProjectID   *uint     `gorm:"index" json:"projectId,omitempty"`
	PhotoURL    string    `gorm:"not null" json:"photoUrl"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
