package models

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string    `gorm:"default:New User" json:"name"`
	Email         string    `gorm:"unique" json:"email"`
	Password      string    `json:"password"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	Code          string    `json:"code"`
	CodeCreatedAt time.Time `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string    `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar        string    `json:"avatar"`
	Role          int       `gorm:"default:3" json:"role"`
	Status        string    `gorm:"default:pending" json:"status"`
}
