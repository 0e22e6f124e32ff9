package models

import "time"

type AttendanceRecord struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	LabourID  uint   `gorm:"index:idx_attendance_day,unique;not null" json:"labourId"`
	Labour    User   `json:"labour" gorm:"foreignKey:LabourID"`
	ProjectID uint   `gorm:"index:idx_attendance_day,unique;not null" json:"projectId"`
	// Date is the worked day as YYYY-MM-DD; one record per labourer per
	// project per day
	Date      string    `gorm:"index:idx_attendance_day,unique;type:varchar(10);not null" json:"date"`
	Status    string    `gorm:"not null" json:"status"`
	Earnings  int       `gorm:"not null" json:"earnings"`
	MarkedBy  uint      `json:"markedBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
