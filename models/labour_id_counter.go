package models

// LabourIDCounter holds the per-year sequence backing labour ID assignment.
// Incremented atomically so concurrent approvals never collide.
type LabourIDCounter struct {
	Year int `gorm:"primaryKey" json:"year"`
	Seq  int `gorm:"not null;default:0" json:"seq"`
}
