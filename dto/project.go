package dto

import "time"

type CreateProjectRequest struct {
	SiteName          string   `json:"siteName" binding:"required"`
	Description       string   `json:"description"`
	State             string   `json:"state" binding:"required"`
	City              string   `json:"city" binding:"required"`
	Address           string   `json:"address"`
	SkillRequired     string   `json:"skillRequired" binding:"required"`
	SkillsNeeded      []string `json:"skillsNeeded"`
	TotalLabourNeeded int      `json:"totalLabourNeeded" binding:"required"`
	Salary            int      `json:"salary" binding:"required"`
	TravelProvided    bool     `json:"travelProvided"`
	BoardingPoint     string   `json:"boardingPoint"`
	AdvancePolicy     string   `json:"advancePolicy"`
	Draft             bool     `json:"draft"`
	StartDate         string   `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate           string   `json:"endDate"`
}

type ProjectResponse struct {
	ID                  uint       `json:"id"`
	ContractorID        uint       `json:"contractorId"`
	SiteName            string     `json:"siteName"`
	Description         string     `json:"description"`
	State               string     `json:"state"`
	City                string     `json:"city"`
	Address             string     `json:"address"`
	SkillRequired       string     `json:"skillRequired"`
	SkillsNeeded        []string   `json:"skillsNeeded"`
	TotalLabourNeeded   int        `json:"totalLabourNeeded"`
	AssignedLabourCount int        `json:"assignedLabourCount"`
	Salary              int        `json:"salary"`
	TravelProvided      bool       `json:"travelProvided"`
	BoardingPoint       string     `json:"boardingPoint,omitempty"`
	AdvancePolicy       string     `json:"advancePolicy,omitempty"`
	Status              string     `json:"status"`
	StartDate           time.Time  `json:"startDate"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type ApplicationResponse struct {
	ID               uint      `json:"id"`
	ProjectID        uint      `json:"projectId"`
	LabourID         uint      `json:"labourId"`
	LabourName       string    `json:"labourName"`
	LabourSkillType  string    `json:"labourSkillType"`
	ReliabilityScore int       `json:"reliabilityScore"`
	Status           string    `json:"status"`
	AppliedAt        time.Time `json:"appliedAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ApplicationTransitionRequest struct {
	ApplicationID uint   `json:"applicationId" binding:"required"`
	Status        string `json:"status" binding:"required"`
}
