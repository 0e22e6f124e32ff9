package dto

import "time"

type CreateContractorProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
	GSTNumber   string `json:"gstNumber"`
	State       string `json:"state" binding:"required"`
	City        string `json:"city" binding:"required"`
}

type ContractorProfileResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	DisplayName string    `json:"displayName"`
	CompanyName string    `json:"companyName"`
	GSTNumber   string    `json:"gstNumber,omitempty"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContractorStatsResponse backs the contractor dashboard
type ContractorStatsResponse struct {
	ActiveProjects    int `json:"activeProjects"`
	TotalLabour       int `json:"totalLabour"`
	DailyCost         int `json:"dailyCost"`
	MonthlySpend      int `json:"monthlySpend"`
	PendingApplicants int `json:"pendingApplicants"`
}
