package dto

import (
	"anchors_backend/internal/models"
)

// RegisterCompanyRequest creates the company profile for a company account.
type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Employees   int    `json:"employees" binding:"required,min=1"`
}

// PostJobRequest appends a priced job listing to the caller's company.
type PostJobRequest struct {
	RoleName    string `json:"role_name" binding:"required"`
	MinCTC      int    `json:"min_ctc" binding:"required,min=0"`
	MaxCTC      int    `json:"max_ctc" binding:"required,min=0"`
	JobLocation string `json:"job_location" binding:"required"`
}

// PostJobResult carries the created posting and the updated company.
type PostJobResult struct {
	Message string          `json:"message"`
	JobID   string          `json:"job_id"`
	Job     *models.Job     `json:"job"`
	Company *models.Company `json:"company"`
}

// JobDetails is a single posting with its required-amount recomputed from the
// stored fields.
type JobDetails struct {
	Message        string      `json:"message"`
	Job            *models.Job `json:"job"`
	RequiredAmount int         `json:"required_amount"`
}
