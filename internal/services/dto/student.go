package dto

import (
	"anchors_backend/internal/models"
)

// ApplyJobResult carries the claimed posting and the credited company.
type ApplyJobResult struct {
	Message string          `json:"message"`
	Job     *models.Job     `json:"job"`
	Company *models.Company `json:"company"`
}
