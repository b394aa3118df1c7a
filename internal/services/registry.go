package services

import (
	"anchors_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService    AuthService
	CompanyService CompanyService
	StudentService StudentService
	EmailService   email.Provider
}
