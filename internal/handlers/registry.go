package handlers

import (
	"anchors_backend/internal/services"
	"anchors_backend/internal/validator"
)

// AppHandlers holds every HTTP handler group.
type AppHandlers struct {
	Auth    *AuthHandler
	Company *CompanyHandler
	Student *StudentHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Company: NewCompanyHandler(base, sc.CompanyService),
		Student: NewStudentHandler(base, sc.StudentService),
	}
}
