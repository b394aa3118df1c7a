package app

import (
	"anchors_backend/internal/email"
	"anchors_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when SMTP is disabled.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("[MOCK EMAIL] Send", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendRegistrationOTP(to, name, otp string) error {
	logger.Info("[MOCK EMAIL] Registration OTP", "to", to, "name", name, "otp", otp)
	return nil
}

func (m *MockEmailProvider) SendRegistrationSuccess(to, name string, bonusPoints int, isStudent bool) error {
	logger.Info("[MOCK EMAIL] Registration success", "to", to, "name", name, "bonus", bonusPoints, "student", isStudent)
	return nil
}

func (m *MockEmailProvider) SendJobPostedBroadcast(to []string, data email.JobPostedData) error {
	logger.Info("[MOCK EMAIL] Job posted broadcast", "recipients", len(to), "role", data.RoleName)
	return nil
}

func (m *MockEmailProvider) SendApplicationNotice(to string, data email.ApplicationData) error {
	logger.Info("[MOCK EMAIL] Application notice", "to", to, "role", data.RoleName, "student", data.StudentEmail)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }

func (m *MockEmailProvider) Close() error { return nil }
