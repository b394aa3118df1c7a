package models

import "time"

// PendingRegistration bridges the two-step OTP handshake. One row per email;
// created by BeginRegistration, consumed exactly once by VerifyOTP. The row id
// doubles as the continuation token the client sends back with the code.
type PendingRegistration struct {
	BaseModel
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Role      UserRole  `gorm:"type:varchar(20);not null"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// Expired reports whether the OTP lifetime has passed.
func (p *PendingRegistration) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// Complete reports whether all fields needed to finish registration are set.
func (p *PendingRegistration) Complete() bool {
	return p.Name != "" && p.Email != "" && p.Role != "" && p.Code != ""
}
