package models

import (
	"gorm.io/datatypes"
)

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleCompany UserRole = "company"
)

// Starting bonus credited on successful OTP verification.
const (
	StudentSignupBonus = 300
	CompanySignupBonus = 200
)

// User is a ledgered account: either a student or a company owner.
// Balance is an abstract in-app point value, not real currency. The schema
// does not enforce balance >= 0; debits are guarded at the query level.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Balance      int      `gorm:"not null;default:0" json:"balance"`

	// Append-only set of job ids the student has applied to. Mirrors the
	// per-account applied-jobs record; companies leave it empty.
	AppliedJobs datatypes.JSONSlice[string] `json:"applied_jobs,omitempty"`

	// Relations
	Company *Company `gorm:"foreignKey:UserID" json:"company,omitempty"`
}

// HasApplied reports whether the job id is already in the applied-jobs record.
func (u *User) HasApplied(jobID string) bool {
	for _, id := range u.AppliedJobs {
		if id == jobID {
			return true
		}
	}
	return false
}

// SignupBonus returns the role-based starting balance.
func SignupBonus(role UserRole) int {
	if role == UserRoleStudent {
		return StudentSignupBonus
	}
	return CompanySignupBonus
}
