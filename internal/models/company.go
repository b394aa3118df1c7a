package models

// Default point pool a company profile starts with, separate from the
// owning account's balance.
const CompanyStartingBalance = 200

// Flat fee debited from the company pool for every job posting.
const JobPostingFee = 50

// Company is the profile a company-role account registers explicitly.
// Its balance is a separate pool from the owning User's balance.
type Company struct {
	BaseModel
	CompanyName string `gorm:"uniqueIndex;not null" json:"company_name"`
	Location    string `gorm:"not null" json:"location"`
	Employees   int    `gorm:"not null" json:"employees"`
	Balance     int    `gorm:"not null;default:200" json:"balance"`
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs"`
}

// Job is a posting owned by exactly one company. AppliedBy records the single
// claimant and is set at most once; postings are never deleted.
type Job struct {
	BaseModel
	CompanyID      string  `gorm:"type:uuid;not null;index" json:"company_id"`
	RoleName       string  `gorm:"not null" json:"role_name"`
	MinCTC         int     `gorm:"not null" json:"min_ctc"`
	MaxCTC         int     `gorm:"not null" json:"max_ctc"`
	JobLocation    string  `gorm:"not null" json:"job_location"`
	RequiredAmount int     `gorm:"not null" json:"required_amount"`
	AppliedBy      *string `gorm:"type:uuid" json:"applied_by,omitempty"`

	Applicant *User `gorm:"foreignKey:AppliedBy" json:"applicant,omitempty"`
}
