package repositories

import (
	"errors"

	"anchors_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobAlreadyClaimed    = errors.New("job already claimed")
)

// JobListing is a job joined with its owning company, for the public catalog.
type JobListing struct {
	ID          string `json:"id"`
	RoleName    string `json:"role_name"`
	MinCTC      int    `json:"min_ctc"`
	MaxCTC      int    `json:"max_ctc"`
	JobLocation string `json:"job_location"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Employees   int    `json:"employees"`
}

type CompanyRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) CompanyRepository

	Create(company *models.Company) error
	FindByID(id string) (*models.Company, error)
	FindByUserID(userID string) (*models.Company, error)

	CreateJob(job *models.Job) error
	FindJobByID(jobID string) (*models.Job, error)
	ListAllJobs() ([]JobListing, error)

	// Ledger operations on the company point pool.
	CreditBalance(companyID string, amount int) error
	DebitBalance(companyID string, amount int) error

	// ClaimJob records the claimant, guarded by "claimant is currently unset"
	// so the claim itself is race-safe: the first applicant wins.
	ClaimJob(jobID, studentID string) error
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) WithTx(tx *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: tx}
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	// Check if the company name is already taken
	var existing models.Company
	if err := r.db.Where("company_name = ?", company.CompanyName).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	}

	return r.db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Jobs").Preload("Jobs.Applicant").
		First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByUserID(userID string) (*models.Company, error) {
	var company models.Company
	err := r.db.Preload("Jobs").First(&company, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) CreateJob(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *CompanyRepositoryImpl) FindJobByID(jobID string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Applicant").First(&job, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *CompanyRepositoryImpl) ListAllJobs() ([]JobListing, error) {
	var listings []JobListing
	err := r.db.Model(&models.Job{}).
		Select("jobs.id, jobs.role_name, jobs.min_ctc, jobs.max_ctc, jobs.job_location, " +
			"companies.id AS company_id, companies.company_name, companies.location, companies.employees").
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Order("jobs.created_at").
		Scan(&listings).Error
	return listings, err
}

func (r *CompanyRepositoryImpl) CreditBalance(companyID string, amount int) error {
	result := r.db.Model(&models.Company{}).
		Where("id = ?", companyID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) DebitBalance(companyID string, amount int) error {
	result := r.db.Model(&models.Company{}).
		Where("id = ? AND balance >= ?", companyID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Company{}).Where("id = ?", companyID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCompanyNotFound
		}
		return ErrInsufficientBalance
	}
	return nil
}

func (r *CompanyRepositoryImpl) ClaimJob(jobID, studentID string) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND applied_by IS NULL", jobID).
		Update("applied_by", studentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Job{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrJobNotFound
		}
		return ErrJobAlreadyClaimed
	}
	return nil
}
