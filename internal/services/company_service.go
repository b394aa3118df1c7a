package services

import (
	"anchors_backend/internal/email"
	"anchors_backend/internal/models"
	"anchors_backend/internal/pricing"
	"anchors_backend/internal/repositories"
	"anchors_backend/internal/services/dto"
	"anchors_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyService interface {
	RegisterCompany(userID string, role models.UserRole, req *dto.RegisterCompanyRequest) (*models.Company, error)
	PostJob(userID string, role models.UserRole, req *dto.PostJobRequest) (*dto.PostJobResult, error)
	GetCompany(companyID string) (*models.Company, error)
	GetJob(jobID string) (*dto.JobDetails, error)
	ListAllJobs() ([]repositories.JobListing, error)
}

type CompanyServiceImpl struct {
	db            repositories.TxRunner
	companyRepo   repositories.CompanyRepository
	emailProvider email.Provider
	// Static broadcast list for new-job announcements; not targeted per student.
	broadcastRecipients []string
}

func NewCompanyService(
	db repositories.TxRunner,
	companyRepo repositories.CompanyRepository,
	emailProvider email.Provider,
	broadcastRecipients []string,
) CompanyService {
	return &CompanyServiceImpl{
		db:                  db,
		companyRepo:         companyRepo,
		emailProvider:       emailProvider,
		broadcastRecipients: broadcastRecipients,
	}
}

// RegisterCompany creates the company profile for an authenticated
// company-role account. The profile starts with its own 200-point pool.
func (s *CompanyServiceImpl) RegisterCompany(userID string, role models.UserRole, req *dto.RegisterCompanyRequest) (*models.Company, error) {
	if role != models.UserRoleCompany {
		return nil, apperrors.ErrCompanyRoleRequired
	}

	company := &models.Company{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Employees:   req.Employees,
		Balance:     models.CompanyStartingBalance,
		UserID:      userID,
	}

	if err := s.companyRepo.Create(company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyNameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return company, nil
}

// PostJob debits the flat posting fee from the company pool and appends a
// priced listing. The fee debit and the job insert commit together.
func (s *CompanyServiceImpl) PostJob(userID string, role models.UserRole, req *dto.PostJobRequest) (*dto.PostJobResult, error) {
	if role != models.UserRoleCompany {
		return nil, apperrors.ErrCompanyRoleRequired
	}

	company, err := s.companyRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if company.Balance < models.JobPostingFee {
		return nil, apperrors.ErrInsufficientFunds
	}

	// The fee is flat; the required-amount prices the application side.
	requiredAmount := pricing.RequiredAmount(req.RoleName, req.JobLocation, req.MinCTC, req.MaxCTC)

	job := &models.Job{
		BaseModel:      models.BaseModel{ID: uuid.NewString()},
		CompanyID:      company.ID,
		RoleName:       req.RoleName,
		MinCTC:         req.MinCTC,
		MaxCTC:         req.MaxCTC,
		JobLocation:    req.JobLocation,
		RequiredAmount: requiredAmount,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		companyRepo := s.companyRepo.WithTx(tx)

		// Guarded debit: under contention the balance check above may be
		// stale, the UPDATE guard is the one that counts.
		if err := companyRepo.DebitBalance(company.ID, models.JobPostingFee); err != nil {
			return err
		}
		return companyRepo.CreateJob(job)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrInsufficientBalance) {
			return nil, apperrors.ErrInsufficientFunds
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.companyRepo.FindByID(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Broadcast is awaited synchronously. The posting is already committed,
	// so a delivery failure is reported without rolling anything back.
	if err := s.emailProvider.SendJobPostedBroadcast(s.broadcastRecipients, email.JobPostedData{
		RoleName:    job.RoleName,
		MinCTC:      job.MinCTC,
		MaxCTC:      job.MaxCTC,
		JobLocation: job.JobLocation,
		CompanyName: updated.CompanyName,
		Location:    updated.Location,
		Employees:   updated.Employees,
	}); err != nil {
		return nil, apperrors.EmailDeliveryFailed(err)
	}

	return &dto.PostJobResult{
		Message: "Job posted successfully",
		JobID:   job.ID,
		Job:     job,
		Company: updated,
	}, nil
}

// GetCompany returns a company with its postings and claimant details.
func (s *CompanyServiceImpl) GetCompany(companyID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// GetJob returns a posting with the required-amount recomputed from the
// stored fields; it must match the value computed at posting time.
func (s *CompanyServiceImpl) GetJob(jobID string) (*dto.JobDetails, error) {
	job, err := s.companyRepo.FindJobByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	requiredAmount := pricing.RequiredAmount(job.RoleName, job.JobLocation, job.MinCTC, job.MaxCTC)

	return &dto.JobDetails{
		Message:        "Job details retrieved successfully",
		Job:            job,
		RequiredAmount: requiredAmount,
	}, nil
}

// ListAllJobs returns every posting joined with its owning company.
func (s *CompanyServiceImpl) ListAllJobs() ([]repositories.JobListing, error) {
	listings, err := s.companyRepo.ListAllJobs()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}
