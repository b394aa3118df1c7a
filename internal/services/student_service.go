package services

import (
	"anchors_backend/internal/email"
	"anchors_backend/internal/models"
	"anchors_backend/internal/pricing"
	"anchors_backend/internal/repositories"
	"anchors_backend/internal/services/dto"
	"anchors_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type StudentService interface {
	ApplyJob(userID string, role models.UserRole, jobID string) (*dto.ApplyJobResult, error)
}

type StudentServiceImpl struct {
	db            repositories.TxRunner
	userRepo      repositories.UserRepository
	companyRepo   repositories.CompanyRepository
	emailProvider email.Provider
}

func NewStudentService(
	db repositories.TxRunner,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	emailProvider email.Provider,
) StudentService {
	return &StudentServiceImpl{
		db:            db,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		emailProvider: emailProvider,
	}
}

// ApplyJob transfers the required-amount from the student to the owning
// company and records the claim. The debit, credit, claim and applied-jobs
// append commit in one transaction: under contention a loser sees
// InsufficientFunds or a claim conflict instead of a negative balance.
func (s *StudentServiceImpl) ApplyJob(userID string, role models.UserRole, jobID string) (*dto.ApplyJobResult, error) {
	if role != models.UserRoleStudent {
		return nil, apperrors.ErrStudentRoleRequired
	}

	var (
		job            *models.Job
		company        *models.Company
		owner          *models.User
		student        *models.User
		requiredAmount int
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		companyRepo := s.companyRepo.WithTx(tx)

		// Row lock on the student serializes the duplicate-application check
		// against a concurrent apply from the same account.
		var err error
		student, err = userRepo.FindByIDForUpdate(userID)
		if err != nil {
			return err
		}

		if student.HasApplied(jobID) {
			return apperrors.ErrAlreadyApplied
		}

		job, err = companyRepo.FindJobByID(jobID)
		if err != nil {
			return err
		}

		company, err = companyRepo.FindByID(job.CompanyID)
		if err != nil {
			return err
		}

		owner, err = userRepo.FindByID(company.UserID)
		if err != nil {
			return err
		}

		// Recomputed from the stored fields with the same pure function used
		// at posting time.
		requiredAmount = pricing.RequiredAmount(job.RoleName, job.JobLocation, job.MinCTC, job.MaxCTC)

		if student.Balance < requiredAmount {
			return apperrors.ErrInsufficientFunds
		}

		if err := companyRepo.CreditBalance(company.ID, requiredAmount); err != nil {
			return err
		}
		if err := userRepo.DebitBalance(student.ID, requiredAmount); err != nil {
			return err
		}
		if err := companyRepo.ClaimJob(job.ID, student.ID); err != nil {
			return err
		}
		return userRepo.AppendAppliedJob(student.ID, job.ID)
	})
	if err != nil {
		return nil, s.mapApplyError(err)
	}

	job.AppliedBy = &student.ID
	company.Balance += requiredAmount

	// Awaited synchronously. The transfer above is already committed and is
	// not compensated when the notification fails; the failure is reported.
	if err := s.emailProvider.SendApplicationNotice(owner.Email, email.ApplicationData{
		RoleName:     job.RoleName,
		StudentName:  student.Name,
		StudentEmail: student.Email,
	}); err != nil {
		return nil, apperrors.EmailDeliveryFailed(err)
	}

	return &dto.ApplyJobResult{
		Message: "Job applied successfully",
		Job:     job,
		Company: company,
	}, nil
}

func (s *StudentServiceImpl) mapApplyError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case apperrors.Is(err, repositories.ErrJobNotFound):
		return apperrors.ErrJobNotFound
	case apperrors.Is(err, repositories.ErrCompanyNotFound):
		return apperrors.ErrCompanyNotFound
	case apperrors.Is(err, repositories.ErrInsufficientBalance):
		return apperrors.ErrInsufficientFunds
	case apperrors.Is(err, repositories.ErrJobAlreadyClaimed):
		return apperrors.ErrJobAlreadyClaimed
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
