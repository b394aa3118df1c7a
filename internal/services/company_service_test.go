package services

import (
	"testing"

	"anchors_backend/internal/models"
	"anchors_backend/internal/pricing"
	"anchors_backend/internal/services/dto"
	"anchors_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type companyFixture struct {
	svc     CompanyService
	repo    *fakeCompanyRepo
	emails  *recorderEmailProvider
	ownerID string
}

func newCompanyFixture(t *testing.T) *companyFixture {
	t.Helper()
	repo := newFakeCompanyRepo()
	emails := &recorderEmailProvider{}
	svc := NewCompanyService(&fakeTxRunner{}, repo, emails, []string{"students@portal.test"})
	return &companyFixture{svc: svc, repo: repo, emails: emails, ownerID: "owner-1"}
}

func (f *companyFixture) registerCompany(t *testing.T) *models.Company {
	t.Helper()
	company, err := f.svc.RegisterCompany(f.ownerID, models.UserRoleCompany, &dto.RegisterCompanyRequest{
		CompanyName: "Acme",
		Location:    "Almaty",
		Employees:   40,
	})
	require.NoError(t, err)
	return company
}

func TestRegisterCompany(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)

	company := f.registerCompany(t)

	assert.Equal(t, "Acme", company.CompanyName)
	assert.Equal(t, models.CompanyStartingBalance, company.Balance)
	assert.Equal(t, f.ownerID, company.UserID)
}

func TestRegisterCompany_StudentRoleRejected(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)

	_, err := f.svc.RegisterCompany("student-1", models.UserRoleStudent, &dto.RegisterCompanyRequest{
		CompanyName: "Acme",
		Location:    "Almaty",
		Employees:   40,
	})

	require.ErrorIs(t, err, apperrors.ErrCompanyRoleRequired)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	// The company path historically renders this as 401, not 403.
	assert.Equal(t, 401, appErr.HTTPCode)
}

func TestRegisterCompany_NameTaken(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)
	f.registerCompany(t)

	_, err := f.svc.RegisterCompany("owner-2", models.UserRoleCompany, &dto.RegisterCompanyRequest{
		CompanyName: "Acme",
		Location:    "Astana",
		Employees:   5,
	})

	assert.ErrorIs(t, err, apperrors.ErrCompanyNameTaken)
}

func TestPostJob(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)
	company := f.registerCompany(t)

	result, err := f.svc.PostJob(f.ownerID, models.UserRoleCompany, &dto.PostJobRequest{
		RoleName:    "Engineer",
		MinCTC:      500000,
		MaxCTC:      900000,
		JobLocation: "Remote",
	})
	require.NoError(t, err)

	assert.Equal(t, "Job posted successfully", result.Message)
	assert.Equal(t, 26, result.Job.RequiredAmount)
	assert.Nil(t, result.Job.AppliedBy)

	// Flat fee debited from the company pool, independent of the listing price.
	assert.Equal(t, models.CompanyStartingBalance-models.JobPostingFee, result.Company.Balance)
	assert.Equal(t, company.ID, result.Job.CompanyID)

	_, broadcast := f.emails.lastOfKind("job_posted")
	assert.True(t, broadcast)
}

func TestPostJob_WrongRole(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)

	_, err := f.svc.PostJob("student-1", models.UserRoleStudent, &dto.PostJobRequest{
		RoleName:    "Engineer",
		MinCTC:      1,
		MaxCTC:      2,
		JobLocation: "Remote",
	})
	assert.ErrorIs(t, err, apperrors.ErrCompanyRoleRequired)
}

func TestPostJob_NoCompanyProfile(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)

	_, err := f.svc.PostJob("owner-without-profile", models.UserRoleCompany, &dto.PostJobRequest{
		RoleName:    "Engineer",
		MinCTC:      1,
		MaxCTC:      2,
		JobLocation: "Remote",
	})
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestPostJob_FeeBoundary(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)
	company := f.registerCompany(t)

	post := func() error {
		_, err := f.svc.PostJob(f.ownerID, models.UserRoleCompany, &dto.PostJobRequest{
			RoleName:    "QA",
			MinCTC:      1,
			MaxCTC:      2,
			JobLocation: "Remote",
		})
		return err
	}

	// Starting pool of 200 covers exactly four 50-point postings.
	for i := 0; i < 4; i++ {
		require.NoError(t, post())
	}
	assert.Equal(t, 0, f.repo.getCompany(company.ID).Balance)

	err := post()
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Equal(t, 0, f.repo.getCompany(company.ID).Balance)
}

func TestPostJob_BroadcastFailureAfterCommit(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)
	company := f.registerCompany(t)
	f.emails.failKind = "job_posted"

	_, err := f.svc.PostJob(f.ownerID, models.UserRoleCompany, &dto.PostJobRequest{
		RoleName:    "Engineer",
		MinCTC:      500000,
		MaxCTC:      900000,
		JobLocation: "Remote",
	})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEmailDeliveryFailed, appErr.Code)

	// The posting and the fee debit are already committed; the delivery
	// failure does not roll them back.
	assert.Equal(t, models.CompanyStartingBalance-models.JobPostingFee, f.repo.getCompany(company.ID).Balance)
	listings, listErr := f.repo.ListAllJobs()
	require.NoError(t, listErr)
	assert.Len(t, listings, 1)
}

func TestGetJob_RecomputesRequiredAmount(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)
	f.registerCompany(t)

	result, err := f.svc.PostJob(f.ownerID, models.UserRoleCompany, &dto.PostJobRequest{
		RoleName:    "Backend Developer",
		MinCTC:      800000,
		MaxCTC:      1500000,
		JobLocation: "Bangalore",
	})
	require.NoError(t, err)

	details, err := f.svc.GetJob(result.JobID)
	require.NoError(t, err)

	want := pricing.RequiredAmount("Backend Developer", "Bangalore", 800000, 1500000)
	assert.Equal(t, want, details.RequiredAmount)
	assert.Equal(t, result.Job.RequiredAmount, details.RequiredAmount)
}

func TestGetJob_NotFound(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)

	_, err := f.svc.GetJob("missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestGetCompany_NotFound(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)

	_, err := f.svc.GetCompany("missing")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestListAllJobs_JoinsCompanyFields(t *testing.T) {
	t.Parallel()

	f := newCompanyFixture(t)
	f.registerCompany(t)

	_, err := f.svc.PostJob(f.ownerID, models.UserRoleCompany, &dto.PostJobRequest{
		RoleName:    "Engineer",
		MinCTC:      500000,
		MaxCTC:      900000,
		JobLocation: "Remote",
	})
	require.NoError(t, err)

	listings, err := f.svc.ListAllJobs()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Engineer", listings[0].RoleName)
	assert.Equal(t, "Acme", listings[0].CompanyName)
	assert.Equal(t, 40, listings[0].Employees)
}
