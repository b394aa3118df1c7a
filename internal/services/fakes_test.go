package services

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"anchors_backend/internal/email"
	"anchors_backend/internal/models"
	"anchors_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory doubles for the repository and email interfaces. The fake
// TxRunner invokes the callback with a nil handle; the fakes ignore it and
// mutate their own state, so service logic is exercised without a database.

type fakeTxRunner struct {
	mu sync.Mutex
}

func (f *fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fc(nil)
}

// --- user repository ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) repositories.UserRepository { return f }

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByIDForUpdate(id string) (*models.User, error) {
	return f.FindByID(id)
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) CreditBalance(userID string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Balance += amount
	return nil
}

func (f *fakeUserRepo) DebitBalance(userID string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	if user.Balance < amount {
		return repositories.ErrInsufficientBalance
	}
	user.Balance -= amount
	return nil
}

func (f *fakeUserRepo) AppendAppliedJob(userID, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.AppliedJobs = append(user.AppliedJobs, jobID)
	return nil
}

func (f *fakeUserRepo) get(id string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id]
}

// --- company repository ---

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*models.Company
	jobs      map[string]*models.Job
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: make(map[string]*models.Company),
		jobs:      make(map[string]*models.Job),
	}
}

func (f *fakeCompanyRepo) WithTx(tx *gorm.DB) repositories.CompanyRepository { return f }

func (f *fakeCompanyRepo) Create(company *models.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.companies {
		if existing.CompanyName == company.CompanyName {
			return repositories.ErrCompanyAlreadyExists
		}
	}
	copied := *company
	f.companies[company.ID] = &copied
	return nil
}

func (f *fakeCompanyRepo) FindByID(id string) (*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	copied := *company
	copied.Jobs = nil
	for _, job := range f.jobs {
		if job.CompanyID == id {
			copied.Jobs = append(copied.Jobs, *job)
		}
	}
	return &copied, nil
}

func (f *fakeCompanyRepo) FindByUserID(userID string) (*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, company := range f.companies {
		if company.UserID == userID {
			copied := *company
			return &copied, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) CreateJob(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeCompanyRepo) FindJobByID(jobID string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeCompanyRepo) ListAllJobs() ([]repositories.JobListing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var listings []repositories.JobListing
	for _, job := range f.jobs {
		company := f.companies[job.CompanyID]
		listings = append(listings, repositories.JobListing{
			ID:          job.ID,
			RoleName:    job.RoleName,
			MinCTC:      job.MinCTC,
			MaxCTC:      job.MaxCTC,
			JobLocation: job.JobLocation,
			CompanyID:   company.ID,
			CompanyName: company.CompanyName,
			Location:    company.Location,
			Employees:   company.Employees,
		})
	}
	return listings, nil
}

func (f *fakeCompanyRepo) CreditBalance(companyID string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[companyID]
	if !ok {
		return repositories.ErrCompanyNotFound
	}
	company.Balance += amount
	return nil
}

func (f *fakeCompanyRepo) DebitBalance(companyID string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	company, ok := f.companies[companyID]
	if !ok {
		return repositories.ErrCompanyNotFound
	}
	if company.Balance < amount {
		return repositories.ErrInsufficientBalance
	}
	company.Balance -= amount
	return nil
}

func (f *fakeCompanyRepo) ClaimJob(jobID, studentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	if job.AppliedBy != nil {
		return repositories.ErrJobAlreadyClaimed
	}
	job.AppliedBy = &studentID
	return nil
}

func (f *fakeCompanyRepo) getCompany(id string) *models.Company {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.companies[id]
}

func (f *fakeCompanyRepo) getJob(id string) *models.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jobs[id]
}

// --- registration repository ---

type fakeRegistrationRepo struct {
	mu      sync.Mutex
	pending map[string]*models.PendingRegistration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{pending: make(map[string]*models.PendingRegistration)}
}

func (f *fakeRegistrationRepo) Upsert(reg *models.PendingRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, existing := range f.pending {
		if existing.Email == reg.Email {
			delete(f.pending, id)
		}
	}
	copied := *reg
	f.pending[reg.ID] = &copied
	return nil
}

func (f *fakeRegistrationRepo) FindByID(id string) (*models.PendingRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.pending[id]
	if !ok {
		return nil, repositories.ErrPendingRegistrationNotFound
	}
	copied := *reg
	return &copied, nil
}

func (f *fakeRegistrationRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, id)
	return nil
}

func (f *fakeRegistrationRepo) DeleteExpired(now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, reg := range f.pending {
		if reg.Expired(now) {
			delete(f.pending, id)
		}
	}
	return nil
}

func (f *fakeRegistrationRepo) expire(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reg, ok := f.pending[id]; ok {
		reg.ExpiresAt = time.Now().Add(-time.Minute)
	}
}

func (f *fakeRegistrationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// --- email provider ---

var errSMTPDown = errors.New("smtp: connection refused")

type recordedEmail struct {
	Kind string
	To   string
	OTP  string
}

// recorderEmailProvider records dispatches and can be told to fail a
// specific send kind.
type recorderEmailProvider struct {
	mu       sync.Mutex
	sent     []recordedEmail
	failKind string
}

func (p *recorderEmailProvider) record(kind, to, otp string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failKind == kind {
		return errSMTPDown
	}
	p.sent = append(p.sent, recordedEmail{Kind: kind, To: to, OTP: otp})
	return nil
}

func (p *recorderEmailProvider) Send(e *email.Email) error {
	to := ""
	if len(e.To) > 0 {
		to = e.To[0]
	}
	return p.record("raw", to, "")
}

func (p *recorderEmailProvider) SendRegistrationOTP(to, name, otp string) error {
	return p.record("otp", to, otp)
}

func (p *recorderEmailProvider) SendRegistrationSuccess(to, name string, bonusPoints int, isStudent bool) error {
	return p.record("welcome", to, "")
}

func (p *recorderEmailProvider) SendJobPostedBroadcast(to []string, data email.JobPostedData) error {
	return p.record("job_posted", "", "")
}

func (p *recorderEmailProvider) SendApplicationNotice(to string, data email.ApplicationData) error {
	return p.record("application", to, "")
}

func (p *recorderEmailProvider) Validate() error { return nil }

func (p *recorderEmailProvider) Close() error { return nil }

func (p *recorderEmailProvider) lastOfKind(kind string) (recordedEmail, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.sent) - 1; i >= 0; i-- {
		if p.sent[i].Kind == kind {
			return p.sent[i], true
		}
	}
	return recordedEmail{}, false
}
