package email

// Email represents an outgoing message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// OTPData feeds the registration OTP template.
type OTPData struct {
	Name string
	OTP  string
}

// WelcomeData feeds the registration-success template.
type WelcomeData struct {
	Name        string
	BonusPoints int
	IsStudent   bool
}

// JobPostedData feeds the new-job broadcast template.
type JobPostedData struct {
	RoleName    string
	MinCTC      int
	MaxCTC      int
	JobLocation string
	CompanyName string
	Location    string
	Employees   int
}

// ApplicationData feeds the job-application notice sent to the company.
type ApplicationData struct {
	RoleName     string
	StudentName  string
	StudentEmail string
}
