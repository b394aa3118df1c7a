package email

// Provider is the narrow contract the workflows use for mail dispatch.
// Dispatch is fire-and-await: no retry, no queue.
type Provider interface {
	// Send sends a prepared email message.
	Send(email *Email) error

	// SendRegistrationOTP delivers the one-time code for a pending registration.
	SendRegistrationOTP(to, name, otp string) error

	// SendRegistrationSuccess delivers the post-verification welcome message
	// with the credited bonus.
	SendRegistrationSuccess(to, name string, bonusPoints int, isStudent bool) error

	// SendJobPostedBroadcast announces a new posting to the static recipient list.
	SendJobPostedBroadcast(to []string, data JobPostedData) error

	// SendApplicationNotice notifies the company account about an applicant.
	SendApplicationNotice(to string, data ApplicationData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}
