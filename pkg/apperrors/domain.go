package apperrors

import (
	"net/http"
)

/*
Predeclared errors for the job-portal domain: the registration handshake,
the account ledger and the posting/application workflows.
*/

// --- Registration handshake ---

var ErrEmailAlreadyExists = New(
	CodeConflict,
	"registration",
	"User with this email already exists",
	http.StatusConflict,
)

var ErrNoPendingRegistration = New(
	CodeNoPendingRegistration,
	"registration",
	"No pending registration found",
	http.StatusBadRequest,
)

var ErrIncompleteRegistration = New(
	CodeIncompleteRegistration,
	"registration",
	"Incomplete pending registration data",
	http.StatusBadRequest,
)

var ErrOTPMismatch = New(
	CodeOTPMismatch,
	"registration",
	"Incorrect OTP",
	http.StatusBadRequest,
)

// The source kept pending registrations forever; the enforced TTL is an
// explicit improvement, so expiry gets its own code instead of folding into
// NO_PENDING_REGISTRATION.
var ErrRegistrationExpired = New(
	CodeRegistrationExpired,
	"registration",
	"Registration OTP has expired, start over",
	http.StatusGone,
)

// --- Authentication ---

var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// --- Company workflow ---

// Company-path role failures render 401 and the student path renders 403.
// Both statuses are kept as-is for client compatibility.
var ErrCompanyRoleRequired = New(
	CodeForbidden,
	"company",
	"Only companies can perform this operation",
	http.StatusUnauthorized,
)

var ErrCompanyNameTaken = New(
	CodeConflict,
	"company",
	"Company with this name already exists",
	http.StatusConflict,
)

var ErrCompanyNotFound = New(
	CodeNotFound,
	"company",
	"Company not found",
	http.StatusNotFound,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// --- Student workflow and ledger ---

var ErrStudentRoleRequired = New(
	CodeForbidden,
	"student",
	"Forbidden: Only students can apply for jobs",
	http.StatusForbidden,
)

var ErrInsufficientFunds = New(
	CodeInsufficientFunds,
	"ledger",
	"Insufficient balance",
	http.StatusBadRequest,
)

var ErrAlreadyApplied = New(
	CodeAlreadyApplied,
	"student",
	"You have already applied for this job",
	http.StatusConflict,
)

var ErrJobAlreadyClaimed = New(
	CodeJobAlreadyClaimed,
	"job",
	"Job has already been claimed by another applicant",
	http.StatusConflict,
)

// EmailDeliveryFailed reports a failed notification dispatch. Ledger writes
// committed before the dispatch are not rolled back.
func EmailDeliveryFailed(err error) *AppError {
	return Wrap(err, CodeEmailDeliveryFailed, "email", "Error sending email", http.StatusInternalServerError)
}
