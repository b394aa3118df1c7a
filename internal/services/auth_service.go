package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"anchors_backend/internal/auth"
	"anchors_backend/internal/email"
	"anchors_backend/internal/logger"
	"anchors_backend/internal/models"
	"anchors_backend/internal/repositories"
	"anchors_backend/internal/services/dto"
	"anchors_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	BeginRegistration(req *dto.BeginRegistrationRequest) (*dto.BeginRegistrationResponse, error)
	VerifyOTP(req *dto.VerifyOTPRequest) (*dto.VerifiedUserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	registrationRepo repositories.RegistrationRepository
	emailProvider    email.Provider
	otpTTL           time.Duration
	// exposeOTP echoes the generated code in the BeginRegistration response.
	// Only enabled in development so environments without working mail
	// delivery stay usable; production responses never carry the code.
	exposeOTP bool
}

func NewAuthService(
	userRepo repositories.UserRepository,
	registrationRepo repositories.RegistrationRepository,
	emailProvider email.Provider,
	otpTTL time.Duration,
	exposeOTP bool,
) AuthService {
	if otpTTL <= 0 {
		otpTTL = 10 * time.Minute
	}
	return &AuthServiceImpl{
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		emailProvider:    emailProvider,
		otpTTL:           otpTTL,
		exposeOTP:        exposeOTP,
	}
}

// BeginRegistration starts the OTP handshake: it stores a pending registration
// and dispatches the code to the given email.
func (s *AuthServiceImpl) BeginRegistration(req *dto.BeginRegistrationRequest) (*dto.BeginRegistrationResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	code, err := generateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reg := &models.PendingRegistration{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}

	if err := s.registrationRepo.Upsert(reg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Awaited synchronously: without the code the handshake cannot complete,
	// so a delivery failure is surfaced instead of swallowed.
	if err := s.emailProvider.SendRegistrationOTP(req.Email, req.Name, code); err != nil {
		return nil, apperrors.EmailDeliveryFailed(err)
	}

	resp := &dto.BeginRegistrationResponse{
		Message:        "OTP has been sent to your email. Kindly check your email inbox!",
		RegistrationID: reg.ID,
	}
	if s.exposeOTP {
		resp.OTP = code
	}
	return resp, nil
}

// VerifyOTP completes the handshake: on a code match it creates the account
// with the role-based signup bonus and consumes the pending registration.
func (s *AuthServiceImpl) VerifyOTP(req *dto.VerifyOTPRequest) (*dto.VerifiedUserResponse, error) {
	reg, err := s.registrationRepo.FindByID(req.RegistrationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPendingRegistrationNotFound) {
			return nil, apperrors.ErrNoPendingRegistration
		}
		return nil, apperrors.InternalError(err)
	}

	if reg.Expired(time.Now()) {
		// Expired codes are unusable; drop the row so the client starts over.
		if err := s.registrationRepo.Delete(reg.ID); err != nil {
			logger.WithError(err).Warn("failed to delete expired pending registration", "registration_id", reg.ID)
		}
		return nil, apperrors.ErrRegistrationExpired
	}

	if !reg.Complete() {
		return nil, apperrors.ErrIncompleteRegistration
	}

	// Compared as decimal text. A mismatch preserves the pending registration
	// so the caller can retry with the same code.
	if req.OTP != reg.Code {
		return nil, apperrors.ErrOTPMismatch
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.NewString()},
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hashedPassword,
		Role:         reg.Role,
		Balance:      models.SignupBonus(reg.Role),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// One-shot: consuming the pending registration makes a replay fail with
	// NO_PENDING_REGISTRATION.
	if err := s.registrationRepo.Delete(reg.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendRegistrationSuccessEmail(user)

	return &dto.VerifiedUserResponse{
		Message: "User registered successfully",
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Balance: user.Balance,
	}, nil
}

// Login authenticates an account and issues a session token.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{Token: token}, nil
}

// --- Helper functions ---

// sendRegistrationSuccessEmail dispatches the welcome email in the background.
// The account already exists, so a delivery failure is only logged.
func (s *AuthServiceImpl) sendRegistrationSuccessEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}

	to, name, role, balance := user.Email, user.Name, user.Role, user.Balance
	go func() {
		if err := s.emailProvider.SendRegistrationSuccess(to, name, balance, role == models.UserRoleStudent); err != nil {
			logger.WithError(err).Warn("failed to send registration success email", "email", to)
		}
	}()
}

// generateOTP draws a uniform 6-digit code from 100000 to 999999.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
