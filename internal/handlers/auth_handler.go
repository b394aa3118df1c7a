package handlers

import (
	"net/http"

	"anchors_backend/internal/services"
	"anchors_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes registers the registration handshake and login routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/verify-otp", h.VerifyOTP)
		user.POST("/login", h.Login)
	}
}

// Register opens a pending registration and sends the verification code
// by email. No account exists until the code is verified.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.BeginRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.BeginRegistration(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// VerifyOTP completes a pending registration, creating the account with
// its signup bonus.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.VerifyOTP(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
