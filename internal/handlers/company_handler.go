package handlers

import (
	"net/http"

	"anchors_backend/internal/middleware"
	"anchors_backend/internal/services"
	"anchors_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

// RegisterRoutes registers the company routes. Job listings and lookups
// are public; registering a profile and posting jobs require a token.
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	company := rg.Group("/company")
	{
		company.GET("/all-jobs", h.ListAllJobs)
		company.GET("/jobs/:jobId", h.GetJob)
		company.GET("/:companyId", h.GetCompany)

		authed := company.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/register", h.RegisterCompany)
			authed.POST("/post-job", h.PostJob)
		}
	}
}

func (h *CompanyHandler) RegisterCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	company, err := h.companyService.RegisterCompany(userID, h.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"company": company,
	})
}

func (h *CompanyHandler) PostJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.companyService.PostJob(userID, h.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	companyID := c.Param("companyId")

	company, err := h.companyService.GetCompany(companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) GetJob(c *gin.Context) {
	jobID := c.Param("jobId")

	details, err := h.companyService.GetJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *CompanyHandler) ListAllJobs(c *gin.Context) {
	jobs, err := h.companyService.ListAllJobs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All jobs fetched successfully",
		"jobs":    jobs,
	})
}
