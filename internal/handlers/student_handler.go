package handlers

import (
	"net/http"

	"anchors_backend/internal/middleware"
	"anchors_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	*BaseHandler
	studentService services.StudentService
}

func NewStudentHandler(base *BaseHandler, studentService services.StudentService) *StudentHandler {
	return &StudentHandler{
		BaseHandler:    base,
		studentService: studentService,
	}
}

func (h *StudentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	student := rg.Group("/student")
	student.Use(middleware.AuthMiddleware())
	{
		student.POST("/apply-job/:jobId", h.ApplyJob)
	}
}

// ApplyJob charges the student the job's required amount and records the
// application.
func (h *StudentHandler) ApplyJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID := c.Param("jobId")

	result, err := h.studentService.ApplyJob(userID, h.GetUserRole(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
