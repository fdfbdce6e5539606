package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/models"
	"github.com/noah-isme/attendance-tracker-api/pkg/response"
)

type studentService interface {
	ListByClass(ctx context.Context, className string) ([]models.Student, error)
}

// StudentHandler serves class rosters.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(svc studentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// ListByClass godoc
// @Summary List students of a class
// @Description Students ordered by roll number, returned as the data member of the envelope
// @Tags Attendance
// @Produce json
// @Param className path string true "Class name"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/students/{className} [get]
func (h *StudentHandler) ListByClass(c *gin.Context) {
	students, err := h.service.ListByClass(c.Request.Context(), c.Param("className"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		response.Coarse(c, err, "failed to fetch students")
		return
	}
	response.JSON(c, http.StatusOK, students)
}
