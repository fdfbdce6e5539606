package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/attendance-tracker-api/internal/dto"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	"github.com/noah-isme/attendance-tracker-api/internal/service"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
	"github.com/noah-isme/attendance-tracker-api/pkg/response"
)

type attendanceService interface {
	MarkAndAggregate(ctx context.Context, req dto.MarkAttendanceRequest) (*service.AggregateResult, error)
	DailyReport(ctx context.Context, query dto.DailyReportQuery) ([]models.AttendanceDetail, error)
	FirstLectureAbsentees(ctx context.Context, className, date string) (*dto.FirstLectureAbsenteesResponse, error)
	ListSubjects(ctx context.Context, className string) ([]models.Subject, error)
}

type matrixRenderer interface {
	RenderMatrix(matrix models.AttendanceMatrix, className, subjectName, format string) (*service.RenderedReport, error)
}

// AttendanceHandler exposes attendance marking and reporting endpoints.
type AttendanceHandler struct {
	attendance attendanceService
	reports    matrixRenderer
	logger     *zap.Logger
}

// NewAttendanceHandler constructs an AttendanceHandler.
func NewAttendanceHandler(attendance attendanceService, reports matrixRenderer, logger *zap.Logger) *AttendanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceHandler{attendance: attendance, reports: reports, logger: logger}
}

// Mark godoc
// @Summary Mark attendance for a lecture
// @Description Records attendance for one lecture and downloads the class attendance sheet for the subject
// @Tags Attendance
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param payload body dto.MarkAttendanceRequest true "Attendance payload"
// @Param format query string false "Document format (xlsx, csv, pdf)"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/mark [post]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	const failure = "failed to mark attendance"

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"), failure)
		return
	}

	result, err := h.attendance.MarkAndAggregate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, failure)
		return
	}

	report, err := h.reports.RenderMatrix(result.Matrix, result.ClassName, result.Subject.Name, c.Query("format"))
	if err != nil {
		h.fail(c, err, failure)
		return
	}

	response.Attachment(c, report.Filename, report.ContentType, report.Payload)
}

// Report godoc
// @Summary Daily attendance report
// @Description Lists every attendance record of a class on a day with student and subject details, returned as the data member of the envelope
// @Tags Attendance
// @Produce json
// @Param className query string true "Class name"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/report [get]
func (h *AttendanceHandler) Report(c *gin.Context) {
	const failure = "failed to fetch attendance report"

	var query dto.DailyReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid report query"), failure)
		return
	}

	details, err := h.attendance.DailyReport(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err, failure)
		return
	}
	response.JSON(c, http.StatusOK, details)
}

// FirstLectureAbsentees godoc
// @Summary First lecture absentees
// @Description Roll numbers absent from the earliest lecture of the day, as {"data": {"absentees": [...]}}
// @Tags Attendance
// @Produce json
// @Param className query string true "Class name"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/first-lecture-absentees [get]
func (h *AttendanceHandler) FirstLectureAbsentees(c *gin.Context) {
	result, err := h.attendance.FirstLectureAbsentees(c.Request.Context(), c.Query("className"), c.Query("date"))
	if err != nil {
		h.fail(c, err, "failed to fetch first lecture absentees")
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Subjects godoc
// @Summary List subjects of a class
// @Description Subjects returned as the data member of the envelope
// @Tags Attendance
// @Produce json
// @Param className path string true "Class name"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Security BearerAuth
// @Router /attendance/subjects/{className} [get]
func (h *AttendanceHandler) Subjects(c *gin.Context) {
	subjects, err := h.attendance.ListSubjects(c.Request.Context(), c.Param("className"))
	if err != nil {
		h.fail(c, err, "failed to fetch subjects")
		return
	}
	response.JSON(c, http.StatusOK, subjects)
}

func (h *AttendanceHandler) fail(c *gin.Context, err error, message string) {
	h.logger.Warn(message, zap.String("path", c.FullPath()), zap.Error(err))
	c.Error(err) //nolint:errcheck
	response.Coarse(c, err, message)
}
