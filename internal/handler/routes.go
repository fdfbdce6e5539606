package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/middleware"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes.
type Handlers struct {
	Attendance *AttendanceHandler
	Students   *StudentHandler
	Auth       *AuthHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts the API under prefix. Attendance routes require a
// token; auth routes are rate limited when limiter is set.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth middleware.Authenticator, limiter *middleware.RateLimiter) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	requireTeacher := middleware.JWT(auth)

	authGroup := api.Group("/auth")
	if limiter != nil {
		authGroup.Use(limiter.Middleware())
	}
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.GET("/me", requireTeacher, h.Auth.Me)

	attendance := api.Group("/attendance", requireTeacher)
	attendance.POST("/mark", h.Attendance.Mark)
	attendance.GET("/students/:className", h.Students.ListByClass)
	attendance.GET("/report", h.Attendance.Report)
	attendance.GET("/first-lecture-absentees", h.Attendance.FirstLectureAbsentees)
	attendance.GET("/subjects/:className", h.Attendance.Subjects)
}
