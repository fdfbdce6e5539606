package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-tracker-api/internal/middleware"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
)

func teacherFromContext(c *gin.Context) *models.TeacherIdentity {
	value, exists := c.Get(middleware.ContextTeacherKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.TeacherIdentity)
	if !ok {
		return nil
	}
	return identity
}
