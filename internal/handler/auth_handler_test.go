package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/attendance-tracker-api/internal/middleware"
	"github.com/noah-isme/attendance-tracker-api/internal/models"
	appErrors "github.com/noah-isme/attendance-tracker-api/pkg/errors"
)

type authServiceMock struct {
	identity    *models.TeacherIdentity
	registerErr error
	login       *models.LoginResponse
	loginErr    error
}

func (m *authServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.TeacherIdentity, error) {
	return m.identity, m.registerErr
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	return m.login, m.loginErr
}

func TestAuthHandlerRegister(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{identity: &models.TeacherIdentity{ID: 1, Email: "t@example.com", Name: "T"}})
	payload, _ := json.Marshal(models.RegisterRequest{Email: "t@example.com", Password: "secret1", Name: "T"})

	c, w := newTestContext(http.MethodPost, "/auth/register", payload)
	h.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":1,"email":"t@example.com","name":"T"}}`, w.Body.String())
}

func TestAuthHandlerRegisterDuplicate(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{registerErr: appErrors.ErrEmailTaken})
	payload, _ := json.Marshal(models.RegisterRequest{Email: "t@example.com", Password: "secret1", Name: "T"})

	c, w := newTestContext(http.MethodPost, "/auth/register", payload)
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_TAKEN", decodeError(t, w).Error.Code)
}

func TestAuthHandlerLogin(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{login: &models.LoginResponse{Token: "tok", ExpiresIn: 86400}})
	payload, _ := json.Marshal(models.LoginRequest{Email: "t@example.com", Password: "secret1"})

	c, w := newTestContext(http.MethodPost, "/auth/login", payload)
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{loginErr: appErrors.ErrInvalidCredentials})
	payload, _ := json.Marshal(models.LoginRequest{Email: "t@example.com", Password: "nope"})

	c, w := newTestContext(http.MethodPost, "/auth/login", payload)
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerMe(t *testing.T) {
	h := NewAuthHandler(&authServiceMock{})

	c, w := newTestContext(http.MethodGet, "/auth/me", nil)
	h.Me(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newTestContext(http.MethodGet, "/auth/me", nil)
	c.Set(middleware.ContextTeacherKey, &models.TeacherIdentity{ID: 5, Email: "t@example.com", Name: "T"})
	h.Me(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)
}
