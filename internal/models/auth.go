package models

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest creates a teacher account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// LoginRequest holds credentials for authenticating a teacher.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and teacher info.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expiresIn"`
	Teacher   TeacherIdentity `json:"teacher"`
}

// JWTClaims are the claims embedded into access tokens.
type JWTClaims struct {
	TeacherID int64 `json:"teacher_id"`
	jwt.RegisteredClaims
}
