package dto

import (
	"time"

	"github.com/google/uuid"

	m "akademiku_backend/internals/features/users/auth/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RegisterRequest struct {
	UserName     string `json:"user_name"     validate:"required,max=120"`
	UserEmail    string `json:"user_email"    validate:"required,email,max=200"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role"     validate:"required,oneof=admin teacher student"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
	CreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromUserModel(mdl m.UserModel) UserResponse {
	return UserResponse{
		UserID:    mdl.UserID,
		UserName:  mdl.UserName,
		UserEmail: mdl.UserEmail,
		UserRole:  mdl.UserRole,
		CreatedAt: mdl.UserCreatedAt,
	}
}
