package model

import (
	"time"

	"github.com/afribrok/marketplace-bff/constant"
)

// AuthUser is the signed-in user as the front-end keeps it.
type AuthUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	TenantID string `json:"tenantId,omitempty"`
}

// Session is the auth context propagated from cookies to upstream calls.
type Session struct {
	SessionID string
	Token     string
	TenantID  string
	Role      constant.Role
}

type TokenClaims struct {
	Subject   string
	Role      constant.Role
	TenantID  string
	ExpiresAt time.Time
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=BUYER BROKER"`
}

// AuthResult is what the auth endpoints hand back to the transport layer,
// which turns it into cookies and a response body.
type AuthResult struct {
	User      AuthUser `json:"user"`
	Token     string   `json:"-"`
	TenantID  string   `json:"-"`
	SessionID string   `json:"-"`
}
