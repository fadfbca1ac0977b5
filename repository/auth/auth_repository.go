package auth

import (
	"context"
	"strings"

	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

type API struct {
	client *marketapi.Client
}

type AuthRepository interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error)
	Logout(ctx context.Context) error
}

func NewAuthRepository(client *marketapi.Client) AuthRepository {
	return &API{client: client}
}

const (
	loginPath    = "/v1/auth/login"
	registerPath = "/v1/auth/register"
	logoutPath   = "/v1/auth/logout"
)

type userDTO struct {
	Name      *string `json:"name"`
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
	TenantID  *string `json:"tenantId"`
	TenantID2 *string `json:"tenant_id"`
}

type authDTO struct {
	Token       *string  `json:"token"`
	AccessToken *string  `json:"accessToken"`
	TenantID    *string  `json:"tenantId"`
	User        *userDTO `json:"user"`
}

func (a *API) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error) {
	var out authDTO
	if err := a.client.Post(ctx, loginPath, req, &out); err != nil {
		return nil, err
	}
	return toAuthResult(out, req.Email), nil
}

func (a *API) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error) {
	var out authDTO
	if err := a.client.Post(ctx, registerPath, req, &out); err != nil {
		return nil, err
	}
	res := toAuthResult(out, req.Email)
	if res.User.Name == "" {
		res.User.Name = req.Name
	}
	return res, nil
}

func (a *API) Logout(ctx context.Context) error {
	return a.client.Post(ctx, logoutPath, struct{}{}, nil)
}

func toAuthResult(d authDTO, email string) *model.AuthResult {
	u := userDTO{}
	if d.User != nil {
		u = *d.User
	}
	tenantID := deref(d.TenantID)
	if tenantID == "" {
		tenantID = deref(u.TenantID)
	}
	if tenantID == "" {
		tenantID = deref(u.TenantID2)
	}
	token := deref(d.Token)
	if token == "" {
		token = deref(d.AccessToken)
	}
	name := deref(u.Name)
	if name == "" {
		name = deref(u.FullName)
	}
	userEmail := deref(u.Email)
	if userEmail == "" {
		userEmail = email
	}
	status := deref(u.Status)
	if status == "" {
		status = "ACTIVE"
	}
	return &model.AuthResult{
		User: model.AuthUser{
			Name:     name,
			Email:    userEmail,
			Role:     strings.ToUpper(deref(u.Role)),
			Status:   status,
			TenantID: tenantID,
		},
		Token:    token,
		TenantID: tenantID,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
