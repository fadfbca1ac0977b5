package user

import (
	"context"
	"strings"
	"time"

	"github.com/afribrok/marketplace-bff/cmd/config"
	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	authrepo "github.com/afribrok/marketplace-bff/repository/auth"
	redisrepo "github.com/afribrok/marketplace-bff/repository/redis"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (*model.AuthUser, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.TokenClaims, error)
}

type UserAppImpl struct {
	config    *config.Config
	authRepo  authrepo.AuthRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, authRepo authrepo.AuthRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		authRepo:  authRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResult, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetValidationError(validatorx.FieldErrors(err))
	}

	res, err := s.authRepo.Login(ctx, req)
	if err != nil {
		logger.Ctx(ctx).Warn("[Login] err authRepo.Login", zap.String("error", err.Error()))
		if apiErr := errors.FromAPIError(err); apiErr.Type() == constant.ErrAuthRequired {
			return nil, errors.SetCustomErrorMessage(constant.ErrUnauthorize, "invalid email or password")
		}
		return nil, errors.FromAPIError(err)
	}

	return s.startSession(ctx, "[Login]", res)
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResult, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetValidationError(validatorx.FieldErrors(err))
	}
	if req.Role == "" {
		req.Role = string(constant.RoleBuyer)
	}

	res, err := s.authRepo.Register(ctx, req)
	if err != nil {
		logger.Ctx(ctx).Warn("[Register] err authRepo.Register", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}

	return s.startSession(ctx, "[Register]", res)
}

// startSession keeps the user in Redis under a fresh session id.
func (s *UserAppImpl) startSession(ctx context.Context, op string, res *model.AuthResult) (*model.AuthResult, error) {
	if res.Token == "" {
		logger.Ctx(ctx).Error(op + " upstream returned no token")
		return nil, errors.SetCustomErrorMessage(constant.ErrUpstream, "sign in did not return a session token")
	}
	if res.User.Role == "" {
		if claims, err := s.ValidateToken(ctx, res.Token); err == nil {
			res.User.Role = string(claims.Role)
			if res.TenantID == "" {
				res.TenantID = claims.TenantID
				res.User.TenantID = claims.TenantID
			}
		}
	}

	res.SessionID = uuid.NewString()
	if err := s.redisRepo.SetAuthUser(ctx, res.SessionID, &res.User, s.config.Auth.SessionExpTime); err != nil {
		logger.Ctx(ctx).Error(op+" err redisRepo.SetAuthUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return res, nil
}

// Logout always succeeds for the caller; local state is cleared even when the
// API cannot be reached.
func (s *UserAppImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID != "" {
		if err := s.redisRepo.DeleteAuthUser(ctx, sessionID); err != nil {
			logger.Ctx(ctx).Warn("[Logout] err redisRepo.DeleteAuthUser", zap.String("error", err.Error()))
		}
	}
	if err := s.authRepo.Logout(ctx); err != nil {
		logger.Ctx(ctx).Warn("[Logout] err authRepo.Logout", zap.String("error", err.Error()))
	}
	return nil
}

func (s *UserAppImpl) Me(ctx context.Context, sessionID string) (*model.AuthUser, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}
	user, err := s.redisRepo.GetAuthUser(ctx, sessionID)
	if err != nil {
		logger.Ctx(ctx).Error("[Me] err redisRepo.GetAuthUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}
	return user, nil
}

type claims struct {
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}

// ValidateToken reads the role and tenant from an API token. With a secret the
// signature is checked; without one the API stays the authority and only the
// expiry is enforced here.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.SetCustomError(constant.ErrAuthRequired)
	}

	c := &claims{}
	if secret := s.config.Auth.JWTSecret; secret != "" {
		token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			logger.Ctx(ctx).Debug("[ValidateToken] invalid token", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrAuthRequired)
		}
	} else {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, c); err != nil {
			logger.Ctx(ctx).Debug("[ValidateToken] malformed token", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrAuthRequired)
		}
		if c.ExpiresAt != nil && c.ExpiresAt.Before(time.Now()) {
			return nil, errors.SetCustomError(constant.ErrAuthRequired)
		}
	}

	res := &model.TokenClaims{
		Subject:  c.Subject,
		Role:     constant.Role(strings.ToUpper(c.Role)),
		TenantID: c.TenantID,
	}
	if c.ExpiresAt != nil {
		res.ExpiresAt = c.ExpiresAt.Time
	}
	return res, nil
}
