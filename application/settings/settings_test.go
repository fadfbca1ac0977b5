package settings_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appsettings "github.com/afribrok/marketplace-bff/application/settings"
	"github.com/afribrok/marketplace-bff/constant"
	settingsmocks "github.com/afribrok/marketplace-bff/mocks/repository/settings"
	pubmocks "github.com/afribrok/marketplace-bff/mocks/thirdparty/rabbitmq"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/afribrok/marketplace-bff/thirdparty/rabbitmq"
	cerr "github.com/afribrok/marketplace-bff/utils/errors"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func customError(t *testing.T, err error) cerr.CustomError {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce
}

func TestDefaultPlatformSettings_AreValid(t *testing.T) {
	defaults := appsettings.DefaultPlatformSettings()
	assert.NoError(t, validatorx.ValidateStruct(&defaults))
}

func TestIsDirty(t *testing.T) {
	saved := appsettings.DefaultPlatformSettings()
	candidate := appsettings.DefaultPlatformSettings()
	assert.False(t, appsettings.IsDirty(saved, candidate))

	candidate.Security.MaxLoginAttempts = 3
	assert.True(t, appsettings.IsDirty(saved, candidate))
}

func TestSettingsApp_Get(t *testing.T) {
	t.Run("not deployed yet falls back to defaults", func(t *testing.T) {
		repo := settingsmocks.NewSettingsRepository(t)
		repo.On("Get", mock.Anything).Return(nil, &marketapi.APIError{Message: "Not Found", Status: http.StatusNotFound}).Once()

		got, err := appsettings.NewSettingsApp(repo, nil).Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, got.Version)
		assert.Equal(t, appsettings.DefaultPlatformSettings(), got.Settings)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		repo := settingsmocks.NewSettingsRepository(t)
		repo.On("Get", mock.Anything).Return(nil, &marketapi.APIError{Message: "boom", Status: http.StatusInternalServerError}).Once()

		_, err := appsettings.NewSettingsApp(repo, nil).Get(context.Background())
		assert.Equal(t, constant.ErrUpstream, customError(t, err).Type())
	})
}

func TestSettingsApp_Update(t *testing.T) {
	saved := &model.PlatformSettingsDocument{Settings: appsettings.DefaultPlatformSettings(), Version: 4}

	tests := []struct {
		name     string
		edit     func(s *model.PlatformSettings)
		mockCall func(repo *settingsmocks.SettingsRepository, pub *pubmocks.EventPublisher)
		wantErr  bool
		errCode  constant.ErrorType
		fields   []string
	}{
		{
			name: "empty site name is blocked before any request",
			edit: func(s *model.PlatformSettings) {
				s.Branding.SiteName = ""
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			fields:  []string{"branding.siteName"},
		},
		{
			name: "url format and numeric ranges",
			edit: func(s *model.PlatformSettings) {
				s.Legal.TermsURL = "not a url"
				s.Security.SessionTimeoutMinutes = 1
				s.Payments.Provider = "paypal"
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
			fields:  []string{"legal.termsUrl", "security.sessionTimeoutMinutes", "payments.provider"},
		},
		{
			name: "unchanged settings are not sent",
			edit: func(s *model.PlatformSettings) {},
			mockCall: func(repo *settingsmocks.SettingsRepository, pub *pubmocks.EventPublisher) {
				repo.On("Get", mock.Anything).Return(saved, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotModified,
		},
		{
			name: "changed settings are saved and announced",
			edit: func(s *model.PlatformSettings) {
				s.Branding.Tagline = "Find your next home"
			},
			mockCall: func(repo *settingsmocks.SettingsRepository, pub *pubmocks.EventPublisher) {
				repo.On("Get", mock.Anything).Return(saved, nil).Once()
				repo.
					On("Put", mock.Anything, mock.MatchedBy(func(r *model.UpdateSettingsRequest) bool {
						return r.Version == 4 && r.Settings.Branding.Tagline == "Find your next home"
					})).
					Return(func(_ context.Context, r *model.UpdateSettingsRequest) (*model.PlatformSettingsDocument, error) {
						return &model.PlatformSettingsDocument{Settings: r.Settings, Version: 5}, nil
					}).
					Once()
				pub.On("Publish", mock.Anything, constant.EventSettingsUpdated, rabbitmq.SettingsUpdatedMessage{Version: 5}).Return(nil).Once()
			},
		},
		{
			name: "upstream validation error keeps its message",
			edit: func(s *model.PlatformSettings) {
				s.Tenancy.DefaultPlan = "enterprise"
			},
			mockCall: func(repo *settingsmocks.SettingsRepository, pub *pubmocks.EventPublisher) {
				repo.On("Get", mock.Anything).Return(saved, nil).Once()
				repo.On("Put", mock.Anything, mock.Anything).
					Return(nil, &marketapi.APIError{Message: "Unknown plan enterprise", Status: http.StatusUnprocessableEntity}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := settingsmocks.NewSettingsRepository(t)
			pub := pubmocks.NewEventPublisher(t)
			if tt.mockCall != nil {
				tt.mockCall(repo, pub)
			}

			req := &model.UpdateSettingsRequest{Settings: appsettings.DefaultPlatformSettings(), Version: 4}
			tt.edit(&req.Settings)

			got, err := appsettings.NewSettingsApp(repo, pub).Update(context.Background(), req)
			if tt.wantErr {
				ce := customError(t, err)
				assert.Equal(t, tt.errCode, ce.Type())
				for _, f := range tt.fields {
					assert.Contains(t, ce.Fields(), f)
				}
				if len(tt.fields) > 0 {
					repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
					repo.AssertNotCalled(t, "Get", mock.Anything)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, got.Version)
			assert.Equal(t, req.Settings, got.Settings)
		})
	}
}

func TestSettingsApp_Update_SiteNameMessage(t *testing.T) {
	req := &model.UpdateSettingsRequest{Settings: appsettings.DefaultPlatformSettings()}
	req.Settings.Branding.SiteName = ""

	_, err := appsettings.NewSettingsApp(settingsmocks.NewSettingsRepository(t), nil).Update(context.Background(), req)
	ce := customError(t, err)
	assert.Equal(t, "siteName is required", ce.Fields()["branding.siteName"])
}

func TestSettingsApp_ResetToDefaults(t *testing.T) {
	repo := settingsmocks.NewSettingsRepository(t)
	pub := pubmocks.NewEventPublisher(t)

	edited := appsettings.DefaultPlatformSettings()
	edited.Branding.SiteName = "Old Name"
	repo.On("Get", mock.Anything).Return(&model.PlatformSettingsDocument{Settings: edited, Version: 7}, nil).Once()
	repo.
		On("Put", mock.Anything, &model.UpdateSettingsRequest{Settings: appsettings.DefaultPlatformSettings(), Version: 7}).
		Return(&model.PlatformSettingsDocument{Settings: appsettings.DefaultPlatformSettings(), Version: 8}, nil).
		Once()
	pub.On("Publish", mock.Anything, constant.EventSettingsUpdated, rabbitmq.SettingsUpdatedMessage{Version: 8, Reset: true}).Return(nil).Once()

	got, err := appsettings.NewSettingsApp(repo, pub).ResetToDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, appsettings.DefaultPlatformSettings(), got.Settings)
	assert.False(t, appsettings.IsDirty(appsettings.DefaultPlatformSettings(), got.Settings))
}

func TestSettingsApp_ResetToDefaults_PutFails(t *testing.T) {
	repo := settingsmocks.NewSettingsRepository(t)
	repo.On("Get", mock.Anything).Return(nil, &marketapi.APIError{Message: "Not Found", Status: http.StatusNotFound}).Once()
	repo.On("Put", mock.Anything, mock.Anything).Return(nil, &marketapi.APIError{Message: "Forbidden", Status: http.StatusForbidden}).Once()

	_, err := appsettings.NewSettingsApp(repo, nil).ResetToDefaults(context.Background())
	assert.Equal(t, constant.ErrAuthRequired, customError(t, err).Type())
}
