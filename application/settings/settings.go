package settings

import (
	"context"
	"reflect"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	settingsrepo "github.com/afribrok/marketplace-bff/repository/settings"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/afribrok/marketplace-bff/thirdparty/rabbitmq"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"go.uber.org/zap"
)

type SettingsApp interface {
	Get(ctx context.Context) (*model.PlatformSettingsDocument, error)
	Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.PlatformSettingsDocument, error)
	ResetToDefaults(ctx context.Context) (*model.PlatformSettingsDocument, error)
}

type settingsAppImpl struct {
	settingsRepo settingsrepo.SettingsRepository
	publisher    rabbitmq.EventPublisher
}

func NewSettingsApp(settingsRepo settingsrepo.SettingsRepository, publisher rabbitmq.EventPublisher) SettingsApp {
	return &settingsAppImpl{settingsRepo: settingsRepo, publisher: publisher}
}

// IsDirty reports whether the candidate differs from the last saved settings.
func IsDirty(saved, candidate model.PlatformSettings) bool {
	return !reflect.DeepEqual(saved, candidate)
}

// Get returns the defaults at version 0 while the endpoint is not deployed.
func (s *settingsAppImpl) Get(ctx context.Context) (*model.PlatformSettingsDocument, error) {
	doc, err := s.settingsRepo.Get(ctx)
	if marketapi.IsNotFound(err) {
		return &model.PlatformSettingsDocument{Settings: DefaultPlatformSettings()}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Get] err settingsRepo.Get", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return doc, nil
}

func (s *settingsAppImpl) Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.PlatformSettingsDocument, error) {
	if err := validatorx.ValidateStruct(&req.Settings); err != nil {
		return nil, errors.SetValidationError(validatorx.FieldErrors(err))
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !IsDirty(current.Settings, req.Settings) {
		return nil, errors.SetCustomError(constant.ErrNotModified)
	}

	return s.save(ctx, "[Update]", req, false)
}

// ResetToDefaults writes the default object in full and returns what the
// server stored, so the caller can replace its form state.
func (s *settingsAppImpl) ResetToDefaults(ctx context.Context) (*model.PlatformSettingsDocument, error) {
	req := &model.UpdateSettingsRequest{Settings: DefaultPlatformSettings()}
	if current, err := s.settingsRepo.Get(ctx); err == nil {
		req.Version = current.Version
	}
	return s.save(ctx, "[ResetToDefaults]", req, true)
}

func (s *settingsAppImpl) save(ctx context.Context, op string, req *model.UpdateSettingsRequest, reset bool) (*model.PlatformSettingsDocument, error) {
	doc, err := s.settingsRepo.Put(ctx, req)
	if err != nil {
		logger.Ctx(ctx).Error(op+" err settingsRepo.Put", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}

	if s.publisher != nil {
		msg := rabbitmq.SettingsUpdatedMessage{Version: doc.Version, Reset: reset}
		if err := s.publisher.Publish(ctx, constant.EventSettingsUpdated, msg); err != nil {
			logger.Ctx(ctx).Warn(op+" err publisher.Publish", zap.String("error", err.Error()))
		}
	}
	return doc, nil
}
