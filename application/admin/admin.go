package admin

import (
	"context"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	adminrepo "github.com/afribrok/marketplace-bff/repository/admin"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/afribrok/marketplace-bff/thirdparty/rabbitmq"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	"go.uber.org/zap"
)

// AdminApp serves the admin console read models. Several admin endpoints are
// not deployed on every environment; a 404 from them reads as "nothing yet".
type AdminApp interface {
	ReportedListings(ctx context.Context) ([]model.ReportedListing, error)
	Reviews(ctx context.Context, status string) ([]model.Review, error)
	ReviewStats(ctx context.Context) (*model.ReviewStats, error)
	Users(ctx context.Context, filter *model.UserFilter) (*model.UserList, error)
	Analytics(ctx context.Context) (*model.Analytics, error)
	Moderate(ctx context.Context, listingID, action string) (*model.ModerationResult, error)
}

type adminAppImpl struct {
	adminRepo adminrepo.AdminRepository
	publisher rabbitmq.EventPublisher
}

func NewAdminApp(adminRepo adminrepo.AdminRepository, publisher rabbitmq.EventPublisher) AdminApp {
	return &adminAppImpl{adminRepo: adminRepo, publisher: publisher}
}

func (s *adminAppImpl) ReportedListings(ctx context.Context) ([]model.ReportedListing, error) {
	res, err := s.adminRepo.ReportedListings(ctx)
	if marketapi.IsNotFound(err) {
		return []model.ReportedListing{}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[ReportedListings] err adminRepo.ReportedListings", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

// Reviews falls back to the public pending queue whenever the admin endpoint
// fails, whatever the reason.
func (s *adminAppImpl) Reviews(ctx context.Context, status string) ([]model.Review, error) {
	res, err := s.adminRepo.Reviews(ctx, status)
	if err == nil {
		return res, nil
	}
	logger.Ctx(ctx).Warn("[Reviews] err adminRepo.Reviews, using pending queue", zap.String("error", err.Error()))

	res, err = s.adminRepo.PendingReviews(ctx)
	if marketapi.IsNotFound(err) {
		return []model.Review{}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Reviews] err adminRepo.PendingReviews", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *adminAppImpl) ReviewStats(ctx context.Context) (*model.ReviewStats, error) {
	res, err := s.adminRepo.ReviewStats(ctx)
	if marketapi.IsNotFound(err) {
		return &model.ReviewStats{}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[ReviewStats] err adminRepo.ReviewStats", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *adminAppImpl) Users(ctx context.Context, filter *model.UserFilter) (*model.UserList, error) {
	res, err := s.adminRepo.Users(ctx, filter)
	if marketapi.IsNotFound(err) {
		empty := &model.UserList{Users: []model.AdminUser{}}
		if filter != nil {
			empty.Pagination.Page, empty.Pagination.Limit = filter.Page, filter.Limit
		}
		return empty, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Users] err adminRepo.Users", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *adminAppImpl) Analytics(ctx context.Context) (*model.Analytics, error) {
	res, err := s.adminRepo.Analytics(ctx)
	if marketapi.IsNotFound(err) {
		return &model.Analytics{Currency: constant.DefaultCurrency}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Analytics] err adminRepo.Analytics", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *adminAppImpl) Moderate(ctx context.Context, listingID, action string) (*model.ModerationResult, error) {
	act, ok := constant.ParseModerationAction(action)
	if listingID == "" || !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	res, err := s.adminRepo.Moderate(ctx, listingID, act)
	if err != nil {
		logger.Ctx(ctx).Error("[Moderate] err adminRepo.Moderate",
			zap.String("listing_id", listingID),
			zap.String("action", string(act)),
			zap.String("error", err.Error()),
		)
		return nil, errors.FromAPIError(err)
	}

	if s.publisher != nil {
		msg := rabbitmq.ListingModeratedMessage{ListingID: listingID, Action: string(act)}
		if session, ok := utilsContext.GetSession(ctx); ok {
			msg.Role = string(session.Role)
			msg.TenantID = session.TenantID
		}
		if err := s.publisher.Publish(ctx, constant.EventListingModerated, msg); err != nil {
			logger.Ctx(ctx).Warn("[Moderate] err publisher.Publish", zap.String("listing_id", listingID), zap.String("error", err.Error()))
		}
	}
	return res, nil
}
