package billing

import (
	"context"

	"github.com/afribrok/marketplace-bff/model"
	billingrepo "github.com/afribrok/marketplace-bff/repository/billing"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"go.uber.org/zap"
)

type BillingApp interface {
	MyInvoices(ctx context.Context) ([]model.Invoice, error)
	Plans(ctx context.Context) ([]model.Plan, error)
	Providers(ctx context.Context) ([]model.PaymentProvider, error)
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscription, error)
}

type billingAppImpl struct {
	billingRepo billingrepo.BillingRepository
}

func NewBillingApp(billingRepo billingrepo.BillingRepository) BillingApp {
	return &billingAppImpl{billingRepo: billingRepo}
}

func (s *billingAppImpl) MyInvoices(ctx context.Context) ([]model.Invoice, error) {
	res, err := s.billingRepo.MyInvoices(ctx)
	if marketapi.IsNotFound(err) {
		return []model.Invoice{}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[MyInvoices] err billingRepo.MyInvoices", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *billingAppImpl) Plans(ctx context.Context) ([]model.Plan, error) {
	res, err := s.billingRepo.Plans(ctx)
	if marketapi.IsNotFound(err) {
		return []model.Plan{}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Plans] err billingRepo.Plans", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *billingAppImpl) Providers(ctx context.Context) ([]model.PaymentProvider, error) {
	res, err := s.billingRepo.Providers(ctx)
	if marketapi.IsNotFound(err) {
		return []model.PaymentProvider{}, nil
	}
	if err != nil {
		logger.Ctx(ctx).Error("[Providers] err billingRepo.Providers", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *billingAppImpl) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscription, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetValidationError(validatorx.FieldErrors(err))
	}

	res, err := s.billingRepo.Subscribe(ctx, req)
	if err != nil {
		logger.Ctx(ctx).Error("[Subscribe] err billingRepo.Subscribe",
			zap.String("plan_id", req.PlanID),
			zap.String("provider_id", req.ProviderID),
			zap.String("error", err.Error()),
		)
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}
