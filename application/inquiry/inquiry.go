package inquiry

import (
	"context"
	"strings"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	inquiryrepo "github.com/afribrok/marketplace-bff/repository/inquiry"
	"github.com/afribrok/marketplace-bff/thirdparty/rabbitmq"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"go.uber.org/zap"
)

const confirmationMessage = "Your inquiry has been sent. The broker will contact you soon."

type InquiryApp interface {
	Submit(ctx context.Context, listingID string, req *model.InquiryRequest) (*model.InquiryResponse, error)
}

type inquiryAppImpl struct {
	inquiryRepo inquiryrepo.InquiryRepository
	publisher   rabbitmq.EventPublisher
}

// NewInquiryApp accepts a nil publisher when events are disabled.
func NewInquiryApp(inquiryRepo inquiryrepo.InquiryRepository, publisher rabbitmq.EventPublisher) InquiryApp {
	return &inquiryAppImpl{inquiryRepo: inquiryRepo, publisher: publisher}
}

func (s *inquiryAppImpl) Submit(ctx context.Context, listingID string, req *model.InquiryRequest) (*model.InquiryResponse, error) {
	if listingID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetValidationError(validatorx.FieldErrors(err))
	}

	res, err := s.inquiryRepo.Create(ctx, listingID, req)
	if err != nil {
		logger.Ctx(ctx).Error("[Submit] err inquiryRepo.Create", zap.String("listing_id", listingID), zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	if res.Message == "" {
		res.Message = confirmationMessage
	}

	if s.publisher != nil {
		msg := rabbitmq.InquirySubmittedMessage{
			ListingID: listingID,
			InquiryID: res.ID,
			Email:     req.Email,
		}
		if session, ok := utilsContext.GetSession(ctx); ok {
			msg.TenantID = session.TenantID
		}
		if err := s.publisher.Publish(ctx, constant.EventInquirySubmitted, msg); err != nil {
			logger.Ctx(ctx).Warn("[Submit] err publisher.Publish", zap.String("listing_id", listingID), zap.String("error", err.Error()))
		}
	}

	return res, nil
}
