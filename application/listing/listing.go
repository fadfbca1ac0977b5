package listing

import (
	"context"
	stderrors "errors"
	"net/url"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	listingrepo "github.com/afribrok/marketplace-bff/repository/listing"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/afribrok/marketplace-bff/utils/logger"
	"github.com/afribrok/marketplace-bff/utils/querystate"
	validatorx "github.com/afribrok/marketplace-bff/utils/validator"
	"go.uber.org/zap"
)

type ListingApp interface {
	Browse(ctx context.Context, scope constant.ListingScope, query url.Values) (*model.ListingsView, error)
	GetListing(ctx context.Context, id string) (*model.Listing, error)
	GetBroker(ctx context.Context, id string) (*model.Broker, error)
	CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error)
}

type listingAppImpl struct {
	listingRepo listingrepo.ListingRepository
}

func NewListingApp(listingRepo listingrepo.ListingRepository) ListingApp {
	return &listingAppImpl{listingRepo: listingRepo}
}

// Browse runs one controller cycle for a request's query string. The returned
// view is usable even when err is set: it carries the error banner.
func (s *listingAppImpl) Browse(ctx context.Context, scope constant.ListingScope, query url.Values) (*model.ListingsView, error) {
	requested := querystate.Parse(query)
	c := NewController(s.listingRepo, scope, requested)

	err := c.Sync(ctx)
	if err == nil && c.Filters().Page != requested.Page {
		// the requested page was past the end; show the last real page instead
		err = c.Sync(ctx)
	}

	view := c.View()
	if err != nil && !stderrors.Is(err, ErrSuperseded) {
		return &view, err
	}
	return &view, nil
}

func (s *listingAppImpl) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	if id == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	res, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetListing] err listingRepo.GetByID", zap.String("id", id), zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

func (s *listingAppImpl) GetBroker(ctx context.Context, id string) (*model.Broker, error) {
	if id == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	res, err := s.listingRepo.GetBroker(ctx, id)
	if err != nil {
		logger.Error("[GetBroker] err listingRepo.GetBroker", zap.String("id", id), zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}
	return res, nil
}

// CreateListing creates the property, then the listing on top of it, then
// uploads media through presigned URLs. A failed upload does not undo the
// listing; the file is reported back in FailedMedia.
func (s *listingAppImpl) CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetValidationError(validatorx.FieldErrors(err))
	}

	propertyID, err := s.listingRepo.CreateProperty(ctx, req)
	if err != nil {
		logger.Error("[CreateListing] err listingRepo.CreateProperty", zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}

	listingID, err := s.listingRepo.CreateListing(ctx, propertyID, req)
	if err != nil {
		logger.Error("[CreateListing] err listingRepo.CreateListing", zap.String("property_id", propertyID), zap.String("error", err.Error()))
		return nil, errors.FromAPIError(err)
	}

	res := &model.CreateListingResponse{
		ListingID:  listingID,
		PropertyID: propertyID,
		MediaURLs:  []string{},
	}
	for i := range req.Media {
		media := &req.Media[i]
		upload, err := s.listingRepo.PresignMedia(ctx, listingID, media)
		if err != nil {
			logger.Warn("[CreateListing] err listingRepo.PresignMedia", zap.String("file", media.FileName), zap.String("error", err.Error()))
			res.FailedMedia = append(res.FailedMedia, media.FileName)
			continue
		}
		if err := s.listingRepo.UploadMedia(ctx, upload, media); err != nil {
			logger.Warn("[CreateListing] err listingRepo.UploadMedia", zap.String("file", media.FileName), zap.String("error", err.Error()))
			res.FailedMedia = append(res.FailedMedia, media.FileName)
			continue
		}
		res.MediaURLs = append(res.MediaURLs, upload.PublicURL)
	}

	return res, nil
}
