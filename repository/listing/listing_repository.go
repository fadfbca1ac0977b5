package listing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

type API struct {
	client *marketapi.Client
}

type ListingRepository interface {
	Search(ctx context.Context, scope constant.ListingScope, params url.Values) (*model.ListingSearchResult, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	GetBroker(ctx context.Context, id string) (*model.Broker, error)
	CreateProperty(ctx context.Context, req *model.CreateListingRequest) (string, error)
	CreateListing(ctx context.Context, propertyID string, req *model.CreateListingRequest) (string, error)
	PresignMedia(ctx context.Context, listingID string, media *model.MediaUpload) (*model.PresignedUpload, error)
	UploadMedia(ctx context.Context, upload *model.PresignedUpload, media *model.MediaUpload) error
}

func NewListingRepository(client *marketapi.Client) ListingRepository {
	return &API{client: client}
}

const (
	searchPath          = "/v1/listings/search"
	marketplaceListPath = "/v1/marketplace/listings"
	adminListingsPath   = "/v1/admin/listings"
	listingPath         = "/v1/listings/%s"
	brokerPath          = "/v1/brokers/%s"
	publicBrokerPath    = "/v1/public/brokers/%s"
	createPropertyPath  = "/v1/properties"
	createListingPath   = "/v1/listings"
	presignMediaPath    = "/v1/media/presign"
)

// Search queries the listings endpoint for the scope. The marketplace search
// endpoint is not deployed everywhere yet; a 404 falls back to the plain list.
// A 404 from the admin endpoint means an empty result.
func (a *API) Search(ctx context.Context, scope constant.ListingScope, params url.Values) (*model.ListingSearchResult, error) {
	var out searchDTO

	if scope == constant.ScopeAdmin {
		err := a.client.Get(ctx, adminListingsPath, params, &out)
		if marketapi.IsNotFound(err) {
			return toSearchResult(searchDTO{}), nil
		}
		if err != nil {
			return nil, err
		}
		return toSearchResult(out), nil
	}

	err := a.client.Get(ctx, searchPath, params, &out)
	if marketapi.IsNotFound(err) {
		out = searchDTO{}
		err = a.client.Get(ctx, marketplaceListPath, params, &out)
	}
	if err != nil {
		return nil, err
	}
	return toSearchResult(out), nil
}

func (a *API) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	var out listingDTO
	if err := a.client.Get(ctx, fmt.Sprintf(listingPath, url.PathEscape(id)), nil, &out); err != nil {
		return nil, err
	}
	l := toListing(out)
	return &l, nil
}

// GetBroker reads the tenant-scoped profile and falls back to the public one
// when the caller may not see it.
func (a *API) GetBroker(ctx context.Context, id string) (*model.Broker, error) {
	var out brokerDTO
	err := a.client.Get(ctx, fmt.Sprintf(brokerPath, url.PathEscape(id)), nil, &out)
	if marketapi.IsStatus(err, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound) {
		out = brokerDTO{}
		err = a.client.Get(ctx, fmt.Sprintf(publicBrokerPath, url.PathEscape(id)), nil, &out)
	}
	if err != nil {
		return nil, err
	}
	return toBroker(out), nil
}

type createdDTO struct {
	ID         *string `json:"id"`
	PropertyID *string `json:"propertyId"`
	ListingID  *string `json:"listingId"`
}

func (a *API) CreateProperty(ctx context.Context, req *model.CreateListingRequest) (string, error) {
	body := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"type":        strings.ToLower(req.PropertyType),
		"bedrooms":    req.Bedrooms,
		"address":     req.Address,
	}
	var out createdDTO
	if err := a.client.Post(ctx, createPropertyPath, body, &out); err != nil {
		return "", err
	}
	id := str(out.ID, out.PropertyID)
	if id == "" {
		return "", fmt.Errorf("create property: response has no id")
	}
	return id, nil
}

func (a *API) CreateListing(ctx context.Context, propertyID string, req *model.CreateListingRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = constant.DefaultCurrency
	}
	body := map[string]interface{}{
		"propertyId":  propertyID,
		"title":       req.Title,
		"purpose":     strings.ToLower(req.Purpose),
		"priceAmount": req.Price,
		"currency":    currency,
	}
	var out createdDTO
	if err := a.client.Post(ctx, createListingPath, body, &out); err != nil {
		return "", err
	}
	id := str(out.ID, out.ListingID)
	if id == "" {
		return "", fmt.Errorf("create listing: response has no id")
	}
	return id, nil
}

type presignDTO struct {
	URL       *string           `json:"url"`
	UploadURL *string           `json:"uploadUrl"`
	Method    *string           `json:"method"`
	Headers   map[string]string `json:"headers"`
	PublicURL *string           `json:"publicUrl"`
	Key       *string           `json:"key"`
}

func (a *API) PresignMedia(ctx context.Context, listingID string, media *model.MediaUpload) (*model.PresignedUpload, error) {
	body := map[string]interface{}{
		"listingId":   listingID,
		"fileName":    media.FileName,
		"contentType": media.ContentType,
		"size":        len(media.Data),
	}
	var out presignDTO
	if err := a.client.Post(ctx, presignMediaPath, body, &out); err != nil {
		return nil, err
	}
	upload := &model.PresignedUpload{
		UploadURL: str(out.UploadURL, out.URL),
		Method:    strings.ToUpper(str(out.Method)),
		Headers:   out.Headers,
		PublicURL: str(out.PublicURL, out.Key),
	}
	if upload.UploadURL == "" {
		return nil, fmt.Errorf("presign %s: response has no upload url", media.FileName)
	}
	if upload.Method == "" {
		upload.Method = http.MethodPut
	}
	return upload, nil
}

func (a *API) UploadMedia(ctx context.Context, upload *model.PresignedUpload, media *model.MediaUpload) error {
	return a.client.Upload(ctx, upload.Method, upload.UploadURL, upload.Headers, media.ContentType, media.Data)
}
