package inquiry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

type API struct {
	client *marketapi.Client
}

type InquiryRepository interface {
	Create(ctx context.Context, listingID string, req *model.InquiryRequest) (*model.InquiryResponse, error)
}

func NewInquiryRepository(client *marketapi.Client) InquiryRepository {
	return &API{client: client}
}

const inquiriesPath = "/v1/listings/%s/inquiries"

type inquiryDTO struct {
	ID        *string `json:"id"`
	InquiryID *string `json:"inquiryId"`
	Message   *string `json:"message"`
}

func (a *API) Create(ctx context.Context, listingID string, req *model.InquiryRequest) (*model.InquiryResponse, error) {
	var out inquiryDTO
	if err := a.client.Post(ctx, fmt.Sprintf(inquiriesPath, url.PathEscape(listingID)), req, &out); err != nil {
		return nil, err
	}

	res := &model.InquiryResponse{ListingID: listingID}
	switch {
	case out.ID != nil:
		res.ID = *out.ID
	case out.InquiryID != nil:
		res.ID = *out.InquiryID
	}
	if out.Message != nil {
		res.Message = *out.Message
	}
	return res, nil
}
