package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

type API struct {
	client *marketapi.Client
}

type AdminRepository interface {
	ReportedListings(ctx context.Context) ([]model.ReportedListing, error)
	Reviews(ctx context.Context, status string) ([]model.Review, error)
	PendingReviews(ctx context.Context) ([]model.Review, error)
	ReviewStats(ctx context.Context) (*model.ReviewStats, error)
	Users(ctx context.Context, filter *model.UserFilter) (*model.UserList, error)
	Analytics(ctx context.Context) (*model.Analytics, error)
	Moderate(ctx context.Context, listingID string, action constant.ModerationAction) (*model.ModerationResult, error)
}

func NewAdminRepository(client *marketapi.Client) AdminRepository {
	return &API{client: client}
}

const (
	reportedListingsPath = "/v1/admin/listings/reported"
	adminReviewsPath     = "/v1/admin/reviews"
	pendingReviewsPath   = "/v1/reviews/pending"
	reviewStatsPath      = "/v1/admin/reviews/stats"
	adminUsersPath       = "/v1/admin/users"
	analyticsPath        = "/v1/admin/analytics"
	moderateListingPath  = "/v1/admin/listings/%s/%s"
)

func (a *API) ReportedListings(ctx context.Context) ([]model.ReportedListing, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, reportedListingsPath, nil, &raw); err != nil {
		return nil, err
	}
	list, _, err := unwrapList(raw, "reports", "listings")
	if err != nil {
		return nil, err
	}
	var dtos []reportedDTO
	if len(list) > 0 {
		if err := json.Unmarshal(list, &dtos); err != nil {
			return nil, err
		}
	}
	res := make([]model.ReportedListing, 0, len(dtos))
	for _, d := range dtos {
		res = append(res, toReportedListing(d))
	}
	return res, nil
}

func (a *API) Reviews(ctx context.Context, status string) ([]model.Review, error) {
	var params url.Values
	if status != "" {
		params = url.Values{"status": {status}}
	}
	return a.reviews(ctx, adminReviewsPath, params)
}

func (a *API) PendingReviews(ctx context.Context) ([]model.Review, error) {
	return a.reviews(ctx, pendingReviewsPath, nil)
}

func (a *API) reviews(ctx context.Context, path string, params url.Values) ([]model.Review, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, path, params, &raw); err != nil {
		return nil, err
	}
	list, _, err := unwrapList(raw, "reviews")
	if err != nil {
		return nil, err
	}
	var dtos []reviewDTO
	if len(list) > 0 {
		if err := json.Unmarshal(list, &dtos); err != nil {
			return nil, err
		}
	}
	res := make([]model.Review, 0, len(dtos))
	for _, d := range dtos {
		res = append(res, toReview(d))
	}
	return res, nil
}

func (a *API) ReviewStats(ctx context.Context) (*model.ReviewStats, error) {
	var out reviewStatsDTO
	if err := a.client.Get(ctx, reviewStatsPath, nil, &out); err != nil {
		return nil, err
	}
	return toReviewStats(out), nil
}

func (a *API) Users(ctx context.Context, filter *model.UserFilter) (*model.UserList, error) {
	params := url.Values{}
	if filter != nil {
		if filter.Query != "" {
			params.Set("q", filter.Query)
		}
		if filter.Role != "" {
			params.Set("role", filter.Role)
		}
		if filter.Status != "" {
			params.Set("status", filter.Status)
		}
		if filter.Page > 0 {
			params.Set("page", strconv.Itoa(filter.Page))
		}
		if filter.Limit > 0 {
			params.Set("limit", strconv.Itoa(filter.Limit))
		}
	}

	var raw json.RawMessage
	if err := a.client.Get(ctx, adminUsersPath, params, &raw); err != nil {
		return nil, err
	}
	list, pagination, err := unwrapList(raw, "users")
	if err != nil {
		return nil, err
	}
	var dtos []userDTO
	if len(list) > 0 {
		if err := json.Unmarshal(list, &dtos); err != nil {
			return nil, err
		}
	}
	res := &model.UserList{Users: make([]model.AdminUser, 0, len(dtos))}
	for _, d := range dtos {
		res.Users = append(res.Users, toAdminUser(d))
	}
	res.Pagination = toPagination(pagination, len(res.Users))
	return res, nil
}

func (a *API) Analytics(ctx context.Context) (*model.Analytics, error) {
	var out analyticsDTO
	if err := a.client.Get(ctx, analyticsPath, nil, &out); err != nil {
		return nil, err
	}
	return toAnalytics(out), nil
}

func (a *API) Moderate(ctx context.Context, listingID string, action constant.ModerationAction) (*model.ModerationResult, error) {
	var out moderationDTO
	path := fmt.Sprintf(moderateListingPath, url.PathEscape(listingID), action)
	if err := a.client.Post(ctx, path, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &model.ModerationResult{
		ListingID: listingID,
		Action:    string(action),
		Status:    str(out.Status),
	}, nil
}
