package admin

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
)

type paginationDTO struct {
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	Total      *int `json:"total"`
	TotalPages *int `json:"totalPages"`
}

type reportedDTO struct {
	ID            *string    `json:"id"`
	ListingID     *string    `json:"listingId"`
	Title         *string    `json:"title"`
	ListingTitle  *string    `json:"listingTitle"`
	Reason        *string    `json:"reason"`
	ReporterEmail *string    `json:"reporterEmail"`
	ReportCount   *int       `json:"reportCount"`
	Reports       *int       `json:"reports"`
	Status        *string    `json:"status"`
	ReportedAt    *time.Time `json:"reportedAt"`
	CreatedAt     *time.Time `json:"createdAt"`
	Listing       *struct {
		ID    *string `json:"id"`
		Title *string `json:"title"`
	} `json:"listing"`
}

type reviewDTO struct {
	ID           *string    `json:"id"`
	ListingID    *string    `json:"listingId"`
	ListingTitle *string    `json:"listingTitle"`
	AuthorName   *string    `json:"authorName"`
	Reviewer     *string    `json:"reviewer"`
	Rating       *float64   `json:"rating"`
	Comment      *string    `json:"comment"`
	Content      *string    `json:"content"`
	Status       *string    `json:"status"`
	CreatedAt    *time.Time `json:"createdAt"`
}

type reviewStatsDTO struct {
	Total         *int     `json:"total"`
	Pending       *int     `json:"pending"`
	Approved      *int     `json:"approved"`
	Rejected      *int     `json:"rejected"`
	AverageRating *float64 `json:"averageRating"`
}

type userDTO struct {
	ID        *string    `json:"id"`
	Name      *string    `json:"name"`
	FullName  *string    `json:"fullName"`
	Email     *string    `json:"email"`
	Role      *string    `json:"role"`
	Status    *string    `json:"status"`
	TenantID  *string    `json:"tenantId"`
	CreatedAt *time.Time `json:"createdAt"`
}

type analyticsDTO struct {
	TotalListings   *int     `json:"totalListings"`
	ActiveListings  *int     `json:"activeListings"`
	PendingListings *int     `json:"pendingListings"`
	TotalBrokers    *int     `json:"totalBrokers"`
	PendingKYC      *int     `json:"pendingKyc"`
	TotalUsers      *int     `json:"totalUsers"`
	Inquiries30d    *int     `json:"inquiries30d"`
	Revenue30d      *float64 `json:"revenue30d"`
	Currency        *string  `json:"currency"`
}

type moderationDTO struct {
	ID     *string `json:"id"`
	Status *string `json:"status"`
}

func str(vals ...*string) string {
	for _, v := range vals {
		if v != nil && strings.TrimSpace(*v) != "" {
			return strings.TrimSpace(*v)
		}
	}
	return ""
}

func integer(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func num(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// unwrapList finds the array in either a bare array body or an envelope keyed
// by one of keys, "items" or "data".
func unwrapList(raw json.RawMessage, keys ...string) (json.RawMessage, *paginationDTO, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil, nil
	}
	if raw[0] == '[' {
		return raw, nil, nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, err
	}
	var pagination *paginationDTO
	for _, k := range []string{"pagination", "meta"} {
		if p, ok := env[k]; ok {
			pagination = &paginationDTO{}
			if err := json.Unmarshal(p, pagination); err != nil {
				return nil, nil, err
			}
			break
		}
	}
	if pagination == nil {
		var flat paginationDTO
		if err := json.Unmarshal(raw, &flat); err == nil && flat.Total != nil {
			pagination = &flat
		}
	}
	for _, k := range append(keys, "items", "data") {
		if list, ok := env[k]; ok && len(list) > 0 && list[0] == '[' {
			return list, pagination, nil
		}
	}
	return nil, pagination, nil
}

func toReportedListing(d reportedDTO) model.ReportedListing {
	var nestedID, nestedTitle *string
	if d.Listing != nil {
		nestedID, nestedTitle = d.Listing.ID, d.Listing.Title
	}
	r := model.ReportedListing{
		ID:            str(d.ID),
		ListingID:     str(d.ListingID, nestedID),
		Title:         str(d.Title, d.ListingTitle, nestedTitle),
		Reason:        str(d.Reason),
		ReporterEmail: str(d.ReporterEmail),
		ReportCount:   integer(d.ReportCount, d.Reports),
		Status:        strings.ToLower(str(d.Status)),
		ReportedAt:    d.ReportedAt,
	}
	if r.ReportedAt == nil {
		r.ReportedAt = d.CreatedAt
	}
	if r.ReportCount == 0 {
		r.ReportCount = 1
	}
	if r.Status == "" {
		r.Status = "open"
	}
	if r.Title == "" {
		r.Title = "Untitled listing"
	}
	return r
}

func toReview(d reviewDTO) model.Review {
	r := model.Review{
		ID:           str(d.ID),
		ListingID:    str(d.ListingID),
		ListingTitle: str(d.ListingTitle),
		AuthorName:   str(d.AuthorName, d.Reviewer),
		Rating:       num(d.Rating),
		Comment:      str(d.Comment, d.Content),
		Status:       strings.ToLower(str(d.Status)),
		CreatedAt:    d.CreatedAt,
	}
	if r.AuthorName == "" {
		r.AuthorName = "Anonymous"
	}
	if r.Status == "" {
		r.Status = "pending"
	}
	return r
}

func toReviewStats(d reviewStatsDTO) *model.ReviewStats {
	return &model.ReviewStats{
		Total:         integer(d.Total),
		Pending:       integer(d.Pending),
		Approved:      integer(d.Approved),
		Rejected:      integer(d.Rejected),
		AverageRating: num(d.AverageRating),
	}
}

func toAdminUser(d userDTO) model.AdminUser {
	return model.AdminUser{
		ID:        str(d.ID),
		Name:      str(d.Name, d.FullName),
		Email:     str(d.Email),
		Role:      strings.ToUpper(str(d.Role)),
		Status:    strings.ToUpper(str(d.Status)),
		TenantID:  str(d.TenantID),
		CreatedAt: d.CreatedAt,
	}
}

func toAnalytics(d analyticsDTO) *model.Analytics {
	a := &model.Analytics{
		TotalListings:   integer(d.TotalListings),
		ActiveListings:  integer(d.ActiveListings),
		PendingListings: integer(d.PendingListings),
		TotalBrokers:    integer(d.TotalBrokers),
		PendingKYC:      integer(d.PendingKYC),
		TotalUsers:      integer(d.TotalUsers),
		Inquiries30d:    integer(d.Inquiries30d),
		Revenue30d:      num(d.Revenue30d),
		Currency:        str(d.Currency),
	}
	if a.Currency == "" {
		a.Currency = constant.DefaultCurrency
	}
	return a
}

func toPagination(p *paginationDTO, count int) model.Pagination {
	if p == nil {
		return model.Pagination{Total: count}
	}
	res := model.Pagination{
		Page:       integer(p.Page),
		Limit:      integer(p.Limit),
		Total:      integer(p.Total),
		TotalPages: integer(p.TotalPages),
	}
	if p.Total == nil {
		res.Total = count
	}
	return res
}
