package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	adminrepo "github.com/afribrok/marketplace-bff/repository/admin"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, handler http.HandlerFunc) adminrepo.AdminRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return adminrepo.NewAdminRepository(marketapi.New(nil, srv.URL, 0))
}

func TestReportedListings_BareArray(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/listings/reported", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": "rp-1", "listing": {"id": "lst-1", "title": "Villa in CMC"}, "reason": "Fake photos", "reports": 3, "status": "OPEN"},
			{"id": "rp-2"}
		]`))
	})

	got, err := repo.ReportedListings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ReportedListing{
		ID:          "rp-1",
		ListingID:   "lst-1",
		Title:       "Villa in CMC",
		Reason:      "Fake photos",
		ReportCount: 3,
		Status:      "open",
	}, got[0])
	assert.Equal(t, "Untitled listing", got[1].Title)
	assert.Equal(t, 1, got[1].ReportCount)
}

func TestReviews_Envelope(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/admin/reviews", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"reviews": [{"id": "rv-1", "reviewer": "Sara", "rating": 5, "content": "Great broker"}]}`))
	})

	got, err := repo.Reviews(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sara", got[0].AuthorName)
	assert.Equal(t, "Great broker", got[0].Comment)
	assert.Equal(t, "pending", got[0].Status)
}

func TestPendingReviews_EmptyBody(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reviews/pending", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	got, err := repo.PendingReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUsers_QueryAndPagination(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "abebe", q.Get("q"))
		assert.Equal(t, "BROKER", q.Get("role"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Empty(t, q.Get("status"))
		_, _ = w.Write([]byte(`{
			"data": [{"id": "u-1", "fullName": "Abebe", "email": "abebe@example.com", "role": "broker", "status": "active"}],
			"meta": {"page": 2, "limit": 20, "total": 21, "totalPages": 2}
		}`))
	})

	got, err := repo.Users(context.Background(), &model.UserFilter{Query: "abebe", Role: "BROKER", Page: 2})
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "BROKER", got.Users[0].Role)
	assert.Equal(t, "ACTIVE", got.Users[0].Status)
	assert.Equal(t, model.Pagination{Page: 2, Limit: 20, Total: 21, TotalPages: 2}, got.Pagination)
}

func TestAnalytics(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalListings": 120, "activeListings": 90, "revenue30d": 15000.5}`))
	})

	got, err := repo.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, got.TotalListings)
	assert.Equal(t, 90, got.ActiveListings)
	assert.Equal(t, 15000.5, got.Revenue30d)
	assert.Equal(t, "ETB", got.Currency)
}

func TestModerate(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/admin/listings/lst-1/feature", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": "lst-1", "status": "active"}`))
	})

	got, err := repo.Moderate(context.Background(), "lst-1", constant.ActionFeature)
	require.NoError(t, err)
	assert.Equal(t, &model.ModerationResult{ListingID: "lst-1", Action: "feature", Status: "active"}, got)
}

func TestReviewStats_NotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := repo.ReviewStats(context.Background())
	assert.True(t, marketapi.IsNotFound(err))
}
