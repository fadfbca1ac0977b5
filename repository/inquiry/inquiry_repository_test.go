package inquiry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afribrok/marketplace-bff/model"
	inquiryrepo "github.com/afribrok/marketplace-bff/repository/inquiry"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/listings/lst-1/inquiries", r.URL.Path)
		var body model.InquiryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Is it still available?", body.Message)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"inquiryId": "inq-7"}`))
	}))
	defer srv.Close()

	repo := inquiryrepo.NewInquiryRepository(marketapi.New(nil, srv.URL, 0))
	res, err := repo.Create(context.Background(), "lst-1", &model.InquiryRequest{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "Is it still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, &model.InquiryResponse{ID: "inq-7", ListingID: "lst-1"}, res)
}

func TestCreate_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Forbidden resource"}`))
	}))
	defer srv.Close()

	repo := inquiryrepo.NewInquiryRepository(marketapi.New(nil, srv.URL, 0))
	_, err := repo.Create(context.Background(), "lst-1", &model.InquiryRequest{})
	require.Error(t, err)
	apiErr, ok := marketapi.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "Forbidden resource", apiErr.Message)
}
