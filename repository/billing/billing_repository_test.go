package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afribrok/marketplace-bff/model"
	billingrepo "github.com/afribrok/marketplace-bff/repository/billing"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, handler http.HandlerFunc) billingrepo.BillingRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return billingrepo.NewBillingRepository(marketapi.New(nil, srv.URL, 0))
}

func TestMyInvoices(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/billing/invoices/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"invoices": [{"id": "inv-1", "invoiceNumber": "INV-0001", "total": 1500, "status": "PAID"}]}`))
	})

	got, err := repo.MyInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.Invoice{ID: "inv-1", Number: "INV-0001", Amount: 1500, Currency: "ETB", Status: "paid"}, got[0])
}

func TestPlansAndProviders(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/admin/billing/plans":
			_, _ = w.Write([]byte(`[{"code": "starter", "name": "Starter", "amount": 500, "currency": "etb"}]`))
		case "/v1/admin/billing/providers":
			_, _ = w.Write([]byte(`{"items": [{"code": "chapa", "name": "Chapa"}, {"id": "stripe", "active": false}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	plans, err := repo.Plans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Plan{{ID: "starter", Name: "Starter", Price: 500, Currency: "ETB", Interval: "month", Features: []string{}}}, plans)

	providers, err := repo.Providers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.PaymentProvider{
		{ID: "chapa", Name: "Chapa", Enabled: true},
		{ID: "stripe", Name: "stripe", Enabled: false},
	}, providers)
}

func TestSubscribe(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body model.SubscribeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pro", body.PlanID)
		_, _ = w.Write([]byte(`{"id": "sub-1", "paymentUrl": "https://pay.example/1"}`))
	})

	got, err := repo.Subscribe(context.Background(), &model.SubscribeRequest{PlanID: "pro", ProviderID: "chapa"})
	require.NoError(t, err)
	assert.Equal(t, &model.Subscription{ID: "sub-1", PlanID: "pro", Status: "pending", CheckoutURL: "https://pay.example/1"}, got)
}

func TestMyInvoices_NotFound(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := repo.MyInvoices(context.Background())
	assert.True(t, marketapi.IsNotFound(err))
}
