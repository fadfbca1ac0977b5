package billing_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	appbilling "github.com/afribrok/marketplace-bff/application/billing"
	"github.com/afribrok/marketplace-bff/constant"
	billingmocks "github.com/afribrok/marketplace-bff/mocks/repository/billing"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	cerr "github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.Type()
}

func TestBillingApp_Reads(t *testing.T) {
	notFound := &marketapi.APIError{Message: "Not Found", Status: http.StatusNotFound}

	repo := billingmocks.NewBillingRepository(t)
	app := appbilling.NewBillingApp(repo)
	ctx := context.Background()

	repo.On("MyInvoices", mock.Anything).Return(nil, notFound).Once()
	repo.On("Plans", mock.Anything).Return([]model.Plan{{ID: "starter", Name: "Starter", Price: 500, Currency: "ETB"}}, nil).Once()
	repo.On("Providers", mock.Anything).Return(nil, &marketapi.APIError{Message: "Unauthorized", Status: http.StatusUnauthorized}).Once()

	invoices, err := app.MyInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Invoice{}, invoices)

	plans, err := app.Plans(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	_, err = app.Providers(ctx)
	assert.Equal(t, constant.ErrAuthRequired, errType(t, err))
}

func TestBillingApp_Subscribe(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.SubscribeRequest
		mockCall func(repo *billingmocks.BillingRepository)
		want     *model.Subscription
		wantErr  constant.ErrorType
	}{
		{
			name: "checkout link returned",
			req:  &model.SubscribeRequest{PlanID: "pro", ProviderID: "chapa"},
			mockCall: func(repo *billingmocks.BillingRepository) {
				repo.On("Subscribe", mock.Anything, &model.SubscribeRequest{PlanID: "pro", ProviderID: "chapa"}).
					Return(&model.Subscription{ID: "sub-1", PlanID: "pro", Status: "pending", CheckoutURL: "https://checkout.chapa.co/abc"}, nil).
					Once()
			},
			want: &model.Subscription{ID: "sub-1", PlanID: "pro", Status: "pending", CheckoutURL: "https://checkout.chapa.co/abc"},
		},
		{
			name:    "missing provider is rejected locally",
			req:     &model.SubscribeRequest{PlanID: "pro"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name: "upstream rejects plan",
			req:  &model.SubscribeRequest{PlanID: "ghost", ProviderID: "chapa"},
			mockCall: func(repo *billingmocks.BillingRepository) {
				repo.On("Subscribe", mock.Anything, mock.Anything).
					Return(nil, &marketapi.APIError{Message: "Plan not found", Status: http.StatusBadRequest}).
					Once()
			},
			wantErr: constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := billingmocks.NewBillingRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			got, err := appbilling.NewBillingApp(repo).Subscribe(context.Background(), tt.req)
			if tt.wantErr != constant.Successful {
				assert.Equal(t, tt.wantErr, errType(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
