package billing

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
)

type API struct {
	client *marketapi.Client
}

type BillingRepository interface {
	MyInvoices(ctx context.Context) ([]model.Invoice, error)
	Plans(ctx context.Context) ([]model.Plan, error)
	Providers(ctx context.Context) ([]model.PaymentProvider, error)
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscription, error)
}

func NewBillingRepository(client *marketapi.Client) BillingRepository {
	return &API{client: client}
}

const (
	myInvoicesPath = "/v1/billing/invoices/me"
	plansPath      = "/v1/admin/billing/plans"
	providersPath  = "/v1/admin/billing/providers"
	subscribePath  = "/v1/billing/subscribe"
)

type invoiceDTO struct {
	ID        *string    `json:"id"`
	Number    *string    `json:"number"`
	InvoiceNo *string    `json:"invoiceNumber"`
	Amount    *float64   `json:"amount"`
	Total     *float64   `json:"total"`
	Currency  *string    `json:"currency"`
	Status    *string    `json:"status"`
	IssuedAt  *time.Time `json:"issuedAt"`
	CreatedAt *time.Time `json:"createdAt"`
	DueAt     *time.Time `json:"dueAt"`
}

type planDTO struct {
	ID       *string  `json:"id"`
	Code     *string  `json:"code"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
	Interval *string  `json:"interval"`
	Features []string `json:"features"`
}

type providerDTO struct {
	ID      *string `json:"id"`
	Code    *string `json:"code"`
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
	Active  *bool   `json:"active"`
}

type subscriptionDTO struct {
	ID          *string `json:"id"`
	PlanID      *string `json:"planId"`
	Status      *string `json:"status"`
	CheckoutURL *string `json:"checkoutUrl"`
	PaymentURL  *string `json:"paymentUrl"`
}

// listDTO covers bare arrays and the {items|data|<key>: [...]} envelopes.
type listDTO[T any] struct {
	items []T
}

func (l *listDTO[T]) UnmarshalJSON(raw []byte) error {
	if len(raw) > 0 && raw[0] == '[' {
		return json.Unmarshal(raw, &l.items)
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	for _, k := range []string{"items", "data", "invoices", "plans", "providers"} {
		if v, ok := env[k]; ok && len(v) > 0 && v[0] == '[' {
			return json.Unmarshal(v, &l.items)
		}
	}
	return nil
}

func str(vals ...*string) string {
	for _, v := range vals {
		if v != nil && strings.TrimSpace(*v) != "" {
			return strings.TrimSpace(*v)
		}
	}
	return ""
}

func num(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func currency(c *string) string {
	if s := str(c); s != "" {
		return strings.ToUpper(s)
	}
	return constant.DefaultCurrency
}

func (a *API) MyInvoices(ctx context.Context) ([]model.Invoice, error) {
	var out listDTO[invoiceDTO]
	if err := a.client.Get(ctx, myInvoicesPath, nil, &out); err != nil {
		return nil, err
	}
	res := make([]model.Invoice, 0, len(out.items))
	for _, d := range out.items {
		inv := model.Invoice{
			ID:       str(d.ID),
			Number:   str(d.Number, d.InvoiceNo, d.ID),
			Amount:   num(d.Amount, d.Total),
			Currency: currency(d.Currency),
			Status:   strings.ToLower(str(d.Status)),
			IssuedAt: d.IssuedAt,
			DueAt:    d.DueAt,
		}
		if inv.IssuedAt == nil {
			inv.IssuedAt = d.CreatedAt
		}
		res = append(res, inv)
	}
	return res, nil
}

func (a *API) Plans(ctx context.Context) ([]model.Plan, error) {
	var out listDTO[planDTO]
	if err := a.client.Get(ctx, plansPath, nil, &out); err != nil {
		return nil, err
	}
	res := make([]model.Plan, 0, len(out.items))
	for _, d := range out.items {
		p := model.Plan{
			ID:       str(d.ID, d.Code),
			Name:     str(d.Name, d.Code),
			Price:    num(d.Price, d.Amount),
			Currency: currency(d.Currency),
			Interval: strings.ToLower(str(d.Interval)),
			Features: d.Features,
		}
		if p.Interval == "" {
			p.Interval = "month"
		}
		if p.Features == nil {
			p.Features = []string{}
		}
		res = append(res, p)
	}
	return res, nil
}

func (a *API) Providers(ctx context.Context) ([]model.PaymentProvider, error) {
	var out listDTO[providerDTO]
	if err := a.client.Get(ctx, providersPath, nil, &out); err != nil {
		return nil, err
	}
	res := make([]model.PaymentProvider, 0, len(out.items))
	for _, d := range out.items {
		enabled := true
		if d.Enabled != nil {
			enabled = *d.Enabled
		} else if d.Active != nil {
			enabled = *d.Active
		}
		res = append(res, model.PaymentProvider{
			ID:      str(d.ID, d.Code),
			Name:    str(d.Name, d.Code, d.ID),
			Enabled: enabled,
		})
	}
	return res, nil
}

func (a *API) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.Subscription, error) {
	var out subscriptionDTO
	if err := a.client.Post(ctx, subscribePath, req, &out); err != nil {
		return nil, err
	}
	sub := &model.Subscription{
		ID:          str(out.ID),
		PlanID:      str(out.PlanID),
		Status:      strings.ToLower(str(out.Status)),
		CheckoutURL: str(out.CheckoutURL, out.PaymentURL),
	}
	if sub.PlanID == "" {
		sub.PlanID = req.PlanID
	}
	if sub.Status == "" {
		sub.Status = "pending"
	}
	return sub, nil
}
