package model

import "time"

type Invoice struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Status   string     `json:"status"`
	IssuedAt *time.Time `json:"issuedAt,omitempty"`
	DueAt    *time.Time `json:"dueAt,omitempty"`
}

type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

type PaymentProvider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type SubscribeRequest struct {
	PlanID     string `json:"planId" validate:"required"`
	ProviderID string `json:"providerId" validate:"required"`
}

type Subscription struct {
	ID          string `json:"id"`
	PlanID      string `json:"planId"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}
