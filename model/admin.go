package model

import "time"

type ReportedListing struct {
	ID            string     `json:"id"`
	ListingID     string     `json:"listingId"`
	Title         string     `json:"title"`
	Reason        string     `json:"reason"`
	ReporterEmail string     `json:"reporterEmail,omitempty"`
	ReportCount   int        `json:"reportCount"`
	Status        string     `json:"status"`
	ReportedAt    *time.Time `json:"reportedAt,omitempty"`
}

type Review struct {
	ID           string     `json:"id"`
	ListingID    string     `json:"listingId,omitempty"`
	ListingTitle string     `json:"listingTitle"`
	AuthorName   string     `json:"authorName"`
	Rating       float64    `json:"rating"`
	Comment      string     `json:"comment"`
	Status       string     `json:"status"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

type ReviewStats struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	AverageRating float64 `json:"averageRating"`
}

type AdminUser struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	TenantID  string     `json:"tenantId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type UserFilter struct {
	Query  string
	Role   string
	Status string
	Page   int
	Limit  int
}

type UserList struct {
	Users      []AdminUser `json:"users"`
	Pagination Pagination  `json:"pagination"`
}

type Analytics struct {
	TotalListings   int     `json:"totalListings"`
	ActiveListings  int     `json:"activeListings"`
	PendingListings int     `json:"pendingListings"`
	TotalBrokers    int     `json:"totalBrokers"`
	PendingKYC      int     `json:"pendingKyc"`
	TotalUsers      int     `json:"totalUsers"`
	Inquiries30d    int     `json:"inquiries30d"`
	Revenue30d      float64 `json:"revenue30d"`
	Currency        string  `json:"currency"`
}

type ModerationResult struct {
	ListingID string `json:"listingId"`
	Action    string `json:"action"`
	Status    string `json:"status,omitempty"`
}
