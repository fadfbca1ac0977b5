package listing

import (
	"math"
	"strings"
	"time"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The API is not consistent about field names across endpoints, so every field
// is optional and the mapper walks a fallback chain for each one.

type addressDTO struct {
	Street  *string `json:"street"`
	Subcity *string `json:"subcity"`
	City    *string `json:"city"`
	Region  *string `json:"region"`
}

type propertyDTO struct {
	ID       *string     `json:"id"`
	Title    *string     `json:"title"`
	Type     *string     `json:"type"`
	Bedrooms *int        `json:"bedrooms"`
	Address  *addressDTO `json:"address"`
	Location *string     `json:"location"`
}

type priceDTO struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
}

type listingDTO struct {
	ID           *string      `json:"id"`
	ListingID    *string      `json:"listingId"`
	PropertyID   *string      `json:"propertyId"`
	Title        *string      `json:"title"`
	Price        *priceDTO    `json:"price"`
	PriceAmount  *float64     `json:"priceAmount"`
	Currency     *string      `json:"currency"`
	Purpose      *string      `json:"purpose"`
	Status       *string      `json:"status"`
	Availability *string      `json:"availability"`
	Bedrooms     *int         `json:"bedrooms"`
	PropertyType *string      `json:"propertyType"`
	Rating       *float64     `json:"rating"`
	Featured     *bool        `json:"featured"`
	Location     *string      `json:"location"`
	Images       []string     `json:"images"`
	CoverImage   *string      `json:"coverImage"`
	BrokerID     *string      `json:"brokerId"`
	CreatedAt    *time.Time   `json:"createdAt"`
	Property     *propertyDTO `json:"property"`
}

type paginationDTO struct {
	Page       *int `json:"page"`
	Limit      *int `json:"limit"`
	Total      *int `json:"total"`
	TotalPages *int `json:"totalPages"`
}

type searchDTO struct {
	Items      []listingDTO   `json:"items"`
	Listings   []listingDTO   `json:"listings"`
	Data       []listingDTO   `json:"data"`
	Total      *int           `json:"total"`
	Page       *int           `json:"page"`
	Limit      *int           `json:"limit"`
	TotalPages *int           `json:"totalPages"`
	Pagination *paginationDTO `json:"pagination"`
}

type brokerDTO struct {
	ID            *string  `json:"id"`
	Name          *string  `json:"name"`
	FullName      *string  `json:"fullName"`
	Agency        *string  `json:"agency"`
	AgencyName    *string  `json:"agencyName"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	LicenseNumber *string  `json:"licenseNumber"`
	Status        *string  `json:"status"`
	Verified      *bool    `json:"verified"`
	Rating        *float64 `json:"rating"`
	ListingsCount *int     `json:"listingsCount"`
}

var printer = message.NewPrinter(language.English)

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

func integer(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func toListing(d listingDTO) model.Listing {
	prop := d.Property
	if prop == nil {
		prop = &propertyDTO{}
	}

	var (
		priceAmount   *float64
		priceCurrency *string
	)
	if d.Price != nil {
		priceAmount, priceCurrency = d.Price.Amount, d.Price.Currency
	}

	l := model.Listing{
		ID:          str(d.ID, d.ListingID),
		PropertyID:  str(d.PropertyID, prop.ID),
		Title:       str(d.Title, prop.Title),
		PriceAmount: num(priceAmount, d.PriceAmount),
		Currency:    str(priceCurrency, d.Currency),
		Bedrooms:    integer(d.Bedrooms, prop.Bedrooms),
		Rating:      num(d.Rating),
		Featured:    d.Featured != nil && *d.Featured,
		BrokerID:    str(d.BrokerID),
		CreatedAt:   d.CreatedAt,
	}
	if l.Title == "" {
		l.Title = "Untitled listing"
	}
	if l.Currency == "" {
		l.Currency = constant.DefaultCurrency
	}

	l.Purpose, _ = constant.ParsePurpose(str(d.Purpose))
	l.Status = constant.ListingStatus(strings.ToLower(str(d.Availability, d.Status)))
	if l.Status == "" {
		l.Status = constant.ListingStatusPending
	}
	l.DisplayStatus = constant.DisplayStatus(l.Status)
	l.PropertyType, _ = constant.ParsePropertyType(str(d.PropertyType, prop.Type))
	l.Location = location(d, prop)
	l.PriceLabel = PriceLabel(l.PriceAmount, l.Currency, l.Purpose)

	if cover := str(d.CoverImage); cover != "" {
		l.ImageURL = cover
	} else if len(d.Images) > 0 {
		l.ImageURL = d.Images[0]
	}
	return l
}

func location(d listingDTO, prop *propertyDTO) string {
	if prop.Address != nil {
		var parts []string
		for _, p := range []*string{prop.Address.Street, prop.Address.Subcity, prop.Address.City, prop.Address.Region} {
			if s := str(p); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	if s := str(d.Location, prop.Location); s != "" {
		return s
	}
	return "Location unavailable"
}

// PriceLabel formats a price the way cards show it, e.g. "ETB 45,000 /mo".
func PriceLabel(amount float64, currency string, purpose constant.Purpose) string {
	if amount <= 0 {
		return "Price on request"
	}
	label := printer.Sprintf("%s %d", currency, int64(math.Round(amount)))
	if purpose == constant.PurposeRent {
		label += " /mo"
	}
	return label
}

func toSearchResult(d searchDTO) *model.ListingSearchResult {
	items := d.Items
	if items == nil {
		items = d.Listings
	}
	if items == nil {
		items = d.Data
	}

	listings := make([]model.Listing, 0, len(items))
	for _, it := range items {
		listings = append(listings, toListing(it))
	}

	p := d.Pagination
	if p == nil {
		p = &paginationDTO{}
	}
	pagination := model.Pagination{
		Page:       integer(p.Page, d.Page),
		Limit:      integer(p.Limit, d.Limit),
		Total:      integer(p.Total, d.Total),
		TotalPages: integer(p.TotalPages, d.TotalPages),
	}
	if p.Total == nil && d.Total == nil {
		pagination.Total = len(listings)
	}
	return &model.ListingSearchResult{Listings: listings, Pagination: pagination}
}

func toBroker(d brokerDTO) *model.Broker {
	verified := d.Verified != nil && *d.Verified
	if d.Verified == nil {
		verified = strings.EqualFold(str(d.Status), "approved") || strings.EqualFold(str(d.Status), "verified")
	}
	return &model.Broker{
		ID:            str(d.ID),
		Name:          str(d.Name, d.FullName),
		Agency:        str(d.Agency, d.AgencyName),
		Email:         str(d.Email),
		Phone:         str(d.Phone),
		LicenseNumber: str(d.LicenseNumber),
		Verified:      verified,
		Rating:        num(d.Rating),
		ListingsCount: integer(d.ListingsCount),
	}
}
