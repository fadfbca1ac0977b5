package model

import (
	"time"

	"github.com/afribrok/marketplace-bff/constant"
)

// Listing is the read-only display projection of a marketplace listing.
type Listing struct {
	ID            string                 `json:"id"`
	PropertyID    string                 `json:"propertyId,omitempty"`
	Title         string                 `json:"title"`
	PriceAmount   float64                `json:"priceAmount"`
	Currency      string                 `json:"currency"`
	PriceLabel    string                 `json:"priceLabel"`
	Purpose       constant.Purpose       `json:"purpose"`
	Status        constant.ListingStatus `json:"status"`
	DisplayStatus string                 `json:"displayStatus"`
	Bedrooms      int                    `json:"bedrooms"`
	PropertyType  constant.PropertyType  `json:"propertyType"`
	Location      string                 `json:"location"`
	Rating        float64                `json:"rating"`
	Featured      bool                   `json:"featured"`
	ImageURL      string                 `json:"imageUrl,omitempty"`
	BrokerID      string                 `json:"brokerId,omitempty"`
	CreatedAt     *time.Time             `json:"createdAt,omitempty"`
}

type ListingSearchResult struct {
	Listings   []Listing  `json:"listings"`
	Pagination Pagination `json:"pagination"`
}

type Broker struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Agency        string  `json:"agency,omitempty"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	LicenseNumber string  `json:"licenseNumber,omitempty"`
	Verified      bool    `json:"verified"`
	Rating        float64 `json:"rating"`
	ListingsCount int     `json:"listingsCount"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	Subcity string `json:"subcity,omitempty"`
	City    string `json:"city" validate:"required"`
	Region  string `json:"region,omitempty"`
}

type MediaUpload struct {
	FileName    string `json:"fileName" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Data        []byte `json:"data" validate:"required"`
}

// CreateListingRequest drives the property → listing → media creation flow.
type CreateListingRequest struct {
	Title        string        `json:"title" validate:"required,max=160"`
	Description  string        `json:"description" validate:"max=5000"`
	PropertyType string        `json:"propertyType" validate:"required"`
	Purpose      string        `json:"purpose" validate:"required,oneof=Sale Rent Lease"`
	Bedrooms     int           `json:"bedrooms" validate:"min=0,max=50"`
	Price        float64       `json:"price" validate:"required,gt=0"`
	Currency     string        `json:"currency" validate:"omitempty,len=3"`
	Address      Address       `json:"address"`
	Media        []MediaUpload `json:"media" validate:"dive"`
}

// PresignedUpload is where the client must send the bytes of one media file.
type PresignedUpload struct {
	UploadURL string            `json:"uploadUrl"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers,omitempty"`
	PublicURL string            `json:"publicUrl"`
}

type CreateListingResponse struct {
	ListingID   string   `json:"listingId"`
	PropertyID  string   `json:"propertyId"`
	MediaURLs   []string `json:"mediaUrls"`
	FailedMedia []string `json:"failedMedia,omitempty"`
}
