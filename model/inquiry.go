package model

type InquiryRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Message string `json:"message" validate:"required,max=2000"`
}

type InquiryResponse struct {
	ID        string `json:"id,omitempty"`
	ListingID string `json:"listingId"`
	Message   string `json:"message"`
}
