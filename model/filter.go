package model

import "github.com/afribrok/marketplace-bff/constant"

// FilterState is what the user is currently browsing. It mirrors the URL query string.
type FilterState struct {
	Query        string                `json:"query"`
	Purpose      constant.Purpose      `json:"purpose"`
	Status       constant.StatusFilter `json:"status"`
	Bedrooms     constant.Bedrooms     `json:"bedrooms"`
	PropertyType constant.PropertyType `json:"propertyType"`
	MinPrice     int64                 `json:"minPrice"`
	MaxPrice     int64                 `json:"maxPrice"`
	SortBy       constant.SortBy       `json:"sortBy"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Purpose:      constant.PurposeAll,
		Status:       constant.StatusAll,
		Bedrooms:     constant.BedroomsAny,
		PropertyType: constant.PropertyTypeAll,
		SortBy:       constant.SortDefault,
		Page:         constant.DefaultPage,
		PageSize:     constant.DefaultPageSize,
	}
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// FetchError is the error banner payload shown next to the retry button.
type FetchError struct {
	Message      string `json:"message"`
	Status       int    `json:"status,omitempty"`
	URL          string `json:"url,omitempty"`
	AuthRequired bool   `json:"authRequired"`
}

// ListingsView is a snapshot of a listings controller.
type ListingsView struct {
	State       string      `json:"state"`
	Filters     FilterState `json:"filters"`
	QueryString string      `json:"queryString"`
	Listings    []Listing   `json:"listings"`
	Pagination  Pagination  `json:"pagination"`
	Error       *FetchError `json:"error,omitempty"`
}
