package constant

import "strings"

// Purpose is the transaction type a listing is offered for.
type Purpose string

const (
	PurposeAll   Purpose = "All"
	PurposeSale  Purpose = "Sale"
	PurposeRent  Purpose = "Rent"
	PurposeLease Purpose = "Lease"
)

var purposes = []Purpose{PurposeAll, PurposeSale, PurposeRent, PurposeLease}

func ParsePurpose(s string) (Purpose, bool) {
	for _, p := range purposes {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return PurposeAll, false
}

// ListingStatus is the lifecycle status owned by the marketplace API.
type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusActive    ListingStatus = "active"
	ListingStatusPending   ListingStatus = "pending"
	ListingStatusSuspended ListingStatus = "suspended"
	ListingStatusSold      ListingStatus = "sold"
)

// StatusFilter is the simplified verification label shown in the UI.
type StatusFilter string

const (
	StatusAll      StatusFilter = "All"
	StatusVerified StatusFilter = "Verified"
	StatusPending  StatusFilter = "Pending"
)

var statusFilters = []StatusFilter{StatusAll, StatusVerified, StatusPending}

func ParseStatusFilter(s string) (StatusFilter, bool) {
	for _, st := range statusFilters {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return StatusAll, false
}

// Availability returns the API availability value for a status label.
func (s StatusFilter) Availability() (ListingStatus, bool) {
	switch s {
	case StatusVerified:
		return ListingStatusActive, true
	case StatusPending:
		return ListingStatusPending, true
	}
	return "", false
}

// DisplayStatus maps an API lifecycle status to the label shown in the UI.
func DisplayStatus(s ListingStatus) string {
	switch s {
	case ListingStatusActive:
		return string(StatusVerified)
	case ListingStatusPending:
		return string(StatusPending)
	case ListingStatusSuspended:
		return "Suspended"
	case ListingStatusSold:
		return "Sold"
	case ListingStatusDraft:
		return "Draft"
	}
	return string(StatusPending)
}

type Bedrooms string

const (
	BedroomsAny   Bedrooms = "Any"
	Bedrooms1     Bedrooms = "1"
	Bedrooms2     Bedrooms = "2"
	Bedrooms3     Bedrooms = "3"
	Bedrooms4Plus Bedrooms = "4+"
)

var bedroomOptions = []Bedrooms{BedroomsAny, Bedrooms1, Bedrooms2, Bedrooms3, Bedrooms4Plus}

func ParseBedrooms(s string) (Bedrooms, bool) {
	if s == "4" {
		return Bedrooms4Plus, true
	}
	for _, b := range bedroomOptions {
		if strings.EqualFold(string(b), s) {
			return b, true
		}
	}
	return BedroomsAny, false
}

// Min is the smallest bedroom count matched, 0 for Any.
func (b Bedrooms) Min() int {
	switch b {
	case Bedrooms1:
		return 1
	case Bedrooms2:
		return 2
	case Bedrooms3:
		return 3
	case Bedrooms4Plus:
		return 4
	}
	return 0
}

// Matches reports whether a listing with n bedrooms passes the filter.
func (b Bedrooms) Matches(n int) bool {
	switch b {
	case BedroomsAny:
		return true
	case Bedrooms4Plus:
		return n >= 4
	}
	return n == b.Min()
}

type PropertyType string

const (
	PropertyTypeAll        PropertyType = "All"
	PropertyTypeApartment  PropertyType = "Apartment"
	PropertyTypeHouse      PropertyType = "House"
	PropertyTypeVilla      PropertyType = "Villa"
	PropertyTypeCondo      PropertyType = "Condominium"
	PropertyTypeCommercial PropertyType = "Commercial"
	PropertyTypeLand       PropertyType = "Land"
)

var propertyTypes = []PropertyType{
	PropertyTypeAll, PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla,
	PropertyTypeCondo, PropertyTypeCommercial, PropertyTypeLand,
}

func ParsePropertyType(s string) (PropertyType, bool) {
	for _, t := range propertyTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return PropertyTypeAll, false
}

type SortBy string

const (
	SortDefault   SortBy = "default"
	SortNewest    SortBy = "newest"
	SortPriceAsc  SortBy = "price-asc"
	SortPriceDesc SortBy = "price-desc"
	SortRating    SortBy = "rating"
)

var sortOptions = []SortBy{SortDefault, SortNewest, SortPriceAsc, SortPriceDesc, SortRating}

func ParseSortBy(s string) (SortBy, bool) {
	for _, o := range sortOptions {
		if strings.EqualFold(string(o), s) {
			return o, true
		}
	}
	return SortDefault, false
}

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	// MaxPage caps page numbers taken from URLs so offsets stay representable.
	MaxPage = 1<<31 - 1
)

// PageSizes are the only page sizes offered by the browse pages.
var PageSizes = []int{12, 24, 48}

func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// FilterField names a filter dimension; values double as URL parameters.
type FilterField string

const (
	FieldQuery        FilterField = "q"
	FieldPurpose      FilterField = "purpose"
	FieldStatus       FilterField = "status"
	FieldBedrooms     FilterField = "beds"
	FieldPropertyType FilterField = "type"
	FieldMinPrice     FilterField = "min"
	FieldMaxPrice     FilterField = "max"
	FieldSort         FilterField = "sort"
	FieldPage         FilterField = "page"
	FieldPageSize     FilterField = "per"
)

// QueryAlias is accepted on input as an alternative to FieldQuery.
const QueryAlias = "query"

// ListingScope selects which listings endpoint a controller browses.
type ListingScope int

const (
	ScopeMarketplace ListingScope = iota
	ScopeAdmin
)

const DefaultCurrency = "ETB"

// ModerationAction is an admin mutation on a listing.
type ModerationAction string

const (
	ActionFeature   ModerationAction = "feature"
	ActionUnfeature ModerationAction = "unfeature"
	ActionSuspend   ModerationAction = "suspend"
	ActionActivate  ModerationAction = "activate"
)

func ParseModerationAction(s string) (ModerationAction, bool) {
	switch a := ModerationAction(strings.ToLower(s)); a {
	case ActionFeature, ActionUnfeature, ActionSuspend, ActionActivate:
		return a, true
	}
	return "", false
}
