package listing

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/utils/errors"
)

// applyFilter returns f with one dimension changed. Every field except page and
// page size sends the user back to page 1.
func applyFilter(f model.FilterState, field constant.FilterField, value string) (model.FilterState, error) {
	value = strings.TrimSpace(value)
	invalid := errors.SetCustomError(constant.ErrInvalidRequest)

	switch field {
	case constant.FieldQuery:
		f.Query = value
	case constant.FieldPurpose:
		p, ok := constant.ParsePurpose(value)
		if !ok && value != "" {
			return f, invalid
		}
		f.Purpose = p
	case constant.FieldStatus:
		s, ok := constant.ParseStatusFilter(value)
		if !ok && value != "" {
			return f, invalid
		}
		f.Status = s
	case constant.FieldBedrooms:
		b, ok := constant.ParseBedrooms(value)
		if !ok && value != "" {
			return f, invalid
		}
		f.Bedrooms = b
	case constant.FieldPropertyType:
		t, ok := constant.ParsePropertyType(value)
		if !ok && value != "" {
			return f, invalid
		}
		f.PropertyType = t
	case constant.FieldMinPrice, constant.FieldMaxPrice:
		var n int64
		if value != "" {
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil || v < 0 {
				return f, invalid
			}
			n = v
		}
		if field == constant.FieldMinPrice {
			f.MinPrice = n
		} else {
			f.MaxPrice = n
		}
	case constant.FieldSort:
		s, ok := constant.ParseSortBy(value)
		if !ok && value != "" {
			return f, invalid
		}
		f.SortBy = s
	case constant.FieldPage:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return f, invalid
		}
		f.Page = min(n, constant.MaxPage)
		return f, nil
	case constant.FieldPageSize:
		n, err := strconv.Atoi(value)
		if err != nil || !constant.ValidPageSize(n) {
			n = constant.DefaultPageSize
		}
		// keep the first visible item on screen
		page := min(max(f.Page, constant.DefaultPage), constant.MaxPage)
		offset := int64(page-1) * int64(f.PageSize)
		f.PageSize = n
		f.Page = max(int(offset/int64(n))+1, constant.DefaultPage)
		return f, nil
	default:
		return f, invalid
	}

	f.Page = constant.DefaultPage
	return f, nil
}

// apiParams translates filter state into the listings API vocabulary.
func apiParams(f model.FilterState) url.Values {
	params := url.Values{}
	if f.Query != "" {
		params.Set("q", f.Query)
	}
	if f.Purpose != constant.PurposeAll && f.Purpose != "" {
		params.Set("purpose", strings.ToLower(string(f.Purpose)))
	}
	if availability, ok := f.Status.Availability(); ok {
		params.Set("availability", string(availability))
	}
	if n := f.Bedrooms.Min(); n > 0 {
		params.Set("bedrooms", strconv.Itoa(n))
	}
	if f.PropertyType != constant.PropertyTypeAll && f.PropertyType != "" {
		params.Set("propertyType", strings.ToLower(string(f.PropertyType)))
	}
	if f.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatInt(f.MaxPrice, 10))
	}
	params.Set("page", strconv.Itoa(f.Page))
	params.Set("limit", strconv.Itoa(f.PageSize))
	return params
}

// applyClientFilters re-filters a fetched page for the dimensions the API does
// not filter on everywhere yet.
func applyClientFilters(listings []model.Listing, f model.FilterState) []model.Listing {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if q != "" && !strings.Contains(strings.ToLower(l.Title), q) && !strings.Contains(strings.ToLower(l.Location), q) {
			continue
		}
		if f.Purpose != constant.PurposeAll && f.Purpose != "" && l.Purpose != f.Purpose {
			continue
		}
		if f.Status != constant.StatusAll && f.Status != "" && l.DisplayStatus != string(f.Status) {
			continue
		}
		if f.Bedrooms != "" && !f.Bedrooms.Matches(l.Bedrooms) {
			continue
		}
		if f.PropertyType != constant.PropertyTypeAll && f.PropertyType != "" && l.PropertyType != f.PropertyType {
			continue
		}
		if f.MinPrice > 0 && l.PriceAmount < float64(f.MinPrice) {
			continue
		}
		if f.MaxPrice > 0 && l.PriceAmount > float64(f.MaxPrice) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// sortListings orders the current page only. newest and default keep the
// order the API returned.
func sortListings(listings []model.Listing, by constant.SortBy) []model.Listing {
	out := make([]model.Listing, len(listings))
	copy(out, listings)

	switch by {
	case constant.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceAmount < out[j].PriceAmount })
	case constant.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceAmount > out[j].PriceAmount })
	case constant.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// paginate works out the visible window. When the API ignored the page size
// and returned everything, the window is cut here.
func paginate(listings []model.Listing, server model.Pagination, f model.FilterState) ([]model.Listing, model.Pagination) {
	limit := f.PageSize
	if limit <= 0 {
		limit = constant.DefaultPageSize
	}

	if len(listings) > limit {
		total := len(listings)
		p := model.Pagination{Page: f.Page, Limit: limit, Total: total, TotalPages: totalPages(total, limit)}
		p.Page = clampPage(p.Page, p.TotalPages)
		start := (p.Page - 1) * limit
		end := start + limit
		if end > total {
			end = total
		}
		return listings[start:end], p
	}

	p := model.Pagination{Page: f.Page, Limit: limit, Total: server.Total, TotalPages: server.TotalPages}
	if server.Limit > 0 {
		p.Limit = server.Limit
	}
	if p.Total < len(listings) {
		p.Total = len(listings)
	}
	if p.TotalPages <= 0 {
		p.TotalPages = totalPages(p.Total, p.Limit)
	}
	p.Page = clampPage(p.Page, p.TotalPages)
	return listings, p
}

func totalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

func clampPage(page, pages int) int {
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}
