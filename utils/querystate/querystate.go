// Package querystate keeps listings filter state and the browse page URL in sync.
// Defaults are never written to the URL, so a pristine page has an empty query string.
package querystate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
)

// Parse seeds filter state from query parameters. Unknown or malformed values
// fall back to their defaults.
func Parse(values url.Values) model.FilterState {
	f := model.DefaultFilterState()

	q := values.Get(string(constant.FieldQuery))
	if q == "" {
		q = values.Get(constant.QueryAlias)
	}
	f.Query = strings.TrimSpace(q)

	if p, ok := constant.ParsePurpose(values.Get(string(constant.FieldPurpose))); ok {
		f.Purpose = p
	}
	if s, ok := constant.ParseStatusFilter(values.Get(string(constant.FieldStatus))); ok {
		f.Status = s
	}
	if b, ok := constant.ParseBedrooms(values.Get(string(constant.FieldBedrooms))); ok {
		f.Bedrooms = b
	}
	if t, ok := constant.ParsePropertyType(values.Get(string(constant.FieldPropertyType))); ok {
		f.PropertyType = t
	}
	f.MinPrice = parsePrice(values.Get(string(constant.FieldMinPrice)))
	f.MaxPrice = parsePrice(values.Get(string(constant.FieldMaxPrice)))
	if s, ok := constant.ParseSortBy(values.Get(string(constant.FieldSort))); ok {
		f.SortBy = s
	}
	if n, err := strconv.Atoi(values.Get(string(constant.FieldPage))); err == nil && n >= 1 {
		f.Page = min(n, constant.MaxPage)
	}
	if n, err := strconv.Atoi(values.Get(string(constant.FieldPageSize))); err == nil && constant.ValidPageSize(n) {
		f.PageSize = n
	}
	return f
}

// Encode serializes the non-default filter values.
func Encode(f model.FilterState) url.Values {
	def := model.DefaultFilterState()
	values := url.Values{}

	if q := strings.TrimSpace(f.Query); q != "" {
		values.Set(string(constant.FieldQuery), q)
	}
	if f.Purpose != "" && f.Purpose != def.Purpose {
		values.Set(string(constant.FieldPurpose), string(f.Purpose))
	}
	if f.Status != "" && f.Status != def.Status {
		values.Set(string(constant.FieldStatus), string(f.Status))
	}
	if f.Bedrooms != "" && f.Bedrooms != def.Bedrooms {
		values.Set(string(constant.FieldBedrooms), string(f.Bedrooms))
	}
	if f.PropertyType != "" && f.PropertyType != def.PropertyType {
		values.Set(string(constant.FieldPropertyType), string(f.PropertyType))
	}
	if f.MinPrice > 0 {
		values.Set(string(constant.FieldMinPrice), strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice > 0 {
		values.Set(string(constant.FieldMaxPrice), strconv.FormatInt(f.MaxPrice, 10))
	}
	if f.SortBy != "" && f.SortBy != def.SortBy {
		values.Set(string(constant.FieldSort), string(f.SortBy))
	}
	if f.Page > def.Page {
		values.Set(string(constant.FieldPage), strconv.Itoa(f.Page))
	}
	if f.PageSize != 0 && f.PageSize != def.PageSize {
		values.Set(string(constant.FieldPageSize), strconv.Itoa(f.PageSize))
	}
	return values
}

// String is the canonical query string (sorted keys, no leading "?").
func String(f model.FilterState) string {
	return Encode(f).Encode()
}

// Normalize returns f with every field brought into its valid range, the same
// value Parse(Encode(f)) would produce.
func Normalize(f model.FilterState) model.FilterState {
	return Parse(Encode(f))
}

func parsePrice(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
