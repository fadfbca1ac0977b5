package querystate_test

import (
	"net/url"
	"testing"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/utils/querystate"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  func(f *model.FilterState)
	}{
		{
			name:  "empty query gives defaults",
			query: "",
			want:  func(f *model.FilterState) {},
		},
		{
			name:  "all parameters",
			query: "q=bole&purpose=rent&status=verified&beds=3&type=apartment&min=1000&max=50000&sort=price-desc&page=3&per=24",
			want: func(f *model.FilterState) {
				f.Query = "bole"
				f.Purpose = constant.PurposeRent
				f.Status = constant.StatusVerified
				f.Bedrooms = constant.Bedrooms3
				f.PropertyType = constant.PropertyTypeApartment
				f.MinPrice = 1000
				f.MaxPrice = 50000
				f.SortBy = constant.SortPriceDesc
				f.Page = 3
				f.PageSize = 24
			},
		},
		{
			name:  "query alias",
			query: "query=cmc",
			want:  func(f *model.FilterState) { f.Query = "cmc" },
		},
		{
			name:  "q wins over query alias",
			query: "q=bole&query=cmc",
			want:  func(f *model.FilterState) { f.Query = "bole" },
		},
		{
			name:  "page size outside offered set falls back",
			query: "per=13",
			want:  func(f *model.FilterState) {},
		},
		{
			name:  "malformed values fall back",
			query: "purpose=barter&beds=many&min=-5&max=abc&page=0&sort=random",
			want:  func(f *model.FilterState) {},
		},
		{
			name:  "huge page is capped",
			query: "page=9223372036854775807",
			want:  func(f *model.FilterState) { f.Page = constant.MaxPage },
		},
		{
			name:  "bare 4 bedrooms means 4+",
			query: "beds=4",
			want:  func(f *model.FilterState) { f.Bedrooms = constant.Bedrooms4Plus },
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			want := model.DefaultFilterState()
			tt.want(&want)

			assert.Equal(t, want, querystate.Parse(values))
		})
	}
}

func TestEncode_OmitsDefaults(t *testing.T) {
	assert.Equal(t, "", querystate.String(model.DefaultFilterState()))

	f := model.DefaultFilterState()
	f.Purpose = constant.PurposeSale
	f.Page = 2
	assert.Equal(t, "page=2&purpose=Sale", querystate.String(f))
}

func TestEncodeParse_RoundTrip(t *testing.T) {
	states := []model.FilterState{model.DefaultFilterState()}

	f := model.DefaultFilterState()
	f.Query = "modern villa"
	f.Purpose = constant.PurposeLease
	f.Status = constant.StatusPending
	f.Bedrooms = constant.Bedrooms4Plus
	f.PropertyType = constant.PropertyTypeVilla
	f.MinPrice = 10
	f.MaxPrice = 99999999
	f.SortBy = constant.SortRating
	f.Page = 7
	f.PageSize = 48
	states = append(states, f)

	g := model.DefaultFilterState()
	g.SortBy = constant.SortNewest
	g.PageSize = 24
	states = append(states, g)

	for _, s := range states {
		encoded := querystate.String(s)
		values, err := url.ParseQuery(encoded)
		assert.NoError(t, err)
		assert.Equal(t, s, querystate.Parse(values), "round trip of %q", encoded)
	}
}

func TestNormalize(t *testing.T) {
	f := model.DefaultFilterState()
	f.PageSize = 100
	f.Page = -2
	f.Query = "  bole  "

	got := querystate.Normalize(f)
	assert.Equal(t, constant.DefaultPageSize, got.PageSize)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, "bole", got.Query)
}
