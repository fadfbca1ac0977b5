package listing_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	applisting "github.com/afribrok/marketplace-bff/application/listing"
	"github.com/afribrok/marketplace-bff/constant"
	listingmocks "github.com/afribrok/marketplace-bff/mocks/repository/listing"
	"github.com/afribrok/marketplace-bff/model"
	"github.com/afribrok/marketplace-bff/thirdparty/marketapi"
	cerr "github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func marketFixture() []model.Listing {
	return []model.Listing{
		{ID: "1", Title: "Modern 3BR Apartment in Bole", Location: "Bole, Addis Ababa", Purpose: constant.PurposeRent, DisplayStatus: "Verified", Bedrooms: 3, PropertyType: constant.PropertyTypeApartment, PriceAmount: 45000},
		{ID: "2", Title: "Luxury Villa in CMC", Location: "CMC, Addis Ababa", Purpose: constant.PurposeSale, DisplayStatus: "Verified", Bedrooms: 5, PropertyType: constant.PropertyTypeVilla, PriceAmount: 25000000},
		{ID: "3", Title: "Cozy Studio near the Airport", Location: "Bole, Addis Ababa", Purpose: constant.PurposeRent, DisplayStatus: "Pending", Bedrooms: 1, PropertyType: constant.PropertyTypeApartment, PriceAmount: 15000},
		{ID: "4", Title: "Family House in Kazanchis", Location: "Kazanchis, Addis Ababa", Purpose: constant.PurposeSale, DisplayStatus: "Pending", Bedrooms: 4, PropertyType: constant.PropertyTypeHouse, PriceAmount: 12000000},
		{ID: "5", Title: "Commercial Space on Bole Road", Location: "Bole Road, Addis Ababa", Purpose: constant.PurposeLease, DisplayStatus: "Verified", PropertyType: constant.PropertyTypeCommercial, PriceAmount: 80000},
	}
}

func queryIs(q string) interface{} {
	return mock.MatchedBy(func(v url.Values) bool { return v.Get("q") == q })
}

func TestController_FetchAppliesClientFilters(t *testing.T) {
	repo := listingmocks.NewListingRepository(t)
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, mock.MatchedBy(func(v url.Values) bool {
			return v.Get("q") == "bole" && v.Get("purpose") == "rent" && v.Get("availability") == "active"
		})).
		Return(&model.ListingSearchResult{Listings: marketFixture()}, nil).
		Once()

	c := applisting.NewController(repo, constant.ScopeMarketplace, model.DefaultFilterState())
	require.NoError(t, c.SetFilter(constant.FieldQuery, "bole"))
	require.NoError(t, c.SetFilter(constant.FieldPurpose, "Rent"))
	require.NoError(t, c.SetFilter(constant.FieldStatus, "Verified"))
	require.NoError(t, c.Fetch(context.Background()))

	view := c.View()
	assert.Equal(t, "success", view.State)
	require.Len(t, view.Listings, 1)
	assert.Equal(t, "Modern 3BR Apartment in Bole", view.Listings[0].Title)
	assert.Equal(t, "purpose=Rent&q=bole&status=Verified", view.QueryString)
	assert.Nil(t, view.Error)
}

func TestController_SetFilterResetsPage(t *testing.T) {
	f := model.DefaultFilterState()
	f.Page = 5
	c := applisting.NewController(listingmocks.NewListingRepository(t), constant.ScopeMarketplace, f)

	require.NoError(t, c.SetFilter(constant.FieldPage, "3"))
	assert.Equal(t, 3, c.Filters().Page)

	require.NoError(t, c.SetFilter(constant.FieldPropertyType, "Villa"))
	assert.Equal(t, 1, c.Filters().Page)
	assert.Equal(t, "type=Villa", c.QueryString())
}

func TestController_LastRequestWins(t *testing.T) {
	repo := listingmocks.NewListingRepository(t)
	started := make(chan struct{})

	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, queryIs("bole")).
		Run(func(args mock.Arguments) {
			close(started)
			<-args.Get(0).(context.Context).Done()
		}).
		Return(&model.ListingSearchResult{Listings: marketFixture()[:1]}, nil).
		Once()
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, queryIs("cmc")).
		Return(&model.ListingSearchResult{Listings: marketFixture()[1:2]}, nil).
		Once()

	c := applisting.NewController(repo, constant.ScopeMarketplace, model.DefaultFilterState())
	require.NoError(t, c.SetFilter(constant.FieldQuery, "bole"))

	firstErr := make(chan error, 1)
	go func() { firstErr <- c.Fetch(context.Background()) }()
	<-started

	require.NoError(t, c.SetFilter(constant.FieldQuery, "cmc"))
	require.NoError(t, c.Fetch(context.Background()))

	assert.ErrorIs(t, <-firstErr, applisting.ErrSuperseded)

	view := c.View()
	require.Len(t, view.Listings, 1)
	assert.Equal(t, "2", view.Listings[0].ID)
	assert.Equal(t, "success", view.State)
}

func TestController_FilterChangeDropsInFlightResponse(t *testing.T) {
	repo := listingmocks.NewListingRepository(t)
	started := make(chan struct{})
	release := make(chan struct{})

	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, queryIs("bole")).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&model.ListingSearchResult{Listings: marketFixture()[:1]}, nil).
		Once()

	c := applisting.NewController(repo, constant.ScopeMarketplace, model.DefaultFilterState())
	require.NoError(t, c.SetFilter(constant.FieldQuery, "bole"))

	fetchErr := make(chan error, 1)
	go func() { fetchErr <- c.Fetch(context.Background()) }()
	<-started

	require.NoError(t, c.SetFilter(constant.FieldQuery, "villa"))
	close(release)

	assert.ErrorIs(t, <-fetchErr, applisting.ErrSuperseded)

	view := c.View()
	assert.Equal(t, "idle", view.State)
	assert.Equal(t, "villa", view.Filters.Query)
	assert.Empty(t, view.Listings)

	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, queryIs("villa")).
		Return(&model.ListingSearchResult{Listings: marketFixture()[1:2]}, nil).
		Once()
	require.NoError(t, c.Sync(context.Background()))

	view = c.View()
	assert.Equal(t, "success", view.State)
	require.Len(t, view.Listings, 1)
	assert.Equal(t, "2", view.Listings[0].ID)
}

func TestController_Unauthorized(t *testing.T) {
	repo := listingmocks.NewListingRepository(t)
	repo.
		On("Search", mock.Anything, constant.ScopeAdmin, mock.Anything).
		Return(nil, &marketapi.APIError{Message: "Unauthorized", Status: http.StatusUnauthorized, URL: "http://api/v1/admin/listings"}).
		Once()

	c := applisting.NewController(repo, constant.ScopeAdmin, model.DefaultFilterState())
	err := c.Fetch(context.Background())

	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrAuthRequired], ce.ErrorCode())

	view := c.View()
	assert.Equal(t, "error", view.State)
	require.NotNil(t, view.Error)
	assert.True(t, view.Error.AuthRequired)
	assert.Equal(t, http.StatusUnauthorized, view.Error.Status)
	assert.Contains(t, view.Error.Message, "sign in")
}

func TestController_ErrorKeepsListingsAndRetry(t *testing.T) {
	repo := listingmocks.NewListingRepository(t)
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, mock.Anything).
		Return(&model.ListingSearchResult{Listings: marketFixture()}, nil).
		Once()
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, mock.Anything).
		Return(nil, &marketapi.APIError{Message: "upstream exploded", Status: http.StatusInternalServerError, URL: "http://api/v1/listings/search"}).
		Once()
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, mock.Anything).
		Return(&model.ListingSearchResult{Listings: marketFixture()[:2]}, nil).
		Once()

	c := applisting.NewController(repo, constant.ScopeMarketplace, model.DefaultFilterState())
	require.NoError(t, c.Fetch(context.Background()))
	assert.Len(t, c.View().Listings, 5)

	err := c.Retry(context.Background())
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrUpstream], ce.ErrorCode())
	assert.Equal(t, "upstream exploded", ce.Error())

	view := c.View()
	assert.Equal(t, applisting.StateError, c.State())
	assert.Len(t, view.Listings, 5)
	require.NotNil(t, view.Error)
	assert.False(t, view.Error.AuthRequired)
	assert.Equal(t, http.StatusInternalServerError, view.Error.Status)
	assert.Equal(t, "http://api/v1/listings/search", view.Error.URL)

	require.NoError(t, c.Retry(context.Background()))
	assert.Len(t, c.View().Listings, 2)
	assert.Nil(t, c.View().Error)
}

func TestController_SyncSkipsUnchangedFilters(t *testing.T) {
	repo := listingmocks.NewListingRepository(t)
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, queryIs("")).
		Return(&model.ListingSearchResult{Listings: marketFixture()}, nil).
		Once()
	repo.
		On("Search", mock.Anything, constant.ScopeMarketplace, queryIs("villa")).
		Return(&model.ListingSearchResult{Listings: marketFixture()[1:2]}, nil).
		Once()

	c := applisting.NewController(repo, constant.ScopeMarketplace, model.DefaultFilterState())
	ctx := context.Background()
	require.NoError(t, c.Sync(ctx))
	require.NoError(t, c.Sync(ctx))

	// re-setting the same value is not a change
	require.NoError(t, c.SetFilter(constant.FieldQuery, ""))
	require.NoError(t, c.Sync(ctx))

	require.NoError(t, c.SetFilter(constant.FieldQuery, "villa"))
	require.NoError(t, c.Sync(ctx))
	assert.Len(t, c.View().Listings, 1)
}

func TestListingApp_Browse(t *testing.T) {
	type fields struct {
		listingRepo *listingmocks.ListingRepository
	}
	tests := []struct {
		name      string
		query     string
		mockCall  func(f fields)
		wantIDs   []string
		wantPage  int
		wantQuery string
		wantErr   constant.ErrorType
	}{
		{
			name:  "success: filters from query string",
			query: "q=bole&purpose=Rent&status=Verified",
			mockCall: func(f fields) {
				f.listingRepo.
					On("Search", mock.Anything, constant.ScopeMarketplace, mock.Anything).
					Return(&model.ListingSearchResult{Listings: marketFixture()}, nil).
					Once()
			},
			wantIDs:   []string{"1"},
			wantPage:  1,
			wantQuery: "purpose=Rent&q=bole&status=Verified",
		},
		{
			name:  "success: page past the end is clamped and refetched",
			query: "page=9",
			mockCall: func(f fields) {
				f.listingRepo.
					On("Search", mock.Anything, constant.ScopeMarketplace, mock.MatchedBy(func(v url.Values) bool { return v.Get("page") == "9" })).
					Return(&model.ListingSearchResult{Listings: []model.Listing{}, Pagination: model.Pagination{Total: 30, Limit: 12}}, nil).
					Once()
				f.listingRepo.
					On("Search", mock.Anything, constant.ScopeMarketplace, mock.MatchedBy(func(v url.Values) bool { return v.Get("page") == "3" })).
					Return(&model.ListingSearchResult{Listings: marketFixture(), Pagination: model.Pagination{Total: 30, Limit: 12}}, nil).
					Once()
			},
			wantIDs:   []string{"1", "2", "3", "4", "5"},
			wantPage:  3,
			wantQuery: "page=3",
		},
		{
			name:  "error: unauthorized keeps the view",
			query: "",
			mockCall: func(f fields) {
				f.listingRepo.
					On("Search", mock.Anything, constant.ScopeMarketplace, mock.Anything).
					Return(nil, &marketapi.APIError{Message: "Forbidden", Status: http.StatusForbidden}).
					Once()
			},
			wantIDs:  []string{},
			wantPage: 1,
			wantErr:  constant.ErrAuthRequired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{listingRepo: listingmocks.NewListingRepository(t)}
			tt.mockCall(f)

			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			app := applisting.NewListingApp(f.listingRepo)
			view, err := app.Browse(context.Background(), constant.ScopeMarketplace, query)
			require.NotNil(t, view)

			if tt.wantErr != constant.Successful {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, constant.ErrorTypeCode[tt.wantErr], ce.ErrorCode())
				require.NotNil(t, view.Error)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantQuery, view.QueryString)
			}

			got := make([]string, 0, len(view.Listings))
			for _, l := range view.Listings {
				got = append(got, l.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, tt.wantPage, view.Pagination.Page)
		})
	}
}

func TestListingApp_CreateListing(t *testing.T) {
	req := &model.CreateListingRequest{
		Title:        "Modern 3BR Apartment in Bole",
		PropertyType: "Apartment",
		Purpose:      "Rent",
		Bedrooms:     3,
		Price:        45000,
		Address:      model.Address{City: "Addis Ababa", Subcity: "Bole"},
		Media: []model.MediaUpload{
			{FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
			{FileName: "kitchen.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
		},
	}

	repo := listingmocks.NewListingRepository(t)
	repo.On("CreateProperty", mock.Anything, req).Return("prop-1", nil).Once()
	repo.On("CreateListing", mock.Anything, "prop-1", req).Return("lst-1", nil).Once()
	repo.
		On("PresignMedia", mock.Anything, "lst-1", &req.Media[0]).
		Return(&model.PresignedUpload{UploadURL: "https://s3/front", Method: http.MethodPut, PublicURL: "https://cdn/front.jpg"}, nil).
		Once()
	repo.
		On("UploadMedia", mock.Anything, mock.Anything, &req.Media[0]).
		Return(nil).
		Once()
	repo.
		On("PresignMedia", mock.Anything, "lst-1", &req.Media[1]).
		Return(nil, &marketapi.APIError{Message: "too large", Status: http.StatusRequestEntityTooLarge}).
		Once()

	app := applisting.NewListingApp(repo)
	res, err := app.CreateListing(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, &model.CreateListingResponse{
		ListingID:   "lst-1",
		PropertyID:  "prop-1",
		MediaURLs:   []string{"https://cdn/front.jpg"},
		FailedMedia: []string{"kitchen.jpg"},
	}, res)
}

func TestListingApp_CreateListingValidation(t *testing.T) {
	app := applisting.NewListingApp(listingmocks.NewListingRepository(t))

	_, err := app.CreateListing(context.Background(), &model.CreateListingRequest{Purpose: "Swap"})
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], ce.ErrorCode())
	assert.Contains(t, ce.Fields(), "title")
	assert.Contains(t, ce.Fields(), "purpose")
	assert.Contains(t, ce.Fields(), "address.city")
}
