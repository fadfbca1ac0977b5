package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	adminapp "github.com/afribrok/marketplace-bff/application/admin"
	billingapp "github.com/afribrok/marketplace-bff/application/billing"
	inquiryapp "github.com/afribrok/marketplace-bff/application/inquiry"
	listingapp "github.com/afribrok/marketplace-bff/application/listing"
	settingsapp "github.com/afribrok/marketplace-bff/application/settings"
	userapp "github.com/afribrok/marketplace-bff/application/user"
	"github.com/afribrok/marketplace-bff/cmd/config"
	"github.com/afribrok/marketplace-bff/constant"
	"github.com/afribrok/marketplace-bff/model"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/afribrok/marketplace-bff/utils/errors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config      *config.Config
	UserApp     userapp.UserApp
	ListingApp  listingapp.ListingApp
	InquiryApp  inquiryapp.InquiryApp
	SettingsApp settingsapp.SettingsApp
	AdminApp    adminapp.AdminApp
	BillingApp  billingapp.BillingApp
	// Ping checks backing services for /internal/health; nil skips the check.
	Ping func(ctx context.Context) error
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(rh.Config.Server.InternalAPIKey))
	internal.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	throttle := NewAttemptLimiter(rh.Config.Server.AttemptsPerMinute).Middleware

	// Public routes
	mux.Handle("/auth/login", throttle(http.HandlerFunc(rh.Login))).Methods(http.MethodPost)
	mux.Handle("/auth/register", throttle(http.HandlerFunc(rh.Register))).Methods(http.MethodPost)
	mux.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/listings", rh.BrowseListings).Methods(http.MethodGet)
	mux.HandleFunc("/listings/{id}", rh.GetListing).Methods(http.MethodGet)
	mux.HandleFunc("/brokers/{id}", rh.GetBroker).Methods(http.MethodGet)

	// Signed-in routes
	mux.Handle("/auth/me", RequireSession(http.HandlerFunc(rh.Me))).Methods(http.MethodGet)
	mux.Handle("/listings", RequireSession(http.HandlerFunc(rh.CreateListing))).Methods(http.MethodPost)
	mux.Handle("/listings/{id}/inquiries", RequireSession(throttle(http.HandlerFunc(rh.SubmitInquiry)))).Methods(http.MethodPost)
	mux.Handle("/billing/invoices", RequireSession(http.HandlerFunc(rh.MyInvoices))).Methods(http.MethodGet)
	mux.Handle("/billing/subscribe", RequireSession(http.HandlerFunc(rh.Subscribe))).Methods(http.MethodPost)

	// Admin console
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(RequireAdmin())
	admin.HandleFunc("/listings", rh.AdminListings).Methods(http.MethodGet)
	admin.HandleFunc("/listings/reported", rh.ReportedListings).Methods(http.MethodGet)
	admin.HandleFunc("/listings/{id}/{action}", rh.ModerateListing).Methods(http.MethodPost)
	admin.HandleFunc("/reviews", rh.Reviews).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/stats", rh.ReviewStats).Methods(http.MethodGet)
	admin.HandleFunc("/users", rh.Users).Methods(http.MethodGet)
	admin.HandleFunc("/analytics", rh.Analytics).Methods(http.MethodGet)
	admin.HandleFunc("/settings", rh.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", rh.UpdateSettings).Methods(http.MethodPut)
	admin.HandleFunc("/settings/reset", rh.ResetSettings).Methods(http.MethodPost)
	admin.HandleFunc("/billing/plans", rh.Plans).Methods(http.MethodGet)
	admin.HandleFunc("/billing/providers", rh.Providers).Methods(http.MethodGet)

	// middleware
	mux.Use(RequestIDMiddleware())
	mux.Use(SessionMiddleware(rh.UserApp))
	mux.Use(LoggingMiddleware())

	return mux
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	return true
}

// Health handler
// @Summary Service health
// @Tags Internal
// @Produce json
// @Success 200 {object} response
// @Router /internal/health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	if s.Ping != nil {
		if err := s.Ping(r.Context()); err != nil {
			writeError(w, errors.SetCustomErrorMessage(constant.ErrInternal, "session store unavailable"))
			return
		}
	}
	writeSuccess(w, map[string]string{"status": "ok"})
}

// Login handler
// @Summary Login user
// @Description Sign in against the marketplace API and receive session cookies
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthUser
// @Failure 400 {object} response
// @Failure 401 {object} response
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookies(w, s.Config.Auth, res)
	writeSuccess(w, res.User)
}

// Register handler
// @Summary Register user
// @Description Create a buyer or broker account and sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.AuthUser
// @Failure 400 {object} response
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	setSessionCookies(w, s.Config.Auth, res)
	writeSuccess(w, res.User)
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = s.UserApp.Logout(r.Context(), cookieValue(r, constant.CookieSessionID))
	clearSessionCookies(w, s.Config.Auth)
	writeSuccess(w, nil)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} model.AuthUser
// @Failure 401 {object} response
// @Security BearerAuth
// @Router /auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, _ := utilsContext.GetSession(r.Context())
	res, err := s.UserApp.Me(r.Context(), session.SessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// BrowseListings handler
// @Summary Browse marketplace listings
// @Description Filters, sorts and paginates listings. queryString in the response is the canonical URL query.
// @Tags Listings
// @Produce json
// @Param q query string false "Search text"
// @Param purpose query string false "All, Sale, Rent or Lease"
// @Param status query string false "All, Verified or Pending"
// @Param beds query string false "Any, 1, 2, 3 or 4+"
// @Param type query string false "Property type"
// @Param min query int false "Minimum price"
// @Param max query int false "Maximum price"
// @Param sort query string false "default, newest, price-asc, price-desc or rating"
// @Param page query int false "Page"
// @Param per query int false "12, 24 or 48"
// @Success 200 {object} model.ListingsView
// @Failure 401 {object} response
// @Router /listings [get]
func (s *RestHandler) BrowseListings(w http.ResponseWriter, r *http.Request) {
	s.browse(w, r, constant.ScopeMarketplace)
}

// AdminListings handler
// @Summary Browse listings across tenants
// @Tags Admin
// @Produce json
// @Success 200 {object} model.ListingsView
// @Security BearerAuth
// @Router /admin/listings [get]
func (s *RestHandler) AdminListings(w http.ResponseWriter, r *http.Request) {
	s.browse(w, r, constant.ScopeAdmin)
}

func (s *RestHandler) browse(w http.ResponseWriter, r *http.Request, scope constant.ListingScope) {
	view, err := s.ListingApp.Browse(r.Context(), scope, r.URL.Query())
	if err != nil {
		writeErrorData(w, err, view)
		return
	}
	writeSuccess(w, view)
}

// GetListing handler
// @Summary Listing detail
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 404 {object} response
// @Router /listings/{id} [get]
func (s *RestHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.GetListing(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBroker handler
// @Summary Broker profile
// @Tags Listings
// @Produce json
// @Param id path string true "Broker ID"
// @Success 200 {object} model.Broker
// @Failure 404 {object} response
// @Router /brokers/{id} [get]
func (s *RestHandler) GetBroker(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.GetBroker(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateListing handler
// @Summary Create a listing
// @Description Creates the property and listing, then uploads media through presigned URLs
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body model.CreateListingRequest true "Listing"
// @Success 200 {object} model.CreateListingResponse
// @Failure 400 {object} response
// @Security BearerAuth
// @Router /listings [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req model.CreateListingRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.ListingApp.CreateListing(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitInquiry handler
// @Summary Contact the broker about a listing
// @Tags Listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body model.InquiryRequest true "Inquiry"
// @Success 200 {object} model.InquiryResponse
// @Failure 400 {object} response
// @Failure 401 {object} response
// @Security BearerAuth
// @Router /listings/{id}/inquiries [post]
func (s *RestHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var req model.InquiryRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.InquiryApp.Submit(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MyInvoices handler
// @Summary Invoices of the signed-in user
// @Tags Billing
// @Produce json
// @Success 200 {array} model.Invoice
// @Security BearerAuth
// @Router /billing/invoices [get]
func (s *RestHandler) MyInvoices(w http.ResponseWriter, r *http.Request) {
	res, err := s.BillingApp.MyInvoices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Subscribe handler
// @Summary Subscribe to a plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body model.SubscribeRequest true "Subscription"
// @Success 200 {object} model.Subscription
// @Failure 400 {object} response
// @Security BearerAuth
// @Router /billing/subscribe [post]
func (s *RestHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req model.SubscribeRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.BillingApp.Subscribe(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReportedListings handler
// @Summary Listings reported by users
// @Tags Admin
// @Produce json
// @Success 200 {array} model.ReportedListing
// @Security BearerAuth
// @Router /admin/listings/reported [get]
func (s *RestHandler) ReportedListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.ReportedListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ModerateListing handler
// @Summary Feature, unfeature, suspend or activate a listing
// @Tags Admin
// @Produce json
// @Param id path string true "Listing ID"
// @Param action path string true "feature, unfeature, suspend or activate"
// @Success 200 {object} model.ModerationResult
// @Failure 400 {object} response
// @Security BearerAuth
// @Router /admin/listings/{id}/{action} [post]
func (s *RestHandler) ModerateListing(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := s.AdminApp.Moderate(r.Context(), vars["id"], vars["action"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Reviews handler
// @Summary Reviews awaiting moderation
// @Tags Admin
// @Produce json
// @Param status query string false "Review status"
// @Success 200 {array} model.Review
// @Security BearerAuth
// @Router /admin/reviews [get]
func (s *RestHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.Reviews(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReviewStats handler
// @Summary Review counters
// @Tags Admin
// @Produce json
// @Success 200 {object} model.ReviewStats
// @Security BearerAuth
// @Router /admin/reviews/stats [get]
func (s *RestHandler) ReviewStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.ReviewStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Users handler
// @Summary Platform users
// @Tags Admin
// @Produce json
// @Param q query string false "Name or email"
// @Param role query string false "Role"
// @Param status query string false "Status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} model.UserList
// @Security BearerAuth
// @Router /admin/users [get]
func (s *RestHandler) Users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.UserFilter{
		Query:  q.Get("q"),
		Role:   q.Get("role"),
		Status: q.Get("status"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	res, err := s.AdminApp.Users(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Analytics handler
// @Summary Platform analytics
// @Tags Admin
// @Produce json
// @Success 200 {object} model.Analytics
// @Security BearerAuth
// @Router /admin/analytics [get]
func (s *RestHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.Analytics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSettings handler
// @Summary Platform settings
// @Tags Admin
// @Produce json
// @Success 200 {object} model.PlatformSettingsDocument
// @Security BearerAuth
// @Router /admin/settings [get]
func (s *RestHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingsApp.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateSettings handler
// @Summary Save platform settings
// @Description Replaces the whole settings object. Unchanged settings answer 409.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.UpdateSettingsRequest true "Settings"
// @Success 200 {object} model.PlatformSettingsDocument
// @Failure 400 {object} response
// @Failure 409 {object} response
// @Security BearerAuth
// @Router /admin/settings [put]
func (s *RestHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateSettingsRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.SettingsApp.Update(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResetSettings handler
// @Summary Reset platform settings to defaults
// @Tags Admin
// @Produce json
// @Success 200 {object} model.PlatformSettingsDocument
// @Security BearerAuth
// @Router /admin/settings/reset [post]
func (s *RestHandler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	res, err := s.SettingsApp.ResetToDefaults(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Plans handler
// @Summary Billing plans
// @Tags Admin
// @Produce json
// @Success 200 {array} model.Plan
// @Security BearerAuth
// @Router /admin/billing/plans [get]
func (s *RestHandler) Plans(w http.ResponseWriter, r *http.Request) {
	res, err := s.BillingApp.Plans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Providers handler
// @Summary Payment providers
// @Tags Admin
// @Produce json
// @Success 200 {array} model.PaymentProvider
// @Security BearerAuth
// @Router /admin/billing/providers [get]
func (s *RestHandler) Providers(w http.ResponseWriter, r *http.Request) {
	res, err := s.BillingApp.Providers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
