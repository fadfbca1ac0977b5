package model

import "time"

// PlatformSettings is persisted as one unit through the super-admin endpoint.
type PlatformSettings struct {
	Branding      BrandingSettings      `json:"branding"`
	Localization  LocalizationSettings  `json:"localization"`
	Security      SecuritySettings      `json:"security"`
	Tenancy       TenancySettings       `json:"tenancy"`
	Marketplace   MarketplaceSettings   `json:"marketplace"`
	Payments      PaymentSettings       `json:"payments"`
	Integrations  IntegrationSettings   `json:"integrations"`
	Observability ObservabilitySettings `json:"observability"`
	Legal         LegalSettings         `json:"legal"`
}

type BrandingSettings struct {
	SiteName     string `json:"siteName" validate:"required,max=80"`
	Tagline      string `json:"tagline" validate:"max=160"`
	LogoURL      string `json:"logoUrl" validate:"omitempty,url"`
	FaviconURL   string `json:"faviconUrl" validate:"omitempty,url"`
	PrimaryColor string `json:"primaryColor" validate:"omitempty,hexcolor"`
	SupportEmail string `json:"supportEmail" validate:"omitempty,email"`
}

type LocalizationSettings struct {
	DefaultLocale    string   `json:"defaultLocale" validate:"required"`
	SupportedLocales []string `json:"supportedLocales" validate:"required,min=1,dive,required"`
	DefaultCurrency  string   `json:"defaultCurrency" validate:"required,len=3"`
	Timezone         string   `json:"timezone" validate:"required"`
}

type SecuritySettings struct {
	SessionTimeoutMinutes int  `json:"sessionTimeoutMinutes" validate:"min=5,max=1440"`
	PasswordMinLength     int  `json:"passwordMinLength" validate:"min=8,max=128"`
	MaxLoginAttempts      int  `json:"maxLoginAttempts" validate:"min=1,max=20"`
	RequireMFAForAdmins   bool `json:"requireMfaForAdmins"`
}

type TenancySettings struct {
	AllowSelfSignup      bool   `json:"allowSelfSignup"`
	DefaultPlan          string `json:"defaultPlan" validate:"required"`
	MaxListingsPerBroker int    `json:"maxListingsPerBroker" validate:"min=1,max=10000"`
}

type MarketplaceSettings struct {
	ListingExpiryDays    int  `json:"listingExpiryDays" validate:"min=1,max=365"`
	FeaturedListingLimit int  `json:"featuredListingLimit" validate:"min=0,max=100"`
	RequireModeration    bool `json:"requireModeration"`
	MaxImagesPerListing  int  `json:"maxImagesPerListing" validate:"min=1,max=50"`
}

type PaymentSettings struct {
	Provider          string  `json:"provider" validate:"required,oneof=chapa telebirr stripe manual"`
	Currency          string  `json:"currency" validate:"required,len=3"`
	CommissionPercent float64 `json:"commissionPercent" validate:"min=0,max=100"`
	TestMode          bool    `json:"testMode"`
}

type IntegrationSettings struct {
	MapsProvider string `json:"mapsProvider" validate:"omitempty,oneof=google mapbox osm"`
	WebhookURL   string `json:"webhookUrl" validate:"omitempty,url"`
	SMSSenderID  string `json:"smsSenderId" validate:"max=11"`
}

type ObservabilitySettings struct {
	LogLevel       string  `json:"logLevel" validate:"required,oneof=debug info warn error"`
	SentryDSN      string  `json:"sentryDsn" validate:"omitempty,url"`
	MetricsEnabled bool    `json:"metricsEnabled"`
	SampleRate     float64 `json:"sampleRate" validate:"min=0,max=1"`
}

type LegalSettings struct {
	TermsURL    string `json:"termsUrl" validate:"required,url"`
	PrivacyURL  string `json:"privacyUrl" validate:"required,url"`
	CompanyName string `json:"companyName" validate:"required"`
}

// PlatformSettingsDocument is the settings object plus its server metadata.
// Version is informational only.
type PlatformSettingsDocument struct {
	Settings  PlatformSettings `json:"settings"`
	Version   int              `json:"version"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
	UpdatedBy string           `json:"updatedBy,omitempty"`
}

type UpdateSettingsRequest struct {
	Settings PlatformSettings `json:"settings"`
	Version  int              `json:"version"`
}
