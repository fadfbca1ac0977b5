package settings

import "github.com/afribrok/marketplace-bff/model"

// DefaultPlatformSettings is the configuration written by "reset to defaults"
// and shown before anything has been saved.
func DefaultPlatformSettings() model.PlatformSettings {
	return model.PlatformSettings{
		Branding: model.BrandingSettings{
			SiteName:     "AfriBrok",
			Tagline:      "Verified real estate brokers across Africa",
			PrimaryColor: "#0f766e",
			SupportEmail: "support@afribrok.com",
		},
		Localization: model.LocalizationSettings{
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "am"},
			DefaultCurrency:  "ETB",
			Timezone:         "Africa/Addis_Ababa",
		},
		Security: model.SecuritySettings{
			SessionTimeoutMinutes: 60,
			PasswordMinLength:     8,
			MaxLoginAttempts:      5,
			RequireMFAForAdmins:   true,
		},
		Tenancy: model.TenancySettings{
			AllowSelfSignup:      true,
			DefaultPlan:          "starter",
			MaxListingsPerBroker: 50,
		},
		Marketplace: model.MarketplaceSettings{
			ListingExpiryDays:    90,
			FeaturedListingLimit: 12,
			RequireModeration:    true,
			MaxImagesPerListing:  20,
		},
		Payments: model.PaymentSettings{
			Provider:          "chapa",
			Currency:          "ETB",
			CommissionPercent: 2.5,
			TestMode:          true,
		},
		Integrations: model.IntegrationSettings{
			MapsProvider: "osm",
		},
		Observability: model.ObservabilitySettings{
			LogLevel:       "info",
			MetricsEnabled: true,
			SampleRate:     0.1,
		},
		Legal: model.LegalSettings{
			TermsURL:    "https://afribrok.com/terms",
			PrivacyURL:  "https://afribrok.com/privacy",
			CompanyName: "AfriBrok PLC",
		},
	}
}
