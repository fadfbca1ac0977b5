package constant

const EventsExchange = "marketplace_events"

const (
	EventInquirySubmitted = "inquiry.submitted"
	EventListingModerated = "listing.moderated"
	EventSettingsUpdated  = "settings.updated"
)
