package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	DefaultServiceDuration    = 60 // используется, если у услуги не задана длительность
	DefaultSlotStepMinutes    = 30
	MaxNotesLength            = 500
	DefaultTimezone           = "UTC"
)

// Navigation targets returned to the client
const (
	DashboardPath     = "/dashboard"
	BookingLinkPrefix = "/booking/"
)

// Static slot window (legacy public booking page)
const (
	StaticSlotsFirst = "09:00"
	StaticSlotsLast  = "17:00"
	StaticSlotsStep  = 30
)
