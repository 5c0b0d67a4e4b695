package domain

// Validation constants
const (
	MaxRepeatCount          = 365
	MinServiceDuration      = 1    // minutes
	MaxServiceDuration      = 1440 // 24 hours
	ConfirmationCodeLength  = 9
	MaxNameLength           = 100
	MaxSubtitleLength       = 50
	DefaultPageSize         = 20
	MaxPageSize             = 100
	ReservationCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02T15:04:05Z07:00" // RFC 3339
	DateFormat     = "2006-01-02"
)
