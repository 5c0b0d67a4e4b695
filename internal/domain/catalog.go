package domain

import "time"

// Category is a classification tag of a provider
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Provider is a bookable resource (a specialist or a room) that owns shifts
type Provider struct {
	ID          int64
	Name        string
	CategoryID  *int64
	Description string
	Experience  *string
	PhoneNumber *string
	FirstName   *string
	LastName    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProviderFilter filters provider listings
type ProviderFilter struct {
	CategoryID *int64
	Limit      uint64
	Offset     uint64
}
