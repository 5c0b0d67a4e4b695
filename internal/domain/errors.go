package domain

import "errors"

var (
	// ErrInvalidWindow is returned when a time window ends at or before its start,
	// or when a service duration is not positive.
	ErrInvalidWindow = errors.New("domain: invalid time window")

	// ErrInvalidPrice is returned for a negative service price.
	ErrInvalidPrice = errors.New("domain: invalid price")

	// ErrInvalidRecurrence is returned for an unknown recurrence rule or a repeat count out of range.
	ErrInvalidRecurrence = errors.New("domain: invalid recurrence")

	// ErrInvalidStatus is returned for an unknown reservation status.
	ErrInvalidStatus = errors.New("domain: invalid reservation status")

	// ErrInvalidStatusTransition is returned when a reservation status change is not allowed.
	ErrInvalidStatusTransition = errors.New("domain: invalid status transition")

	// ErrInvalidView is returned for an unknown projection name.
	ErrInvalidView = errors.New("domain: invalid view")

	// ErrReadOnlyView is returned when creating an entity through the archived projection.
	ErrReadOnlyView = errors.New("domain: archived view is read-only")

	// ErrInvalidEntityType is returned for an unknown archivable entity type.
	ErrInvalidEntityType = errors.New("domain: invalid entity type")

	// ErrInvalidPage is returned for out-of-range pagination parameters.
	ErrInvalidPage = errors.New("domain: invalid page")
)
