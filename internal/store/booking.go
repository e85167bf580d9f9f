package store

import (
	"errors"
	"strings"
)

// Booking is a single hotel reservation.
// Field tags cover JSON (HTTP), YAML (seed files) and db (seed table).
type Booking struct {
	ID           int    `json:"id" yaml:"id" db:"id"`
	Title        string `json:"title" yaml:"title" db:"title" validate:"required"`
	FirstName    string `json:"firstName" yaml:"firstName" db:"first_name" validate:"required"`
	Surname      string `json:"surname" yaml:"surname" db:"surname" validate:"required"`
	Email        string `json:"email" yaml:"email" db:"email" validate:"required"`
	RoomID       int    `json:"roomId" yaml:"roomId" db:"room_id" validate:"required"`
	CheckInDate  string `json:"checkInDate" yaml:"checkInDate" db:"check_in_date" validate:"required"`
	CheckOutDate string `json:"checkOutDate" yaml:"checkOutDate" db:"check_out_date" validate:"required"`
}

var (
	// ErrNotFound is returned when no booking carries the requested id.
	ErrNotFound = errors.New("booking not found")
	// ErrMissingParameter is returned by Search when neither term nor date is set.
	ErrMissingParameter = errors.New("missing term or date")
)

// ValidationError lists the required fields that were absent on create.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid booking: missing " + strings.Join(e.Fields, ", ")
}
