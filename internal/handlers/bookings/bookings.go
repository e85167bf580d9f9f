// Package bookings serves the /bookings endpoints on top of the in-memory
// store. Each verb has its own file (list, get, create, delete, search);
// this one only holds the Handler type and the shared response text.
package bookings

import "github.com/Jeomhps/hotel-bookings/api-go/internal/store"

const (
	msgInvalid     = "Invalid booking"
	msgNotFound    = "Booking not found"
	msgServerError = "Internal server error"
)

// Handler wires booking endpoints to the in-memory store.
type Handler struct{ store *store.Store }

// NewHandler returns a new bookings handler.
func NewHandler(s *store.Store) *Handler { return &Handler{store: s} }
