package store

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Store owns the in-memory booking sequence and the id counter.
// All access goes through mu; writers take it exclusively.
type Store struct {
	mu       sync.RWMutex
	bookings []Booking
	nextID   int
	validate *validator.Validate
}

// New builds a store from seed records. The counter starts at len(seed)+1,
// or after the largest seeded id if that is higher. Seed records without an
// id, or repeating an id already seen, get one from the counter.
func New(seed []Booking) *Store {
	s := &Store{
		bookings: make([]Booking, 0, len(seed)),
		nextID:   len(seed) + 1,
		validate: newValidator(),
	}
	for _, b := range seed {
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	seen := make(map[int]bool, len(seed))
	for _, b := range seed {
		if b.ID <= 0 || seen[b.ID] {
			b.ID = s.nextID
			s.nextID++
		}
		seen[b.ID] = true
		s.bookings = append(s.bookings, b)
	}
	return s
}

// List returns a copy of every booking in insertion order.
func (s *Store) List() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Len reports how many bookings are held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// Create validates b, assigns the next id and appends it.
// Any id set by the caller is ignored.
func (s *Store) Create(b Booking) (Booking, error) {
	if err := s.check(b); err != nil {
		return Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.nextID
	s.nextID++
	s.bookings = append(s.bookings, b)
	return b, nil
}

// Get returns the first booking with the given id.
func (s *Store) Get(id int) (Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.bookings[i], nil
	}
	return Booking{}, ErrNotFound
}

// Delete removes the booking with the given id. Its id is never reissued.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) check(b Booking) error {
	err := s.validate.Struct(b)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so error bodies match the wire format.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
