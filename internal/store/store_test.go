package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jane() Booking {
	return Booking{
		Title:        "Mr",
		FirstName:    "Jane",
		Surname:      "Doe",
		Email:        "jane@x.com",
		RoomID:       1,
		CheckInDate:  "2024-01-10",
		CheckOutDate: "2024-01-12",
	}
}

func TestCreateGetDelete(t *testing.T) {
	s := New(nil)

	b, err := s.Create(jane())
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	require.NoError(t, s.Delete(1))
	_, err = s.Get(1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(1), ErrNotFound)
}

func TestCreate_IDsAreMonotonic(t *testing.T) {
	s := New([]Booking{{ID: 1}, {ID: 2}})

	prev := 2
	for i := 0; i < 5; i++ {
		b, err := s.Create(jane())
		require.NoError(t, err)
		assert.Greater(t, b.ID, prev)
		prev = b.ID
	}

	// Deleting the newest booking must not free its id.
	require.NoError(t, s.Delete(prev))
	b, err := s.Create(jane())
	require.NoError(t, err)
	assert.Equal(t, prev+1, b.ID)
}

func TestCreate_IgnoresCallerID(t *testing.T) {
	s := New(nil)
	in := jane()
	in.ID = 99
	b, err := s.Create(in)
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)
}

func TestNew_CounterSkipsPastSeededIDs(t *testing.T) {
	s := New([]Booking{{ID: 3}, {ID: 10}})
	b, err := s.Create(jane())
	require.NoError(t, err)
	assert.Equal(t, 11, b.ID)
}

func TestNew_AssignsMissingSeedIDs(t *testing.T) {
	s := New([]Booking{{FirstName: "a"}, {ID: 1, FirstName: "b"}})
	all := s.List()
	require.Len(t, all, 2)
	assert.Equal(t, 3, all[0].ID)
	assert.Equal(t, 1, all[1].ID)
}

func TestNew_RenumbersDuplicateSeedIDs(t *testing.T) {
	s := New([]Booking{{ID: 2, FirstName: "a"}, {ID: 2, FirstName: "b"}})
	all := s.List()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 3, all[1].ID)

	got, err := s.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "b", got.FirstName)

	require.NoError(t, s.Delete(2))
	assert.ErrorIs(t, s.Delete(2), ErrNotFound)

	b, err := s.Create(jane())
	require.NoError(t, err)
	assert.Equal(t, 4, b.ID)
}

func TestCreate_MissingFieldsLeavesStoreUntouched(t *testing.T) {
	s := New([]Booking{{ID: 1}})

	in := jane()
	in.Email = ""
	in.RoomID = 0
	_, err := s.Create(in)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"email", "roomId"}, ve.Fields)
	assert.Equal(t, 1, s.Len())

	b, err := s.Create(jane())
	require.NoError(t, err)
	assert.Equal(t, 2, b.ID, "failed create must not consume an id")
}

func TestList_ReturnsCopy(t *testing.T) {
	s := New(nil)
	_, err := s.Create(jane())
	require.NoError(t, err)

	all := s.List()
	all[0].FirstName = "changed"
	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
}

func TestCreate_Concurrent(t *testing.T) {
	s := New(nil)
	const n = 200

	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := jane()
			b.Email = fmt.Sprintf("guest%d@x.com", i)
			got, err := s.Create(b)
			if err == nil {
				ids <- got.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, s.Len())
}
