package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	d, err := Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	// A second pooled connection would see a fresh, empty database.
	d.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestLoadBookings(t *testing.T) {
	ctx := context.Background()
	d := openMemory(t)
	require.NoError(t, d.EnsureSchema(ctx))
	require.NoError(t, d.EnsureSchema(ctx), "schema creation must be idempotent")

	d.MustExec(`INSERT INTO bookings (id,title,first_name,surname,email,room_id,check_in_date,check_out_date)
		VALUES (2,'Ms','Zoe','Jones','zoe@mail.com',5,'2017-12-01','2017-12-05'),
		       (1,'Mr','John','Smith','john@doe.com',2,'2017-11-21','2017-11-23')`)

	got, err := d.LoadBookings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Smith", got[0].Surname)
	assert.Equal(t, 2, got[0].RoomID)
	assert.Equal(t, "2017-11-23", got[0].CheckOutDate)
	assert.Equal(t, "Zoe", got[1].FirstName)
}

func TestLoadBookings_EmptyTable(t *testing.T) {
	ctx := context.Background()
	d := openMemory(t)
	require.NoError(t, d.EnsureSchema(ctx))

	got, err := d.LoadBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadBookings_NoTable(t *testing.T) {
	_, err := openMemory(t).LoadBookings(context.Background())
	assert.Error(t, err)
}
