package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/store"
)

// DB is a read-only handle on a bookings table used to seed the store.
type DB struct {
	*sqlx.DB
}

// Open connects with the given driver ("mysql" or "sqlite") and pings.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	xdb, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := xdb.PingContext(ctx); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return &DB{DB: xdb}, nil
}

// EnsureSchema creates the bookings table if it is missing. Seeding never
// calls it; it prepares fixture databases and fresh dev setups.
// The DDL sticks to types both MySQL and SQLite accept.
func (d *DB) EnsureSchema(ctx context.Context) error {
	const ddl = `CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT NOT NULL PRIMARY KEY,
		title VARCHAR(64) NOT NULL,
		first_name VARCHAR(255) NOT NULL,
		surname VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		room_id INT NOT NULL,
		check_in_date VARCHAR(32) NOT NULL,
		check_out_date VARCHAR(32) NOT NULL
	)`
	if _, err := d.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// LoadBookings reads every row of the bookings table ordered by id.
func (d *DB) LoadBookings(ctx context.Context) ([]store.Booking, error) {
	var rows []store.Booking
	err := d.SelectContext(ctx, &rows, `SELECT id, title, first_name, surname, email, room_id,
		check_in_date, check_out_date FROM bookings ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return rows, nil
}
