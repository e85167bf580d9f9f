package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/db"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/store"
)

//go:embed bookings.json
var defaultBookings []byte

// Source selects where the initial bookings come from.
// Driver/DSN win over File; with neither set the embedded list is used.
type Source struct {
	Driver string
	DSN    string
	File   string
}

// Load reads the initial bookings once.
func Load(ctx context.Context, src Source) ([]store.Booking, string, error) {
	switch {
	case src.Driver != "":
		bs, err := FromDB(ctx, src.Driver, src.DSN)
		return bs, "db:" + src.Driver, err
	case src.File != "":
		bs, err := FromFile(src.File)
		return bs, src.File, err
	default:
		bs, err := Default()
		return bs, "embedded", err
	}
}

// Default returns the bookings bundled with the binary.
func Default() ([]store.Booking, error) {
	return Decode(defaultBookings, "json")
}

// FromFile reads a JSON or YAML file, picked by extension.
func FromFile(path string) ([]store.Booking, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed file: %w", err)
	}
	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	bs, err := Decode(b, format)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return bs, nil
}

// Decode parses a list of bookings in "json" or "yaml".
func Decode(b []byte, format string) ([]store.Booking, error) {
	var out []store.Booking
	switch format {
	case "json":
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(b, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown seed format %q", format)
	}
	return out, nil
}

// FromDB reads the bookings table once and closes the connection.
// The table must already exist; nothing is created or written.
func FromDB(ctx context.Context, driver, dsn string) ([]store.Booking, error) {
	d, err := db.Open(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("seed db: %w", err)
	}
	defer d.Close()
	return d.LoadBookings(ctx)
}
