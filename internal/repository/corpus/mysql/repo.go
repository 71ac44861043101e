package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	// Registers the mysql driver for database/sql.
	_ "github.com/go-sql-driver/mysql"

	"github.com/konak-cloud/listdex/internal/domain/listing"
)

func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// Repo is a MySQL-backed corpus store.
type Repo struct {
	db *sql.DB
}

// New creates a corpus repo over an open database handle.
func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Open dials MySQL with pool defaults. The DSN needs parseTime=true so
// created_at scans into time.Time.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// Close releases the connection pool.
func (r *Repo) Close() {
	_ = r.db.Close()
}

// Ping checks connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping mysql: %w", err)
	}
	return nil
}

// EnsureSchema creates the listings table when absent.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createListingsSQL); err != nil {
		return fmt.Errorf("create listings table: %w", err)
	}
	return nil
}

// Put upserts a listing.
func (r *Repo) Put(ctx context.Context, l listing.Listing) error {
	amenities, err := json.Marshal(l.Amenities())
	if err != nil {
		return fmt.Errorf("marshal amenities for %s: %w", l.ID(), err)
	}
	loc := l.Location()
	var lat, lng any
	if c := loc.Coordinates; c != nil {
		lat, lng = c.Latitude, c.Longitude
	}
	_, err = r.db.ExecContext(ctx, upsertListingSQL,
		l.ID(),
		l.Title(),
		l.Description(),
		string(l.Type()),
		string(l.Status()),
		l.Price(),
		l.Currency(),
		valInt(l.Bedrooms()),
		valInt(l.Bathrooms()),
		valF64(l.Area()),
		loc.City,
		loc.Neighborhood,
		loc.Address,
		lat,
		lng,
		string(amenities),
		l.Featured(),
		l.Premium(),
		l.Views(),
		l.Favorites(),
		l.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("upsert listing %s: %w", l.ID(), err)
	}
	return nil
}

// Delete removes a listing by id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteListingSQL, id); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	return nil
}

// Fetch materializes the snapshot for a hint. Status narrows exactly; a geo
// hint narrows to a bounding box around the query point, which over-returns
// by design (the search core re-checks exact Haversine distance).
func (r *Repo) Fetch(ctx context.Context, hint listing.Hint) ([]listing.Listing, error) {
	var where []string
	var args []any

	switch {
	case hint.Status != "":
		where = append(where, "status = ?")
		args = append(args, string(hint.Status))
	case hint.ActiveOnly:
		where = append(where, "status IN (?, ?)")
		args = append(args, string(listing.ForSale), string(listing.ForRent))
	}

	if g := hint.Geo; g != nil && g.RadiusKm > 0 {
		dLat := g.RadiusKm / 111.0
		dLng := dLat
		if cosLat := math.Cos(g.Latitude * math.Pi / 180); cosLat > 0.01 {
			dLng = g.RadiusKm / (111.0 * cosLat)
		}
		where = append(where, "lat BETWEEN ? AND ?", "lng BETWEEN ? AND ?")
		args = append(args,
			g.Latitude-dLat, g.Latitude+dLat,
			g.Longitude-dLng, g.Longitude+dLng,
		)
	}

	query := selectListingsPrefix
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []listing.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	if out == nil {
		out = []listing.Listing{}
	}
	return out, nil
}

func scanListing(rows *sql.Rows) (listing.Listing, error) {
	var (
		f                   listing.Fields
		typ, status         string
		description         sql.NullString
		currency            sql.NullString
		bedrooms, bathrooms sql.NullInt64
		area                sql.NullFloat64
		city, hood, address sql.NullString
		lat, lng            sql.NullFloat64
		amenities           sql.NullString
	)
	err := rows.Scan(
		&f.ID, &f.Title, &description, &typ, &status, &f.Price, &currency,
		&bedrooms, &bathrooms, &area, &city, &hood, &address, &lat, &lng,
		&amenities, &f.Featured, &f.Premium, &f.Views, &f.Favorites, &f.CreatedAt,
	)
	if err != nil {
		return listing.Listing{}, fmt.Errorf("scan listing: %w", err)
	}

	f.Description = description.String
	f.Type = listing.Type(typ)
	f.Status = listing.Status(status)
	f.Currency = currency.String
	if bedrooms.Valid {
		v := int(bedrooms.Int64)
		f.Bedrooms = &v
	}
	if bathrooms.Valid {
		v := int(bathrooms.Int64)
		f.Bathrooms = &v
	}
	if area.Valid {
		v := area.Float64
		f.Area = &v
	}
	f.Location = listing.Location{
		City:         city.String,
		Neighborhood: hood.String,
		Address:      address.String,
	}
	if lat.Valid && lng.Valid {
		f.Location.Coordinates = &listing.Coordinates{
			Latitude:  lat.Float64,
			Longitude: lng.Float64,
		}
	}
	if amenities.Valid && amenities.String != "" {
		if err := json.Unmarshal([]byte(amenities.String), &f.Amenities); err != nil {
			return listing.Listing{}, fmt.Errorf("decode amenities for %s: %w", f.ID, err)
		}
	}
	return listing.Reconstruct(f), nil
}
