package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/redis/rueidis"

	"github.com/konak-cloud/listdex/internal/domain"
	"github.com/konak-cloud/listdex/internal/domain/listing"
)

// DefaultKeyPrefix namespaces all listdex keys.
const DefaultKeyPrefix = "listdex:"

// geoPrecisions are the geohash cell sizes maintained per listing. A fetch
// hint resolves against the finest precision whose cell-plus-neighbors ring
// still covers the requested radius.
var geoPrecisions = []uint{4, 5, 6}

// Config holds connection parameters for the Redis corpus store.
type Config struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Store keeps listings as JSON records with id, per-status and geohash cell
// sets for coarse fetch hints.
type Store struct {
	client rueidis.Client
	prefix string
}

// NewStore creates a Redis corpus store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return newStore(client, cfg.KeyPrefix), nil
}

// NewStoreForTest wraps an existing client (mock injection).
func NewStoreForTest(client rueidis.Client) *Store {
	return newStore(client, "")
}

func newStore(client rueidis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for corpus store: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

func (s *Store) listingKey(id string) string { return s.prefix + "listing:" + id }
func (s *Store) idsKey() string              { return s.prefix + "listings" }
func (s *Store) statusKey(st listing.Status) string {
	return s.prefix + "status:" + string(st)
}
func (s *Store) cellKey(precision uint, cell string) string {
	return fmt.Sprintf("%sgeo:%d:%s", s.prefix, precision, cell)
}

// Put stores a listing and registers it in the id, status and geo cell sets.
func (s *Store) Put(ctx context.Context, l listing.Listing) error {
	data, err := json.Marshal(toDTO(&l))
	if err != nil {
		return fmt.Errorf("marshal listing %s: %w", l.ID(), err)
	}

	cmds := []rueidis.Completed{
		s.client.B().Set().Key(s.listingKey(l.ID())).Value(string(data)).Build(),
		s.client.B().Sadd().Key(s.idsKey()).Member(l.ID()).Build(),
		s.client.B().Sadd().Key(s.statusKey(l.Status())).Member(l.ID()).Build(),
	}
	if c := l.Location().Coordinates; c != nil {
		for _, p := range geoPrecisions {
			cell := geohash.EncodeWithPrecision(c.Latitude, c.Longitude, p)
			cmds = append(cmds, s.client.B().Sadd().Key(s.cellKey(p, cell)).Member(l.ID()).Build())
		}
	}

	for _, res := range s.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("put listing %s: %w", l.ID(), err)
		}
	}
	return nil
}

// Delete removes a listing and its set memberships.
func (s *Store) Delete(ctx context.Context, id string) error {
	l, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	cmds := []rueidis.Completed{
		s.client.B().Del().Key(s.listingKey(id)).Build(),
		s.client.B().Srem().Key(s.idsKey()).Member(id).Build(),
		s.client.B().Srem().Key(s.statusKey(l.Status())).Member(id).Build(),
	}
	if c := l.Location().Coordinates; c != nil {
		for _, p := range geoPrecisions {
			cell := geohash.EncodeWithPrecision(c.Latitude, c.Longitude, p)
			cmds = append(cmds, s.client.B().Srem().Key(s.cellKey(p, cell)).Member(id).Build())
		}
	}

	for _, res := range s.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("delete listing %s: %w", id, err)
		}
	}
	return nil
}

func (s *Store) get(ctx context.Context, id string) (listing.Listing, error) {
	cmd := s.client.B().Get().Key(s.listingKey(id)).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return listing.Listing{}, domain.ErrNotFound
		}
		return listing.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	var dto listingDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return listing.Listing{}, fmt.Errorf("decode listing %s: %w", id, err)
	}
	return dto.toDomain(), nil
}

// Fetch materializes the snapshot for a hint. Geo hints resolve to a
// geohash cell ring when the radius fits one; everything else narrows by
// status sets. The result is a superset of the hinted subset, ordered by id.
func (s *Store) Fetch(ctx context.Context, hint listing.Hint) ([]listing.Listing, error) {
	ids, err := s.resolveIDs(ctx, hint)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []listing.Listing{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.listingKey(id)
	}
	cmd := s.client.B().Mget().Key(keys...).Build()
	values, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, fmt.Errorf("mget listings: %w", err)
	}

	out := make([]listing.Listing, 0, len(values))
	for i, v := range values {
		raw, err := v.AsBytes()
		if err != nil {
			// Set member without a record: deleted mid-scan, skip.
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, fmt.Errorf("read listing %s: %w", ids[i], err)
		}
		var dto listingDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("decode listing %s: %w", ids[i], err)
		}
		out = append(out, dto.toDomain())
	}
	return out, nil
}

func (s *Store) resolveIDs(ctx context.Context, hint listing.Hint) ([]string, error) {
	if hint.Geo != nil {
		if p, ok := geoHintPrecision(hint.Geo.RadiusKm); ok {
			cell := geohash.EncodeWithPrecision(hint.Geo.Latitude, hint.Geo.Longitude, p)
			keys := []string{s.cellKey(p, cell)}
			for _, n := range geohash.Neighbors(cell) {
				keys = append(keys, s.cellKey(p, n))
			}
			cmd := s.client.B().Sunion().Key(keys...).Build()
			ids, err := s.client.Do(ctx, cmd).AsStrSlice()
			if err != nil {
				return nil, fmt.Errorf("sunion geo cells: %w", err)
			}
			return ids, nil
		}
		// Radius too wide for the cell ring, fall back to status narrowing.
	}

	if hint.Status != "" {
		cmd := s.client.B().Smembers().Key(s.statusKey(hint.Status)).Build()
		ids, err := s.client.Do(ctx, cmd).AsStrSlice()
		if err != nil {
			return nil, fmt.Errorf("smembers status: %w", err)
		}
		return ids, nil
	}

	if hint.ActiveOnly {
		cmd := s.client.B().Sunion().
			Key(s.statusKey(listing.ForSale), s.statusKey(listing.ForRent)).Build()
		ids, err := s.client.Do(ctx, cmd).AsStrSlice()
		if err != nil {
			return nil, fmt.Errorf("sunion active statuses: %w", err)
		}
		return ids, nil
	}

	cmd := s.client.B().Smembers().Key(s.idsKey()).Build()
	ids, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("smembers listings: %w", err)
	}
	return ids, nil
}

// geoHintPrecision picks the finest precision whose cell-plus-neighbors ring
// is guaranteed to cover the radius (half the minimum cell dimension).
func geoHintPrecision(radiusKm float64) (uint, bool) {
	switch {
	case radiusKm <= 0.3:
		return 6, true
	case radiusKm <= 2.4:
		return 5, true
	case radiusKm <= 9.7:
		return 4, true
	}
	return 0, false
}
