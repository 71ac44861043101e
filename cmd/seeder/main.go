package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/konak-cloud/listdex/internal/config"
	"github.com/konak-cloud/listdex/internal/domain/listing"
	logpkg "github.com/konak-cloud/listdex/internal/logger"
	corpusMysql "github.com/konak-cloud/listdex/internal/repository/corpus/mysql"
	corpusRedis "github.com/konak-cloud/listdex/internal/repository/corpus/redis"
)

// fixture is the JSON shape of one seed listing. A missing id gets a
// generated uuid.
type fixture struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *float64  `json:"area"`
	City         string    `json:"city"`
	Neighborhood string    `json:"neighborhood"`
	Address      string    `json:"address"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Amenities    []string  `json:"amenities"`
	IsFeatured   bool      `json:"isFeatured"`
	IsPremium    bool      `json:"isPremium"`
	Views        int       `json:"views"`
	Favorites    int       `json:"favoritesCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type writer interface {
	Put(ctx context.Context, l listing.Listing) error
	Close()
}

func main() {
	var file string
	flag.StringVar(&file, "file", "", "path to a JSON array of listings")
	flag.Parse()

	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if file == "" {
		logger.Fatal("-file is required")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		logger.Fatal("Failed to read fixtures", zap.Error(err))
	}
	var fixtures []fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		logger.Fatal("Failed to parse fixtures", zap.Error(err))
	}

	ctx := context.Background()
	store := openWriter(ctx, cfg, logger)
	defer store.Close()

	seeded, skipped := 0, 0
	for _, f := range fixtures {
		l, err := buildListing(f)
		if err != nil {
			logger.Warn("Skipping invalid fixture",
				zap.String("title", f.Title), zap.Error(err))
			skipped++
			continue
		}
		if err := store.Put(ctx, l); err != nil {
			logger.Fatal("Failed to store listing",
				zap.String("id", l.ID()), zap.Error(err))
		}
		seeded++
	}

	logger.Info("Seeding done", zap.Int("seeded", seeded), zap.Int("skipped", skipped))
}

func buildListing(f fixture) (listing.Listing, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	var coords *listing.Coordinates
	if f.Latitude != nil && f.Longitude != nil {
		coords = &listing.Coordinates{Latitude: *f.Latitude, Longitude: *f.Longitude}
	}
	return listing.New(listing.Fields{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Type:        listing.Type(f.Type),
		Status:      listing.Status(f.Status),
		Price:       f.Price,
		Currency:    f.Currency,
		Bedrooms:    f.Bedrooms,
		Bathrooms:   f.Bathrooms,
		Area:        f.Area,
		Location: listing.Location{
			City:         f.City,
			Neighborhood: f.Neighborhood,
			Address:      f.Address,
			Coordinates:  coords,
		},
		Amenities: f.Amenities,
		Featured:  f.IsFeatured,
		Premium:   f.IsPremium,
		Views:     f.Views,
		Favorites: f.Favorites,
		CreatedAt: f.CreatedAt,
	})
}

func openWriter(ctx context.Context, cfg config.Config, logger *zap.Logger) writer {
	switch cfg.Database.Driver {
	case "redis":
		store, err := corpusRedis.NewStore(corpusRedis.Config{
			Addrs:     cfg.Database.Addrs,
			Password:  cfg.Database.Password,
			KeyPrefix: cfg.Storage.KeyPrefix,
		})
		if err != nil {
			logger.Fatal("Failed to create redis corpus store", zap.Error(err))
		}
		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Corpus store not ready", zap.Error(err))
		}
		return store
	case "mysql":
		db, err := corpusMysql.Open(cfg.Database.DSN)
		if err != nil {
			logger.Fatal("Failed to open mysql", zap.Error(err))
		}
		repo := corpusMysql.New(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to ensure schema", zap.Error(err))
		}
		return repo
	default:
		logger.Fatal("Seeder needs a persistent driver (redis or mysql)",
			zap.String("driver", cfg.Database.Driver))
		return nil
	}
}
