// Package seed bootstraps reference data into an empty store.
package seed

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the bundles offered by a fresh storefront.
func DefaultCatalog() []*entity.CatalogEntry {
	return []*entity.CatalogEntry{
		{
			Name:        "The Pain Reliever",
			Description: "Fast relief for everyday aches",
			BasePrice:   decimal.RequireFromString("20.00"),
			ImageRef:    "img/specials/pain-reliever.jpg",
		},
		{
			Name:        "The Sampler",
			Description: "A little of everything on the shelf",
			BasePrice:   decimal.RequireFromString("99.99"),
			ImageRef:    "img/specials/sampler.jpg",
		},
		{
			Name:        "Sweet Tooth Insulin",
			Description: "Glucose control made simple",
			BasePrice:   decimal.RequireFromString("25.00"),
			ImageRef:    "img/specials/insulin.jpg",
		},
		{
			Name:        "Cold Season Syrup",
			Description: "Soothing action for your head cold",
			BasePrice:   decimal.RequireFromString("49.00"),
			ImageRef:    "img/specials/cold-syrup.jpg",
		},
		{
			Name:        "Recovery Kit",
			Description: "Everything for a quick bounce back",
			BasePrice:   decimal.RequireFromString("50.00"),
			ImageRef:    "img/specials/recovery-kit.jpg",
		},
		{
			Name:        "Holistic Placebos",
			Description: "Beloved by the whole family",
			BasePrice:   decimal.RequireFromString("75.00"),
			ImageRef:    "img/specials/natural.jpg",
		},
	}
}

// Catalog inserts entries when the catalog is empty. It reports whether anything was written.
func Catalog(ctx context.Context, repo repository.CatalogRepository, entries []*entity.CatalogEntry, logger *slog.Logger) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "count catalog entries")
	}

	if count > 0 {
		logger.DebugContext(ctx, "Catalog already populated, skipping seed", slog.Int64("entries", count))

		return false, nil
	}

	if err := repo.CreateEntries(ctx, entries); err != nil {
		return false, errors.Wrap(err, "seed catalog entries")
	}

	logger.InfoContext(ctx, "Catalog seeded", slog.Int("entries", len(entries)))

	return true, nil
}
