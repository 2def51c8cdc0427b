package transactions

import (
	"context"

	"github.com/piresc/salesboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/salesboard/services/transactions TransactionRepo,SeedLocker

// TransactionRepo is the record store
type TransactionRepo interface {
	// ReplaceAll swaps the whole collection for records
	ReplaceAll(ctx context.Context, records []models.Transaction) error

	Count(ctx context.Context, filter models.TransactionFilter) (int64, error)
	Find(ctx context.Context, filter models.TransactionFilter, skip, limit int64) ([]models.Transaction, error)

	// grouped aggregations over a sale-date range
	SaleStats(ctx context.Context, month models.MonthRange) (*models.MonthlyStats, error)
	PriceBuckets(ctx context.Context, month models.MonthRange) ([]models.ChartBucket, error)
	CategoryBuckets(ctx context.Context, month models.MonthRange) ([]models.ChartBucket, error)

	Ping(ctx context.Context) error
}

// SeedLocker serialises reseeds across instances
type SeedLocker interface {
	// Acquire returns a release func, or ErrSeedInProgress when the lock is held
	Acquire(ctx context.Context) (func(context.Context) error, error)
}
