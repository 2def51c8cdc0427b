package transactions

import (
	"context"

	"github.com/piresc/salesboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/salesboard/services/transactions TransactionUC

// TransactionUC represents the transactions usecase interface
type TransactionUC interface {
	// listing
	ListTransactions(ctx context.Context, params models.ListParams) (*models.TransactionPage, error)

	// monthly statistics
	MonthlyStats(ctx context.Context, selectedMonth string) (*models.MonthlyStats, error)
	PriceHistogram(ctx context.Context, selectedMonth string) ([]models.ChartBucket, error)
	CategoryHistogram(ctx context.Context, selectedMonth string) ([]models.ChartBucket, error)
	CombinedData(ctx context.Context, selectedMonth string) (*models.CombinedData, error)

	// seeding
	InitializeDatabase(ctx context.Context) (int, error)
}
