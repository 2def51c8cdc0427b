package transactions

import (
	"context"

	"github.com/piresc/salesboard/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/salesboard/services/transactions TransactionGW

// TransactionGW defines the transactions gateways interface
type TransactionGW interface {
	// HTTP Gateway
	FetchSeedData(ctx context.Context) ([]models.Transaction, error)

	// NSQ Gateway
	PublishSeeded(ctx context.Context, event *models.SeededEvent) error
}
