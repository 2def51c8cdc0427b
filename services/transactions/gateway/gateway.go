package gateway

import (
	"context"

	"github.com/piresc/salesboard/internal/pkg/models"
)

// FetchSeedData forwards to the HTTP gateway implementation
func (g *TransactionGW) FetchSeedData(ctx context.Context) ([]models.Transaction, error) {
	return g.httpGateway.FetchSeedData(ctx)
}

// PublishSeeded forwards to the NSQ gateway implementation
func (g *TransactionGW) PublishSeeded(ctx context.Context, event *models.SeededEvent) error {
	return g.nsqGateway.PublishSeeded(ctx, event)
}
