package http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/piresc/salesboard/internal/pkg/http"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
)

// SeedSourceGateway downloads the transactions dataset
type SeedSourceGateway struct {
	client *httpclient.Client
}

// NewSeedSourceGateway creates a gateway for the JSON document at sourceURL
func NewSeedSourceGateway(sourceURL string, timeout time.Duration) *SeedSourceGateway {
	return &SeedSourceGateway{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL: sourceURL,
			Timeout: timeout,
		}),
	}
}

// FetchSeedData fetches and decodes the JSON array of transactions
func (g *SeedSourceGateway) FetchSeedData(ctx context.Context) ([]models.Transaction, error) {
	start := time.Now()

	var records []models.Transaction
	if err := g.client.GetJSON(ctx, "", &records); err != nil {
		return nil, fmt.Errorf("failed to fetch seed source: %w", err)
	}

	logger.InfoCtx(ctx, "Fetched seed data",
		logger.Int("records", len(records)),
		logger.Duration("elapsed", time.Since(start)))

	return records, nil
}
