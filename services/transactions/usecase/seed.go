package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
)

// InitializeDatabase replaces the record store contents with the seed
// source dataset and returns how many records were loaded
func (uc *TransactionUC) InitializeDatabase(ctx context.Context) (int, error) {
	release, err := uc.seedLock.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to acquire seed lock: %w", err)
	}

	count, err := uc.reseed(ctx)

	if relErr := release(context.WithoutCancel(ctx)); relErr != nil {
		logger.WarnCtx(ctx, "Failed to release seed lock", logger.Err(relErr))
	}
	if err != nil {
		return 0, err
	}

	event := &models.SeededEvent{Count: count, SeededAt: uc.now().UTC()}
	if err := uc.txGW.PublishSeeded(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish seeded event",
			logger.Err(err),
			logger.Int("records", count))
	}

	return count, nil
}

func (uc *TransactionUC) reseed(ctx context.Context) (int, error) {
	records, err := uc.txGW.FetchSeedData(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch seed data: %w", err)
	}

	if err := uc.txRepo.ReplaceAll(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to replace transactions: %w", err)
	}

	logger.InfoCtx(ctx, "Database seeded", logger.Int("records", len(records)))
	return len(records), nil
}
