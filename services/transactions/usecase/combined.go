package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/salesboard/internal/pkg/models"
	nrpkg "github.com/piresc/salesboard/internal/pkg/newrelic"
	"golang.org/x/sync/errgroup"
)

// CombinedData runs the three monthly statistics concurrently. The first
// failure cancels the other queries and no partial result is returned.
func (uc *TransactionUC) CombinedData(ctx context.Context, selectedMonth string) (*models.CombinedData, error) {
	if _, err := models.ParseMonthRange(selectedMonth); err != nil {
		return nil, err
	}

	return nrpkg.WithSegmentAndReturn(ctx, "CombinedData", func() (*models.CombinedData, error) {
		return uc.fanOut(ctx, selectedMonth)
	})
}

func (uc *TransactionUC) fanOut(ctx context.Context, selectedMonth string) (*models.CombinedData, error) {
	var result models.CombinedData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		qctx, cancel := uc.withQueryTimeout(nrpkg.NewGoroutineContext(gctx))
		defer cancel()

		stats, err := uc.MonthlyStats(qctx, selectedMonth)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		result.StatsData = stats
		return nil
	})

	g.Go(func() error {
		qctx, cancel := uc.withQueryTimeout(nrpkg.NewGoroutineContext(gctx))
		defer cancel()

		buckets, err := uc.PriceHistogram(qctx, selectedMonth)
		if err != nil {
			return fmt.Errorf("bar chart: %w", err)
		}
		result.BarChartData = buckets
		return nil
	})

	g.Go(func() error {
		qctx, cancel := uc.withQueryTimeout(nrpkg.NewGoroutineContext(gctx))
		defer cancel()

		buckets, err := uc.CategoryHistogram(qctx, selectedMonth)
		if err != nil {
			return fmt.Errorf("pie chart: %w", err)
		}
		result.PieChartData = buckets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
