package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/salesboard/internal/pkg/models"
)

// ListTransactions returns one page of the transactions matching params.Search
func (uc *TransactionUC) ListTransactions(ctx context.Context, params models.ListParams) (*models.TransactionPage, error) {
	page, perPage := normalizePaging(params.Page, params.PerPage, uc.maxPerPage())
	filter := models.TransactionFilter{Search: params.Search}

	total, err := uc.txRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	skip := int64(page-1) * int64(perPage)
	found, err := uc.txRepo.Find(ctx, filter, skip, int64(perPage))
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}

	products := found
	if products == nil {
		products = []models.Transaction{}
	}

	return &models.TransactionPage{
		Products: products,
		PageInfo: models.PageInfo{
			Page:       page,
			PerPage:    perPage,
			TotalItems: total,
			TotalPages: totalPages(total, perPage),
		},
	}, nil
}

// MonthlyStats sums sold prices and counts sold and unsold items in the month
func (uc *TransactionUC) MonthlyStats(ctx context.Context, selectedMonth string) (*models.MonthlyStats, error) {
	month, err := models.ParseMonthRange(selectedMonth)
	if err != nil {
		return nil, err
	}

	stats, err := uc.txRepo.SaleStats(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sale stats for %s: %w", month, err)
	}
	if stats == nil {
		stats = &models.MonthlyStats{}
	}
	return stats, nil
}

// PriceHistogram counts the month's transactions per price range. Every
// range is present, in ascending order.
func (uc *TransactionUC) PriceHistogram(ctx context.Context, selectedMonth string) ([]models.ChartBucket, error) {
	month, err := models.ParseMonthRange(selectedMonth)
	if err != nil {
		return nil, err
	}

	counted, err := uc.txRepo.PriceBuckets(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate price buckets for %s: %w", month, err)
	}
	return models.FillPriceBuckets(counted), nil
}

// CategoryHistogram counts the month's transactions per category
func (uc *TransactionUC) CategoryHistogram(ctx context.Context, selectedMonth string) ([]models.ChartBucket, error) {
	month, err := models.ParseMonthRange(selectedMonth)
	if err != nil {
		return nil, err
	}

	buckets, err := uc.txRepo.CategoryBuckets(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate categories for %s: %w", month, err)
	}
	if buckets == nil {
		buckets = []models.ChartBucket{}
	}
	return buckets, nil
}

func normalizePaging(page, perPage, maxPerPage int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func totalPages(total int64, perPage int) int64 {
	if total <= 0 {
		return 0
	}
	n := int64(perPage)
	return (total + n - 1) / n
}
