package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Query: models.QueryConfig{Timeout: 5},
	}
}

func setupUC(t *testing.T) (*TransactionUC, *mocks.MockTransactionRepo, *mocks.MockSeedLocker, *mocks.MockTransactionGW) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockLock := mocks.NewMockSeedLocker(ctrl)
	mockGW := mocks.NewMockTransactionGW(ctrl)

	return NewTransactionUC(mockRepo, mockLock, mockGW, testConfig()), mockRepo, mockLock, mockGW
}

func bikes(from, to int) []models.Transaction {
	var out []models.Transaction
	for i := from; i <= to; i++ {
		out = append(out, models.Transaction{ID: i, Title: fmt.Sprintf("Mountain Bike %d", i), Price: 329.85})
	}
	return out
}

func march2022() models.MonthRange {
	return models.MonthRange{
		Start: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2022, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestListTransactions_SearchSecondPage(t *testing.T) {
	// Arrange
	uc, mockRepo, _, _ := setupUC(t)
	filter := models.TransactionFilter{Search: "bike"}

	mockRepo.EXPECT().Count(gomock.Any(), filter).Return(int64(12), nil)
	mockRepo.EXPECT().Find(gomock.Any(), filter, int64(5), int64(5)).Return(bikes(6, 10), nil)

	// Act
	page, err := uc.ListTransactions(context.Background(), models.ListParams{Search: "bike", Page: 2, PerPage: 5})

	// Assert
	require.NoError(t, err)
	assert.Len(t, page.Products, 5)
	assert.Equal(t, 6, page.Products[0].ID)
	assert.Equal(t, 10, page.Products[4].ID)
	assert.Equal(t, models.PageInfo{Page: 2, PerPage: 5, TotalItems: 12, TotalPages: 3}, page.PageInfo)
}

func TestListTransactions_Defaults(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	filter := models.TransactionFilter{}

	mockRepo.EXPECT().Count(gomock.Any(), filter).Return(int64(60), nil)
	mockRepo.EXPECT().Find(gomock.Any(), filter, int64(0), int64(10)).Return(bikes(1, 10), nil)

	page, err := uc.ListTransactions(context.Background(), models.ListParams{})

	require.NoError(t, err)
	assert.Len(t, page.Products, 10)
	assert.Equal(t, models.PageInfo{Page: 1, PerPage: 10, TotalItems: 60, TotalPages: 6}, page.PageInfo)
}

func TestListTransactions_PageBeyondEnd(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(12), nil)
	mockRepo.EXPECT().Find(gomock.Any(), gomock.Any(), int64(45), int64(5)).Return(nil, nil)

	page, err := uc.ListTransactions(context.Background(), models.ListParams{Page: 10, PerPage: 5})

	require.NoError(t, err)
	assert.NotNil(t, page.Products)
	assert.Empty(t, page.Products)
	assert.Equal(t, int64(12), page.PageInfo.TotalItems)
	assert.Equal(t, int64(3), page.PageInfo.TotalPages)
}

func TestListTransactions_LargePerPageUncapped(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(450), nil)
	mockRepo.EXPECT().Find(gomock.Any(), gomock.Any(), int64(200), int64(200)).Return([]models.Transaction{}, nil)

	page, err := uc.ListTransactions(context.Background(), models.ListParams{Page: 2, PerPage: 200})

	require.NoError(t, err)
	assert.Equal(t, models.PageInfo{Page: 2, PerPage: 200, TotalItems: 450, TotalPages: 3}, page.PageInfo)
}

func TestListTransactions_PerPageCappedWhenConfigured(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	uc.cfg.Query.MaxPerPage = 100

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockRepo.EXPECT().Find(gomock.Any(), gomock.Any(), int64(0), int64(100)).Return([]models.Transaction{}, nil)

	page, err := uc.ListTransactions(context.Background(), models.ListParams{Page: 1, PerPage: 5000})

	require.NoError(t, err)
	assert.Equal(t, 100, page.PageInfo.PerPage)
	assert.Equal(t, int64(0), page.PageInfo.TotalPages)
}

func TestListTransactions_RepoErrors(t *testing.T) {
	t.Run("count fails", func(t *testing.T) {
		uc, mockRepo, _, _ := setupUC(t)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		page, err := uc.ListTransactions(context.Background(), models.ListParams{})

		assert.Nil(t, page)
		assert.ErrorContains(t, err, "failed to count transactions")
	})

	t.Run("find fails", func(t *testing.T) {
		uc, mockRepo, _, _ := setupUC(t)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(3), nil)
		mockRepo.EXPECT().Find(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("cursor killed"))

		page, err := uc.ListTransactions(context.Background(), models.ListParams{})

		assert.Nil(t, page)
		assert.ErrorContains(t, err, "failed to find transactions")
	})
}

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		name            string
		page, perPage   int
		wantPage, wantN int
	}{
		{"valid", 3, 20, 3, 20},
		{"zero page", 0, 20, 1, 20},
		{"negative page", -4, 20, 1, 20},
		{"zero per page", 2, 0, 2, 10},
		{"over max", 1, 101, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := normalizePaging(tt.page, tt.perPage, 100)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantN, perPage)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 10))
	assert.Equal(t, int64(1), totalPages(1, 10))
	assert.Equal(t, int64(1), totalPages(10, 10))
	assert.Equal(t, int64(2), totalPages(11, 10))
	assert.Equal(t, int64(3), totalPages(12, 5))
}

func TestMonthlyStats_Success(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	expected := &models.MonthlyStats{TotalSaleAmount: 1190, TotalSoldItems: 3, TotalNotSoldItems: 2}

	mockRepo.EXPECT().SaleStats(gomock.Any(), march2022()).Return(expected, nil)

	stats, err := uc.MonthlyStats(context.Background(), "2022-03")

	require.NoError(t, err)
	assert.Equal(t, 1190.0, stats.TotalSaleAmount)
	assert.Equal(t, int64(3), stats.TotalSoldItems)
	assert.Equal(t, int64(2), stats.TotalNotSoldItems)
}

func TestMonthlyStats_EmptyMonth(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	mockRepo.EXPECT().SaleStats(gomock.Any(), gomock.Any()).Return(nil, nil)

	stats, err := uc.MonthlyStats(context.Background(), "2021-01")

	require.NoError(t, err)
	assert.Equal(t, &models.MonthlyStats{}, stats)
}

func TestMonthlyStats_InvalidMonth(t *testing.T) {
	uc, _, _, _ := setupUC(t)

	stats, err := uc.MonthlyStats(context.Background(), "March")

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, models.ErrInvalidMonth)
}

func TestMonthlyStats_RepoError(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	mockRepo.EXPECT().SaleStats(gomock.Any(), gomock.Any()).Return(nil, errors.New("aggregate failed"))

	stats, err := uc.MonthlyStats(context.Background(), "2022-03")

	assert.Nil(t, stats)
	assert.ErrorContains(t, err, "aggregate failed")
}

func TestPriceHistogram_FillsEmptyRanges(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)

	mockRepo.EXPECT().PriceBuckets(gomock.Any(), march2022()).Return([]models.ChartBucket{
		{Label: "901-9999", Count: 1},
		{Label: "0-100", Count: 1},
		{Label: "101-200", Count: 1},
	}, nil)

	buckets, err := uc.PriceHistogram(context.Background(), "2022-03")

	require.NoError(t, err)
	require.Len(t, buckets, 10)
	assert.Equal(t, models.ChartBucket{Label: "0-100", Count: 1}, buckets[0])
	assert.Equal(t, models.ChartBucket{Label: "101-200", Count: 1}, buckets[1])
	assert.Equal(t, models.ChartBucket{Label: "201-300", Count: 0}, buckets[2])
	assert.Equal(t, models.ChartBucket{Label: "901-9999", Count: 1}, buckets[9])
}

func TestPriceHistogram_Errors(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)

	_, err := uc.PriceHistogram(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrInvalidMonth)

	mockRepo.EXPECT().PriceBuckets(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	_, err = uc.PriceHistogram(context.Background(), "2022-03")
	assert.ErrorContains(t, err, "failed to aggregate price buckets")
}

func TestCategoryHistogram(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	expected := []models.ChartBucket{
		{Label: "electronics", Count: 2},
		{Label: "men's clothing", Count: 3},
	}

	mockRepo.EXPECT().CategoryBuckets(gomock.Any(), march2022()).Return(expected, nil)

	buckets, err := uc.CategoryHistogram(context.Background(), "2022-03")

	require.NoError(t, err)
	assert.Equal(t, expected, buckets)
}

func TestCategoryHistogram_NoData(t *testing.T) {
	uc, mockRepo, _, _ := setupUC(t)
	mockRepo.EXPECT().CategoryBuckets(gomock.Any(), gomock.Any()).Return(nil, nil)

	buckets, err := uc.CategoryHistogram(context.Background(), "2022-03")

	require.NoError(t, err)
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}
