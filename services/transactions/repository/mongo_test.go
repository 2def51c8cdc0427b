package repository

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testCollection = "producttransactions"

func TestMongoTransactionRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("Count", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		ns := mt.DB.Name() + "." + testCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(12)}}))

		n, err := repo.Count(ctx, models.TransactionFilter{Search: "bike"})

		require.NoError(mt, err)
		assert.Equal(mt, int64(12), n)
	})

	mt.Run("Find", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		ns := mt.DB.Name() + "." + testCollection
		sold := time.Date(2022, 3, 5, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: 6},
				{Key: "title", Value: "Mountain Bike"},
				{Key: "price", Value: 329.85},
				{Key: "category", Value: "sports"},
				{Key: "sold", Value: true},
				{Key: "dateOfSale", Value: sold},
			},
		))

		records, err := repo.Find(ctx, models.TransactionFilter{Search: "bike"}, 5, 5)

		require.NoError(mt, err)
		require.Len(mt, records, 1)
		assert.Equal(mt, 6, records[0].ID)
		assert.Equal(mt, "Mountain Bike", records[0].Title)
		assert.True(mt, records[0].Sold)
		assert.True(mt, sold.Equal(records[0].DateOfSale))
	})

	mt.Run("Find error", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query", Name: "BadValue"}))

		records, err := repo.Find(ctx, models.TransactionFilter{}, 0, 10)

		assert.Nil(mt, records)
		assert.ErrorContains(mt, err, "failed to find transactions")
	})

	mt.Run("SaleStats", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		ns := mt.DB.Name() + "." + testCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSaleAmount", Value: 1190.0},
			{Key: "totalSoldItems", Value: int32(3)},
			{Key: "totalNotSoldItems", Value: int32(2)},
		}))

		stats, err := repo.SaleStats(ctx, march2022())

		require.NoError(mt, err)
		assert.Equal(mt, &models.MonthlyStats{TotalSaleAmount: 1190, TotalSoldItems: 3, TotalNotSoldItems: 2}, stats)
	})

	mt.Run("SaleStats empty month", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		ns := mt.DB.Name() + "." + testCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		stats, err := repo.SaleStats(ctx, march2022())

		require.NoError(mt, err)
		assert.Equal(mt, &models.MonthlyStats{}, stats)
	})

	mt.Run("PriceBuckets", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		ns := mt.DB.Name() + "." + testCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "0-100"}, {Key: "count", Value: int32(2)}},
			bson.D{{Key: "_id", Value: "Unknown"}, {Key: "count", Value: int32(1)}},
		))

		buckets, err := repo.PriceBuckets(ctx, march2022())

		require.NoError(mt, err)
		assert.Equal(mt, []models.ChartBucket{
			{Label: "0-100", Count: 2},
			{Label: "Unknown", Count: 1},
		}, buckets)
	})

	mt.Run("CategoryBuckets", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		ns := mt.DB.Name() + "." + testCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "electronics"}, {Key: "count", Value: int32(4)}},
			bson.D{{Key: "_id", Value: "jewelery"}, {Key: "count", Value: int32(1)}},
		))

		buckets, err := repo.CategoryBuckets(ctx, march2022())

		require.NoError(mt, err)
		assert.Equal(mt, []models.ChartBucket{
			{Label: "electronics", Count: 4},
			{Label: "jewelery", Count: 1},
		}, buckets)
	})

	mt.Run("ReplaceAll swaps staging collection", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
			mtest.CreateSuccessResponse(),
		)

		err := repo.ReplaceAll(ctx, []models.Transaction{{ID: 1}, {ID: 2}})

		require.NoError(mt, err)
	})

	mt.Run("ReplaceAll rename failure", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Message: "unauthorized", Name: "Unauthorized"}),
		)

		err := repo.ReplaceAll(ctx, []models.Transaction{{ID: 1}})

		assert.ErrorContains(mt, err, "failed to swap staging collection")
	})

	mt.Run("ReplaceAll with no records clears collection", func(mt *mtest.T) {
		repo := newMongoTransactionRepo(mt.DB, testCollection)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 60}))

		err := repo.ReplaceAll(ctx, nil)

		require.NoError(mt, err)
	})
}
