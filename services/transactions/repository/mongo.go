package repository

import (
	"context"
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
	nrpkg "github.com/piresc/salesboard/internal/pkg/newrelic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const stagingSuffix = "_staging"

// MongoTransactionRepo stores transactions in a MongoDB collection
type MongoTransactionRepo struct {
	db         *mongo.Database
	collection string
}

// NewMongoTransactionRepo creates a repository over client's database
func NewMongoTransactionRepo(client *database.MongoClient, collection string) *MongoTransactionRepo {
	return newMongoTransactionRepo(client.Database(), collection)
}

func newMongoTransactionRepo(db *mongo.Database, collection string) *MongoTransactionRepo {
	return &MongoTransactionRepo{db: db, collection: collection}
}

func (r *MongoTransactionRepo) coll() *mongo.Collection {
	return r.db.Collection(r.collection)
}

func mongoSegment[T any](ctx context.Context, collection, operation string, fn func() (T, error)) (T, error) {
	return nrpkg.WithDatastoreSegment(ctx, newrelic.DatastoreMongoDB, collection, operation, fn)
}

// ReplaceAll loads records into a staging collection and renames it over
// the live one, so readers never observe an empty collection mid-seed
func (r *MongoTransactionRepo) ReplaceAll(ctx context.Context, records []models.Transaction) error {
	_, err := mongoSegment(ctx, r.collection, "replaceAll", func() (struct{}, error) {
		if len(records) == 0 {
			if _, err := r.coll().DeleteMany(ctx, bson.D{}); err != nil {
				return struct{}{}, fmt.Errorf("failed to clear transactions: %w", err)
			}
			return struct{}{}, nil
		}

		stagingName := r.collection + stagingSuffix
		staging := r.db.Collection(stagingName)
		if err := staging.Drop(ctx); err != nil {
			return struct{}{}, fmt.Errorf("failed to drop staging collection: %w", err)
		}

		docs := make([]interface{}, len(records))
		for i := range records {
			docs[i] = records[i]
		}
		if _, err := staging.InsertMany(ctx, docs); err != nil {
			return struct{}{}, fmt.Errorf("failed to insert transactions: %w", err)
		}

		rename := bson.D{
			{Key: "renameCollection", Value: r.db.Name() + "." + stagingName},
			{Key: "to", Value: r.db.Name() + "." + r.collection},
			{Key: "dropTarget", Value: true},
		}
		if err := r.db.Client().Database("admin").RunCommand(ctx, rename).Err(); err != nil {
			return struct{}{}, fmt.Errorf("failed to swap staging collection: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}

// Count returns how many transactions match filter
func (r *MongoTransactionRepo) Count(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	return mongoSegment(ctx, r.collection, "countDocuments", func() (int64, error) {
		n, err := r.coll().CountDocuments(ctx, searchFilter(filter))
		if err != nil {
			return 0, fmt.Errorf("failed to count transactions: %w", err)
		}
		return n, nil
	})
}

// Find returns up to limit matching transactions after skipping skip
func (r *MongoTransactionRepo) Find(ctx context.Context, filter models.TransactionFilter, skip, limit int64) ([]models.Transaction, error) {
	return mongoSegment(ctx, r.collection, "find", func() ([]models.Transaction, error) {
		opts := options.Find().SetSkip(skip).SetLimit(limit)
		cursor, err := r.coll().Find(ctx, searchFilter(filter), opts)
		if err != nil {
			return nil, fmt.Errorf("failed to find transactions: %w", err)
		}

		records := []models.Transaction{}
		if err := cursor.All(ctx, &records); err != nil {
			return nil, fmt.Errorf("failed to decode transactions: %w", err)
		}
		return records, nil
	})
}

// SaleStats aggregates the month's sold amount and item counts
func (r *MongoTransactionRepo) SaleStats(ctx context.Context, month models.MonthRange) (*models.MonthlyStats, error) {
	return mongoSegment(ctx, r.collection, "aggregate", func() (*models.MonthlyStats, error) {
		var rows []models.MonthlyStats
		if err := r.aggregate(ctx, saleStatsPipeline(month), &rows); err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return &models.MonthlyStats{}, nil
		}
		return &rows[0], nil
	})
}

// PriceBuckets counts the month's transactions per price range label
func (r *MongoTransactionRepo) PriceBuckets(ctx context.Context, month models.MonthRange) ([]models.ChartBucket, error) {
	return mongoSegment(ctx, r.collection, "aggregate", func() ([]models.ChartBucket, error) {
		buckets := []models.ChartBucket{}
		err := r.aggregate(ctx, priceBucketPipeline(month), &buckets)
		return buckets, err
	})
}

// CategoryBuckets counts the month's transactions per category
func (r *MongoTransactionRepo) CategoryBuckets(ctx context.Context, month models.MonthRange) ([]models.ChartBucket, error) {
	return mongoSegment(ctx, r.collection, "aggregate", func() ([]models.ChartBucket, error) {
		buckets := []models.ChartBucket{}
		err := r.aggregate(ctx, categoryPipeline(month), &buckets)
		return buckets, err
	})
}

func (r *MongoTransactionRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll().Aggregate(ctx, pipeline)
	if err != nil {
		logger.DebugCtx(ctx, "Aggregation failed", logger.String("collection", r.collection), logger.Err(err))
		return fmt.Errorf("failed to run aggregation: %w", err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode aggregation: %w", err)
	}
	return nil
}

// Ping checks the database connection
func (r *MongoTransactionRepo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, nil)
}
