package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/salesboard/internal/pkg/database"
	"github.com/piresc/salesboard/internal/pkg/models"
	nrpkg "github.com/piresc/salesboard/internal/pkg/newrelic"
)

const (
	transactionsTable = "transactions"
	insertBatchSize   = 500
)

const createTransactionsTable = `
	CREATE TABLE IF NOT EXISTS transactions (
		seq          BIGSERIAL PRIMARY KEY,
		id           INTEGER NOT NULL,
		title        TEXT NOT NULL DEFAULT '',
		price        DOUBLE PRECISION NOT NULL DEFAULT 0,
		description  TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL DEFAULT '',
		image        TEXT NOT NULL DEFAULT '',
		sold         BOOLEAN NOT NULL DEFAULT FALSE,
		date_of_sale TIMESTAMPTZ NOT NULL
	)
`

const createDateOfSaleIndex = `CREATE INDEX IF NOT EXISTS idx_transactions_date_of_sale ON transactions (date_of_sale)`

const transactionColumns = `id, title, price, description, category, image, sold, date_of_sale`

// PostgresTransactionRepo stores transactions in a PostgreSQL table
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewPostgresTransactionRepo creates a repository over client's pool
func NewPostgresTransactionRepo(client *database.PostgresClient) *PostgresTransactionRepo {
	return &PostgresTransactionRepo{db: client.GetDB()}
}

func pgSegment[T any](ctx context.Context, operation string, fn func() (T, error)) (T, error) {
	return nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, transactionsTable, operation, fn)
}

// EnsureSchema creates the transactions table when it does not exist
func (r *PostgresTransactionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTransactionsTable); err != nil {
		return fmt.Errorf("failed to create transactions table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createDateOfSaleIndex); err != nil {
		return fmt.Errorf("failed to create date_of_sale index: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereSearch renders the search filter as a WHERE clause and its args
func whereSearch(filter models.TransactionFilter) (string, []interface{}) {
	if filter.Search == "" {
		return "", nil
	}

	args := []interface{}{"%" + likeEscaper.Replace(filter.Search) + "%"}
	clause := ` WHERE (title ILIKE $1 OR description ILIKE $1`
	if price, ok := searchPrice(filter.Search); ok {
		clause += ` OR price = $2`
		args = append(args, price)
	}
	return clause + `)`, args
}

// priceBucketCase mirrors models.PriceRanges as a SQL CASE expression
func priceBucketCase() string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, r := range models.PriceRanges {
		fmt.Fprintf(&b, " WHEN price >= %g AND price < %g THEN '%s'", r.Min, r.Max, r.Label())
	}
	fmt.Fprintf(&b, " ELSE '%s' END", models.UnknownBucket)
	return b.String()
}

const monthWhere = ` WHERE date_of_sale >= $1 AND date_of_sale < $2`

// ReplaceAll deletes and reinserts every row in one SQL transaction
func (r *PostgresTransactionRepo) ReplaceAll(ctx context.Context, records []models.Transaction) error {
	_, err := pgSegment(ctx, "replaceAll", func() (struct{}, error) {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
			return struct{}{}, fmt.Errorf("failed to clear transactions: %w", err)
		}

		query := `INSERT INTO transactions (` + transactionColumns + `)
			VALUES (:id, :title, :price, :description, :category, :image, :sold, :date_of_sale)`
		for start := 0; start < len(records); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(records) {
				end = len(records)
			}
			if _, err := tx.NamedExecContext(ctx, query, records[start:end]); err != nil {
				return struct{}{}, fmt.Errorf("failed to insert transactions: %w", err)
			}
		}

		if err := tx.Commit(); err != nil {
			return struct{}{}, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}

// Count returns how many transactions match filter
func (r *PostgresTransactionRepo) Count(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	return pgSegment(ctx, "count", func() (int64, error) {
		where, args := whereSearch(filter)

		var n int64
		if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM transactions`+where, args...); err != nil {
			return 0, fmt.Errorf("failed to count transactions: %w", err)
		}
		return n, nil
	})
}

// Find returns up to limit matching transactions in insertion order
func (r *PostgresTransactionRepo) Find(ctx context.Context, filter models.TransactionFilter, skip, limit int64) ([]models.Transaction, error) {
	return pgSegment(ctx, "select", func() ([]models.Transaction, error) {
		where, args := whereSearch(filter)
		n := len(args)
		query := fmt.Sprintf(`SELECT %s FROM transactions%s ORDER BY seq LIMIT $%d OFFSET $%d`,
			transactionColumns, where, n+1, n+2)
		args = append(args, limit, skip)

		records := []models.Transaction{}
		if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
			return nil, fmt.Errorf("failed to find transactions: %w", err)
		}
		return records, nil
	})
}

// SaleStats aggregates the month's sold amount and item counts
func (r *PostgresTransactionRepo) SaleStats(ctx context.Context, month models.MonthRange) (*models.MonthlyStats, error) {
	return pgSegment(ctx, "aggregate", func() (*models.MonthlyStats, error) {
		query := `SELECT
				COALESCE(SUM(CASE WHEN sold THEN price ELSE 0 END), 0) AS total_sale_amount,
				COUNT(*) FILTER (WHERE sold) AS total_sold_items,
				COUNT(*) FILTER (WHERE NOT sold) AS total_not_sold_items
			FROM transactions` + monthWhere

		var stats models.MonthlyStats
		if err := r.db.GetContext(ctx, &stats, query, month.Start, month.Until()); err != nil {
			return nil, fmt.Errorf("failed to aggregate sale stats: %w", err)
		}
		return &stats, nil
	})
}

// PriceBuckets counts the month's transactions per price range label
func (r *PostgresTransactionRepo) PriceBuckets(ctx context.Context, month models.MonthRange) ([]models.ChartBucket, error) {
	return pgSegment(ctx, "aggregate", func() ([]models.ChartBucket, error) {
		query := `SELECT ` + priceBucketCase() + ` AS label, COUNT(*) AS count
			FROM transactions` + monthWhere + ` GROUP BY label`

		buckets := []models.ChartBucket{}
		if err := r.db.SelectContext(ctx, &buckets, query, month.Start, month.Until()); err != nil {
			return nil, fmt.Errorf("failed to aggregate price buckets: %w", err)
		}
		return buckets, nil
	})
}

// CategoryBuckets counts the month's transactions per category
func (r *PostgresTransactionRepo) CategoryBuckets(ctx context.Context, month models.MonthRange) ([]models.ChartBucket, error) {
	return pgSegment(ctx, "aggregate", func() ([]models.ChartBucket, error) {
		query := `SELECT category AS label, COUNT(*) AS count
			FROM transactions` + monthWhere + ` GROUP BY category ORDER BY category`

		buckets := []models.ChartBucket{}
		if err := r.db.SelectContext(ctx, &buckets, query, month.Start, month.Until()); err != nil {
			return nil, fmt.Errorf("failed to aggregate categories: %w", err)
		}
		return buckets, nil
	})
}

// Ping checks the database connection
func (r *PostgresTransactionRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
