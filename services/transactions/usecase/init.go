package usecase

import (
	"context"
	"time"

	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/piresc/salesboard/services/transactions"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

type TransactionUC struct {
	txRepo   transactions.TransactionRepo
	seedLock transactions.SeedLocker
	txGW     transactions.TransactionGW
	cfg      *models.Config
	now      func() time.Time
}

// NewTransactionUC creates a new transactions usecase instance
func NewTransactionUC(
	txRepo transactions.TransactionRepo,
	seedLock transactions.SeedLocker,
	txGW transactions.TransactionGW,
	cfg *models.Config,
) *TransactionUC {
	return &TransactionUC{
		txRepo:   txRepo,
		seedLock: seedLock,
		txGW:     txGW,
		cfg:      cfg,
		now:      models.Now,
	}
}

// maxPerPage returns the optional page size cap, 0 when uncapped
func (uc *TransactionUC) maxPerPage() int {
	if uc.cfg == nil || uc.cfg.Query.MaxPerPage < 1 {
		return 0
	}
	return uc.cfg.Query.MaxPerPage
}

// withQueryTimeout bounds a single store query. No timeout is configured
// when Query.Timeout is zero.
func (uc *TransactionUC) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg == nil || uc.cfg.Query.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(uc.cfg.Query.Timeout)*time.Second)
}
