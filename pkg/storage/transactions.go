package storage

import (
	"context"

	"github.com/chris/escrow-payments/pkg/models"
)

// TransactionReader defines the interface for reading the append-only ledger.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByWallet retrieves a wallet's full transaction log,
	// most recent first.
	ListTransactionsByWallet(ctx context.Context, walletID string) ([]models.Transaction, error)
}
