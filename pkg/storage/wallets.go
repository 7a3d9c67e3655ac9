package storage

import (
	"context"

	"github.com/chris/escrow-payments/pkg/models"
)

// WalletStore defines the interface for managing wallets and moving money
// through them. Every balance mutation appends a transaction record in the
// same atomic commit; there is no way to write a balance directly.
type WalletStore interface {
	// GetOrCreateWallet returns the wallet for (owner, currency), creating it
	// with a zero balance and a fresh address if it does not exist. Creation
	// is idempotent under concurrent callers: at most one wallet can exist
	// per owner and currency.
	GetOrCreateWallet(ctx context.Context, ownerID, currency string) (*models.Wallet, error)

	// GetWallet retrieves a wallet by its id.
	GetWallet(ctx context.Context, walletID string) (*models.Wallet, error)

	// GetWalletByAddress retrieves a wallet by its opaque address.
	GetWalletByAddress(ctx context.Context, address string) (*models.Wallet, error)

	// ListWalletsByOwner retrieves all wallets belonging to an owner.
	ListWalletsByOwner(ctx context.Context, ownerID string) ([]models.Wallet, error)

	// ListWallets retrieves every wallet. Used by the reconciliation audit.
	ListWallets(ctx context.Context) ([]models.Wallet, error)

	// CreditWallet increases the wallet balance by tx.Amount and appends tx,
	// conditioned on wallet.Version.
	CreditWallet(ctx context.Context, wallet *models.Wallet, tx *models.Transaction) error

	// DebitWallet decreases the wallet balance by tx.Amount and appends tx,
	// conditioned on wallet.Version and on the balance covering the amount.
	// It fails with ErrInsufficientBalance when the balance cannot cover it.
	DebitWallet(ctx context.Context, wallet *models.Wallet, tx *models.Transaction) error

	// TransferFunds debits source and credits dest in one atomic commit,
	// appending both transaction records. Either all four writes become
	// visible or none do.
	TransferFunds(ctx context.Context, source, dest *models.Wallet, debitTx, creditTx *models.Transaction) error
}
