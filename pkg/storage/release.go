package storage

import (
	"context"

	"github.com/chris/escrow-payments/pkg/models"
)

// ReleaseStore defines the privileged interface for the orchestrated payment
// release. The commit spans the job aggregate (milestone status plus derived
// job status), the payee wallet balance, and the ledger record; either all
// three land or none do. It should only be exposed to the component that
// sequences releases.
type ReleaseStore interface {
	// ReleaseMilestonePayment commits the already-mutated job aggregate, the
	// wallet credit of tx.Amount, and the transaction record atomically. The
	// job write is conditioned on jobVersion and the wallet write on
	// wallet.Version; a lost race on either surfaces ErrConcurrencyConflict
	// and leaves no partial state behind.
	ReleaseMilestonePayment(ctx context.Context, job *models.Job, jobVersion int64, wallet *models.Wallet, tx *models.Transaction) error
}
