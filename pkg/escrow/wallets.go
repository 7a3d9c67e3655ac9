package escrow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/chris/escrow-payments/pkg/storage"
	"github.com/google/uuid"
)

// GetWallet retrieves a wallet by its id.
func (s *Service) GetWallet(ctx context.Context, walletID string) (*models.Wallet, error) {
	return s.Store.GetWallet(ctx, walletID)
}

// ListWallets retrieves all wallets belonging to an owner.
func (s *Service) ListWallets(ctx context.Context, ownerID string) ([]models.Wallet, error) {
	return s.Store.ListWalletsByOwner(ctx, ownerID)
}

// ListTransactions retrieves a wallet's transaction log, most recent first.
func (s *Service) ListTransactions(ctx context.Context, walletID string) ([]models.Transaction, error) {
	return s.Store.ListTransactionsByWallet(ctx, walletID)
}

// SendFunds debits the wallet and credits the wallet at toAddress in one
// atomic transfer. An uncovered amount fails with ErrInsufficientBalance
// before any write, so no transaction record is created for a refused send.
func (s *Service) SendFunds(ctx context.Context, walletID string, amount money.Money, toAddress string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, money.ErrNegativeAmount
	}

	var debitTx *models.Transaction
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		source, err := s.Store.GetWallet(ctx, walletID)
		if err != nil {
			return err
		}
		if source.Currency != amount.Currency() {
			return money.ErrCurrencyMismatch
		}
		if short, err := source.Balance.LessThan(amount); err != nil {
			return err
		} else if short {
			return storage.ErrInsufficientBalance
		}

		dest, err := s.resolveDestination(ctx, source, toAddress)
		if err != nil {
			return err
		}
		if dest.Currency != amount.Currency() {
			return money.ErrCurrencyMismatch
		}

		now := time.Now().UTC()
		out := &models.Transaction{
			Id:           uuid.New().String(),
			WalletId:     source.Id,
			Amount:       amount,
			Type:         models.TxWithdrawal,
			Status:       models.TxCompleted,
			Description:  fmt.Sprintf("Transfer to %s", toAddress),
			ProcessorRef: newProcessorRef("transfer"),
			Timestamp:    now,
		}
		in := &models.Transaction{
			Id:           uuid.New().String(),
			WalletId:     dest.Id,
			Amount:       amount,
			Type:         models.TxDeposit,
			Status:       models.TxCompleted,
			Description:  fmt.Sprintf("Transfer from %s", source.Address),
			ProcessorRef: out.ProcessorRef,
			Timestamp:    now,
		}

		if err := s.Store.TransferFunds(ctx, source, dest, out, in); err != nil {
			return err
		}
		debitTx = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return debitTx, nil
}

// resolveDestination looks up the destination wallet by address. When the
// address is unknown and policy permits, a wallet owned by the address itself
// is created so external deposit addresses can receive funds.
func (s *Service) resolveDestination(ctx context.Context, source *models.Wallet, toAddress string) (*models.Wallet, error) {
	dest, err := s.Store.GetWalletByAddress(ctx, toAddress)
	if err == nil {
		return dest, nil
	}
	if errors.Is(err, storage.ErrWalletNotFound) && s.Config.AllowImplicitDestination {
		return s.Store.GetOrCreateWallet(ctx, toAddress, source.Currency)
	}
	return nil, err
}

// ReceiveFunds credits the wallet and appends a deposit record atomically.
func (s *Service) ReceiveFunds(ctx context.Context, walletID string, amount money.Money, description string) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, money.ErrNegativeAmount
	}
	if description == "" {
		description = "Funds received"
	}

	var creditTx *models.Transaction
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		wallet, err := s.Store.GetWallet(ctx, walletID)
		if err != nil {
			return err
		}
		if wallet.Currency != amount.Currency() {
			return money.ErrCurrencyMismatch
		}

		tx := &models.Transaction{
			Id:           uuid.New().String(),
			WalletId:     wallet.Id,
			Amount:       amount,
			Type:         models.TxDeposit,
			Status:       models.TxCompleted,
			Description:  description,
			ProcessorRef: newProcessorRef("deposit"),
			Timestamp:    time.Now().UTC(),
		}

		if err := s.Store.CreditWallet(ctx, wallet, tx); err != nil {
			return err
		}
		creditTx = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return creditTx, nil
}
