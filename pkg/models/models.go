package models

import (
	"errors"
	"time"

	"github.com/chris/escrow-payments/pkg/money"
)

// ErrInvalidTransition is returned for state changes the lifecycle does not permit.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrAlreadyReleased is returned when a release is attempted on a milestone that was already paid out.
var ErrAlreadyReleased = errors.New("payment has already been released for this milestone")

// ErrConditionsNotMet is returned when an operation is gated on payment conditions that are not all satisfied.
var ErrConditionsNotMet = errors.New("payment conditions are not satisfied")

// JobStatus defines the possible states of a job.
type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobActive    JobStatus = "ACTIVE"
	JobCompleted JobStatus = "COMPLETED"
	JobDisputed  JobStatus = "DISPUTED"
	JobCancelled JobStatus = "CANCELLED"
)

// MilestoneStatus defines the possible states of a milestone.
type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "PENDING"
	MilestoneInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneCompleted  MilestoneStatus = "COMPLETED"
	MilestoneReleased   MilestoneStatus = "RELEASED"
	MilestoneDisputed   MilestoneStatus = "DISPUTED"
)

// TransactionType classifies how a transaction moved money.
type TransactionType string

const (
	TxEscrow     TransactionType = "ESCROW"
	TxRelease    TransactionType = "RELEASE"
	TxDeposit    TransactionType = "DEPOSIT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
	TxRefund     TransactionType = "REFUND"
	TxFee        TransactionType = "FEE"
)

// TransactionStatus defines the possible states of a transaction.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxFailed    TransactionStatus = "FAILED"
)

// WalletType distinguishes fiat-backed from crypto-backed wallets.
type WalletType string

const (
	WalletFiat   WalletType = "FIAT"
	WalletCrypto WalletType = "CRYPTO"
)

// Wallet represents the internal domain model for an owner's balance in one
// currency. The balance is mutated only through credit/debit storage
// operations that append a Transaction in the same atomic commit.
type Wallet struct {
	Id        string      `json:"id" dynamodbav:"id"`
	OwnerId   string      `json:"owner_id" dynamodbav:"owner_id"`
	Balance   money.Money `json:"balance" dynamodbav:"balance"`
	Currency  string      `json:"currency" dynamodbav:"currency"`
	Address   string      `json:"address" dynamodbav:"address"`
	Type      WalletType  `json:"type" dynamodbav:"type"`
	IsActive  bool        `json:"is_active" dynamodbav:"is_active"`
	Version   int64       `json:"version" dynamodbav:"version"`
	CreatedAt time.Time   `json:"created_at" dynamodbav:"created_at"`
}

// Transaction is a single append-only ledger record explaining one balance
// change. Transactions are never mutated after creation.
type Transaction struct {
	Id           string            `json:"id" dynamodbav:"id"`
	WalletId     string            `json:"wallet_id" dynamodbav:"wallet_id"`
	JobId        string            `json:"job_id,omitempty" dynamodbav:"job_id,omitempty"`
	Amount       money.Money       `json:"amount" dynamodbav:"amount"`
	Type         TransactionType   `json:"type" dynamodbav:"type"`
	Status       TransactionStatus `json:"status" dynamodbav:"status"`
	Description  string            `json:"description" dynamodbav:"description"`
	ProcessorRef string            `json:"processor_ref,omitempty" dynamodbav:"processor_ref,omitempty"`
	Timestamp    time.Time         `json:"timestamp" dynamodbav:"timestamp"`
}

// IsCredit reports whether the transaction increased the wallet balance.
func (t *Transaction) IsCredit() bool {
	switch t.Type {
	case TxRelease, TxDeposit, TxRefund:
		return true
	}
	return false
}
