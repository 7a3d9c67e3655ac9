package escrow

import (
	"context"
	"errors"
	"time"

	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/chris/escrow-payments/pkg/scheduler"
	"github.com/chris/escrow-payments/pkg/storage"
)

// ErrTotalMismatch is returned at job creation when milestone amounts do not
// sum to the job total and total validation is enabled.
var ErrTotalMismatch = errors.New("milestone amounts do not sum to job total")

// Config carries the deployment policy toggles for the escrow core.
type Config struct {
	// EnforceConditions gates milestone completion and payment release on all
	// payment conditions being met.
	EnforceConditions bool

	// AutoCompleteOnRelease lets a release auto-promote a non-completed
	// milestone to completed before paying out, recording the previous
	// status. When disabled, releasing a non-completed milestone fails.
	AutoCompleteOnRelease bool

	// ValidateJobTotals rejects job creation when the milestone amounts do
	// not sum to the declared total. When disabled the total is advisory.
	ValidateJobTotals bool

	// AllowImplicitDestination lets SendFunds create a destination wallet for
	// an unknown address instead of failing.
	AllowImplicitDestination bool

	// MaxConflictRetries bounds how often a lost optimistic-concurrency race
	// is retried before the conflict surfaces to the caller.
	MaxConflictRetries int
}

// DefaultConfig returns the correctness-first policy set.
func DefaultConfig() Config {
	return Config{
		EnforceConditions:     true,
		AutoCompleteOnRelease: true,
		ValidateJobTotals:     true,
		MaxConflictRetries:    3,
	}
}

// CompleteMilestoneResult reports a milestone completion.
type CompleteMilestoneResult struct {
	MilestoneId    string
	PreviousStatus models.MilestoneStatus
	NewStatus      models.MilestoneStatus
	JobStatus      models.JobStatus
}

// ReleasePaymentResult reports an orchestrated payment release.
type ReleasePaymentResult struct {
	MilestoneId    string
	PreviousStatus models.MilestoneStatus
	Amount         money.Money
	WalletId       string
	TransactionId  string
	NewBalance     money.Money
	JobStatus      models.JobStatus
}

// JobSpec describes a job to create together with its initial milestone set.
type JobSpec struct {
	Title        string
	Description  string
	ClientId     string
	ContractorId string
	TotalAmount  money.Money
	Milestones   []MilestoneSpec
}

// MilestoneSpec describes one milestone within a JobSpec.
type MilestoneSpec struct {
	Title       string
	Description string
	Amount      money.Money
	DueDate     *time.Time
	Conditions  []ConditionSpec
}

// ConditionSpec describes a payment condition within a MilestoneSpec.
type ConditionSpec struct {
	Type        models.ConditionType
	Operator    models.ConditionOperator
	Value       string
	Description string
}

// EvidenceSpec describes evidence submitted against a milestone.
type EvidenceSpec struct {
	Type        models.EvidenceType
	Url         string
	Description string
}

// API is the surface the escrow core exposes to callers (HTTP layer, workers).
type API interface {
	CreateJob(ctx context.Context, spec JobSpec) (*models.Job, error)
	GetJob(ctx context.Context, jobID string) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	StartJob(ctx context.Context, jobID string) (*models.Job, error)
	CompleteJob(ctx context.Context, jobID string) (*models.Job, error)
	CompleteMilestone(ctx context.Context, jobID, milestoneID string) (*CompleteMilestoneResult, error)
	ReleasePayment(ctx context.Context, jobID, milestoneID string) (*ReleasePaymentResult, error)
	DisputeMilestone(ctx context.Context, jobID, milestoneID string) (*CompleteMilestoneResult, error)
	AddEvidence(ctx context.Context, jobID, milestoneID string, spec EvidenceSpec) (*models.Milestone, error)
	SatisfyCondition(ctx context.Context, jobID, milestoneID, conditionID string) error
	GetWallet(ctx context.Context, walletID string) (*models.Wallet, error)
	ListWallets(ctx context.Context, ownerID string) ([]models.Wallet, error)
	SendFunds(ctx context.Context, walletID string, amount money.Money, toAddress string) (*models.Transaction, error)
	ReceiveFunds(ctx context.Context, walletID string, amount money.Money, description string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, walletID string) ([]models.Transaction, error)
}

// Service implements the escrow core. It is the only component that sequences
// mutations across the job aggregate and the wallet ledger; the two never
// call each other directly.
type Service struct {
	Store     storage.Storage
	Scheduler scheduler.Scheduler
	Config    Config
}

// NewService creates a Service. The scheduler may be nil when no asynchronous
// condition checking is wired in.
func NewService(store storage.Storage, sched scheduler.Scheduler, cfg Config) *Service {
	if cfg.MaxConflictRetries <= 0 {
		cfg.MaxConflictRetries = DefaultConfig().MaxConflictRetries
	}
	return &Service{Store: store, Scheduler: sched, Config: cfg}
}

// Make sure we conform to the interface
var _ API = (*Service)(nil)

// retryOnConflict re-runs op while it loses optimistic-concurrency races,
// bounded by MaxConflictRetries. The op re-reads all state on every attempt,
// so a retry observes the state the winning writer left behind.
func (s *Service) retryOnConflict(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= s.Config.MaxConflictRetries; attempt++ {
		err = op(ctx)
		if !errors.Is(err, storage.ErrConcurrencyConflict) {
			return err
		}
	}
	return err
}
