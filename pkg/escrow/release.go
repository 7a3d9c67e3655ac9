package escrow

import (
	"context"
	"fmt"
	"time"

	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/storage"
	"github.com/google/uuid"
)

// ReleasePayment pays out one milestone to the job's contractor. The
// sequence is: load and guard (no wallet mutation can have happened yet if a
// guard fails), resolve the payee wallet, then commit milestone release,
// wallet credit, ledger record, and re-derived job status as one atomic
// transaction. A lost optimistic-concurrency race retries the whole
// operation; a retry that finds the milestone already released surfaces
// ErrAlreadyReleased, so two concurrent releases yield exactly one success.
func (s *Service) ReleasePayment(ctx context.Context, jobID, milestoneID string) (*ReleasePaymentResult, error) {
	var result *ReleasePaymentResult
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		job, err := s.Store.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		milestone, ok := job.Milestone(milestoneID)
		if !ok {
			return storage.ErrMilestoneNotFound
		}
		if milestone.Status == models.MilestoneReleased {
			return models.ErrAlreadyReleased
		}

		previous := milestone.Status
		if milestone.Status != models.MilestoneCompleted {
			if !s.Config.AutoCompleteOnRelease {
				return models.ErrInvalidTransition
			}
			if _, err := milestone.Complete(); err != nil {
				return err
			}
		}
		if s.Config.EnforceConditions && !milestone.ConditionsSatisfied() {
			return models.ErrConditionsNotMet
		}

		wallet, err := s.Store.GetOrCreateWallet(ctx, job.ContractorId, milestone.Amount.Currency())
		if err != nil {
			return err
		}

		if err := milestone.Release(); err != nil {
			return err
		}
		job.RecomputeStatus()
		jobVersion := job.Version
		job.UpdatedAt = time.Now().UTC()

		tx := &models.Transaction{
			Id:           uuid.New().String(),
			WalletId:     wallet.Id,
			JobId:        job.Id,
			Amount:       milestone.Amount,
			Type:         models.TxRelease,
			Status:       models.TxCompleted,
			Description:  fmt.Sprintf("Payment for milestone: %s", milestone.Title),
			ProcessorRef: newProcessorRef("release"),
			Timestamp:    time.Now().UTC(),
		}

		if err := s.Store.ReleaseMilestonePayment(ctx, job, jobVersion, wallet, tx); err != nil {
			return err
		}

		newBalance, err := wallet.Balance.Add(tx.Amount)
		if err != nil {
			return err
		}

		result = &ReleasePaymentResult{
			MilestoneId:    milestone.Id,
			PreviousStatus: previous,
			Amount:         tx.Amount,
			WalletId:       wallet.Id,
			TransactionId:  tx.Id,
			NewBalance:     newBalance,
			JobStatus:      job.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
