package escrow

import (
	"context"
	"testing"

	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/chris/escrow-payments/pkg/storage"
	storage_mocks "github.com/chris/escrow-payments/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amount string) money.Money {
	t.Helper()
	m, err := money.FromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func releasableJob(t *testing.T, milestoneStatus models.MilestoneStatus) *models.Job {
	job := &models.Job{
		Id:           "job-1",
		ContractorId: "contractor-1",
		TotalAmount:  usd(t, "300.00"),
		Status:       models.JobActive,
		Version:      4,
	}
	job.AddMilestone(models.Milestone{
		Id:     "ms-1",
		Title:  "Foundation work",
		Amount: usd(t, "300.00"),
		Status: milestoneStatus,
	})
	return job
}

func contractorWallet(t *testing.T) *models.Wallet {
	return &models.Wallet{
		Id:       "wallet-1",
		OwnerId:  "contractor-1",
		Balance:  usd(t, "500.00"),
		Currency: "USD",
		Version:  2,
	}
}

func TestReleasePayment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneCompleted), nil)
		mockStore.On("GetOrCreateWallet", mock.Anything, "contractor-1", "USD").Once().Return(contractorWallet(t), nil)
		mockStore.On("ReleaseMilestonePayment", mock.Anything, mock.AnythingOfType("*models.Job"), int64(4), mock.AnythingOfType("*models.Wallet"), mock.AnythingOfType("*models.Transaction")).
			Once().Return(nil)

		result, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		require.NoError(t, err)

		assert.Equal(t, "ms-1", result.MilestoneId)
		assert.Equal(t, models.MilestoneCompleted, result.PreviousStatus)
		assert.Equal(t, "wallet-1", result.WalletId)
		assert.True(t, result.Amount.Equal(usd(t, "300.00")))
		assert.True(t, result.NewBalance.Equal(usd(t, "800.00")))
		assert.Equal(t, models.JobCompleted, result.JobStatus)

		committedJob := mockStore.Calls[2].Arguments.Get(1).(*models.Job)
		assert.Equal(t, models.MilestoneReleased, committedJob.Milestones[0].Status)
		assert.Equal(t, models.JobCompleted, committedJob.Status)

		committedTx := mockStore.Calls[2].Arguments.Get(4).(*models.Transaction)
		assert.Equal(t, models.TxRelease, committedTx.Type)
		assert.Equal(t, models.TxCompleted, committedTx.Status)
		assert.Contains(t, committedTx.Description, "Foundation work")
		assert.Regexp(t, `^release_[0-9a-f]{12}$`, committedTx.ProcessorRef)

		mockStore.AssertExpectations(t)
	})

	t.Run("Already Released", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneReleased), nil)

		_, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, models.ErrAlreadyReleased)

		// No wallet is touched and nothing is committed on the guard path.
		mockStore.AssertNotCalled(t, "GetOrCreateWallet", mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertNotCalled(t, "ReleaseMilestonePayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Auto Completes In Progress Milestone", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneInProgress), nil)
		mockStore.On("GetOrCreateWallet", mock.Anything, "contractor-1", "USD").Once().Return(contractorWallet(t), nil)
		mockStore.On("ReleaseMilestonePayment", mock.Anything, mock.Anything, int64(4), mock.Anything, mock.Anything).Once().Return(nil)

		result, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		require.NoError(t, err)
		assert.Equal(t, models.MilestoneInProgress, result.PreviousStatus)
		mockStore.AssertExpectations(t)
	})

	t.Run("Auto Complete Disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AutoCompleteOnRelease = false
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, cfg)

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneInProgress), nil)

		_, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		mockStore.AssertExpectations(t)
	})

	t.Run("Conditions Not Met", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		job := releasableJob(t, models.MilestoneCompleted)
		job.Milestones[0].Conditions = []models.PaymentCondition{{Id: "c1", Type: models.ConditionApproval}}
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)

		_, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, models.ErrConditionsNotMet)
		mockStore.AssertExpectations(t)
	})

	t.Run("Milestone Not Found", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneCompleted), nil)

		_, err := service.ReleasePayment(context.Background(), "job-1", "nope")
		assert.ErrorIs(t, err, storage.ErrMilestoneNotFound)
		mockStore.AssertExpectations(t)
	})

	t.Run("Lost Race Surfaces Already Released", func(t *testing.T) {
		// A concurrent release wins the version check; the retry re-reads the
		// aggregate, sees the released milestone, and reports it.
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneCompleted), nil)
		mockStore.On("GetOrCreateWallet", mock.Anything, "contractor-1", "USD").Once().Return(contractorWallet(t), nil)
		mockStore.On("ReleaseMilestonePayment", mock.Anything, mock.Anything, int64(4), mock.Anything, mock.Anything).
			Once().Return(storage.ErrConcurrencyConflict)
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneReleased), nil)

		_, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, models.ErrAlreadyReleased)
		mockStore.AssertExpectations(t)
	})

	t.Run("Persistent Conflict Gives Up", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxConflictRetries = 2
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, cfg)

		mockStore.On("GetJob", mock.Anything, "job-1").Times(3).Return(releasableJob(t, models.MilestoneCompleted), nil)
		mockStore.On("GetOrCreateWallet", mock.Anything, "contractor-1", "USD").Times(3).Return(contractorWallet(t), nil)
		mockStore.On("ReleaseMilestonePayment", mock.Anything, mock.Anything, int64(4), mock.Anything, mock.Anything).
			Times(3).Return(storage.ErrConcurrencyConflict)

		_, err := service.ReleasePayment(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, storage.ErrConcurrencyConflict)
		mockStore.AssertExpectations(t)
	})
}
