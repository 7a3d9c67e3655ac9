package escrow

import (
	"context"
	"testing"
	"time"

	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/scheduler"
	scheduler_mocks "github.com/chris/escrow-payments/pkg/scheduler/mocks"
	storage_mocks "github.com/chris/escrow-payments/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func threeMilestoneSpec(t *testing.T) JobSpec {
	return JobSpec{
		Title:        "Kitchen remodel",
		ClientId:     "client-1",
		ContractorId: "contractor-1",
		TotalAmount:  usd(t, "1000.00"),
		Milestones: []MilestoneSpec{
			{Title: "Demolition", Amount: usd(t, "300.00")},
			{Title: "Cabinets", Amount: usd(t, "500.00")},
			{Title: "Finishing", Amount: usd(t, "200.00")},
		},
	}
}

func TestCreateJob(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("CreateJob", mock.Anything, mock.AnythingOfType("*models.Job")).Once().
			Return(func(ctx context.Context, job *models.Job) *models.Job { return job }, nil)

		job, err := service.CreateJob(context.Background(), threeMilestoneSpec(t))
		require.NoError(t, err)

		assert.NotEmpty(t, job.Id)
		assert.Equal(t, models.JobPending, job.Status)
		assert.Equal(t, int64(1), job.Version)
		require.Len(t, job.Milestones, 3)
		for _, m := range job.Milestones {
			assert.NotEmpty(t, m.Id)
			assert.Equal(t, job.Id, m.JobId)
			assert.Equal(t, models.MilestonePending, m.Status)
		}
		mockStore.AssertExpectations(t)
	})

	t.Run("Total Mismatch", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		spec := threeMilestoneSpec(t)
		spec.TotalAmount = usd(t, "999.00")

		_, err := service.CreateJob(context.Background(), spec)
		assert.ErrorIs(t, err, ErrTotalMismatch)
		mockStore.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
	})

	t.Run("Total Mismatch Ignored When Disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ValidateJobTotals = false
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, cfg)

		mockStore.On("CreateJob", mock.Anything, mock.Anything).Once().
			Return(func(ctx context.Context, job *models.Job) *models.Job { return job }, nil)

		spec := threeMilestoneSpec(t)
		spec.TotalAmount = usd(t, "999.00")

		_, err := service.CreateJob(context.Background(), spec)
		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("Schedules Time Conditions", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		mockScheduler := new(scheduler_mocks.Scheduler)
		service := NewService(mockStore, mockScheduler, DefaultConfig())

		due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
		spec := JobSpec{
			Title:        "Delivery contract",
			ContractorId: "contractor-1",
			TotalAmount:  usd(t, "100.00"),
			Milestones: []MilestoneSpec{{
				Title:  "Drop off",
				Amount: usd(t, "100.00"),
				Conditions: []ConditionSpec{
					{Type: models.ConditionTime, Operator: models.OperatorGreaterThan, Value: due.Format(time.RFC3339)},
					{Type: models.ConditionApproval, Operator: models.OperatorEquals, Value: "true"},
				},
			}},
		}

		mockStore.On("CreateJob", mock.Anything, mock.Anything).Once().
			Return(func(ctx context.Context, job *models.Job) *models.Job { return job }, nil)
		mockScheduler.On("ScheduleConditionCheck", mock.Anything, mock.AnythingOfType("*scheduler.ConditionCheck"), mock.AnythingOfType("time.Duration")).
			Once().Return(nil)

		job, err := service.CreateJob(context.Background(), spec)
		require.NoError(t, err)

		// Only the time condition is scheduled, and it carries the due time.
		check := mockScheduler.Calls[0].Arguments.Get(1).(*scheduler.ConditionCheck)
		assert.Equal(t, job.Id, check.JobId)
		assert.Equal(t, job.Milestones[0].Id, check.MilestoneId)
		assert.True(t, check.DueAt.Equal(due))

		mockStore.AssertExpectations(t)
		mockScheduler.AssertExpectations(t)
	})
}

func TestCompleteMilestone(t *testing.T) {
	t.Run("Success Recomputes Job Status", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		job := releasableJob(t, models.MilestoneInProgress)
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)
		mockStore.On("UpdateJob", mock.Anything, mock.AnythingOfType("*models.Job"), int64(4)).Once().Return(nil)

		result, err := service.CompleteMilestone(context.Background(), "job-1", "ms-1")
		require.NoError(t, err)

		assert.Equal(t, models.MilestoneInProgress, result.PreviousStatus)
		assert.Equal(t, models.MilestoneCompleted, result.NewStatus)
		assert.Equal(t, models.JobCompleted, result.JobStatus)
		mockStore.AssertExpectations(t)
	})

	t.Run("Released Milestone Fails", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneReleased), nil)

		_, err := service.CompleteMilestone(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		mockStore.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unmet Conditions Block Completion", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		job := releasableJob(t, models.MilestoneInProgress)
		job.Milestones[0].Conditions = []models.PaymentCondition{{Id: "c1", Type: models.ConditionApproval}}
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)

		_, err := service.CompleteMilestone(context.Background(), "job-1", "ms-1")
		assert.ErrorIs(t, err, models.ErrConditionsNotMet)
	})
}

func TestDisputeMilestone(t *testing.T) {
	mockStore := new(storage_mocks.Storage)
	service := NewService(mockStore, nil, DefaultConfig())

	job := releasableJob(t, models.MilestoneInProgress)
	mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)
	mockStore.On("UpdateJob", mock.Anything, mock.AnythingOfType("*models.Job"), int64(4)).Once().Return(nil)

	result, err := service.DisputeMilestone(context.Background(), "job-1", "ms-1")
	require.NoError(t, err)

	assert.Equal(t, models.MilestoneDisputed, result.NewStatus)
	assert.Equal(t, models.JobDisputed, result.JobStatus)
	mockStore.AssertExpectations(t)
}

func TestSatisfyCondition(t *testing.T) {
	t.Run("Marks Condition Met", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		job := releasableJob(t, models.MilestoneInProgress)
		job.Milestones[0].Conditions = []models.PaymentCondition{{Id: "c1", Type: models.ConditionTime}}
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)
		mockStore.On("UpdateJob", mock.Anything, mock.AnythingOfType("*models.Job"), int64(4)).Once().Return(nil)

		err := service.SatisfyCondition(context.Background(), "job-1", "ms-1", "c1")
		require.NoError(t, err)

		committed := mockStore.Calls[1].Arguments.Get(1).(*models.Job)
		assert.True(t, committed.Milestones[0].Conditions[0].IsMet)
		mockStore.AssertExpectations(t)
	})

	t.Run("Already Met Is A No-Op", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		job := releasableJob(t, models.MilestoneInProgress)
		job.Milestones[0].Conditions = []models.PaymentCondition{{Id: "c1", IsMet: true}}
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)

		err := service.SatisfyCondition(context.Background(), "job-1", "ms-1", "c1")
		require.NoError(t, err)
		mockStore.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStartJob(t *testing.T) {
	mockStore := new(storage_mocks.Storage)
	service := NewService(mockStore, nil, DefaultConfig())

	job := releasableJob(t, models.MilestonePending)
	job.Status = models.JobPending
	mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)
	mockStore.On("UpdateJob", mock.Anything, mock.AnythingOfType("*models.Job"), int64(4)).Once().Return(nil)

	updated, err := service.StartJob(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, models.JobActive, updated.Status)
	mockStore.AssertExpectations(t)
}

func TestCompleteJob(t *testing.T) {
	t.Run("All Settled", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		job := releasableJob(t, models.MilestoneReleased)
		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(job, nil)
		mockStore.On("UpdateJob", mock.Anything, mock.AnythingOfType("*models.Job"), int64(4)).Once().Return(nil)

		updated, err := service.CompleteJob(context.Background(), "job-1")
		require.NoError(t, err)
		assert.Equal(t, models.JobCompleted, updated.Status)
		mockStore.AssertExpectations(t)
	})

	t.Run("Unsettled Milestone Blocks", func(t *testing.T) {
		mockStore := new(storage_mocks.Storage)
		service := NewService(mockStore, nil, DefaultConfig())

		mockStore.On("GetJob", mock.Anything, "job-1").Once().Return(releasableJob(t, models.MilestoneInProgress), nil)

		_, err := service.CompleteJob(context.Background(), "job-1")
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		mockStore.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything, mock.Anything)
	})
}
