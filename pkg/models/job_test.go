package models

import (
	"testing"

	"github.com/chris/escrow-payments/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amount string) money.Money {
	t.Helper()
	m, err := money.FromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func TestJobTransitions(t *testing.T) {
	t.Run("Start From Pending", func(t *testing.T) {
		j := Job{Status: JobPending}
		require.NoError(t, j.Start())
		assert.Equal(t, JobActive, j.Status)
	})

	t.Run("Start From Active Fails", func(t *testing.T) {
		j := Job{Status: JobActive}
		assert.ErrorIs(t, j.Start(), ErrInvalidTransition)
	})

	t.Run("Complete With Unsettled Milestone Fails", func(t *testing.T) {
		j := Job{Status: JobActive, Milestones: []Milestone{
			{Status: MilestoneReleased},
			{Status: MilestoneInProgress},
		}}
		assert.ErrorIs(t, j.Complete(), ErrInvalidTransition)
		assert.Equal(t, JobActive, j.Status)
	})

	t.Run("Complete With All Settled", func(t *testing.T) {
		j := Job{Status: JobActive, Milestones: []Milestone{
			{Status: MilestoneCompleted},
			{Status: MilestoneReleased},
		}}
		require.NoError(t, j.Complete())
		assert.Equal(t, JobCompleted, j.Status)
	})

	t.Run("Cancel Completed Fails", func(t *testing.T) {
		j := Job{Status: JobCompleted}
		assert.ErrorIs(t, j.Cancel(), ErrInvalidTransition)
	})
}

func TestRecomputeStatus(t *testing.T) {
	t.Run("All Settled Derives Completed", func(t *testing.T) {
		j := Job{Status: JobActive, Milestones: []Milestone{
			{Status: MilestoneCompleted},
			{Status: MilestoneReleased},
		}}
		j.RecomputeStatus()
		assert.Equal(t, JobCompleted, j.Status)
	})

	t.Run("No Milestones Stays Put", func(t *testing.T) {
		j := Job{Status: JobActive}
		j.RecomputeStatus()
		assert.Equal(t, JobActive, j.Status)
	})

	t.Run("Completed Falls Back To Active", func(t *testing.T) {
		j := Job{Status: JobCompleted, Milestones: []Milestone{
			{Status: MilestoneDisputed},
		}}
		j.RecomputeStatus()
		assert.Equal(t, JobActive, j.Status)
	})

	t.Run("Disputed Never Overwritten", func(t *testing.T) {
		j := Job{Status: JobDisputed, Milestones: []Milestone{
			{Status: MilestoneCompleted},
		}}
		j.RecomputeStatus()
		assert.Equal(t, JobDisputed, j.Status)
	})

	t.Run("Cancelled Never Overwritten", func(t *testing.T) {
		j := Job{Status: JobCancelled, Milestones: []Milestone{
			{Status: MilestoneReleased},
		}}
		j.RecomputeStatus()
		assert.Equal(t, JobCancelled, j.Status)
	})
}

func TestAddMilestone(t *testing.T) {
	j := Job{Id: "job-1"}
	j.AddMilestone(Milestone{Id: "m1"})
	require.Len(t, j.Milestones, 1)
	assert.Equal(t, "job-1", j.Milestones[0].JobId)
}

func TestMilestoneSum(t *testing.T) {
	j := Job{TotalAmount: usd(t, "1000.00")}
	j.AddMilestone(Milestone{Amount: usd(t, "300.00")})
	j.AddMilestone(Milestone{Amount: usd(t, "500.00")})
	j.AddMilestone(Milestone{Amount: usd(t, "200.00")})

	sum, err := j.MilestoneSum()
	require.NoError(t, err)
	assert.True(t, sum.Equal(j.TotalAmount))
}

func TestTransactionIsCredit(t *testing.T) {
	assert.True(t, (&Transaction{Type: TxRelease}).IsCredit())
	assert.True(t, (&Transaction{Type: TxDeposit}).IsCredit())
	assert.True(t, (&Transaction{Type: TxRefund}).IsCredit())
	assert.False(t, (&Transaction{Type: TxWithdrawal}).IsCredit())
	assert.False(t, (&Transaction{Type: TxEscrow}).IsCredit())
	assert.False(t, (&Transaction{Type: TxFee}).IsCredit())
}
