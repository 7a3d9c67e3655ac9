package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneTransitions(t *testing.T) {
	t.Run("Start From Pending", func(t *testing.T) {
		m := Milestone{Status: MilestonePending}
		require.NoError(t, m.Start())
		assert.Equal(t, MilestoneInProgress, m.Status)
	})

	t.Run("Start From InProgress Fails", func(t *testing.T) {
		m := Milestone{Status: MilestoneInProgress}
		assert.ErrorIs(t, m.Start(), ErrInvalidTransition)
	})

	t.Run("Complete From Pending", func(t *testing.T) {
		m := Milestone{Status: MilestonePending}
		previous, err := m.Complete()
		require.NoError(t, err)
		assert.Equal(t, MilestonePending, previous)
		assert.Equal(t, MilestoneCompleted, m.Status)
	})

	t.Run("Complete From Disputed", func(t *testing.T) {
		m := Milestone{Status: MilestoneDisputed}
		previous, err := m.Complete()
		require.NoError(t, err)
		assert.Equal(t, MilestoneDisputed, previous)
		assert.Equal(t, MilestoneCompleted, m.Status)
	})

	t.Run("Complete Is Idempotent", func(t *testing.T) {
		m := Milestone{Status: MilestoneCompleted}
		previous, err := m.Complete()
		require.NoError(t, err)
		assert.Equal(t, MilestoneCompleted, previous)
		assert.Equal(t, MilestoneCompleted, m.Status)
	})

	t.Run("Complete From Released Fails", func(t *testing.T) {
		m := Milestone{Status: MilestoneReleased}
		_, err := m.Complete()
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, MilestoneReleased, m.Status)
	})

	t.Run("Release From Completed", func(t *testing.T) {
		m := Milestone{Status: MilestoneCompleted}
		require.NoError(t, m.Release())
		assert.Equal(t, MilestoneReleased, m.Status)
	})

	t.Run("Release Twice Fails", func(t *testing.T) {
		m := Milestone{Status: MilestoneReleased}
		assert.ErrorIs(t, m.Release(), ErrAlreadyReleased)
	})

	t.Run("Release From Pending Fails", func(t *testing.T) {
		m := Milestone{Status: MilestonePending}
		assert.ErrorIs(t, m.Release(), ErrInvalidTransition)
	})

	t.Run("Dispute From InProgress", func(t *testing.T) {
		m := Milestone{Status: MilestoneInProgress}
		require.NoError(t, m.Dispute())
		assert.Equal(t, MilestoneDisputed, m.Status)
	})

	t.Run("Dispute Released Fails", func(t *testing.T) {
		m := Milestone{Status: MilestoneReleased}
		assert.ErrorIs(t, m.Dispute(), ErrInvalidTransition)
	})
}

func TestMilestoneSettled(t *testing.T) {
	assert.True(t, (&Milestone{Status: MilestoneCompleted}).IsSettled())
	assert.True(t, (&Milestone{Status: MilestoneReleased}).IsSettled())
	assert.False(t, (&Milestone{Status: MilestonePending}).IsSettled())
	assert.False(t, (&Milestone{Status: MilestoneDisputed}).IsSettled())
}

func TestConditionsSatisfied(t *testing.T) {
	t.Run("No Conditions", func(t *testing.T) {
		m := Milestone{}
		assert.True(t, m.ConditionsSatisfied())
	})

	t.Run("All Met", func(t *testing.T) {
		m := Milestone{Conditions: []PaymentCondition{{IsMet: true}, {IsMet: true}}}
		assert.True(t, m.ConditionsSatisfied())
	})

	t.Run("One Unmet", func(t *testing.T) {
		m := Milestone{Conditions: []PaymentCondition{{IsMet: true}, {IsMet: false}}}
		assert.False(t, m.ConditionsSatisfied())
	})
}

func TestConditionEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Time GreaterThan Past", func(t *testing.T) {
		c := PaymentCondition{Type: ConditionTime, Operator: OperatorGreaterThan, Value: "2025-06-01T00:00:00Z"}
		assert.True(t, c.Evaluate(now))
	})

	t.Run("Time GreaterThan Future", func(t *testing.T) {
		c := PaymentCondition{Type: ConditionTime, Operator: OperatorGreaterThan, Value: "2025-07-01T00:00:00Z"}
		assert.False(t, c.Evaluate(now))
	})

	t.Run("Time LessThan Deadline", func(t *testing.T) {
		c := PaymentCondition{Type: ConditionTime, Operator: OperatorLessThan, Value: "2025-07-01T00:00:00Z"}
		assert.True(t, c.Evaluate(now))
	})

	t.Run("Unparseable Value", func(t *testing.T) {
		c := PaymentCondition{Type: ConditionTime, Operator: OperatorGreaterThan, Value: "whenever"}
		assert.False(t, c.Evaluate(now))
	})

	t.Run("Non Time Returns IsMet", func(t *testing.T) {
		c := PaymentCondition{Type: ConditionApproval, IsMet: false}
		assert.False(t, c.Evaluate(now))
		c.MarkMet()
		assert.True(t, c.Evaluate(now))
	})
}

func TestMilestoneCondition(t *testing.T) {
	m := Milestone{Conditions: []PaymentCondition{{Id: "c1"}, {Id: "c2"}}}

	found, ok := m.Condition("c2")
	require.True(t, ok)
	found.MarkMet()
	assert.True(t, m.Conditions[1].IsMet)

	_, ok = m.Condition("missing")
	assert.False(t, ok)
}
