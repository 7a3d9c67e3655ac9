package scheduler

import (
	"context"
	"time"
)

// ConditionCheck is the payload enqueued for a payment condition that should
// be re-evaluated at a later time.
type ConditionCheck struct {
	JobId       string    `json:"job_id"`
	MilestoneId string    `json:"milestone_id"`
	ConditionId string    `json:"condition_id"`
	DueAt       time.Time `json:"due_at"`
}

// Scheduler defines the interface for a component that schedules a condition
// check for later processing.
type Scheduler interface {
	// ScheduleConditionCheck enqueues a condition check to run after delay.
	ScheduleConditionCheck(ctx context.Context, check *ConditionCheck, delay time.Duration) error
}
