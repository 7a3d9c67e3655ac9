package models

import (
	"time"

	"github.com/chris/escrow-payments/pkg/money"
)

// Job is the aggregate root owning an ordered collection of milestones.
// Job-level status is derived from milestone state; the version attribute is
// the optimistic-concurrency token for the whole aggregate.
type Job struct {
	Id           string      `json:"id" dynamodbav:"id"`
	Title        string      `json:"title" dynamodbav:"title"`
	Description  string      `json:"description,omitempty" dynamodbav:"description,omitempty"`
	ClientId     string      `json:"client_id" dynamodbav:"client_id"`
	ContractorId string      `json:"contractor_id" dynamodbav:"contractor_id"`
	TotalAmount  money.Money `json:"total_amount" dynamodbav:"total_amount"`
	Status       JobStatus   `json:"status" dynamodbav:"status"`
	Milestones   []Milestone `json:"milestones" dynamodbav:"milestones"`
	Version      int64       `json:"version" dynamodbav:"version"`
	CreatedAt    time.Time   `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" dynamodbav:"updated_at"`
}

// AddMilestone appends a milestone owned by this job. Legal in any job status.
func (j *Job) AddMilestone(m Milestone) {
	m.JobId = j.Id
	j.Milestones = append(j.Milestones, m)
}

// Milestone returns a pointer to the milestone with the given id so callers
// can mutate it in place before the aggregate is persisted.
func (j *Job) Milestone(milestoneID string) (*Milestone, bool) {
	for i := range j.Milestones {
		if j.Milestones[i].Id == milestoneID {
			return &j.Milestones[i], true
		}
	}
	return nil, false
}

// Start moves a pending job to active.
func (j *Job) Start() error {
	if j.Status != JobPending {
		return ErrInvalidTransition
	}
	j.Status = JobActive
	return nil
}

// Complete is the explicit completion operation: every milestone must already
// be completed or released.
func (j *Job) Complete() error {
	for i := range j.Milestones {
		if !j.Milestones[i].IsSettled() {
			return ErrInvalidTransition
		}
	}
	j.Status = JobCompleted
	return nil
}

// Cancel marks the job cancelled. Completed jobs cannot be cancelled.
func (j *Job) Cancel() error {
	if j.Status == JobCompleted {
		return ErrInvalidTransition
	}
	j.Status = JobCancelled
	return nil
}

// RecomputeStatus derives the job status from milestone state: completed iff
// every milestone is completed or released. A previously derived completed
// status falls back to active when a milestone regresses. Disputed and
// cancelled are explicit states and are never overwritten here.
func (j *Job) RecomputeStatus() {
	if j.Status == JobDisputed || j.Status == JobCancelled {
		return
	}
	if len(j.Milestones) > 0 && j.allSettled() {
		j.Status = JobCompleted
		return
	}
	if j.Status == JobCompleted {
		j.Status = JobActive
	}
}

func (j *Job) allSettled() bool {
	for i := range j.Milestones {
		if !j.Milestones[i].IsSettled() {
			return false
		}
	}
	return true
}

// MilestoneSum adds up all milestone amounts. The sum should equal
// TotalAmount; whether that is enforced at creation is a service policy.
func (j *Job) MilestoneSum() (money.Money, error) {
	sum, err := money.Zero(j.TotalAmount.Currency())
	if err != nil {
		return money.Money{}, err
	}
	for i := range j.Milestones {
		sum, err = sum.Add(j.Milestones[i].Amount)
		if err != nil {
			return money.Money{}, err
		}
	}
	return sum, nil
}
