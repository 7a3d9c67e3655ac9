package escrow

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/scheduler"
	"github.com/chris/escrow-payments/pkg/storage"
	"github.com/google/uuid"
)

// CreateJob persists a new job together with its initial milestone set in one
// write. Milestone amounts must share the job's currency; whether they must
// sum to the declared total is governed by ValidateJobTotals.
func (s *Service) CreateJob(ctx context.Context, spec JobSpec) (*models.Job, error) {
	now := time.Now().UTC()

	job := &models.Job{
		Id:           uuid.New().String(),
		Title:        spec.Title,
		Description:  spec.Description,
		ClientId:     spec.ClientId,
		ContractorId: spec.ContractorId,
		TotalAmount:  spec.TotalAmount,
		Status:       models.JobPending,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, ms := range spec.Milestones {
		milestone := models.Milestone{
			Id:          uuid.New().String(),
			Title:       ms.Title,
			Description: ms.Description,
			Amount:      ms.Amount,
			Status:      models.MilestonePending,
			DueDate:     ms.DueDate,
		}
		for _, cs := range ms.Conditions {
			milestone.Conditions = append(milestone.Conditions, models.PaymentCondition{
				Id:          uuid.New().String(),
				Type:        cs.Type,
				Operator:    cs.Operator,
				Value:       cs.Value,
				Description: cs.Description,
			})
		}
		job.AddMilestone(milestone)
	}

	sum, err := job.MilestoneSum()
	if err != nil {
		return nil, err
	}
	if s.Config.ValidateJobTotals && len(job.Milestones) > 0 && !sum.Equal(job.TotalAmount) {
		return nil, ErrTotalMismatch
	}

	created, err := s.Store.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	s.scheduleTimeConditions(ctx, created)

	return created, nil
}

// scheduleTimeConditions enqueues a delayed check for every time condition so
// the worker can mark them met once due. Failures are logged, not surfaced:
// the job itself is already committed.
func (s *Service) scheduleTimeConditions(ctx context.Context, job *models.Job) {
	if s.Scheduler == nil {
		return
	}
	now := time.Now().UTC()
	for mi := range job.Milestones {
		m := &job.Milestones[mi]
		for ci := range m.Conditions {
			c := &m.Conditions[ci]
			if c.Type != models.ConditionTime {
				continue
			}
			due, err := time.Parse(time.RFC3339, c.Value)
			if err != nil {
				log.Printf("WARN: time condition %s has unparseable value %q", c.Id, c.Value)
				continue
			}
			check := &scheduler.ConditionCheck{
				JobId:       job.Id,
				MilestoneId: m.Id,
				ConditionId: c.Id,
				DueAt:       due,
			}
			if err := s.Scheduler.ScheduleConditionCheck(ctx, check, due.Sub(now)); err != nil {
				log.Printf("CRITICAL: job %s created but condition check %s failed to enqueue: %v", job.Id, c.Id, err)
			}
		}
	}
}

// GetJob retrieves a job with its milestones.
func (s *Service) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.Store.GetJob(ctx, jobID)
}

// ListJobs retrieves all jobs.
func (s *Service) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.Store.ListJobs(ctx)
}

// StartJob explicitly moves a pending job to active.
func (s *Service) StartJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.updateJob(ctx, jobID, func(job *models.Job) error {
		return job.Start()
	})
}

// CompleteJob explicitly completes a job once every milestone is settled.
func (s *Service) CompleteJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.updateJob(ctx, jobID, func(job *models.Job) error {
		if s.Config.EnforceConditions {
			for i := range job.Milestones {
				if !job.Milestones[i].ConditionsSatisfied() {
					return models.ErrConditionsNotMet
				}
			}
		}
		return job.Complete()
	})
}

// CompleteMilestone transitions a milestone to completed and re-derives the
// job status inside the same atomic write as the milestone mutation.
func (s *Service) CompleteMilestone(ctx context.Context, jobID, milestoneID string) (*CompleteMilestoneResult, error) {
	var result *CompleteMilestoneResult
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		job, err := s.Store.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		milestone, ok := job.Milestone(milestoneID)
		if !ok {
			return storage.ErrMilestoneNotFound
		}
		if s.Config.EnforceConditions && !milestone.ConditionsSatisfied() {
			return models.ErrConditionsNotMet
		}

		previous, err := milestone.Complete()
		if err != nil {
			return err
		}

		job.RecomputeStatus()
		job.UpdatedAt = time.Now().UTC()

		if err := s.Store.UpdateJob(ctx, job, job.Version); err != nil {
			return err
		}

		result = &CompleteMilestoneResult{
			MilestoneId:    milestone.Id,
			PreviousStatus: previous,
			NewStatus:      milestone.Status,
			JobStatus:      job.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DisputeMilestone marks a milestone and its job as disputed.
func (s *Service) DisputeMilestone(ctx context.Context, jobID, milestoneID string) (*CompleteMilestoneResult, error) {
	var result *CompleteMilestoneResult
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		job, err := s.Store.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		milestone, ok := job.Milestone(milestoneID)
		if !ok {
			return storage.ErrMilestoneNotFound
		}

		previous := milestone.Status
		if err := milestone.Dispute(); err != nil {
			return err
		}
		job.Status = models.JobDisputed
		job.UpdatedAt = time.Now().UTC()

		if err := s.Store.UpdateJob(ctx, job, job.Version); err != nil {
			return err
		}

		result = &CompleteMilestoneResult{
			MilestoneId:    milestone.Id,
			PreviousStatus: previous,
			NewStatus:      milestone.Status,
			JobStatus:      job.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddEvidence appends an evidence record to a milestone.
func (s *Service) AddEvidence(ctx context.Context, jobID, milestoneID string, spec EvidenceSpec) (*models.Milestone, error) {
	var updated *models.Milestone
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		job, err := s.Store.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		milestone, ok := job.Milestone(milestoneID)
		if !ok {
			return storage.ErrMilestoneNotFound
		}

		milestone.AddEvidence(models.Evidence{
			Id:          uuid.New().String(),
			Type:        spec.Type,
			Url:         spec.Url,
			Description: spec.Description,
			Timestamp:   time.Now().UTC(),
		})
		job.UpdatedAt = time.Now().UTC()

		if err := s.Store.UpdateJob(ctx, job, job.Version); err != nil {
			return err
		}

		copied := *milestone
		updated = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SatisfyCondition marks a payment condition as met.
func (s *Service) SatisfyCondition(ctx context.Context, jobID, milestoneID, conditionID string) error {
	return s.retryOnConflict(ctx, func(ctx context.Context) error {
		job, err := s.Store.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		milestone, ok := job.Milestone(milestoneID)
		if !ok {
			return storage.ErrMilestoneNotFound
		}
		condition, ok := milestone.Condition(conditionID)
		if !ok {
			return fmt.Errorf("condition %s not found on milestone %s", conditionID, milestoneID)
		}
		if condition.IsMet {
			return nil
		}

		condition.MarkMet()
		job.UpdatedAt = time.Now().UTC()

		return s.Store.UpdateJob(ctx, job, job.Version)
	})
}

// updateJob applies mutate to the job aggregate under the conflict-retry loop.
func (s *Service) updateJob(ctx context.Context, jobID string, mutate func(*models.Job) error) (*models.Job, error) {
	var updated *models.Job
	err := s.retryOnConflict(ctx, func(ctx context.Context) error {
		job, err := s.Store.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		if err := mutate(job); err != nil {
			return err
		}
		job.UpdatedAt = time.Now().UTC()
		if err := s.Store.UpdateJob(ctx, job, job.Version); err != nil {
			return err
		}
		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// newProcessorRef generates the short opaque reference recorded on
// internally-originated transactions.
func newProcessorRef(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s", prefix, raw[:12])
}
