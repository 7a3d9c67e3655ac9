package storage

import (
	"context"

	"github.com/chris/escrow-payments/pkg/models"
)

// JobStore defines the interface for persisting job aggregates. A job and its
// milestones are written as one unit; a job is never partially persisted.
type JobStore interface {
	// CreateJob persists a new job together with its initial milestone set.
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)

	// GetJob retrieves a job with all of its milestones.
	GetJob(ctx context.Context, jobID string) (*models.Job, error)

	// ListJobs retrieves all jobs.
	ListJobs(ctx context.Context) ([]models.Job, error)

	// UpdateJob writes the mutated aggregate, conditioned on expectedVersion.
	// It fails with ErrConcurrencyConflict if the stored version moved on.
	UpdateJob(ctx context.Context, job *models.Job, expectedVersion int64) error
}
