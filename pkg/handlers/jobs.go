package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/chris/escrow-payments/pkg/api"
	"github.com/chris/escrow-payments/pkg/escrow"
	"github.com/chris/escrow-payments/pkg/mapping"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/go-chi/chi/v5"
)

// CreateJob handles the logic for creating a new job with its milestones.
func (h *ApiHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var newJob api.NewJob
	if err := json.NewDecoder(r.Body).Decode(&newJob); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	spec, err := mapping.ToDomainJobSpec(&newJob)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	job, err := h.Service.CreateJob(r.Context(), spec)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiJob(job))
}

// ListJobs handles the logic for retrieving all jobs.
func (h *ApiHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Service.ListJobs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	// Sort jobs by CreatedAt in descending order.
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	apiJobs := make([]*api.Job, len(jobs))
	for i := range jobs {
		apiJobs[i] = mapping.ToApiJob(&jobs[i])
	}

	respondJSON(w, http.StatusOK, apiJobs)
}

// GetJob handles the logic for retrieving a single job.
func (h *ApiHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Service.GetJob(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiJob(job))
}

// StartJob handles the logic for activating a pending job.
func (h *ApiHandler) StartJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Service.StartJob(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiJob(job))
}

// CompleteJob handles the logic for marking a job completed.
func (h *ApiHandler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Service.CompleteJob(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiJob(job))
}

// CompleteMilestone handles the logic for completing a milestone.
func (h *ApiHandler) CompleteMilestone(w http.ResponseWriter, r *http.Request) {
	jobId := chi.URLParam(r, "jobId")
	milestoneId := chi.URLParam(r, "milestoneId")

	result, err := h.Service.CompleteMilestone(r.Context(), jobId, milestoneId)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiStatusChange(result))
}

// ReleasePayment handles the logic for releasing a milestone's escrowed payment.
func (h *ApiHandler) ReleasePayment(w http.ResponseWriter, r *http.Request) {
	jobId := chi.URLParam(r, "jobId")
	milestoneId := chi.URLParam(r, "milestoneId")

	result, err := h.Service.ReleasePayment(r.Context(), jobId, milestoneId)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiPaymentRelease(result))
}

// DisputeMilestone handles the logic for disputing a milestone.
func (h *ApiHandler) DisputeMilestone(w http.ResponseWriter, r *http.Request) {
	jobId := chi.URLParam(r, "jobId")
	milestoneId := chi.URLParam(r, "milestoneId")

	result, err := h.Service.DisputeMilestone(r.Context(), jobId, milestoneId)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiStatusChange(result))
}

// AddEvidence handles the logic for attaching evidence to a milestone.
func (h *ApiHandler) AddEvidence(w http.ResponseWriter, r *http.Request) {
	var newEvidence api.NewEvidence
	if err := json.NewDecoder(r.Body).Decode(&newEvidence); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	jobId := chi.URLParam(r, "jobId")
	milestoneId := chi.URLParam(r, "milestoneId")

	milestone, err := h.Service.AddEvidence(r.Context(), jobId, milestoneId, escrow.EvidenceSpec{
		Type:        models.EvidenceType(newEvidence.Type),
		Url:         newEvidence.Url,
		Description: newEvidence.Description,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiMilestone(milestone))
}

// SatisfyCondition handles the logic for marking a payment condition as met.
func (h *ApiHandler) SatisfyCondition(w http.ResponseWriter, r *http.Request) {
	jobId := chi.URLParam(r, "jobId")
	milestoneId := chi.URLParam(r, "milestoneId")
	conditionId := chi.URLParam(r, "conditionId")

	if err := h.Service.SatisfyCondition(r.Context(), jobId, milestoneId, conditionId); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
