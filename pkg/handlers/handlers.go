package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chris/escrow-payments/pkg/escrow"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/chris/escrow-payments/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ApiHandler holds the application's dependencies for the HTTP layer.
type ApiHandler struct {
	Service escrow.API
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(service escrow.API) *ApiHandler {
	return &ApiHandler{Service: service}
}

// Routes mounts all resource handlers on a chi router.
func (h *ApiHandler) Routes() *chi.Mux {
	router := chi.NewRouter()

	router.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.Post("/", h.CreateJob)
		r.Get("/{jobId}", h.GetJob)
		r.Post("/{jobId}/start", h.StartJob)
		r.Post("/{jobId}/complete", h.CompleteJob)
		r.Patch("/{jobId}/milestones/{milestoneId}/complete", h.CompleteMilestone)
		r.Post("/{jobId}/milestones/{milestoneId}/release-payment", h.ReleasePayment)
		r.Post("/{jobId}/milestones/{milestoneId}/dispute", h.DisputeMilestone)
		r.Post("/{jobId}/milestones/{milestoneId}/evidence", h.AddEvidence)
		r.Post("/{jobId}/milestones/{milestoneId}/conditions/{conditionId}/satisfy", h.SatisfyCondition)
	})

	router.Route("/wallets", func(r chi.Router) {
		r.Get("/", h.ListWallets)
		r.Get("/{walletId}", h.GetWallet)
		r.Get("/{walletId}/transactions", h.ListTransactions)
		r.Post("/{walletId}/send", h.SendFunds)
		r.Post("/{walletId}/receive", h.ReceiveFunds)
	})

	return router
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// respondError maps the core's error taxonomy onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrJobNotFound),
		errors.Is(err, storage.ErrMilestoneNotFound),
		errors.Is(err, storage.ErrWalletNotFound),
		errors.Is(err, storage.ErrTransactionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrAlreadyReleased),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrConditionsNotMet),
		errors.Is(err, escrow.ErrTotalMismatch),
		errors.Is(err, money.ErrCurrencyMismatch),
		errors.Is(err, money.ErrNegativeAmount),
		errors.Is(err, money.ErrInvalidCurrency):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, storage.ErrInsufficientBalance):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrConcurrencyConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Internal error: %v", err), http.StatusInternalServerError)
	}
}
