package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chris/escrow-payments/pkg/api"
	"github.com/chris/escrow-payments/pkg/mapping"
	"github.com/chris/escrow-payments/pkg/money"
	"github.com/go-chi/chi/v5"
)

// ListWallets handles the logic for retrieving wallets, optionally filtered by
// the owner_id query parameter.
func (h *ApiHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	ownerId := r.URL.Query().Get("owner_id")

	wallets, err := h.Service.ListWallets(r.Context(), ownerId)
	if err != nil {
		respondError(w, err)
		return
	}

	apiWallets := make([]*api.Wallet, len(wallets))
	for i := range wallets {
		apiWallets[i] = mapping.ToApiWallet(&wallets[i])
	}

	respondJSON(w, http.StatusOK, apiWallets)
}

// GetWallet handles the logic for retrieving a single wallet.
func (h *ApiHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Service.GetWallet(r.Context(), chi.URLParam(r, "walletId"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiWallet(wallet))
}

// ListTransactions handles the logic for retrieving a wallet's ledger history.
func (h *ApiHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Service.ListTransactions(r.Context(), chi.URLParam(r, "walletId"))
	if err != nil {
		respondError(w, err)
		return
	}

	apiTransactions := make([]*api.Transaction, len(transactions))
	for i := range transactions {
		apiTransactions[i] = mapping.ToApiTransaction(&transactions[i])
	}

	respondJSON(w, http.StatusOK, apiTransactions)
}

// SendFunds handles the logic for an outbound transfer to another wallet.
func (h *ApiHandler) SendFunds(w http.ResponseWriter, r *http.Request) {
	var req api.SendFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := money.FromString(req.Amount, req.Currency)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid amount: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Service.SendFunds(r.Context(), chi.URLParam(r, "walletId"), amount, req.ToAddress)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiTransaction(tx))
}

// ReceiveFunds handles the logic for an inbound deposit into a wallet.
func (h *ApiHandler) ReceiveFunds(w http.ResponseWriter, r *http.Request) {
	var req api.ReceiveFundsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := money.FromString(req.Amount, req.Currency)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid amount: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Service.ReceiveFunds(r.Context(), chi.URLParam(r, "walletId"), amount, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiTransaction(tx))
}
