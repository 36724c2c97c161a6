package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/finledger/internal/adapter/http/dto"
	"github.com/iho/finledger/internal/infrastructure/metrics"
	"github.com/iho/finledger/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) error
	DeleteTransaction(ctx context.Context, input usecase.DeleteTransactionInput) error
	ListUserTransactions(ctx context.Context, input usecase.ListUserTransactionsInput) (*usecase.ListUserTransactionsOutput, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
	idGen         usecase.IDGenerator
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService, idGen usecase.IDGenerator) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		idGen:         idGen,
	}
}

// Create records a new transaction. Ids are assigned server-side.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id := h.idGen.Generate()
	if err := h.transactionUC.CreateTransaction(r.Context(), req.ToUseCaseInput(id)); err != nil {
		status := mapDomainError(err)
		if status != http.StatusInternalServerError {
			metrics.DomainErrors.WithLabelValues("create_transaction").Inc()
		}
		writeError(w, status, "failed to create transaction", err.Error())

		return
	}

	metrics.TransactionsCreated.WithLabelValues(req.Kind).Inc()
	writeJSON(w, http.StatusCreated, dto.CreateTransactionResponse{ID: id})
}

// Delete removes a transaction owned by the user in the path.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	transactionID := chi.URLParam(r, "id")

	err := h.transactionUC.DeleteTransaction(r.Context(), usecase.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		status := mapDomainError(err)
		if status != http.StatusInternalServerError {
			metrics.DomainErrors.WithLabelValues("delete_transaction").Inc()
		}
		writeError(w, status, "failed to delete transaction", err.Error())

		return
	}

	metrics.TransactionsDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// ListByUser lists a user's transactions with aggregates, optionally filtered
// by kind via the query string.
func (h *TransactionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	out, err := h.transactionUC.ListUserTransactions(r.Context(), usecase.ListUserTransactionsInput{
		UserID: userID,
		Kind:   r.URL.Query().Get("kind"),
	})
	if err != nil {
		status := mapDomainError(err)
		if status != http.StatusInternalServerError {
			metrics.DomainErrors.WithLabelValues("list_transactions").Inc()
		}
		writeError(w, status, "failed to list transactions", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsFromOutput(out))
}
