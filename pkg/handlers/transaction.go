package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pennyledger/pkg/session"
	"pennyledger/pkg/transaction"
)

const (
	typeError   string = "error"
	typeMessage string = "message"
)

type TransactionHandler struct {
	Service transaction.ServiceInterface
	Logger  *slog.Logger
}

func NewTransactionHandler(service transaction.ServiceInterface, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var tx transaction.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusUnprocessableEntity, typeError, "invalid JSON payload")
		return
	}

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	if err := h.Service.Create(&tx, userID); err != nil {
		if errors.Is(err, transaction.ErrInvalidTransaction) {
			writeError(w, http.StatusUnprocessableEntity, typeError, err.Error())
			return
		}
		h.Logger.Error("create transaction", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "internal server error")
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, tx); ok {
		h.Logger.Info("new transaction", "user", userID)
	}
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	writeJSON(w, h.Logger, http.StatusOK, h.Service.ListByUser(userID))
}

func userIDFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := session.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
