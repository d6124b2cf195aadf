package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/username/galleon/backend/src/logger"
	"github.com/username/galleon/backend/src/services"
	"github.com/username/galleon/backend/src/utils"
)

type TransactionHandler struct {
	ledger services.LedgerService
}

func NewTransactionHandler(ledger services.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// createRequest accepts either the quick-add text form or a structured
// selection. A non-empty Text wins; the structured fields are ignored then.
type createRequest struct {
	Text string `json:"text"`
	services.SelectionInput
}

func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var err error
	var tx interface{}
	if strings.TrimSpace(req.Text) != "" {
		tx, err = h.ledger.CreateFromText(req.Text)
	} else {
		tx, err = h.ledger.CreateFromSelection(req.SelectionInput)
	}
	if err != nil {
		h.sendLedgerError(w, err)
		return
	}

	utils.SendJSON(w, tx, http.StatusCreated)
}

func (h *TransactionHandler) sendLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnparsableInput), errors.Is(err, services.ErrAmountRequired):
		utils.SendJSONError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, services.ErrDuplicateSubmission):
		utils.SendJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrValidationFailed):
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrTransactionNotFound):
		utils.SendJSONError(w, err.Error(), http.StatusNotFound)
	default:
		logger.L.Error("Ledger operation failed", "error", err)
		utils.SendJSONError(w, "internal error", http.StatusInternalServerError)
	}
}

// HandleListTransactions returns the records in the requested date range,
// defaulting to today. Responses carry an ETag; a matching If-None-Match
// short-circuits to 304.
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	start, end := rangeFromQuery(r)

	transactions, err := h.ledger.ListByDateRange(start, end)
	if err != nil {
		h.sendLedgerError(w, err)
		return
	}

	currentETag, etagErr := utils.GenerateETag(transactions)
	if etagErr != nil {
		logger.L.Error("Failed to generate ETag for transaction list", "error", etagErr)
	}
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("\"%s\"", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	}

	utils.SendJSON(w, transactions, http.StatusOK)
}

func (h *TransactionHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	start, end := rangeFromQuery(r)

	summary, err := h.ledger.SummaryByDateRange(start, end)
	if err != nil {
		h.sendLedgerError(w, err)
		return
	}
	utils.SendJSON(w, summary, http.StatusOK)
}

func (h *TransactionHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "invalid transaction id", http.StatusBadRequest)
		return
	}
	if err := h.ledger.DeleteTransaction(id); err != nil {
		h.sendLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionHandler) HandleClearSeedData(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.ledger.ClearSeedData()
	if err != nil {
		h.sendLedgerError(w, err)
		return
	}
	utils.SendJSON(w, map[string]int64{"deleted": deleted}, http.StatusOK)
}

func rangeFromQuery(r *http.Request) (start, end string) {
	start = r.URL.Query().Get("start")
	end = r.URL.Query().Get("end")
	if start == "" && end == "" {
		return utils.TodayRange(time.Now())
	}
	if start == "" {
		start = end
	}
	if end == "" {
		end = start
	}
	return start, end
}
