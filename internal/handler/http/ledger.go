package http

import (
	"encoding/json"
	"net/http"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/ledger"
	"github.com/asifshaikgit/workforce-sub004/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &ledgerHandlerImpl{ledgerService: ledgerService}
}

func (h *ledgerHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")
	if periodID == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	var req ledger.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PeriodID = periodID

	result, err := h.ledgerService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ledgerHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")
	if periodID == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.ledgerService.ListByPeriod(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
