package http

import (
	"net/http"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/payrun"
	"github.com/asifshaikgit/workforce-sub004/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayRunHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Skip(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListBySettings(w http.ResponseWriter, r *http.Request)
}

type payRunHandlerImpl struct {
	payRunService payrun.PayRunService
}

func NewPayRunHandler(payRunService payrun.PayRunService) PayRunHandler {
	return &payRunHandlerImpl{payRunService: payRunService}
}

func (h *payRunHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	settingsID := chi.URLParam(r, "settingsId")
	if settingsID == "" {
		response.BadRequest(w, "Settings ID is required", nil)
		return
	}

	result, err := h.payRunService.Generate(r.Context(), settingsID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay period drafted", result)
}

func (h *payRunHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payRunService.Submit(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) Skip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payRunService.Skip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payRunService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRunHandlerImpl) ListBySettings(w http.ResponseWriter, r *http.Request) {
	settingsID := chi.URLParam(r, "settingsId")
	if settingsID == "" {
		response.BadRequest(w, "Settings ID is required", nil)
		return
	}

	result, err := h.payRunService.ListBySettings(r.Context(), settingsID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
