package http

import (
	"encoding/json"
	"net/http"

	"github.com/asifshaikgit/workforce-sub004/internal/domain/paycycle"
	"github.com/asifshaikgit/workforce-sub004/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CycleSettingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type cycleSettingHandlerImpl struct {
	settingService paycycle.CycleSettingService
}

func NewCycleSettingHandler(settingService paycycle.CycleSettingService) CycleSettingHandler {
	return &cycleSettingHandlerImpl{settingService: settingService}
}

func (h *cycleSettingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req paycycle.CreateCycleSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay cycle setting created", result)
}

func (h *cycleSettingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Setting ID is required", nil)
		return
	}

	var req paycycle.UpdateCycleSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.settingService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cycleSettingHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Setting ID is required", nil)
		return
	}

	result, err := h.settingService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *cycleSettingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
