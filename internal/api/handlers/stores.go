package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mina/shiftbase/internal/api/dto"
	"github.com/mina/shiftbase/internal/api/middleware"
	"github.com/mina/shiftbase/internal/database/models"
	"github.com/mina/shiftbase/internal/stores"
)

type StoreHandler struct {
	storeService *stores.Service
}

func NewStoreHandler(storeService *stores.Service) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// List handles GET /stores
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.storeService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, dto.CodeInternalError, "Failed to list stores", nil)
		return
	}

	response := make([]dto.StoreDTO, len(result))
	for i := range result {
		response[i] = dto.NewStoreDTO(&result[i])
	}

	writeData(w, http.StatusOK, response)
}

// Get handles GET /stores/{id}
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := parseStoreID(w, r)
	if !ok {
		return
	}
	userID := middleware.GetUserID(r.Context())

	store, err := h.storeService.GetStore(r.Context(), storeID, userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.NewStoreDTO(store))
}

// Update handles PATCH /stores/{id}
func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := parseStoreID(w, r)
	if !ok {
		return
	}
	userID := middleware.GetUserID(r.Context())

	var req dto.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Invalid request body", nil)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Validation failed", details)
		return
	}

	input := stores.UpdateStoreInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		GPSRadius: req.GPSRadius,
	}
	if req.Status != nil {
		status := models.StoreStatus(*req.Status)
		input.Status = &status
	}

	store, err := h.storeService.UpdateStore(r.Context(), storeID, userID, input)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeData(w, http.StatusOK, dto.NewStoreDTO(store))
}

// ListEmployees handles GET /stores/{id}/employees
func (h *StoreHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	storeID, ok := parseStoreID(w, r)
	if !ok {
		return
	}
	userID := middleware.GetUserID(r.Context())

	employees, err := h.storeService.ListEmployees(r.Context(), storeID, userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	response := make([]dto.EmployeeDTO, len(employees))
	for i := range employees {
		response[i] = dto.NewEmployeeDTO(&employees[i])
	}

	writeData(w, http.StatusOK, response)
}

func parseStoreID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, dto.CodeValidationError, "Invalid store ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeStoreError is the error-kind to status-code table for store
// operations.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, stores.ErrStoreNotFound):
		writeError(w, http.StatusNotFound, dto.CodeStoreNotFound, "Store not found", nil)
	case errors.Is(err, stores.ErrAccessDenied):
		writeError(w, http.StatusForbidden, dto.CodeForbidden, "Access to store denied", nil)
	default:
		writeError(w, http.StatusInternalServerError, dto.CodeInternalError, "Store operation failed", nil)
	}
}
