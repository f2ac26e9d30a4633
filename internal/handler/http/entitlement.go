package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workdocs/leave-engine-go/internal/domain/leave"
	"github.com/workdocs/leave-engine-go/internal/handler/http/response"
	leaveService "github.com/workdocs/leave-engine-go/internal/service/leave"
)

type EntitlementHandler interface {
	GetEntitlement(w http.ResponseWriter, r *http.Request)
	ListEntitlements(w http.ResponseWriter, r *http.Request)
	AdjustEntitlement(w http.ResponseWriter, r *http.Request)
	CarryOver(w http.ResponseWriter, r *http.Request)
	CarryOverHistory(w http.ResponseWriter, r *http.Request)
}

type EntitlementHandlerImpl struct {
	entitlementService *leaveService.EntitlementService
}

func NewEntitlementHandler(entitlementService *leaveService.EntitlementService) EntitlementHandler {
	return &EntitlementHandlerImpl{entitlementService: entitlementService}
}

// GetEntitlement implements EntitlementHandler. Reading an entitlement
// materializes the default row on first touch, so a fresh employee shows a
// full fund instead of a 404.
func (e *EntitlementHandlerImpl) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year <= 0 {
		response.BadRequest(w, "Year must be a positive integer", nil)
		return
	}

	entitlement, err := e.entitlementService.GetOrInit(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entitlement)
}

// ListEntitlements implements EntitlementHandler.
func (e *EntitlementHandlerImpl) ListEntitlements(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	entitlements, err := e.entitlementService.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entitlements)
}

// AdjustEntitlement implements EntitlementHandler.
func (e *EntitlementHandlerImpl) AdjustEntitlement(w http.ResponseWriter, r *http.Request) {
	var req leave.AdjustEntitlementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdjustEntitlement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = chi.URLParam(r, "employeeID")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err == nil {
		req.Year = year
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entitlement, err := e.entitlementService.ApplyManualAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entitlement adjusted successfully", entitlement)
}

// CarryOver implements EntitlementHandler.
func (e *EntitlementHandlerImpl) CarryOver(w http.ResponseWriter, r *http.Request) {
	var req leave.CarryOverRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CarryOver decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.EmployeeID = chi.URLParam(r, "employeeID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	carryOver, err := e.entitlementService.CarryOver(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Carry-over performed successfully", carryOver)
}

// CarryOverHistory implements EntitlementHandler.
func (e *EntitlementHandlerImpl) CarryOverHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	history, err := e.entitlementService.CarryOverHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}
