package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/quillhr/hr-backend-go/internal/handler/http/response"
	"github.com/quillhr/hr-backend-go/internal/pkg/validator"
)

type PayslipHandler interface {
	CalculatePayslip(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslipsByEmployee(w http.ResponseWriter, r *http.Request)
	DownloadPayslipPDF(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

// CalculatePayslip implements PayslipHandler
func (h *payslipHandlerImpl) CalculatePayslip(w http.ResponseWriter, r *http.Request) {
	var req payslip.CalculatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payslipService.CalculatePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generated", result)
}

// GetPayslip implements PayslipHandler
func (h *payslipHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid payslip ID", nil)
		return
	}

	result, err := h.payslipService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPayslipsByEmployee implements PayslipHandler
func (h *payslipHandlerImpl) ListPayslipsByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	result, err := h.payslipService.ListPayslipsByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadPayslipPDF implements PayslipHandler
func (h *payslipHandlerImpl) DownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid payslip ID", nil)
		return
	}

	document, err := h.payslipService.RenderPayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", id))
	_, _ = w.Write(document)
}
