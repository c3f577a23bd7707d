package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/quillhr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPayslipID  = "0198a1f0-4f2a-7d31-8c6e-3c9a1b2d4e5f"
	testEmployeeID = "0198a1f0-1111-7a2b-9c3d-5e6f7a8b9c0d"
)

type fakePayslipService struct {
	calculateFn func(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error)
	getFn       func(ctx context.Context, id string) (payslip.PayslipResponse, error)
	listFn      func(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error)
	renderFn    func(ctx context.Context, id string) ([]byte, error)
}

func (f *fakePayslipService) CalculatePayslip(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error) {
	return f.calculateFn(ctx, req)
}

func (f *fakePayslipService) GetPayslip(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakePayslipService) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	return f.listFn(ctx, employeeID)
}

func (f *fakePayslipService) RenderPayslipPDF(ctx context.Context, id string) ([]byte, error) {
	return f.renderFn(ctx, id)
}

func newPayslipTestRouter(svc payslip.PayslipService) *chi.Mux {
	handler := NewPayslipHandler(svc)

	r := chi.NewRouter()
	r.Post("/payslips/calculate", handler.CalculatePayslip)
	r.Get("/payslips/{id}", handler.GetPayslip)
	r.Get("/payslips/{id}/pdf", handler.DownloadPayslipPDF)
	r.Get("/employees/{employeeId}/payslips", handler.ListPayslipsByEmployee)
	return r
}

func TestPayslipHandler_Calculate_Created(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		calculateFn: func(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{
				ID:         "slip-1",
				EmployeeID: req.EmployeeID,
				BasePay:    decimal.RequireFromString("8000"),
				GrossPay:   decimal.RequireFromString("8000"),
				NetPay:     decimal.RequireFromString("7650"),
			}, nil
		},
	}

	body := `{"employee_id":"emp-1","hours_worked":"160","overtime_hours":"0","deductions":"350"}`
	req := httptest.NewRequest(http.MethodPost, "/payslips/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool                    `json:"success"`
		Data    payslip.PayslipResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "slip-1", envelope.Data.ID)
	assert.True(t, envelope.Data.NetPay.Equal(decimal.RequireFromString("7650")))
}

func TestPayslipHandler_Calculate_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		calculateFn: func(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error) {
			t.Fatal("service must not be reached on malformed JSON")
			return payslip.PayslipResponse{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/payslips/calculate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayslipHandler_Calculate_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		calculateFn: func(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{}, validator.ValidationErrors{
				{Field: "hours_worked", Message: "must be non-negative"},
			}
		},
	}

	body := `{"employee_id":"emp-1","hours_worked":"-5"}`
	req := httptest.NewRequest(http.MethodPost, "/payslips/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "hours_worked")
}

func TestPayslipHandler_Calculate_EmployeeNotFound(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		calculateFn: func(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{}, employee.ErrEmployeeNotFound
		},
	}

	body := `{"employee_id":"emp-missing","hours_worked":"160"}`
	req := httptest.NewRequest(http.MethodPost, "/payslips/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayslipHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		getFn: func(ctx context.Context, id string) (payslip.PayslipResponse, error) {
			return payslip.PayslipResponse{}, payslip.ErrPayslipNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payslips/"+testPayslipID, nil)
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPayslipHandler_Get_MalformedID(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		getFn: func(ctx context.Context, id string) (payslip.PayslipResponse, error) {
			t.Fatal("service must not be reached on a malformed ID")
			return payslip.PayslipResponse{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payslips/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayslipHandler_ListByEmployee_MalformedID(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		listFn: func(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
			t.Fatal("service must not be reached on a malformed ID")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/employees/emp-1/payslips", nil)
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayslipHandler_ListByEmployee(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		listFn: func(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
			assert.Equal(t, testEmployeeID, employeeID)
			return []payslip.PayslipResponse{
				{ID: "slip-1", EmployeeID: employeeID},
				{ID: "slip-2", EmployeeID: employeeID},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/employees/"+testEmployeeID+"/payslips", nil)
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []payslip.PayslipResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
}

func TestPayslipHandler_DownloadPDF_Headers(t *testing.T) {
	t.Parallel()

	svc := &fakePayslipService{
		renderFn: func(ctx context.Context, id string) ([]byte, error) {
			return []byte("%PDF-1.4 fake"), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/payslips/"+testPayslipID+"/pdf", nil)
	rec := httptest.NewRecorder()

	newPayslipTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=payslip-"+testPayslipID+".pdf", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}
