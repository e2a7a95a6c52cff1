package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "financeapp/internal/errors"
	"financeapp/internal/export"
	"financeapp/internal/models"
	"financeapp/internal/report"
)

func fixedNow() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }

func setupReportRouter(svc *mockReportService) *gin.Engine {
	h := NewReportHandler(svc)
	h.now = fixedNow
	r := gin.New()
	r.GET("/reports", withSession(adminSession(), h.GetReport))
	r.GET("/reports/csv", withSession(adminSession(), h.ExportCSV))
	r.GET("/reports/pdf", withSession(adminSession(), h.ExportPDF))
	return r
}

func sampleRows() []export.MovementRow {
	return []export.MovementRow{
		{Concept: "Café", Amount: decimal.RequireFromString("12.5"), Type: models.MovementExpense, Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), UserName: "Ana"},
		{Concept: "Salario", Amount: decimal.NewFromInt(5000), Type: models.MovementIncome, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), UserName: "Ana"},
	}
}

func TestReportHandler_GetReport(t *testing.T) {
	t.Run("empty report has null percentage", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{})
		rec := doRequest(r, http.MethodGet, "/reports", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		if v, ok := body["balancePercentage"]; !ok || v != nil {
			t.Errorf("expected balancePercentage null, got %v", v)
		}
		if md, ok := body["monthlyData"].([]interface{}); !ok || len(md) != 0 {
			t.Errorf("expected empty monthlyData array, got %v", body["monthlyData"])
		}
	})

	t.Run("returns 500 on failure", func(t *testing.T) {
		r := setupReportRouter(&mockReportService{
			getReportFn: func(context.Context) (*report.Report, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down"))
			},
		})
		rec := doRequest(r, http.MethodGet, "/reports", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestReportHandler_ExportCSV(t *testing.T) {
	svc := &mockReportService{
		exportRowsFn: func(context.Context) ([]export.MovementRow, error) { return sampleRows(), nil },
	}

	t.Run("utf-8 with BOM", func(t *testing.T) {
		rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/csv", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
			t.Errorf("unexpected content type %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="reporte-movimientos-2024-03-05.csv"` {
			t.Errorf("unexpected content disposition %q", cd)
		}
		if rec.Body.String() != export.ToCSV(sampleRows()) {
			t.Errorf("body does not match ToCSV output:\n%s", rec.Body.String())
		}
	})

	t.Run("windows-1252", func(t *testing.T) {
		rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/csv?charset=windows-1252", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=windows-1252" {
			t.Errorf("unexpected content type %q", ct)
		}
		if !bytes.Contains(rec.Body.Bytes(), []byte("Caf\xe9")) {
			t.Errorf("expected single-byte é in body, got %q", rec.Body.String())
		}
		if strings.HasPrefix(rec.Body.String(), "\uFEFF") {
			t.Error("windows-1252 output must not carry a BOM")
		}
	})

	t.Run("unknown charset", func(t *testing.T) {
		rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/csv?charset=ebcdic", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("store failure", func(t *testing.T) {
		failing := &mockReportService{
			exportRowsFn: func(context.Context) ([]export.MovementRow, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("db down"))
			},
		}
		rec := doRequest(setupReportRouter(failing), http.MethodGet, "/reports/csv", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestReportHandler_ExportPDF(t *testing.T) {
	svc := &mockReportService{
		exportRowsFn: func(context.Context) ([]export.MovementRow, error) { return sampleRows(), nil },
	}

	rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/pdf", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="reporte-movimientos-2024-03-05.pdf"` {
		t.Errorf("unexpected content disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF document")
	}
}
