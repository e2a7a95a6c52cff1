package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"financeapp/internal/auth"
	apperrors "financeapp/internal/errors"
	"financeapp/internal/export"
	"financeapp/internal/logger"
	"financeapp/internal/report"
	"financeapp/internal/services"
)

// ReportHandler serves the aggregated report and its downloads.
type ReportHandler struct {
	reportService services.ReportServicer
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, now: time.Now}
}

// GetReport returns totals, balance percentage and the monthly breakdown
// @Summary     Financial report
// @Tags        reports
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} report.Report
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context, _ *auth.Session) {
	r, err := h.reportService.GetReport(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// ExportCSV streams every movement as a semicolon separated file
// @Summary     Download movements as CSV
// @Tags        reports
// @Produce     text/csv
// @Security    SessionCookie
// @Param       charset query string false "utf-8 (default, with BOM) or windows-1252"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse "Unknown charset"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context, _ *auth.Session) {
	charset, ok := export.ParseCharset(c.Query("charset"))
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Codificación no soportada"))
		return
	}

	rows, err := h.reportService.ExportRows(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset="+string(charset))
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename("csv", h.now())+`"`)
	c.Status(http.StatusOK)
	if err := export.WriteCSVCharset(c.Writer, rows, charset); err != nil {
		logger.Get().Errorw("failed to write csv export", "error", err, "rows", len(rows))
	}
}

// ExportPDF renders the report and latest movements as a PDF
// @Summary     Download report as PDF
// @Tags        reports
// @Produce     application/pdf
// @Security    SessionCookie
// @Success     200 {file} file
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/pdf [get]
func (h *ReportHandler) ExportPDF(c *gin.Context, _ *auth.Session) {
	var (
		r    *report.Report
		rows []export.MovementRow
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		r, err = h.reportService.GetReport(ctx)
		return err
	})
	g.Go(func() (err error) {
		rows, err = h.reportService.ExportRows(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		respondWithError(c, err)
		return
	}

	now := h.now()
	doc, err := export.ReportPDF(*r, rows, now)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename("pdf", now)+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
