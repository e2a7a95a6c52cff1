package services

import (
	"context"

	"financeapp/internal/export"
	"financeapp/internal/report"
)

// reportService builds reports from the movement store.
type reportService struct {
	movements MovementServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(movements MovementServicer) ReportServicer {
	return &reportService{movements: movements}
}

// GetReport computes the report over every movement.
func (s *reportService) GetReport(ctx context.Context) (*report.Report, error) {
	movements, err := s.movements.ListAllMovements(ctx, DateAsc)
	if err != nil {
		return nil, err
	}
	r := report.Compute(movements)
	return &r, nil
}

// ExportRows returns every movement with its owner name, newest first.
func (s *reportService) ExportRows(ctx context.Context) ([]export.MovementRow, error) {
	movements, err := s.movements.ListAllMovements(ctx, DateDesc)
	if err != nil {
		return nil, err
	}
	return export.RowsFromMovements(movements), nil
}
