package reports

import (
	"context"

	"rasbita/internal/domain"
	"rasbita/internal/ports"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Service struct {
	reports ports.ReportRepository
}

func New(reports ports.ReportRepository) *Service { return &Service{reports: reports} }

func (s *Service) Get(ctx context.Context, id int64) (domain.AssessmentReport, error) {
	return s.reports.Report(ctx, id)
}

// List returns the most recent reports first. Non-positive limits use the
// default; large ones are capped.
func (s *Service) List(ctx context.Context, limit int) ([]domain.AssessmentReport, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.reports.ListReports(ctx, limit)
}
