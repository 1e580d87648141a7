package ports

import (
	"context"
	"time"

	"rasbita/internal/domain"
	"rasbita/internal/risk"
)

// AdminRepository stores admin accounts. Lookups return domain.ErrNotFound when
// no row matches and creation returns domain.ErrConflict on a duplicate username.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, u domain.AdminUser) (id int64, err error)
	AdminByUsername(ctx context.Context, username string) (domain.AdminUser, error)
	AdminByID(ctx context.Context, id int64) (domain.AdminUser, error)
}

// SessionRepository persists server-side login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, s domain.Session) error
	SessionByToken(ctx context.Context, token string) (domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// AssessmentRepository stores submitted questionnaires. CreateAssessment also
// queues the report job for the new assessment.
type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, a domain.Assessment) (id int64, err error)
	Assessment(ctx context.Context, id int64) (domain.Assessment, error)
	// ReplaceDevices fails with domain.ErrNotEditable unless the assessment is
	// still queued when the write happens.
	ReplaceDevices(ctx context.Context, assessmentID int64, devices []risk.Device) error
}

// ReportRepository stores generated reports.
type ReportRepository interface {
	SaveReport(ctx context.Context, r domain.AssessmentReport) (id int64, err error)
	Report(ctx context.Context, id int64) (domain.AssessmentReport, error)
	ListReports(ctx context.Context, limit int) ([]domain.AssessmentReport, error)
}
