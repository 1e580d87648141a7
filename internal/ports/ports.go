package ports

import (
	"context"

	"rasbita/internal/domain"
	"rasbita/internal/risk"
)

// Auth authenticates admins and resolves session tokens.
type Auth interface {
	Login(ctx context.Context, username, password string) (domain.AdminUser, domain.Session, error)
	Me(ctx context.Context, token string) (domain.AdminUser, error)
	Logout(ctx context.Context, token string) error
}

type SubmitInput struct {
	BusinessName string            `json:"businessName"`
	Industry     string            `json:"industry"`
	Location     string            `json:"location"`
	Website      string            `json:"website"`
	ReportType   string            `json:"reportType"`
	Answers      map[string]string `json:"answers"`
	Devices      []risk.Device     `json:"devices"`
}

// Assessments accepts questionnaire submissions and tracks report generation.
type Assessments interface {
	Submit(ctx context.Context, in SubmitInput) (assessmentID int64, err error)
	Get(ctx context.Context, id int64) (domain.Assessment, error)
	ReplaceDevices(ctx context.Context, id int64, devices []risk.Device) error
}

// Reports serves generated reports.
type Reports interface {
	Get(ctx context.Context, id int64) (domain.AssessmentReport, error)
	List(ctx context.Context, limit int) ([]domain.AssessmentReport, error)
}
