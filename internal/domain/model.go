package domain

import (
	"time"

	"rasbita/internal/questionnaire"
	"rasbita/internal/risk"
)

// Core domain models shared by services and adapters. HTTP payloads embed these
// directly; keep json tags in the camelCase the web client reads.

type AdminUser struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Role         string  `json:"role"`
	FullName     *string `json:"fullName,omitempty"`
	PasswordHash string  `json:"-"`
}

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Assessment struct {
	ID           int64                           `json:"id"`
	BusinessName string                          `json:"businessName"`
	Industry     string                          `json:"industry"`
	Location     string                          `json:"location"`
	Website      *string                         `json:"website,omitempty"`
	ReportType   string                          `json:"reportType"`
	Answers      map[string]questionnaire.Answer `json:"answers"`
	Devices      []risk.Device                   `json:"devices"`
	Status       string                          `json:"status"`
	Progress     float64                         `json:"progress"`
	ReportID     *int64                          `json:"reportId,omitempty"`
	CreatedAt    time.Time                       `json:"createdAt"`
}

const (
	ReportPreliminary   = "preliminary"
	ReportComprehensive = "comprehensive"
)

type Summary struct {
	CriticalVulnerabilities int `json:"criticalVulnerabilities"`
	HighRisks               int `json:"highRisks"`
	MediumRisks             int `json:"mediumRisks"`
	LowRisks                int `json:"lowRisks"`
}

type RasbitaCategories struct {
	Risk             int `json:"risk"`
	SecurityControls int `json:"securityControls"`
	Architecture     int `json:"architecture"`
	Govern           int `json:"govern"`
	Identify         int `json:"identify"`
	Protect          int `json:"protect"`
	Detect           int `json:"detect"`
	Respond          int `json:"respond"`
	Recover          int `json:"recover"`
}

type RasbitaScore struct {
	Overall    int               `json:"overall"`
	Categories RasbitaCategories `json:"categories"`
}

type Finding struct {
	Source   string `json:"source"` // question id or device name
	Title    string `json:"title"`
	Severity string `json:"severity"`
}

type AssessmentReport struct {
	ID            int64             `json:"id"`
	AssessmentID  int64             `json:"assessmentId"`
	BusinessName  string            `json:"businessName"`
	Industry      string            `json:"industry"`
	Location      string            `json:"location"`
	CreatedAt     time.Time         `json:"createdAt"`
	ReportType    string            `json:"reportType"`
	SecurityScore int               `json:"securityScore"`
	Summary       Summary           `json:"summary"`
	RasbitaScore  RasbitaScore      `json:"rasbitaScore"`
	Findings      []Finding         `json:"findings"`
	DeviceRisks   []risk.DeviceRisk `json:"deviceRisks"`
}
