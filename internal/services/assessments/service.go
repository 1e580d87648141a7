package assessments

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"rasbita/internal/domain"
	"rasbita/internal/ports"
	"rasbita/internal/questionnaire"
	"rasbita/internal/risk"
)

var ErrNotEditable = domain.ErrNotEditable

// InvalidError reports a rejected submission.
type InvalidError struct{ Msg string }

func (e *InvalidError) Error() string { return e.Msg }

type Service struct {
	assessments ports.AssessmentRepository
}

func New(assessments ports.AssessmentRepository) *Service {
	return &Service{assessments: assessments}
}

// registrableDomain reduces a website to its eTLD+1, accepting bare hosts.
func registrableDomain(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("no host in %q", raw)
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	return registrable, nil
}

func (s *Service) Submit(ctx context.Context, in ports.SubmitInput) (int64, error) {
	name := strings.TrimSpace(in.BusinessName)
	if name == "" {
		return 0, &InvalidError{Msg: "businessName is required"}
	}
	answers, err := questionnaire.Validate(in.Answers)
	if err != nil {
		return 0, &InvalidError{Msg: err.Error()}
	}
	reportType := in.ReportType
	switch reportType {
	case "":
		reportType = domain.ReportPreliminary
	case domain.ReportPreliminary, domain.ReportComprehensive:
	default:
		return 0, &InvalidError{Msg: "invalid reportType: " + reportType}
	}
	devices, err := normalizeDevices(in.Devices)
	if err != nil {
		return 0, err
	}
	a := domain.Assessment{
		BusinessName: name,
		Industry:     strings.TrimSpace(in.Industry),
		Location:     strings.TrimSpace(in.Location),
		ReportType:   reportType,
		Answers:      answers,
		Devices:      devices,
	}
	if in.Website != "" {
		site, err := registrableDomain(in.Website)
		if err != nil {
			return 0, &InvalidError{Msg: "invalid website: " + err.Error()}
		}
		a.Website = &site
	}
	return s.assessments.CreateAssessment(ctx, a)
}

func normalizeDevices(devices []risk.Device) ([]risk.Device, error) {
	out := make([]risk.Device, 0, len(devices))
	for i, d := range devices {
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			return nil, &InvalidError{Msg: fmt.Sprintf("devices[%d]: name is required", i)}
		}
		t, err := risk.ParseDeviceType(d.Type)
		if err != nil {
			return nil, &InvalidError{Msg: fmt.Sprintf("devices[%d]: %v", i, err)}
		}
		d.Type = t
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Assessment, error) {
	return s.assessments.Assessment(ctx, id)
}

// ReplaceDevices swaps the device inventory of an assessment whose report has
// not started. The repository checks the status in the same write.
func (s *Service) ReplaceDevices(ctx context.Context, id int64, devices []risk.Device) error {
	devices, err := normalizeDevices(devices)
	if err != nil {
		return err
	}
	return s.assessments.ReplaceDevices(ctx, id, devices)
}
