package scoring

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"rasbita/internal/domain"
	q "rasbita/internal/questionnaire"
	"rasbita/internal/risk"
)

func allAnswers(a q.Answer) map[string]q.Answer {
	out := make(map[string]q.Answer)
	for _, question := range q.Questions() {
		out[question.ID] = a
	}
	return out
}

func TestWeightsSumTo100(t *testing.T) {
	if got := riskWeight + securityControlsWeight + architectureWeight + functionWeight*len(csfFunctions); got != 100 {
		t.Errorf("category weights must sum to 100, got %d", got)
	}
}

func TestBuildAllYes(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := Build(domain.Assessment{ID: 7, BusinessName: "Acme", Answers: allAnswers(q.AnswerYes)}, created)
	if r.SecurityScore != 100 || r.RasbitaScore.Overall != 100 {
		t.Errorf("scores = %d/%d, want 100/100", r.SecurityScore, r.RasbitaScore.Overall)
	}
	if len(r.Findings) != 0 {
		t.Errorf("expected no findings, got %d", len(r.Findings))
	}
	if r.AssessmentID != 7 || r.BusinessName != "Acme" || !r.CreatedAt.Equal(created) {
		t.Errorf("metadata not carried over: %+v", r)
	}
	if r.ReportType != domain.ReportPreliminary {
		t.Errorf("ReportType = %q, want preliminary default", r.ReportType)
	}
}

func TestBuildUnanswered(t *testing.T) {
	r := Build(domain.Assessment{}, time.Now())
	if r.SecurityScore != 0 || r.RasbitaScore.Overall != 0 {
		t.Errorf("scores = %d/%d, want 0/0", r.SecurityScore, r.RasbitaScore.Overall)
	}
	want := domain.Summary{CriticalVulnerabilities: 6, HighRisks: 12, MediumRisks: 8, LowRisks: 1}
	if diff := cmp.Diff(want, r.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if len(r.Findings) != len(q.Questions()) {
		t.Errorf("expected one finding per question, got %d", len(r.Findings))
	}
	for i := 1; i < len(r.Findings); i++ {
		if severityRank(r.Findings[i-1].Severity) < severityRank(r.Findings[i].Severity) {
			t.Fatalf("findings not sorted by severity at %d", i)
		}
	}
}

func TestOverallWeighting(t *testing.T) {
	answers := allAnswers(q.AnswerNo)
	for _, question := range q.Questions() {
		if question.Category == q.CategoryRisk {
			answers[question.ID] = q.AnswerYes
		}
	}
	r := Build(domain.Assessment{Answers: answers}, time.Now())
	if r.RasbitaScore.Categories.Risk != 100 {
		t.Fatalf("risk category = %d, want 100", r.RasbitaScore.Categories.Risk)
	}
	if r.RasbitaScore.Overall != riskWeight {
		t.Errorf("overall = %d, want %d", r.RasbitaScore.Overall, riskWeight)
	}
	if r.SecurityScore != 0 {
		t.Errorf("security score = %d, want 0", r.SecurityScore)
	}
}

func TestPartialCreditAndDowngrade(t *testing.T) {
	answers := allAnswers(q.AnswerYes)
	answers["ib-mfa"] = q.AnswerPartial
	r := Build(domain.Assessment{Answers: answers}, time.Now())

	// protect: ib-mfa(3) at half credit, ib-offboarding(2), ib-training(2): 5.5/7
	if r.RasbitaScore.Categories.Protect != 79 {
		t.Errorf("protect = %d, want 79", r.RasbitaScore.Categories.Protect)
	}
	want := []domain.Finding{{Source: "ib-mfa", Title: mustQuestion(t, "ib-mfa").Prompt, Severity: "high"}}
	if diff := cmp.Diff(want, r.Findings); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
}

func TestAllNotApplicableCategoryScoresZero(t *testing.T) {
	answers := allAnswers(q.AnswerYes)
	for _, question := range q.Questions() {
		if question.Category == q.CategoryRecover {
			answers[question.ID] = q.AnswerNA
		}
	}
	r := Build(domain.Assessment{Answers: answers}, time.Now())
	if r.RasbitaScore.Categories.Recover != 0 {
		t.Errorf("recover = %d, want 0", r.RasbitaScore.Categories.Recover)
	}
	if len(r.Findings) != 0 {
		t.Errorf("na answers must not produce findings, got %v", r.Findings)
	}
}

func TestDeviceFindings(t *testing.T) {
	devices := []risk.Device{
		{Name: "db-01", Type: "server", InternetFacing: true, SensitiveData: true},
		{Name: "prn-01", Type: "printer", Patched: true, Encrypted: true, EndpointProtection: true},
	}
	r := Build(domain.Assessment{Answers: allAnswers(q.AnswerYes), Devices: devices}, time.Now())
	if len(r.DeviceRisks) != 2 {
		t.Fatalf("expected 2 device risks, got %d", len(r.DeviceRisks))
	}
	if r.Summary.CriticalVulnerabilities != 1 || len(r.Findings) != 1 {
		t.Fatalf("expected exactly one critical device finding, got %+v", r.Findings)
	}
	if r.Findings[0].Source != "db-01" {
		t.Errorf("finding source = %q, want db-01", r.Findings[0].Source)
	}
}

func mustQuestion(t *testing.T, id string) q.Question {
	t.Helper()
	question, ok := q.Lookup(id)
	if !ok {
		t.Fatalf("question %s missing", id)
	}
	return question
}
