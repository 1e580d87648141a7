// Package scoring turns a submitted assessment into a report.
package scoring

import (
	"math"
	"sort"
	"time"

	"rasbita/internal/domain"
	q "rasbita/internal/questionnaire"
	"rasbita/internal/risk"
)

const (
	riskWeight             = 20
	securityControlsWeight = 20
	architectureWeight     = 10
	functionWeight         = 10 // each of the six CSF functions
)

var csfFunctions = []q.Category{q.CategoryGovern, q.CategoryIdentify, q.CategoryProtect, q.CategoryDetect, q.CategoryRespond, q.CategoryRecover}

func credit(a q.Answer) float64 {
	switch a {
	case q.AnswerYes:
		return 1
	case q.AnswerPartial:
		return 0.5
	default:
		return 0
	}
}

// CategoryScores rates each category 0..100 from the weighted credit of its
// applicable questions. Unanswered questions earn no credit. A category whose
// questions are all "na" scores 0.
func CategoryScores(answers map[string]q.Answer) map[q.Category]int {
	earned := make(map[q.Category]float64)
	possible := make(map[q.Category]float64)
	for _, question := range q.Questions() {
		a := answers[question.ID]
		if a == q.AnswerNA {
			continue
		}
		w := float64(question.Weight)
		possible[question.Category] += w
		earned[question.Category] += w * credit(a)
	}
	out := make(map[q.Category]int, len(q.Categories()))
	for _, c := range q.Categories() {
		if possible[c] == 0 {
			out[c] = 0
			continue
		}
		out[c] = int(math.Round(earned[c] / possible[c] * 100))
	}
	return out
}

func weightedOverall(scores map[q.Category]int) int {
	total := riskWeight*scores[q.CategoryRisk] +
		securityControlsWeight*scores[q.CategorySecurityControls] +
		architectureWeight*scores[q.CategoryArchitecture]
	for _, c := range csfFunctions {
		total += functionWeight * scores[c]
	}
	return int(math.Round(float64(total) / 100))
}

func securityScore(scores map[q.Category]int) int {
	sum := 0
	for _, c := range csfFunctions {
		sum += scores[c]
	}
	return int(math.Round(float64(sum) / float64(len(csfFunctions))))
}

// downgrade lowers a severity by one tier; low stays low.
func downgrade(sev string) string {
	switch sev {
	case "critical":
		return "high"
	case "high":
		return "medium"
	default:
		return "low"
	}
}

func severityRank(sev string) int {
	switch sev {
	case "critical":
		return 4
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	}
	return 0
}

// Findings lists gaps from the questionnaire and the device inventory, most
// severe first.
func Findings(answers map[string]q.Answer, deviceRisks []risk.DeviceRisk) []domain.Finding {
	var out []domain.Finding
	for _, question := range q.Questions() {
		switch answers[question.ID] {
		case q.AnswerYes, q.AnswerNA:
			continue
		case q.AnswerPartial:
			out = append(out, domain.Finding{Source: question.ID, Title: question.Prompt, Severity: downgrade(question.Severity)})
		default:
			out = append(out, domain.Finding{Source: question.ID, Title: question.Prompt, Severity: question.Severity})
		}
	}
	for _, dr := range deviceRisks {
		sev := dr.Level.Severity()
		if sev == "" {
			continue
		}
		out = append(out, domain.Finding{
			Source:   dr.Device.Name,
			Title:    dr.Device.Type + " device rated " + string(dr.Level) + " risk",
			Severity: sev,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return severityRank(out[i].Severity) > severityRank(out[j].Severity)
	})
	return out
}

func Summarize(findings []domain.Finding) domain.Summary {
	var s domain.Summary
	for _, f := range findings {
		switch f.Severity {
		case "critical":
			s.CriticalVulnerabilities++
		case "high":
			s.HighRisks++
		case "medium":
			s.MediumRisks++
		case "low":
			s.LowRisks++
		}
	}
	return s
}

// Build computes the report for an assessment. The result depends only on
// its inputs; createdAt is stamped as given.
func Build(a domain.Assessment, createdAt time.Time) domain.AssessmentReport {
	scores := CategoryScores(a.Answers)
	deviceRisks := risk.AssessDevices(a.Devices)
	findings := Findings(a.Answers, deviceRisks)
	if findings == nil {
		findings = []domain.Finding{}
	}
	reportType := a.ReportType
	if reportType == "" {
		reportType = domain.ReportPreliminary
	}
	return domain.AssessmentReport{
		AssessmentID:  a.ID,
		BusinessName:  a.BusinessName,
		Industry:      a.Industry,
		Location:      a.Location,
		CreatedAt:     createdAt,
		ReportType:    reportType,
		SecurityScore: securityScore(scores),
		Summary:       Summarize(findings),
		RasbitaScore: domain.RasbitaScore{
			Overall: weightedOverall(scores),
			Categories: domain.RasbitaCategories{
				Risk:             scores[q.CategoryRisk],
				SecurityControls: scores[q.CategorySecurityControls],
				Architecture:     scores[q.CategoryArchitecture],
				Govern:           scores[q.CategoryGovern],
				Identify:         scores[q.CategoryIdentify],
				Protect:          scores[q.CategoryProtect],
				Detect:           scores[q.CategoryDetect],
				Respond:          scores[q.CategoryRespond],
				Recover:          scores[q.CategoryRecover],
			},
		},
		Findings:    findings,
		DeviceRisks: deviceRisks,
	}
}
