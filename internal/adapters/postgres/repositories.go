package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"rasbita/internal/domain"
	"rasbita/internal/questionnaire"
	"rasbita/internal/risk"
)

// AssessmentRepository

func (db *DB) CreateAssessment(ctx context.Context, a domain.Assessment) (int64, error) {
	var id int64
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		answers := a.Answers
		if answers == nil {
			answers = map[string]questionnaire.Answer{}
		}
		if err := tx.QueryRow(ctx, `
			INSERT INTO assessments (business_name, industry, location, website, report_type, answers, status, progress)
			VALUES ($1, $2, $3, $4, $5, $6, 'queued', 0)
			RETURNING id
		`, a.BusinessName, a.Industry, a.Location, a.Website, a.ReportType, answers).Scan(&id); err != nil {
			return err
		}
		if err := insertDevices(ctx, tx, id, a.Devices); err != nil {
			return err
		}
		// create job row
		_, err := tx.Exec(ctx, `INSERT INTO report_jobs (assessment_id) VALUES ($1)`, id)
		return err
	})
	return id, translate(err)
}

func insertDevices(ctx context.Context, tx pgx.Tx, assessmentID int64, devices []risk.Device) error {
	if len(devices) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(devices))
	for i, d := range devices {
		rows = append(rows, []any{assessmentID, i, d.Name, d.Type, d.OS, d.Owner,
			d.InternetFacing, d.Encrypted, d.Patched, d.EndpointProtection, d.SensitiveData})
	}
	_, err := tx.CopyFrom(ctx, pgx.Identifier{"assessment_devices"},
		[]string{"assessment_id", "position", "name", "device_type", "os", "owner",
			"internet_facing", "encrypted", "patched", "endpoint_protection", "sensitive_data"},
		pgx.CopyFromRows(rows))
	return err
}

func (db *DB) Assessment(ctx context.Context, id int64) (domain.Assessment, error) {
	var a domain.Assessment
	err := db.Pool.QueryRow(ctx, `
		SELECT a.id, a.business_name, a.industry, a.location, a.website, a.report_type, a.answers,
		       a.status, a.progress, a.created_at,
		       (SELECT r.id FROM reports r WHERE r.assessment_id = a.id ORDER BY r.id DESC LIMIT 1)
		FROM assessments a WHERE a.id = $1
	`, id).Scan(&a.ID, &a.BusinessName, &a.Industry, &a.Location, &a.Website, &a.ReportType, &a.Answers,
		&a.Status, &a.Progress, &a.CreatedAt, &a.ReportID)
	if err != nil {
		return a, translate(err)
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT name, device_type, os, owner, internet_facing, encrypted, patched, endpoint_protection, sensitive_data
		FROM assessment_devices WHERE assessment_id = $1 ORDER BY position
	`, id)
	if err != nil {
		return a, err
	}
	a.Devices, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (risk.Device, error) {
		var d risk.Device
		err := row.Scan(&d.Name, &d.Type, &d.OS, &d.Owner, &d.InternetFacing, &d.Encrypted, &d.Patched, &d.EndpointProtection, &d.SensitiveData)
		return d, err
	})
	return a, err
}

func (db *DB) ReplaceDevices(ctx context.Context, assessmentID int64, devices []risk.Device) error {
	return translate(db.inTx(ctx, func(tx pgx.Tx) error {
		var status string
		if err := tx.QueryRow(ctx, `SELECT status FROM assessments WHERE id = $1 FOR UPDATE`, assessmentID).Scan(&status); err != nil {
			return err
		}
		if status != domain.StatusQueued {
			return domain.ErrNotEditable
		}
		if _, err := tx.Exec(ctx, `DELETE FROM assessment_devices WHERE assessment_id = $1`, assessmentID); err != nil {
			return err
		}
		return insertDevices(ctx, tx, assessmentID, devices)
	}))
}

// ReportRepository

func (db *DB) SaveReport(ctx context.Context, r domain.AssessmentReport) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO reports (assessment_id, business_name, industry, location, report_type, security_score,
		                     summary, rasbita_score, findings, device_risks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, r.AssessmentID, r.BusinessName, r.Industry, r.Location, r.ReportType, r.SecurityScore,
		r.Summary, r.RasbitaScore, r.Findings, r.DeviceRisks, r.CreatedAt).Scan(&id)
	return id, translate(err)
}

const reportColumns = `id, assessment_id, business_name, industry, location, report_type, security_score,
	summary, rasbita_score, findings, device_risks, created_at`

func scanReport(row pgx.Row) (domain.AssessmentReport, error) {
	var r domain.AssessmentReport
	err := row.Scan(&r.ID, &r.AssessmentID, &r.BusinessName, &r.Industry, &r.Location, &r.ReportType,
		&r.SecurityScore, &r.Summary, &r.RasbitaScore, &r.Findings, &r.DeviceRisks, &r.CreatedAt)
	return r, err
}

func (db *DB) Report(ctx context.Context, id int64) (domain.AssessmentReport, error) {
	r, err := scanReport(db.Pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	return r, translate(err)
}

func (db *DB) ListReports(ctx context.Context, limit int) ([]domain.AssessmentReport, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AssessmentReport, error) {
		return scanReport(row)
	})
}
