package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"rasbita/internal/ports"
)

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.ReportJob, found bool, err error) {
	err = db.inTx(ctx, func(tx pgx.Tx) error {
		// Lock the next queued job
		err := tx.QueryRow(ctx, `
			SELECT id, assessment_id FROM report_jobs
			WHERE status = 'queued'
			ORDER BY queued_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		`).Scan(&job.ID, &job.AssessmentID)
		if err != nil {
			return err
		}
		return markRunning(ctx, tx, job)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	return job, true, nil
}

func markRunning(ctx context.Context, tx pgx.Tx, job ports.ReportJob) error {
	if _, err := tx.Exec(ctx, `
		UPDATE report_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
	`, job.ID); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `
		UPDATE assessments SET status='running', started_at=COALESCE(started_at, now()) WHERE id=$1
	`, job.AssessmentID)
	return err
}

func (db *DB) UpdateProgress(ctx context.Context, assessmentID int64, progress float64) error {
	progress = min(max(progress, 0), 1)
	_, err := db.Pool.Exec(ctx, `UPDATE assessments SET progress=$2 WHERE id=$1`, assessmentID, progress)
	return err
}

// finish moves a job and its assessment to a terminal status atomically.
func (db *DB) finish(ctx context.Context, jobID int64, status string, reason *string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return translate(db.inTx(ctx, func(tx pgx.Tx) error {
		var assessmentID int64
		if err := tx.QueryRow(ctx, `SELECT assessment_id FROM report_jobs WHERE id=$1`, jobID).Scan(&assessmentID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE report_jobs SET status=$2, last_error=$3, finished_at=now() WHERE id=$1
		`, jobID, status, reason); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			UPDATE assessments
			SET status=$2, finished_at=now(), progress=CASE WHEN $2='completed' THEN 1 ELSE progress END
			WHERE id=$1
		`, assessmentID, status)
		return err
	}))
}

func (db *DB) MarkCompleted(ctx context.Context, jobID int64) error {
	return db.finish(ctx, jobID, "completed", nil)
}

func (db *DB) MarkFailed(ctx context.Context, jobID int64, reason string) error {
	return db.finish(ctx, jobID, "failed", &reason)
}

// Requeue puts a running job back in the queue, keeping its attempt count.
func (db *DB) Requeue(ctx context.Context, jobID int64) error {
	return translate(db.inTx(ctx, func(tx pgx.Tx) error {
		var assessmentID int64
		if err := tx.QueryRow(ctx, `
			UPDATE report_jobs SET status='queued', started_at=NULL, queued_at=now()
			WHERE id=$1 AND status='running'
			RETURNING assessment_id
		`, jobID).Scan(&assessmentID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE assessments SET status='queued', progress=0 WHERE id=$1`, assessmentID)
		return err
	}))
}

// StartJobForAssessment marks the queued job for an assessment as running and returns the job id.
func (db *DB) StartJobForAssessment(ctx context.Context, assessmentID int64) (int64, error) {
	job := ports.ReportJob{AssessmentID: assessmentID}
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		// lock specific job row if queued
		if err := tx.QueryRow(ctx, `
			SELECT id FROM report_jobs
			WHERE assessment_id = $1 AND status = 'queued'
			FOR UPDATE SKIP LOCKED
		`, assessmentID).Scan(&job.ID); err != nil {
			return err
		}
		return markRunning(ctx, tx, job)
	})
	return job.ID, translate(err)
}
