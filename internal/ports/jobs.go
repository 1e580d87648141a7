package ports

import "context"

type ReportJob struct {
	ID           int64
	AssessmentID int64
}

// JobRepository supports claiming and updating report jobs.
type JobRepository interface {
	ClaimNext(ctx context.Context) (job ReportJob, found bool, err error)
	UpdateProgress(ctx context.Context, assessmentID int64, progress float64) error
	MarkCompleted(ctx context.Context, jobID int64) error
	MarkFailed(ctx context.Context, jobID int64, reason string) error
	// Requeue returns a running job and its assessment to queued.
	Requeue(ctx context.Context, jobID int64) error
	StartJobForAssessment(ctx context.Context, assessmentID int64) (jobID int64, err error)
}
