package reportrunner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"rasbita/internal/ports"
	"rasbita/internal/scoring"
)

// Processor performs the report work for a job's assessment id.
type Processor interface {
	Process(ctx context.Context, assessmentID int64) error
}

// ReportProcessor scores an assessment and stores the resulting report.
type ReportProcessor struct {
	Assessments ports.AssessmentRepository
	Reports     ports.ReportRepository
	Jobs        ports.JobRepository
	Now         func() time.Time
}

func (p ReportProcessor) Process(ctx context.Context, assessmentID int64) error {
	a, err := p.Assessments.Assessment(ctx, assessmentID)
	if err != nil {
		return fmt.Errorf("load assessment %d: %w", assessmentID, err)
	}
	if err := p.Jobs.UpdateProgress(ctx, assessmentID, 0.5); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	report := scoring.Build(a, now().UTC())
	if _, err := p.Reports.SaveReport(ctx, report); err != nil {
		return fmt.Errorf("save report for assessment %d: %w", assessmentID, err)
	}
	return p.Jobs.UpdateProgress(ctx, assessmentID, 1.0)
}

// Run starts worker goroutines that claim jobs and process them. It returns
// once ctx is cancelled and every worker has drained.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, log logrus.FieldLogger) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.ReportJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		defer close(jobsCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							log.WithError(err).Error("job claim error")
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						requeue(ctx, repo, job, log)
						return
					}
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			wlog := log.WithField("worker", idx)
			for job := range jobsCh {
				jlog := wlog.WithFields(logrus.Fields{"job_id": job.ID, "assessment_id": job.AssessmentID})
				if ctx.Err() != nil {
					requeue(ctx, repo, job, jlog)
					continue
				}
				if err := processor.Process(ctx, job.AssessmentID); err != nil {
					if ctx.Err() != nil {
						requeue(ctx, repo, job, jlog)
						continue
					}
					if mErr := repo.MarkFailed(context.WithoutCancel(ctx), job.ID, err.Error()); mErr != nil {
						jlog.WithError(mErr).Error("mark failed")
					}
					jlog.WithError(err).Warn("job failed")
					continue
				}
				if err := repo.MarkCompleted(context.WithoutCancel(ctx), job.ID); err != nil {
					jlog.WithError(err).Error("complete err")
					continue
				}
				jlog.Info("report generated")
			}
		}(i)
	}
	wg.Wait()
}

// requeue hands a job interrupted by shutdown back to the queue.
func requeue(ctx context.Context, repo ports.JobRepository, job ports.ReportJob, log logrus.FieldLogger) {
	if err := repo.Requeue(context.WithoutCancel(ctx), job.ID); err != nil {
		log.WithError(err).WithField("job_id", job.ID).Error("requeue failed")
		return
	}
	log.WithField("job_id", job.ID).Info("job requeued on shutdown")
}

// ProcessInline starts and processes the job for one assessment synchronously,
// with the same processor the background workers use. When ctx ends first the
// job goes back to the queue and ctx.Err() is returned.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, assessmentID int64) error {
	jobID, err := repo.StartJobForAssessment(ctx, assessmentID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, assessmentID); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if rqErr := repo.Requeue(context.WithoutCancel(ctx), jobID); rqErr != nil {
				return errors.Join(ctxErr, rqErr)
			}
			return ctxErr
		}
		_ = repo.MarkFailed(context.WithoutCancel(ctx), jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(context.WithoutCancel(ctx), jobID)
}
