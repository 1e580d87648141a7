package reportrunner

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"rasbita/internal/adapters/memory"
	"rasbita/internal/domain"
	"rasbita/internal/questionnaire"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newProcessor(store *memory.Store) ReportProcessor {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return ReportProcessor{Assessments: store, Reports: store, Jobs: store, Now: func() time.Time { return fixed }}
}

func TestProcessInline(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	id, err := store.CreateAssessment(ctx, domain.Assessment{
		BusinessName: "Acme",
		Answers:      map[string]questionnaire.Answer{"ib-mfa": questionnaire.AnswerYes},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := ProcessInline(ctx, store, newProcessor(store), id); err != nil {
		t.Fatalf("ProcessInline: %v", err)
	}
	a, _ := store.Assessment(ctx, id)
	if a.Status != domain.StatusCompleted || a.Progress != 1 || a.ReportID == nil {
		t.Fatalf("unexpected assessment after processing: %+v", a)
	}
	r, err := store.Report(ctx, *a.ReportID)
	if err != nil {
		t.Fatal(err)
	}
	if r.AssessmentID != id || r.BusinessName != "Acme" || r.CreatedAt.Year() != 2026 {
		t.Errorf("unexpected report: %+v", r)
	}
	if err := ProcessInline(ctx, store, newProcessor(store), id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second inline run = %v, want ErrNotFound (no queued job)", err)
	}
}

type failingProcessor struct{}

func (failingProcessor) Process(context.Context, int64) error { return errors.New("boom") }

func TestProcessInlineFailureMarksFailed(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	id, _ := store.CreateAssessment(ctx, domain.Assessment{BusinessName: "Acme"})
	if err := ProcessInline(ctx, store, failingProcessor{}, id); err == nil {
		t.Fatal("expected error")
	}
	a, _ := store.Assessment(ctx, id)
	if a.Status != domain.StatusFailed {
		t.Errorf("status = %s, want failed", a.Status)
	}
}

func TestRunProcessesQueuedJobs(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	var ids []int64
	for i := 0; i < 5; i++ {
		id, _ := store.CreateAssessment(ctx, domain.Assessment{BusinessName: "b"})
		ids = append(ids, id)
	}

	done := make(chan struct{})
	go func() {
		Run(ctx, store, newProcessor(store), 3, 5*time.Millisecond, quietLogger())
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for {
		completed := 0
		for _, id := range ids {
			if a, _ := store.Assessment(ctx, id); a.Status == domain.StatusCompleted {
				completed++
			}
		}
		if completed == len(ids) {
			break
		}
		select {
		case <-deadline:
			cancel()
			t.Fatalf("only %d/%d jobs completed", completed, len(ids))
		case <-time.After(10 * time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	reports, _ := store.ListReports(context.Background(), 0)
	if len(reports) != len(ids) {
		t.Errorf("expected %d reports, got %d", len(ids), len(reports))
	}
}

// blockingProcessor waits for ctx to end, reporting each start on started.
type blockingProcessor struct{ started chan int64 }

func (p blockingProcessor) Process(ctx context.Context, assessmentID int64) error {
	if p.started != nil {
		p.started <- assessmentID
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestProcessInlineDeadlineRequeues(t *testing.T) {
	store := memory.New()
	id, _ := store.CreateAssessment(context.Background(), domain.Assessment{BusinessName: "Acme"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := ProcessInline(ctx, store, blockingProcessor{}, id); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("ProcessInline = %v, want DeadlineExceeded", err)
	}
	a, _ := store.Assessment(context.Background(), id)
	if a.Status != domain.StatusQueued {
		t.Errorf("status = %s, want queued", a.Status)
	}
	if job, found, _ := store.ClaimNext(context.Background()); !found || job.AssessmentID != id {
		t.Error("expected the interrupted job to be claimable again")
	}
}

func TestRunRequeuesOnShutdown(t *testing.T) {
	store := memory.New()
	id, _ := store.CreateAssessment(context.Background(), domain.Assessment{BusinessName: "Acme"})

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan int64, 1)
	done := make(chan struct{})
	go func() {
		Run(ctx, store, blockingProcessor{started: started}, 1, 5*time.Millisecond, quietLogger())
		close(done)
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("job was never picked up")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	a, _ := store.Assessment(context.Background(), id)
	if a.Status != domain.StatusQueued {
		t.Errorf("status after shutdown = %s, want queued", a.Status)
	}
}
