package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"rasbita/internal/domain"
	"rasbita/internal/risk"
)

func TestJobLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.CreateAssessment(ctx, domain.Assessment{BusinessName: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	a, _ := s.Assessment(ctx, id)
	if a.Status != domain.StatusQueued {
		t.Fatalf("new assessment status = %s", a.Status)
	}

	job, ok, err := s.ClaimNext(ctx)
	if err != nil || !ok || job.AssessmentID != id {
		t.Fatalf("ClaimNext = %+v, %v, %v", job, ok, err)
	}
	if _, ok, _ := s.ClaimNext(ctx); ok {
		t.Fatal("a running job must not be claimed twice")
	}
	if _, err := s.StartJobForAssessment(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("StartJobForAssessment on a running job: %v", err)
	}

	if err := s.UpdateProgress(ctx, id, 2); err != nil {
		t.Fatal(err)
	}
	a, _ = s.Assessment(ctx, id)
	if a.Status != domain.StatusRunning || a.Progress != 1 {
		t.Errorf("running assessment = %s/%v", a.Status, a.Progress)
	}

	if err := s.MarkCompleted(ctx, job.ID); err != nil {
		t.Fatal(err)
	}
	a, _ = s.Assessment(ctx, id)
	if a.Status != domain.StatusCompleted {
		t.Errorf("status after completion = %s", a.Status)
	}
	if err := s.ReplaceDevices(ctx, id, []risk.Device{{Name: "late", Type: "laptop"}}); !errors.Is(err, domain.ErrNotEditable) {
		t.Errorf("ReplaceDevices after completion: %v", err)
	}
	if err := s.MarkFailed(ctx, 999, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MarkFailed unknown job: %v", err)
	}
}

func TestReportsLinkAndList(t *testing.T) {
	ctx := context.Background()
	s := New()
	var last int64
	for range 3 {
		id, _ := s.CreateAssessment(ctx, domain.Assessment{BusinessName: "Acme"})
		rid, err := s.SaveReport(ctx, domain.AssessmentReport{AssessmentID: id})
		if err != nil {
			t.Fatal(err)
		}
		a, _ := s.Assessment(ctx, id)
		if a.ReportID == nil || *a.ReportID != rid {
			t.Fatalf("assessment %d not linked to report %d", id, rid)
		}
		last = rid
	}
	if _, err := s.SaveReport(ctx, domain.AssessmentReport{AssessmentID: 404}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SaveReport for unknown assessment: %v", err)
	}

	list, _ := s.ListReports(ctx, 2)
	if len(list) != 2 || list[0].ID != last {
		t.Errorf("ListReports(2) = %d reports, first id %d", len(list), list[0].ID)
	}
}

func TestDevicesAreCopied(t *testing.T) {
	ctx := context.Background()
	s := New()
	devices := []risk.Device{{Name: "srv", Type: "server"}}
	id, _ := s.CreateAssessment(ctx, domain.Assessment{BusinessName: "Acme", Devices: devices})
	devices[0].Name = "mutated"

	a, _ := s.Assessment(ctx, id)
	if a.Devices[0].Name != "srv" {
		t.Error("store shares the caller's device slice")
	}
	a.Devices[0].Name = "mutated"
	b, _ := s.Assessment(ctx, id)
	if b.Devices[0].Name != "srv" {
		t.Error("store returns its internal device slice")
	}
}

func TestExpiredSessionsPurged(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Now()
	_ = s.CreateSession(ctx, domain.Session{Token: "old", UserID: 1, ExpiresAt: now.Add(-time.Minute)})
	_ = s.CreateSession(ctx, domain.Session{Token: "live", UserID: 1, ExpiresAt: now.Add(time.Hour)})

	n, err := s.DeleteExpiredSessions(ctx, now)
	if err != nil || n != 1 {
		t.Fatalf("DeleteExpiredSessions = %d, %v", n, err)
	}
	if _, err := s.SessionByToken(ctx, "old"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expired session still present: %v", err)
	}
	if s.SessionCount() != 1 {
		t.Errorf("SessionCount = %d", s.SessionCount())
	}
}
