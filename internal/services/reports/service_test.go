package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"rasbita/internal/adapters/memory"
	"rasbita/internal/domain"
)

func TestListNewestFirstAndLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(store)
	var ids []int64
	for i := 0; i < 3; i++ {
		aid, err := store.CreateAssessment(ctx, domain.Assessment{BusinessName: "b"})
		if err != nil {
			t.Fatal(err)
		}
		rid, err := store.SaveReport(ctx, domain.AssessmentReport{AssessmentID: aid, CreatedAt: time.Now()})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rid)
	}
	got, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != ids[2] || got[1].ID != ids[1] {
		t.Errorf("unexpected list order: %+v", got)
	}
	all, _ := svc.List(ctx, 0)
	if len(all) != 3 {
		t.Errorf("default limit returned %d reports, want 3", len(all))
	}
}

func TestGetMissing(t *testing.T) {
	if _, err := New(memory.New()).Get(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
