package assessments

import (
	"context"
	"errors"
	"testing"

	"rasbita/internal/adapters/memory"
	"rasbita/internal/domain"
	"rasbita/internal/ports"
	"rasbita/internal/questionnaire"
	"rasbita/internal/risk"
	"rasbita/internal/workers/reportrunner"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(store)

	id, err := svc.Submit(ctx, ports.SubmitInput{
		BusinessName: "  Acme Dental ",
		Industry:     "healthcare",
		Website:      "https://www.shop.acme.co.uk/contact",
		Answers:      map[string]string{"ib-mfa": "Yes"},
		Devices:      []risk.Device{{Name: "fd-pc", Type: "Workstation"}},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	a, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a.BusinessName != "Acme Dental" || a.ReportType != domain.ReportPreliminary || a.Status != domain.StatusQueued {
		t.Errorf("unexpected assessment: %+v", a)
	}
	if a.Website == nil || *a.Website != "acme.co.uk" {
		t.Errorf("website = %v, want acme.co.uk", a.Website)
	}
	if a.Answers["ib-mfa"] != questionnaire.AnswerYes {
		t.Errorf("answers not normalised: %v", a.Answers)
	}
	if len(a.Devices) != 1 || a.Devices[0].Type != "workstation" {
		t.Errorf("devices not normalised: %+v", a.Devices)
	}
	if job, found, _ := store.ClaimNext(ctx); !found || job.AssessmentID != id {
		t.Errorf("expected a queued report job for assessment %d", id)
	}
}

func TestSubmitRejects(t *testing.T) {
	svc := New(memory.New())
	cases := map[string]ports.SubmitInput{
		"no name":     {Answers: map[string]string{}},
		"bad answer":  {BusinessName: "x", Answers: map[string]string{"ib-mfa": "sure"}},
		"bad type":    {BusinessName: "x", ReportType: "deluxe"},
		"bad device":  {BusinessName: "x", Devices: []risk.Device{{Name: "d", Type: "toaster"}}},
		"nameless":    {BusinessName: "x", Devices: []risk.Device{{Type: "server"}}},
		"bad website": {BusinessName: "x", Website: "https://"},
	}
	for name, in := range cases {
		_, err := svc.Submit(context.Background(), in)
		var invalid *InvalidError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: expected *InvalidError, got %v", name, err)
		}
	}
}

func TestReplaceDevicesOnlyWhileQueued(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(store)
	id, err := svc.Submit(ctx, ports.SubmitInput{BusinessName: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.ReplaceDevices(ctx, id, []risk.Device{{Name: "srv", Type: "server"}}); err != nil {
		t.Fatalf("ReplaceDevices: %v", err)
	}
	a, _ := svc.Get(ctx, id)
	if len(a.Devices) != 1 {
		t.Fatalf("expected 1 device, got %d", len(a.Devices))
	}
	if _, _, err := store.ClaimNext(ctx); err != nil {
		t.Fatal(err)
	}
	if err := svc.ReplaceDevices(ctx, id, nil); !errors.Is(err, ErrNotEditable) {
		t.Errorf("got %v, want ErrNotEditable", err)
	}
	if err := svc.ReplaceDevices(ctx, 999, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

// workerWinsRepo finishes the report job right before the device write lands,
// as a background worker would between the request arriving and the write.
type workerWinsRepo struct {
	*memory.Store
}

func (r workerWinsRepo) ReplaceDevices(ctx context.Context, assessmentID int64, devices []risk.Device) error {
	p := reportrunner.ReportProcessor{Assessments: r.Store, Reports: r.Store, Jobs: r.Store}
	if err := reportrunner.ProcessInline(ctx, r.Store, p, assessmentID); err != nil {
		return err
	}
	return r.Store.ReplaceDevices(ctx, assessmentID, devices)
}

func TestReplaceDevicesLosesRaceToWorker(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(workerWinsRepo{store})
	id, err := svc.Submit(ctx, ports.SubmitInput{BusinessName: "Acme"})
	if err != nil {
		t.Fatal(err)
	}

	err = svc.ReplaceDevices(ctx, id, []risk.Device{{Name: "srv", Type: "server"}})
	if !errors.Is(err, ErrNotEditable) {
		t.Fatalf("got %v, want ErrNotEditable", err)
	}
	a, _ := store.Assessment(ctx, id)
	if a.Status != domain.StatusCompleted || len(a.Devices) != 0 {
		t.Errorf("assessment = %s with %d devices, want completed with none", a.Status, len(a.Devices))
	}
	report, err := store.Report(ctx, *a.ReportID)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.DeviceRisks) != len(a.Devices) {
		t.Errorf("report rated %d devices, assessment stores %d", len(report.DeviceRisks), len(a.Devices))
	}
}

func TestRegistrableDomain(t *testing.T) {
	cases := map[string]string{
		"example.com":                  "example.com",
		"https://WWW.Example.com/path": "example.com",
		"http://a.b.example.org:8080":  "example.org",
		"localhost":                    "localhost",
	}
	for in, want := range cases {
		got, err := registrableDomain(in)
		if err != nil || got != want {
			t.Errorf("registrableDomain(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}
