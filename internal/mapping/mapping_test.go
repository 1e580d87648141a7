package mapping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableIsValid(t *testing.T) {
	if err := ValidateTable(); err != nil {
		t.Fatalf("built-in table invalid: %v", err)
	}
	for _, m := range All() {
		if len(m.SecurityDomainMappings) == 0 {
			t.Errorf("%s: empty securityDomainMappings", m.SOSParameter)
		}
		for _, d := range m.SecurityDomainMappings {
			if _, err := ParseRelevance(string(d.Relevance)); err != nil {
				t.Errorf("%s/%s: %v", m.SOSParameter, d.SecurityParameter, err)
			}
		}
	}
}

func TestLookupDeviceInventory(t *testing.T) {
	m, ok := Lookup("Device Inventory Tracking")
	if !ok {
		t.Fatal("expected Device Inventory Tracking to be present")
	}
	if m.Description == "" {
		t.Error("expected non-empty description")
	}
	var found bool
	for _, d := range m.SecurityDomainMappings {
		if d.SecurityParameter == "assetManagement" {
			found = true
			if d.Relevance != RelevanceCritical {
				t.Errorf("assetManagement relevance = %s, want critical", d.Relevance)
			}
		}
	}
	if !found {
		t.Error("expected assetManagement in domain list")
	}
}

func TestLookupNormalizesName(t *testing.T) {
	want, _ := Lookup(DeviceInventoryTracking)
	got, ok := Lookup("  device   INVENTORY tracking ")
	if !ok {
		t.Fatal("expected case/space-insensitive match")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lookup mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupUnknown(t *testing.T) {
	m, ok := Lookup("Quantum Readiness")
	if ok {
		t.Fatal("expected unknown parameter to be absent")
	}
	if m.SOSParameter != "" || m.SecurityDomainMappings != nil {
		t.Errorf("expected zero value, got %+v", m)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	m, _ := Lookup(DeviceInventoryTracking)
	m.SecurityDomainMappings[0].Relevance = RelevanceLow
	again, _ := Lookup(DeviceInventoryTracking)
	if again.SecurityDomainMappings[0].Relevance == RelevanceLow {
		t.Error("mutating a lookup result changed the table")
	}
}

func TestDomainsOrderedByRelevance(t *testing.T) {
	for _, m := range All() {
		for i := 1; i < len(m.SecurityDomainMappings); i++ {
			prev, cur := m.SecurityDomainMappings[i-1], m.SecurityDomainMappings[i]
			if prev.Relevance.Rank() < cur.Relevance.Rank() {
				t.Errorf("%s: %s (%s) sorted before %s (%s)", m.SOSParameter,
					prev.SecurityParameter, prev.Relevance, cur.SecurityParameter, cur.Relevance)
			}
		}
	}
}

func TestByDomain(t *testing.T) {
	got := ByDomain("assetmanagement")
	var names []string
	for _, m := range got {
		names = append(names, m.SOSParameter)
	}
	want := []string{DeviceInventoryTracking, RiskAssessment, BusinessContinuityRecovery}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("ByDomain mismatch (-want +got):\n%s", diff)
	}
	if len(ByDomain("nothing")) != 0 {
		t.Error("expected no mappings for unknown domain")
	}
}

func TestValidateRejectsBadRows(t *testing.T) {
	rows := []DomainMapping{
		{SOSParameter: "A", Description: "a"},
		{SOSParameter: "B", Description: "b", SecurityDomainMappings: []DomainRelevance{{SecurityParameter: "x", Relevance: "urgent"}}},
		{SOSParameter: "a", Description: "", SecurityDomainMappings: []DomainRelevance{{SecurityParameter: "x", Relevance: RelevanceLow}}},
	}
	if err := Validate(rows); err == nil {
		t.Fatal("expected validation errors")
	}
}

func TestParseRelevance(t *testing.T) {
	if r, err := ParseRelevance(" HIGH "); err != nil || r != RelevanceHigh {
		t.Errorf("ParseRelevance(HIGH) = %q, %v", r, err)
	}
	if _, err := ParseRelevance("severe"); err == nil {
		t.Error("expected error for unknown tier")
	}
}
