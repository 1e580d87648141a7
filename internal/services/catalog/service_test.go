package catalog

import (
	"testing"

	"rasbita/internal/risk"
)

func TestRiskMatrixShape(t *testing.T) {
	m := New().RiskMatrix()
	if len(m.Cells) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(m.Cells))
	}
	first, last := m.Cells[0], m.Cells[24]
	if first.Score != 1 || first.Level != risk.VeryLow || first.Likelihood != "Rare" {
		t.Errorf("unexpected first cell: %+v", first)
	}
	if last.Score != 25 || last.Level != risk.VeryHigh || last.Impact != "Severe" {
		t.Errorf("unexpected last cell: %+v", last)
	}
	if len(m.Profiles) != len(risk.DeviceTypes()) {
		t.Errorf("expected a profile per device type, got %d", len(m.Profiles))
	}
}

func TestMappingLookup(t *testing.T) {
	svc := New()
	if _, ok := svc.Mapping("device inventory tracking"); !ok {
		t.Error("expected Device Inventory Tracking mapping")
	}
	if len(svc.Mappings()) == 0 || len(svc.Sections()) == 0 {
		t.Error("expected catalog data")
	}
}
