package risk

import "testing"

func TestAssessBands(t *testing.T) {
	cases := []struct {
		l    Likelihood
		i    Impact
		want Level
	}{
		{Rare, Negligible, VeryLow},
		{Possible, Negligible, VeryLow},
		{Rare, Major, Low},
		{Unlikely, Moderate, Low},
		{Possible, Moderate, Medium},
		{Likely, Moderate, Medium},
		{Likely, Major, High},
		{AlmostCertain, Moderate, High},
		{AlmostCertain, Major, VeryHigh},
		{AlmostCertain, Severe, VeryHigh},
	}
	for _, c := range cases {
		if got := Assess(c.l, c.i); got != c.want {
			t.Errorf("Assess(%s, %s) = %s, want %s", c.l, c.i, got, c.want)
		}
	}
}

func TestAssessClampsOutOfRange(t *testing.T) {
	if got := Assess(0, -3); got != VeryLow {
		t.Errorf("Assess(0,-3) = %s, want Very Low", got)
	}
	if got := Assess(9, 9); got != VeryHigh {
		t.Errorf("Assess(9,9) = %s, want Very High", got)
	}
}

func TestMatrixIsMonotonic(t *testing.T) {
	rank := map[Level]int{VeryLow: 1, Low: 2, Medium: 3, High: 4, VeryHigh: 5}
	m := Matrix()
	for l := 0; l < 5; l++ {
		for i := 0; i < 5; i++ {
			if m[l][i] == "" {
				t.Fatalf("empty cell at [%d][%d]", l, i)
			}
			if l > 0 && rank[m[l][i]] < rank[m[l-1][i]] {
				t.Errorf("level decreases with likelihood at [%d][%d]", l, i)
			}
			if i > 0 && rank[m[l][i]] < rank[m[l][i-1]] {
				t.Errorf("level decreases with impact at [%d][%d]", l, i)
			}
		}
	}
}

func TestAssessDevice(t *testing.T) {
	hardened := Device{Name: "ws-01", Type: "workstation", Patched: true, Encrypted: true, EndpointProtection: true}
	r := AssessDevice(hardened)
	if r.Likelihood != Possible || r.Impact != Minor || r.Level != Low {
		t.Errorf("hardened workstation = %s/%s/%s, want Possible/Minor/Low", r.Likelihood, r.Impact, r.Level)
	}

	exposed := Device{Name: "db-01", Type: "SERVER", InternetFacing: true, SensitiveData: true}
	r = AssessDevice(exposed)
	if r.Likelihood != AlmostCertain || r.Impact != Severe || r.Level != VeryHigh {
		t.Errorf("exposed server = %s/%s/%s, want Almost Certain/Severe/Very High", r.Likelihood, r.Impact, r.Level)
	}

	printer := Device{Name: "prn", Type: "printer", Patched: true, Encrypted: true, EndpointProtection: true}
	if got := AssessDevice(printer).Level; got != VeryLow {
		t.Errorf("hardened printer = %s, want Very Low", got)
	}
}

func TestProfileFallback(t *testing.T) {
	if p := ProfileFor("toaster"); p.Type != OtherDevice {
		t.Errorf("ProfileFor(toaster) = %s, want other", p.Type)
	}
	if _, err := ParseDeviceType("toaster"); err == nil {
		t.Error("expected ParseDeviceType to reject unknown type")
	}
	if got, err := ParseDeviceType(" Laptop "); err != nil || got != "laptop" {
		t.Errorf("ParseDeviceType(Laptop) = %q, %v", got, err)
	}
	for _, dt := range DeviceTypes() {
		if ProfileFor(dt).Type != dt {
			t.Errorf("missing profile for %s", dt)
		}
	}
}

func TestLevelSeverity(t *testing.T) {
	want := map[Level]string{VeryHigh: "critical", High: "high", Medium: "medium", Low: "low", VeryLow: ""}
	for lv, sev := range want {
		if got := lv.Severity(); got != sev {
			t.Errorf("%s.Severity() = %q, want %q", lv, got, sev)
		}
	}
}
