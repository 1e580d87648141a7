package inventory

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rasbita/internal/risk"
)

func TestTemplateRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := Template(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one example row, got %d lines", len(lines))
	}
	devices, err := Parse(&buf)
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if len(devices) != 1 || devices[0].Type != "workstation" {
		t.Errorf("unexpected template devices: %+v", devices)
	}
}

func TestParseReorderedColumns(t *testing.T) {
	in := "\ufeffType,NAME,Patched,Internet_Facing\n" +
		"Server,db-01,no,yes\n" +
		",,,\n" +
		"laptop,lt-7,1,0\n"
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []risk.Device{
		{Name: "db-01", Type: "server", InternetFacing: true},
		{Name: "lt-7", Type: "laptop", Patched: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("devices mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing column": "name,os\nx,linux\n",
		"bad type":       "name,type\nx,toaster\n",
		"bad bool":       "name,type,patched\nx,server,sometimes\n",
		"missing name":   "name,type\n,server\n",
	}
	for name, in := range cases {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseErrorNamesLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"plain", "name,type\nok,server\nbad,toaster\n", "line 3:"},
		{"blank lines", "name,type\n\n\nsrv,server\nx,toaster\n", "line 5:"},
		{"multi-line field before", "name,type,owner\nsrv,server,\"Ops\nteam\"\nx,toaster,\n", "line 4:"},
		{"multi-line field in row", "name,type,owner\nsrv,server,\n\n\"x\",toaster,\"a\nb\"\n", "line 4:"},
		{"bad bool after blank", "name,type,patched\n\nsrv,server,maybe\n", "line 3:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			if err == nil || !strings.HasPrefix(err.Error(), "inventory: "+tc.line) {
				t.Errorf("expected error naming %s got %v", tc.line, err)
			}
		})
	}
}
