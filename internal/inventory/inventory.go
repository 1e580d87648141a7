// Package inventory reads and writes the device inventory CSV uploaded with an
// assessment.
package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"rasbita/internal/risk"
)

const TemplateFilename = "device-inventory-template.csv"

var header = []string{"name", "type", "os", "owner", "internet_facing", "encrypted", "patched", "endpoint_protection", "sensitive_data"}

var required = []string{"name", "type"}

// Template writes the CSV header and one example row.
func Template(w io.Writer) error {
	cw := csv.NewWriter(w)
	_ = cw.Write(header)
	_ = cw.Write([]string{"FRONT-DESK-PC", "workstation", "Windows 11", "Reception", "no", "yes", "yes", "yes", "no"})
	cw.Flush()
	return cw.Error()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}

// Parse reads devices from CSV. Columns may appear in any order and header
// names are matched case-insensitively; name and type are required.
func Parse(r io.Reader) ([]risk.Device, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("inventory: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("inventory: header: %w", err)
	}
	cols := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		cols[h] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("inventory: missing required column %q", name)
		}
	}

	var devices []risk.Device
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// *csv.ParseError already names the line
			return nil, fmt.Errorf("inventory: %w", err)
		}
		// Line the record starts on; the reader skips blank lines and quoted
		// fields may span several.
		line, _ := cr.FieldPos(0)
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if isBlank(rec) {
			continue
		}
		d := risk.Device{Name: field("name"), OS: field("os"), Owner: field("owner")}
		if d.Name == "" {
			return nil, fmt.Errorf("inventory: line %d: name is required", line)
		}
		if d.Type, err = risk.ParseDeviceType(field("type")); err != nil {
			return nil, fmt.Errorf("inventory: line %d: %w", line, err)
		}
		flags := []struct {
			col string
			dst *bool
		}{
			{"internet_facing", &d.InternetFacing},
			{"encrypted", &d.Encrypted},
			{"patched", &d.Patched},
			{"endpoint_protection", &d.EndpointProtection},
			{"sensitive_data", &d.SensitiveData},
		}
		for _, f := range flags {
			if *f.dst, err = parseBool(field(f.col)); err != nil {
				return nil, fmt.Errorf("inventory: line %d: %s: %w", line, f.col, err)
			}
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
