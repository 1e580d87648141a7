// Package mapping holds the relevance tables linking SOS assessment parameters
// to the security domain parameters they inform.
package mapping

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DomainRelevance annotates how strongly an SOS parameter informs one security domain parameter.
type DomainRelevance struct {
	SecurityParameter string    `json:"securityParameter"`
	Relevance         Relevance `json:"relevance"`
	Description       string    `json:"description"`
}

// DomainMapping is one row of the relevance table.
type DomainMapping struct {
	SOSParameter           string            `json:"sosParameter"`
	Description            string            `json:"description"`
	SecurityDomainMappings []DomainRelevance `json:"securityDomainMappings"`
}

func (m DomainMapping) clone() DomainMapping {
	out := m
	out.SecurityDomainMappings = append([]DomainRelevance(nil), m.SecurityDomainMappings...)
	return out
}

var index = buildIndex(table)

func buildIndex(rows []DomainMapping) map[string]int {
	idx := make(map[string]int, len(rows))
	for i, row := range rows {
		idx[normalize(row.SOSParameter)] = i
	}
	return idx
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Lookup returns the mapping for an SOS parameter. Matching ignores case and
// surrounding or repeated whitespace.
func Lookup(sosParameter string) (DomainMapping, bool) {
	i, ok := index[normalize(sosParameter)]
	if !ok {
		return DomainMapping{}, false
	}
	return sorted(table[i]), true
}

// All returns every mapping in table order.
func All() []DomainMapping {
	out := make([]DomainMapping, 0, len(table))
	for _, row := range table {
		out = append(out, sorted(row))
	}
	return out
}

// ByDomain returns the mappings that reference the given security domain parameter.
func ByDomain(securityParameter string) []DomainMapping {
	var out []DomainMapping
	for _, row := range table {
		for _, d := range row.SecurityDomainMappings {
			if strings.EqualFold(d.SecurityParameter, securityParameter) {
				out = append(out, sorted(row))
				break
			}
		}
	}
	return out
}

// sorted copies m with its domains ordered by relevance rank, highest first.
// Equal ranks keep table order.
func sorted(m DomainMapping) DomainMapping {
	out := m.clone()
	sort.SliceStable(out.SecurityDomainMappings, func(i, j int) bool {
		return out.SecurityDomainMappings[i].Relevance.Rank() > out.SecurityDomainMappings[j].Relevance.Rank()
	})
	return out
}

// Validate checks the structural invariants of a set of mappings.
func Validate(rows []DomainMapping) error {
	var errs []error
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		key := normalize(row.SOSParameter)
		if key == "" {
			errs = append(errs, errors.New("mapping with empty sos parameter"))
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate sos parameter", row.SOSParameter))
		}
		seen[key] = true
		if strings.TrimSpace(row.Description) == "" {
			errs = append(errs, fmt.Errorf("%s: empty description", row.SOSParameter))
		}
		if len(row.SecurityDomainMappings) == 0 {
			errs = append(errs, fmt.Errorf("%s: no security domain mappings", row.SOSParameter))
		}
		for _, d := range row.SecurityDomainMappings {
			if d.SecurityParameter == "" {
				errs = append(errs, fmt.Errorf("%s: domain mapping without security parameter", row.SOSParameter))
			}
			if !d.Relevance.Valid() {
				errs = append(errs, fmt.Errorf("%s/%s: invalid relevance %q", row.SOSParameter, d.SecurityParameter, d.Relevance))
			}
		}
	}
	return errors.Join(errs...)
}

// ValidateTable checks the built-in table.
func ValidateTable() error { return Validate(table) }
