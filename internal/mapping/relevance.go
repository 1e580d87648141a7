package mapping

import (
	"fmt"
	"strings"
)

type Relevance string

const (
	RelevanceCritical Relevance = "critical"
	RelevanceHigh     Relevance = "high"
	RelevanceMedium   Relevance = "medium"
	RelevanceLow      Relevance = "low"
)

// Rank returns an integer rank for comparison (Low=1, Critical=4). Unknown tiers rank 0.
func (r Relevance) Rank() int {
	switch r {
	case RelevanceLow:
		return 1
	case RelevanceMedium:
		return 2
	case RelevanceHigh:
		return 3
	case RelevanceCritical:
		return 4
	default:
		return 0
	}
}

func (r Relevance) Valid() bool { return r.Rank() > 0 }

func (r Relevance) String() string { return string(r) }

// ParseRelevance parses a relevance tier case-insensitively.
func ParseRelevance(s string) (Relevance, error) {
	r := Relevance(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("invalid relevance: %q", s)
	}
	return r, nil
}
