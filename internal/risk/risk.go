// Package risk implements the likelihood × impact risk matrix and its
// application to inventoried devices.
package risk

import "fmt"

type Likelihood int

const (
	Rare Likelihood = iota + 1
	Unlikely
	Possible
	Likely
	AlmostCertain
)

var likelihoodNames = [...]string{"", "Rare", "Unlikely", "Possible", "Likely", "Almost Certain"}

func (l Likelihood) String() string {
	if l < Rare || l > AlmostCertain {
		return fmt.Sprintf("Likelihood(%d)", int(l))
	}
	return likelihoodNames[l]
}

type Impact int

const (
	Negligible Impact = iota + 1
	Minor
	Moderate
	Major
	Severe
)

var impactNames = [...]string{"", "Negligible", "Minor", "Moderate", "Major", "Severe"}

func (i Impact) String() string {
	if i < Negligible || i > Severe {
		return fmt.Sprintf("Impact(%d)", int(i))
	}
	return impactNames[i]
}

type Level string

const (
	VeryLow  Level = "Very Low"
	Low      Level = "Low"
	Medium   Level = "Medium"
	High     Level = "High"
	VeryHigh Level = "Very High"
)

// Severity maps a risk level onto the report's severity buckets. Very Low
// levels are not reported and map to "".
func (lv Level) Severity() string {
	switch lv {
	case VeryHigh:
		return "critical"
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	default:
		return ""
	}
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// Assess combines a likelihood and impact into a qualitative level.
// Factors outside 1..5 are clamped.
func Assess(l Likelihood, i Impact) Level {
	score := clamp(int(l)) * clamp(int(i))
	switch {
	case score <= 3:
		return VeryLow
	case score <= 6:
		return Low
	case score <= 12:
		return Medium
	case score <= 16:
		return High
	default:
		return VeryHigh
	}
}

// Matrix returns the full grid indexed [likelihood-1][impact-1].
func Matrix() [5][5]Level {
	var m [5][5]Level
	for l := Rare; l <= AlmostCertain; l++ {
		for i := Negligible; i <= Severe; i++ {
			m[l-1][i-1] = Assess(l, i)
		}
	}
	return m
}
