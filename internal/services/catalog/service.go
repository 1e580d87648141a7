// Package catalog serves the static reference data the assessment client renders.
package catalog

import (
	"rasbita/internal/mapping"
	"rasbita/internal/questionnaire"
	"rasbita/internal/risk"
)

type MatrixCell struct {
	Likelihood string     `json:"likelihood"`
	Impact     string     `json:"impact"`
	Score      int        `json:"score"`
	Level      risk.Level `json:"level"`
}

type RiskMatrix struct {
	Cells    []MatrixCell         `json:"cells"`
	Profiles []risk.DeviceProfile `json:"deviceProfiles"`
}

type Service struct{}

func New() *Service { return &Service{} }

func (s *Service) Mappings() []mapping.DomainMapping { return mapping.All() }

func (s *Service) Mapping(sosParameter string) (mapping.DomainMapping, bool) {
	return mapping.Lookup(sosParameter)
}

func (s *Service) Sections() []questionnaire.Section { return questionnaire.Sections() }

// RiskMatrix flattens the matrix row by row, likelihood ascending.
func (s *Service) RiskMatrix() RiskMatrix {
	grid := risk.Matrix()
	out := RiskMatrix{Cells: make([]MatrixCell, 0, 25)}
	for l := risk.Rare; l <= risk.AlmostCertain; l++ {
		for i := risk.Negligible; i <= risk.Severe; i++ {
			out.Cells = append(out.Cells, MatrixCell{
				Likelihood: l.String(),
				Impact:     i.String(),
				Score:      int(l) * int(i),
				Level:      grid[l-1][i-1],
			})
		}
	}
	for _, t := range risk.DeviceTypes() {
		out.Profiles = append(out.Profiles, risk.ProfileFor(t))
	}
	return out
}
