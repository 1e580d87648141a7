package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"rasbita/internal/mapping"
	"rasbita/internal/risk"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings [sos-parameter]",
	Short: "Print the SOS to security domain relevance mappings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := mapping.All()
		if len(args) == 1 {
			m, ok := mapping.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown SOS parameter %q", args[0])
			}
			rows = []mapping.DomainMapping{m}
		}
		data := [][]string{{"SOS Parameter", "Security Domain", "Relevance", "Rationale"}}
		for _, m := range rows {
			for _, d := range m.SecurityDomainMappings {
				data = append(data, []string{
					pterm.FgCyan.Sprint(m.SOSParameter),
					d.SecurityParameter,
					relevanceStyle(d.Relevance),
					d.Description,
				})
			}
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func relevanceStyle(r mapping.Relevance) string {
	switch r {
	case mapping.RelevanceCritical:
		return pterm.FgRed.Sprint("CRITICAL")
	case mapping.RelevanceHigh:
		return pterm.FgLightRed.Sprint("HIGH")
	case mapping.RelevanceMedium:
		return pterm.FgYellow.Sprint("MEDIUM")
	default:
		return pterm.FgBlue.Sprint("LOW")
	}
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the likelihood by impact risk matrix and device profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		grid := risk.Matrix()
		header := []string{"Likelihood \\ Impact"}
		for i := risk.Negligible; i <= risk.Severe; i++ {
			header = append(header, i.String())
		}
		data := [][]string{header}
		for l := risk.AlmostCertain; l >= risk.Rare; l-- {
			row := []string{l.String()}
			for i := risk.Negligible; i <= risk.Severe; i++ {
				row = append(row, levelStyle(grid[l-1][i-1]))
			}
			data = append(data, row)
		}
		if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
			return err
		}

		profiles := [][]string{{"Device Type", "Likelihood", "Impact", "Base Level", "Notes"}}
		for _, t := range risk.DeviceTypes() {
			p := risk.ProfileFor(t)
			profiles = append(profiles, []string{
				p.Type,
				strconv.Itoa(int(p.Likelihood)),
				strconv.Itoa(int(p.Impact)),
				levelStyle(risk.Assess(p.Likelihood, p.Impact)),
				p.Description,
			})
		}
		pterm.Println()
		return pterm.DefaultTable.WithHasHeader().WithData(profiles).Render()
	},
}

func levelStyle(lv risk.Level) string {
	switch lv {
	case risk.VeryHigh:
		return pterm.FgRed.Sprint(string(lv))
	case risk.High:
		return pterm.FgLightRed.Sprint(string(lv))
	case risk.Medium:
		return pterm.FgYellow.Sprint(string(lv))
	case risk.Low:
		return pterm.FgGreen.Sprint(string(lv))
	default:
		return pterm.FgBlue.Sprint(string(lv))
	}
}

func init() {
	rootCmd.AddCommand(mappingsCmd, matrixCmd)
}
