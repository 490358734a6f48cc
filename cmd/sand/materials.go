package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"falling-sand/internal/sand"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Show the material table",
	Long:  `Shows every material with its density, slipperiness, behavior and color after config overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runMaterials,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runMaterials(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}
	s, err := loadSettings(logger)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), materialTable(s.world.Table))
	return nil
}

func materialTable(t *sand.Table) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Material", "Density", "Slip", "Behavior", "Color").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for m := sand.Material(0); m < sand.MaterialCount; m++ {
		p := t.Properties(m)
		swatch := "-"
		if p.Color.A > 0 {
			hex := fmt.Sprintf("#%02X%02X%02X", p.Color.R, p.Color.G, p.Color.B)
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██ " + hex)
		}
		tbl.Row(
			strconv.Itoa(int(m)),
			m.String(),
			strconv.FormatFloat(p.Density, 'f', -1, 64),
			strconv.Itoa(p.Slipperiness),
			p.Behavior.String(),
			swatch,
		)
	}
	return tbl.Render()
}
