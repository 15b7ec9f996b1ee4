package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/arnabc13/kolam-backend/internal/kolam"
)

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1

func (c *CLI) familiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List boundary families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.out, familiesTable(kolam.Families()))
			return err
		},
	}
}

func familiesTable(infos []kolam.FamilyInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		decorative := "no"
		if info.Decorative {
			decorative = "yes"
		}
		rows = append(rows, []string{string(info.Name), swatch(info.DefaultColor), decorative})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Family", "Default color", "Markers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if col == 0 {
				return styleName
			}
			return lipgloss.NewStyle()
		})

	return t.String()
}
