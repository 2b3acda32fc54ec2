package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/hflist/internal/logging"
	"github.com/gravitrone/hflist/internal/ui"
	"github.com/gravitrone/hflist/internal/ui/components"
)

const layoutWidth = 72

// LayoutCmd returns the `hflist layout` command, which prints every row of
// the configured list with its kind, type id and index.
func LayoutCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the row layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath(cmd))
			if err != nil {
				return err
			}
			rows := ui.NewLayout(cfg, logging.Discard()).Describe()

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(rows); err != nil {
					return fmt.Errorf("encode layout: %w", err)
				}
				return enc.Close()
			case "text":
				if len(rows) == 0 {
					fmt.Fprintln(out, "no rows")
					return nil
				}
				fmt.Fprintln(out, renderLayout(rows))
				return nil
			}
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func renderLayout(rows []ui.RowInfo) string {
	columns := []components.GridColumn{
		{Header: "Row", Width: 4, Align: lipgloss.Right},
		{Header: "Kind", Width: 7},
		{Header: "Type", Width: 5, Align: lipgloss.Right},
		{Header: "Index", Width: 5, Align: lipgloss.Right},
		{Header: "Text", Width: 20},
	}
	grid := make([]components.GridRow, 0, len(rows))
	for _, r := range rows {
		text := r.Text
		if !r.Visible {
			text += " (hidden)"
		}
		grid = append(grid, components.GridRow{
			Cells: []string{
				strconv.Itoa(r.Position),
				r.Kind,
				strconv.Itoa(r.TypeID),
				strconv.Itoa(r.Index),
				text,
			},
			Dim: !r.Visible,
		})
	}
	return components.Grid(columns, grid, layoutWidth, -1)
}
