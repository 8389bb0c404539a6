package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/state"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Print the resolved key bindings",
	Long: `Load the key bindings the same way the game does (--controls,
~/.kokaton/controls.yaml, ./configs/controls.yaml, built-in defaults),
validate them and print the result.`,
	Args: cobra.NoArgs,
	RunE: runControls,
}

func runControls(cmd *cobra.Command, args []string) error {
	controls, err := config.LoadControls(flagControls)
	if err != nil {
		return err
	}
	bindings, err := state.ResolveBindings(controls)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(bindings.Players)+1)
	for i, p := range bindings.Players {
		rows = append(rows, []string{
			fmt.Sprintf("Player %d", i+1),
			p.Up.String(), p.Down.String(), p.Left.String(), p.Right.String(), p.Charge.String(),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("", "Up", "Down", "Left", "Right", "Charge").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t)
	fmt.Fprintf(out, "Pause: %s  Start: %s\n", bindings.Pause, bindings.Start)
	return nil
}
