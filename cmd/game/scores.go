package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"go-kokaton-musou/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished sessions",
	Long: `Display the top sessions from the history database with their outcome,
kills and seed. Playing with the same --seed reproduces the enemy spawns,
not the players' moves.

Examples:
  kokaton scores
  kokaton scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("229")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening session history: %w", err)
	}
	defer store.Close()

	sessions, err := store.TopSessions(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("High Scores - 真！こうかとん無双"))
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out, "Run 'kokaton' to set the first high score!")
		return nil
	}

	fmt.Fprintln(out, sessionsTable(sessions))

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSessions: %d  Best: %d  Avg: %.1f  Kills: %d\n",
		stats.Sessions, stats.HighScore, stats.AvgScore, stats.TotalKills)
	fmt.Fprintln(out, outcomesLine(stats.Outcomes))
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return nil
}

// outcomesLine — число партий по исходам, в алфавитном порядке.
func outcomesLine(outcomes map[string]int) string {
	names := make([]string, 0, len(outcomes))
	for name := range outcomes {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %d", name, outcomes[name])
	}
	return "Outcomes: " + strings.Join(parts, "  ")
}

func sessionsTable(sessions []storage.Session) *table.Table {
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			s.Outcome,
			strconv.Itoa(s.Kills),
			strconv.FormatInt(s.Seed, 10),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Outcome", "Kills", "Seed", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return bestStyle
			}
			return cellStyle
		})
}
