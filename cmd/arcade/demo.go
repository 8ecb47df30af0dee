package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/creational-arcade/internal/config"
	"github.com/vovakirdan/creational-arcade/internal/core"
	"github.com/vovakirdan/creational-arcade/internal/game"
)

var (
	flagDemoTheme string
	flagDemoExtra []string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted session and print the result",
	Long: `Apply a theme, build the level, spawn its wave and print the final state.
No server is started.

Examples:
  arcade demo
  arcade demo --theme scifi
  arcade demo --spawn dragon --spawn alien`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoTheme, "theme", "", "Theme to apply (default: configured theme)")
	demoCmd.Flags().StringSliceVar(&flagDemoExtra, "spawn", nil, "Extra enemy kinds to spawn after the wave")
}

var (
	demoTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	demoLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	demoValue = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	demoWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	demoBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func runDemo(_ *cobra.Command, _ []string) error {
	if _, err := loadSettings(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name := flagDemoTheme
	if name == "" {
		name = string(config.Shared().Theme())
	}

	svc := game.NewShared()
	svc.ApplyTheme(name)
	lvl := svc.BuildLevel()

	var notes []string
	kinds := append(append([]string{}, lvl.EnemyWave...), flagDemoExtra...)
	for _, k := range kinds {
		if _, err := svc.SpawnEnemy(k); err != nil {
			notes = append(notes, fmt.Sprintf("%s: %v", k, err))
		}
	}

	renderDemo(os.Stdout, lvl, svc.State(), notes)
	return nil
}

func renderDemo(w io.Writer, lvl core.Level, st game.State, notes []string) {
	var b strings.Builder

	b.WriteString(demoTitle.Render(fmt.Sprintf("Nivel %d: %s", lvl.Number, lvl.Goal)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", demoLabel.Render("Tema:"), demoValue.Render(st.Theme))
	fmt.Fprintf(&b, "%s %s\n", demoLabel.Render("Fondo:"), demoValue.Render(st.Background))
	fmt.Fprintf(&b, "%s %s\n", demoLabel.Render("Oleada:"), demoValue.Render(strings.Join(lvl.EnemyWave, ", ")))
	b.WriteString("\n")

	if len(st.Enemies) == 0 {
		b.WriteString(demoLabel.Render("Sin enemigos"))
		b.WriteString("\n")
	}
	for i, e := range st.Enemies {
		fmt.Fprintf(&b, "%d. %-8s hp=%-3d atk=%-3d %s\n", i+1, e.Kind, e.HP, e.Atk, demoValue.Render(e.Skin))
	}
	for _, n := range notes {
		b.WriteString(demoWarn.Render(n))
		b.WriteString("\n")
	}

	fmt.Fprintln(w, demoBox.Render(strings.TrimRight(b.String(), "\n")))
}
