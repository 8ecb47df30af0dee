package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/creational-arcade/internal/factory"
	"github.com/vovakirdan/creational-arcade/internal/registry"
	"github.com/vovakirdan/creational-arcade/internal/theme"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List all enemy prototypes",
	Long:  `Shows every registered enemy prototype with its stats and its skin in each theme.`,
	Run:   runKinds,
}

func runKinds(_ *cobra.Command, _ []string) {
	reg := registry.Shared()
	kinds := reg.Kinds()

	if len(kinds) == 0 {
		fmt.Println("No prototypes registered.")
		return
	}

	palettes := make(map[theme.Name]map[string]string)
	for _, n := range theme.Names() {
		palettes[n] = theme.ForTheme(string(n)).CreateSkinPalette()
	}

	// Calculate column widths
	maxKindLen := len("Kind")
	for _, k := range kinds {
		if len(k) > maxKindLen {
			maxKindLen = len(k)
		}
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render("Enemy prototypes:"))
	fmt.Println()

	fmt.Printf("  %-*s  %4s  %4s", maxKindLen, "Kind", "HP", "ATK")
	for _, n := range theme.Names() {
		fmt.Printf("  %-16s", n)
	}
	fmt.Println()

	for _, k := range kinds {
		e, err := reg.Get(k)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %4d  %4d", maxKindLen, e.Kind, e.HP, e.Atk)
		for _, n := range theme.Names() {
			skin, ok := palettes[n][k]
			if !ok {
				skin = factory.DefaultSkin
			}
			fmt.Printf("  %-16s", skin)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("Run 'arcade demo' to spawn a wave locally.")
}
