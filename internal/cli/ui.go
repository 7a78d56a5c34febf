package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Muted tones, so the styled status lines sit next to
// the structured log output without shouting.
var (
	styleAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleGood   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
)

// printSuccess prints a checked status line.
func printSuccess(format string, args ...any) {
	fmt.Println(styleGood.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// printError prints a failed status line.
func printError(format string, args ...any) {
	fmt.Println(styleBad.Render("✗") + " " + fmt.Sprintf(format, args...))
}

// printInfo prints a neutral status line.
func printInfo(format string, args ...any) {
	fmt.Println(styleMuted.Render("›") + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written output.
func printFile(path string) {
	fmt.Println("  " + styleMuted.Render("→") + " " + styleValue.Render(path))
}

// printKeyValue prints a labeled value, the label padded so consecutive
// lines align.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + styleValue.Render(value))
}

// printStats prints one line summarizing a generation: the tile and
// region counts when a scene was composed, and whether the artifacts
// came out of the cache.
func printStats(tileCount, regionCount int, cached bool) {
	line := "  "
	if tileCount > 0 {
		line += styleMuted.Render(fmt.Sprintf("%d tiles, %d regions · ", tileCount, regionCount))
	}
	if cached {
		line += styleGood.Render("cached")
	} else {
		line += styleMuted.Render("fresh")
	}
	fmt.Println(line)
}
