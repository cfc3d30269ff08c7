package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/site-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the id and title of every registered game.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printGames(cmd.OutOrStdout(), registry.List())
	},
}

var listHeader = lipgloss.NewStyle().Bold(true).Underline(true)

func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}
	idCol := lipgloss.NewStyle().Width(idWidth + 2)

	fmt.Fprintln(w, idCol.Render(listHeader.Render("ID"))+listHeader.Render("Title"))
	for _, g := range games {
		fmt.Fprintln(w, idCol.Render(g.ID)+g.Title)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Play with 'arcade play <id>', 'arcade window <id>' or 'arcade web --game <id>'.")
}
