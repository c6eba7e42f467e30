package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available front ends",
	Long:  `Shows every front end the game can be played with.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No front ends available.")
		return
	}

	fmt.Println("Available front ends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		marker := ""
		if f.ID == defaultFrontend {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, f.ID, f.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <id>' to play.")
}
