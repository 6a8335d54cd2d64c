package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordquest/internal/games/wordquest"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules and letter values",
	Long: `Print the rules for the active configuration and the letter value table.

Examples:
  wordquest rules
  wordquest rules --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rules := wordquest.RulesFromConfig(cfg.Rules)

	fmt.Println("How to play")
	fmt.Println()
	for _, line := range rules.Summary() {
		fmt.Printf("  %s\n", line)
	}

	fmt.Println()
	fmt.Printf("  %-12s  %6s  %s\n", "Tier", "Points", "Letters")
	fmt.Printf("  %-12s  %6s  %s\n", "----", "------", "-------")
	for _, t := range wordquest.Tiers() {
		letters := strings.ToUpper(strings.Join(strings.Split(t.Letters, ""), " "))
		fmt.Printf("  %-12s  %6d  %s\n", t.Name, t.Points, letters)
	}
}
