package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordquest/internal/games/wordquest"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>...",
	Short: "Score words against the dictionary",
	Long: `Check each word the way the game would if it were played in order
within one round: repeated words are rejected, single-letter words never
score. Tiles are not considered.

Examples:
  wordquest check cat act cat
  wordquest check quiz --dict ./words_dictionary.json`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	deps := mustDeps()
	guessed := make(wordquest.GuessedWords)

	total := 0
	for _, word := range args {
		score, verdict := wordquest.ScoreWord(word, deps.Lexicon, guessed)
		if verdict == wordquest.VerdictScored {
			fmt.Printf("  %-16s %6d\n", word, score)
			total += score
			continue
		}
		fmt.Printf("  %-16s %6s  (%s)\n", word, "-", verdict)
	}
	fmt.Printf("  %-16s %6d\n", "total", total)

	if total == 0 {
		os.Exit(2)
	}
}
