package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/store"
)

var statsTopN int

var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show stored corpus statistics",
	Long: `Show the statistics of a previously built index: corpus totals, the
most frequent vocabulary terms, and the stored matrices.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTopN, "top", 10, "number of top terms to show")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := rootDir
	if len(args) > 0 {
		path = args[0]
	}

	dbPath := config.IndexDBPath(path)
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no index found at %s (run 'textvec vocab' first)", dbPath)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	id, err := st.CorpusID()
	if err != nil {
		return err
	}

	stats, err := st.GetStats()
	if err != nil {
		return err
	}

	fmt.Printf("Corpus %s\n", id)
	fmt.Printf("  Documents:      %d\n", stats.TotalDocs)
	fmt.Printf("  Tokens:         %d\n", stats.TotalTokens)

	vocab, _, err := st.GetVocabulary()
	if err == nil {
		fmt.Printf("  Terms:          %d\n", vocab.Len())

		n := statsTopN
		if n > vocab.Len() {
			n = vocab.Len()
		}
		if n > 0 {
			fmt.Printf("\nTop terms:\n")
			// Canonical order is ascending term count, so walk the tail.
			for i := vocab.Len() - 1; i >= vocab.Len()-n; i-- {
				t := vocab.Terms[i]
				fmt.Printf("  %-24s count=%-8d docs=%d\n", t.Term, t.TermCount, t.DocCount)
			}
		}
	}

	names, err := st.ListMatrices()
	if err != nil {
		return err
	}
	if len(names) > 0 {
		fmt.Printf("\nStored matrices:\n")
		for _, name := range names {
			m, err := st.GetMatrix(name)
			if err != nil {
				continue
			}
			fmt.Printf("  %-12s %dx%d, %d non-zeros\n", name, m.NRows, m.NCols, m.NNZ())
		}
	}

	return nil
}
