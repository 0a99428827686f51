package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/store"
	"textvec/internal/domain"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [path]",
	Short: "Build and store the corpus vocabulary",
	Long: `Build the vocabulary of the corpus under the given directory: every
distinct term with its total occurrence count and the number of documents
containing it. The vocabulary is pruned per the configured bounds and stored
in .textvec/index.db for later matrix builds.

Examples:
  textvec vocab .                 # Build vocabulary of current directory
  textvec vocab /path/to/corpus   # Build vocabulary of specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	path, files, err := corpusFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no corpus files matched under %s", path)
	}

	rd, err := newReader(cfg)
	if err != nil {
		return err
	}

	if err := config.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create .textvec directory: %w", err)
	}

	st, err := store.NewBoltStore(config.IndexDBPath(path))
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	log.Info().Str("path", path).Int("files", len(files)).Msg("scanning corpus")

	bar := newProgressBar(len(files), "Vocabulary")
	src := newSourceFactory(rd, newTokenizer(cfg), bar)

	vocab, err := newRunner().Vocabulary(cmd.Context(), files, src)
	if err != nil {
		return fmt.Errorf("vocabulary build failed: %w", err)
	}

	totalTerms := vocab.Len()
	vocab = vocab.Prune(domain.PruneOptions{
		TermCountMin:     cfg.Vocab.TermCountMin,
		TermCountMax:     cfg.Vocab.TermCountMax,
		DocProportionMin: cfg.Vocab.DocProportionMin,
		DocProportionMax: cfg.Vocab.DocProportionMax,
		VocabTermMax:     cfg.Vocab.VocabTermMax,
	})

	if err := st.PutVocabulary(vocab, cfg.Fingerprint()); err != nil {
		return fmt.Errorf("failed to store vocabulary: %w", err)
	}
	if err := st.PutStats(vocab.Stats); err != nil {
		return fmt.Errorf("failed to store corpus stats: %w", err)
	}

	fmt.Printf("\nVocabulary complete:\n")
	fmt.Printf("  Documents:      %d\n", vocab.Stats.TotalDocs)
	fmt.Printf("  Tokens:         %d\n", vocab.Stats.TotalTokens)
	fmt.Printf("  Terms:          %d (%d before pruning)\n", vocab.Len(), totalTerms)
	fmt.Printf("\nIndex stored at: %s\n", config.IndexDBPath(path))
	return nil
}
