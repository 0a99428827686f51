package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/store"
	"textvec/internal/usecase"
)

var tcmCmd = &cobra.Command{
	Use:   "tcm [path]",
	Short: "Build and store a term-co-occurrence matrix",
	Long: `Build a sparse term-co-occurrence matrix over the corpus: how often
each pair of vocabulary terms appears within the configured sliding window,
weighted by inverse distance by default. Requires a stored vocabulary.

Examples:
  textvec tcm .   # Co-occurrences with the configured window`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTCM,
}

func init() {
	rootCmd.AddCommand(tcmCmd)
}

func runTCM(cmd *cobra.Command, args []string) error {
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

	vocab, fingerprint, err := st.GetVocabulary()
	if err != nil {
		return fmt.Errorf("no stored vocabulary (run 'textvec vocab' first): %w", err)
	}
	if fingerprint != cfg.Fingerprint() {
		return fmt.Errorf("stored vocabulary was built with different settings; rerun 'textvec vocab'")
	}

	log.Info().Str("path", path).Int("files", len(files)).Msg("scanning corpus")

	bar := newProgressBar(len(files), "TCM")
	src := newSourceFactory(rd, newTokenizer(cfg), bar)

	tcm, err := newRunner().TCM(cmd.Context(), files, src, vocab,
		cfg.TCM.Window,
		usecase.Weighting(cfg.TCM.Weighting),
		usecase.Context(cfg.TCM.Context))
	if err != nil {
		return fmt.Errorf("tcm build failed: %w", err)
	}

	if err := st.PutMatrix("tcm", tcm); err != nil {
		return fmt.Errorf("failed to store matrix: %w", err)
	}

	fmt.Printf("\nTCM complete:\n")
	fmt.Printf("  Terms:          %d\n", tcm.NRows)
	fmt.Printf("  Non-zeros:      %d\n", tcm.NNZ())
	fmt.Printf("\nMatrix \"tcm\" stored at: %s\n", config.IndexDBPath(path))
	return nil
}
