package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"textvec/config"
	"textvec/internal/adapter/store"
	"textvec/internal/usecase"
)

var (
	dtmHashing bool
	dtmTfIdf   bool
)

var dtmCmd = &cobra.Command{
	Use:   "dtm [path]",
	Short: "Build and store a document-term matrix",
	Long: `Build a sparse document-term matrix over the corpus. Columns come
from the stored vocabulary, or from feature hashing with --hashing, which
needs no prior vocabulary pass. With --tfidf the counts are reweighted by
normalized term frequency times smoothed inverse document frequency.

Examples:
  textvec dtm .            # Vocabulary-indexed counts
  textvec dtm . --tfidf    # TF-IDF weights
  textvec dtm . --hashing  # Feature hashing, no vocabulary needed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDTM,
}

func init() {
	dtmCmd.Flags().BoolVar(&dtmHashing, "hashing", false, "use feature hashing instead of the stored vocabulary")
	dtmCmd.Flags().BoolVar(&dtmTfIdf, "tfidf", false, "apply the TF-IDF transform to the finished matrix")
	rootCmd.AddCommand(dtmCmd)
}

func runDTM(cmd *cobra.Command, args []string) error {
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

	var vz usecase.Vectorizer
	if dtmHashing || cfg.DTM.Hashing {
		hv, err := usecase.NewHashVectorizer(cfg.DTM.HashBits, cfg.DTM.SignedHash)
		if err != nil {
			return err
		}
		vz = hv
	} else {
		vocab, fingerprint, err := st.GetVocabulary()
		if err != nil {
			return fmt.Errorf("no stored vocabulary (run 'textvec vocab' first): %w", err)
		}
		if fingerprint != cfg.Fingerprint() {
			return fmt.Errorf("stored vocabulary was built with different settings; rerun 'textvec vocab'")
		}
		vz = usecase.NewVocabVectorizer(vocab)
	}

	log.Info().Str("path", path).Int("files", len(files)).Msg("scanning corpus")

	bar := newProgressBar(len(files), "DTM")
	src := newSourceFactory(rd, newTokenizer(cfg), bar)

	dtm, err := newRunner().DTM(cmd.Context(), files, src, vz)
	if err != nil {
		return fmt.Errorf("dtm build failed: %w", err)
	}

	name := "dtm"
	if dtmTfIdf || cfg.DTM.TfIdf {
		dtm = usecase.TfIdf(dtm)
		name = "dtm_tfidf"
	}

	if err := st.PutMatrix(name, dtm); err != nil {
		return fmt.Errorf("failed to store matrix: %w", err)
	}

	fmt.Printf("\nDTM complete:\n")
	fmt.Printf("  Documents:      %d\n", dtm.NRows)
	fmt.Printf("  Columns:        %d\n", dtm.NCols)
	fmt.Printf("  Non-zeros:      %d\n", dtm.NNZ())
	fmt.Printf("\nMatrix %q stored at: %s\n", name, config.IndexDBPath(path))
	return nil
}
