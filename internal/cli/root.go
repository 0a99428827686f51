package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"textvec/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	log     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textvec",
	Short: "Streaming text vectorization - vocabularies and sparse matrices from a corpus",
	Long: `textvec builds vocabularies, document-term matrices, and
term-co-occurrence matrices from a corpus of text files. Files are streamed
one at a time and builds can run across a bounded worker pool.

Example usage:
  textvec vocab .   # Build and store the corpus vocabulary
  textvec dtm .     # Build a document-term matrix from the stored vocabulary
  textvec tcm .     # Build a term-co-occurrence matrix
  textvec stats     # Show stored corpus statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := zerolog.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textvec.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}
