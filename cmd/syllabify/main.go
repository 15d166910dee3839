// Package main provides the syllabify command line tool and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/syllabify/internal/config"
	"github.com/jonathan/syllabify/internal/syllable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Resolved at startup from the config file and environment
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "syllabify",
	Short: "Split English words into syllables using their IPA transcription",
	Long: `syllabify inserts syllable boundaries into written English words,
guided by the vowel nuclei of an IPA transcription:

  syllabify split repository /rɪˈpɑːzətɔːri/   ->   re·pos·i·to·ry

It can also look transcriptions up, process word lists in bulk, keep a word
bank in PostgreSQL and serve everything over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads configuration and builds the logger before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	fileConfig := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileConfig = loaded
	}

	appConfig = fileConfig.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	})
	if appConfig.Verbose {
		verbose = true
	}

	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	built, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

func newSegmenter() *syllable.Segmenter {
	return syllable.NewSegmenter(syllable.DefaultRules())
}

// stringOr returns flagValue when the flag was set on the command line,
// otherwise fallback.
func stringOr(cmd *cobra.Command, name, flagValue, fallback string) string {
	if cmd.Flags().Changed(name) || fallback == "" {
		return flagValue
	}
	return fallback
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
