package main

import (
	"fmt"

	"github.com/jonathan/syllabify/internal/batch"
	"github.com/jonathan/syllabify/internal/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importInputFile   string
	importDatabaseURL string
	importSource      string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Segment a word-list file and store it in the word bank",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to word-list JSON file (required)")
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	importCmd.Flags().StringVar(&importSource, "source", "import", "Source label stored with each word")

	if err := importCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	databaseURL := stringOr(cmd, "db-url", importDatabaseURL, appConfig.DatabaseURL)
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}

	list, err := readWordList(importInputFile)
	if err != nil {
		return err
	}

	results, err := batch.Segment(ctx, newSegmenter(), list.Words, appConfig.Workers)
	if err != nil {
		return fmt.Errorf("batch segmentation failed: %w", err)
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, r := range results {
		_, err := database.UpsertWord(ctx, &db.WordInput{
			Word:      r.Word,
			Phonetic:  r.Phonetic,
			Syllables: r.Syllables,
			Source:    importSource,
		})
		if err != nil {
			return err
		}
		logger.Debug("imported word", zap.String("word", r.Word), zap.String("syllables", r.Syllables))
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words\n", len(results))
	return err
}
