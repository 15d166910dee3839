package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/syllabify/internal/batch"
	"github.com/jonathan/syllabify/internal/schemas"
	"github.com/jonathan/syllabify/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchInputFile  string
	batchOutputFile string
	batchWorkers    int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Segment every word in a word-list file",
	Long: `Read a JSON word list ({"words": [{"word": ..., "phonetic": ...}]}),
validate it against the word_list schema, segment the words in parallel and
write {"results": [...]} in input order.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInputFile, "in", "i", "", "Path to word-list JSON file (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Parallel workers (default from config, then GOMAXPROCS)")

	if err := batchCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	list, err := readWordList(batchInputFile)
	if err != nil {
		return err
	}

	workers := batchWorkers
	if !cmd.Flags().Changed("workers") {
		workers = appConfig.Workers
	}

	results, err := batch.Segment(cmd.Context(), newSegmenter(), list.Words, workers)
	if err != nil {
		return fmt.Errorf("batch segmentation failed: %w", err)
	}

	data, err := json.MarshalIndent(types.BatchSegmentResponse{Results: results}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := schemas.ValidateSegmentResults(data); err != nil {
		return fmt.Errorf("results failed schema validation: %w", err)
	}
	data = append(data, '\n')

	segmented := 0
	for _, r := range results {
		if r.Segmented {
			segmented++
		}
	}
	logger.Info("batch complete",
		zap.Int("words", len(results)),
		zap.Int("segmented", segmented),
		zap.Int("workers", workers))

	if batchOutputFile == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(batchOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// readWordList loads, schema-validates and struct-validates a word list.
func readWordList(path string) (*types.WordList, error) {
	data, err := schemas.ValidateWordListFile(path)
	if err != nil {
		return nil, fmt.Errorf("invalid word list %s: %w", path, err)
	}

	var list types.WordList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse word list: %w", err)
	}
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("invalid word list %s: %w", path, err)
	}
	return &list, nil
}
