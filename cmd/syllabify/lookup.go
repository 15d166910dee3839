package main

import (
	"fmt"

	"github.com/jonathan/syllabify/internal/config"
	"github.com/jonathan/syllabify/internal/dictionary"
	"github.com/jonathan/syllabify/internal/fetch"
	"github.com/jonathan/syllabify/internal/llm"
	"github.com/spf13/cobra"
)

var (
	lookupDictionaryURL string
	lookupUseBrowser    bool
	lookupAPIKey        string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Find a word's transcription and segment it",
	Long: `Look the word up in an online dictionary (Wiktionary by default), falling
back to headless Chrome with --use-browser and to Gemini when an API key is
available, then segment it with the transcription found.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupDictionaryURL, "dictionary-url", "", "Dictionary URL template, %s is replaced by the word")
	lookupCmd.Flags().BoolVar(&lookupUseBrowser, "use-browser", false, "Render the dictionary page in headless Chrome if the static page has no transcription")
	lookupCmd.Flags().StringVar(&lookupAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	word := args[0]

	dictionaryURL := stringOr(cmd, "dictionary-url", lookupDictionaryURL, appConfig.DictionaryURL)
	if err := config.ValidateDictionaryURL(dictionaryURL); err != nil {
		return fmt.Errorf("invalid --dictionary-url: %w", err)
	}
	apiKey := stringOr(cmd, "api-key", lookupAPIKey, appConfig.APIKey)
	useBrowser := lookupUseBrowser || appConfig.UseBrowser

	htmlConfig := dictionary.HTMLConfig{
		URLTemplate: dictionaryURL,
		Selector:    appConfig.IPASelector,
		Logger:      logger,
	}
	if useBrowser {
		htmlConfig.Render = fetch.BrowserRenderer(fetch.DefaultBrowserTimeout, logger)
	}
	providers := []dictionary.Provider{dictionary.NewHTMLProvider(htmlConfig)}

	if apiKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		providers = append(providers, dictionary.NewLLMProvider(client))
	}

	phonetic, err := dictionary.NewChain(logger, providers...).Lookup(ctx, word)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", word, phonetic, newSegmenter().Segment(word, phonetic))
	return err
}
