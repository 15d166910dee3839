package dictionary

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/syllabify/internal/fetch"
	"go.uber.org/zap"
)

// DefaultSelector matches IPA spans in Wiktionary markup.
const DefaultSelector = "span.IPA"

// HTMLConfig configures an HTMLProvider.
type HTMLConfig struct {
	URLTemplate string // %s is replaced by the escaped word
	Selector    string
	Options     *fetch.Options
	Render      fetch.Renderer // optional, used when the static page has no match
	Logger      *zap.Logger
}

// HTMLProvider scrapes transcriptions from dictionary web pages.
type HTMLProvider struct {
	urlTemplate string
	selector    string
	options     *fetch.Options
	render      fetch.Renderer
	logger      *zap.Logger
}

// NewHTMLProvider creates a provider from cfg.
func NewHTMLProvider(cfg HTMLConfig) *HTMLProvider {
	if cfg.Selector == "" {
		cfg.Selector = DefaultSelector
	}
	if cfg.Options == nil {
		cfg.Options = fetch.DefaultOptions()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &HTMLProvider{
		urlTemplate: cfg.URLTemplate,
		selector:    cfg.Selector,
		options:     cfg.Options,
		render:      cfg.Render,
		logger:      cfg.Logger,
	}
}

// Name implements Provider.
func (p *HTMLProvider) Name() string {
	if p.render != nil {
		return "html+browser"
	}
	return "html"
}

// Lookup implements Provider.
func (p *HTMLProvider) Lookup(ctx context.Context, word string) (string, error) {
	pageURL := fetch.WordURL(p.urlTemplate, word)

	result, err := fetch.URL(ctx, pageURL, p.options)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound {
			return "", &NotFoundError{Word: word, Provider: p.Name()}
		}
		return "", &LookupError{Word: word, Provider: p.Name(), Cause: err}
	}

	phonetic, err := p.pick(result.HTML)
	if err != nil {
		return "", &LookupError{Word: word, Provider: p.Name(), Cause: err}
	}
	if phonetic != "" {
		return phonetic, nil
	}

	if p.render == nil {
		return "", &NotFoundError{Word: word, Provider: p.Name()}
	}

	p.logger.Debug("static page had no transcription, rendering", zap.String("url", pageURL))
	html, err := p.render(ctx, pageURL, p.selector)
	if err != nil {
		return "", &LookupError{Word: word, Provider: p.Name(), Cause: err}
	}

	phonetic, err = p.pick(html)
	if err != nil {
		return "", &LookupError{Word: word, Provider: p.Name(), Cause: err}
	}
	if phonetic == "" {
		return "", &NotFoundError{Word: word, Provider: p.Name()}
	}
	return phonetic, nil
}

// pick returns the first selected text that parses to at least one nucleus.
func (p *HTMLProvider) pick(html string) (string, error) {
	texts, err := fetch.SelectText(html, p.selector)
	if err != nil {
		return "", err
	}
	for _, text := range texts {
		if usableTranscription(text) {
			return text, nil
		}
	}
	return "", nil
}
