package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultBrowserTimeout bounds a single headless render.
const DefaultBrowserTimeout = 30 * time.Second

// WithBrowser renders a page in headless Chrome and returns the HTML once an
// element matching waitSelector is present. An empty waitSelector waits for
// the body. Requires Chrome or Chromium on the host.
func WithBrowser(ctx context.Context, url, waitSelector string, timeout time.Duration, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	if waitSelector == "" {
		waitSelector = "body"
	}

	logger.Debug("starting headless browser", zap.String("url", url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady(waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}

	logger.Debug("rendered page", zap.String("url", url), zap.Int("bytes", len(html)))
	return html, nil
}

// Renderer renders a URL to HTML.
type Renderer func(ctx context.Context, url, waitSelector string) (string, error)

// BrowserRenderer returns a Renderer backed by WithBrowser.
func BrowserRenderer(timeout time.Duration, logger *zap.Logger) Renderer {
	return func(ctx context.Context, url, waitSelector string) (string, error) {
		html, err := WithBrowser(ctx, url, waitSelector, timeout, logger)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", url, err)
		}
		return html, nil
	}
}
