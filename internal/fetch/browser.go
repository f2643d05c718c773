package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-tailor/internal/logger"
)

// MinContentLength is the shortest extracted text, in characters, accepted
// from a plain HTTP fetch. Shorter text usually means the posting is rendered
// by JavaScript.
const MinContentLength = 500

// DefaultBrowserTimeout bounds one headless browser render.
const DefaultBrowserTimeout = 30 * time.Second

// ShouldUseBrowser reports whether extracted text is short enough that the
// page should be rendered in a browser instead.
func ShouldUseBrowser(extractedText string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(extractedText)) < MinContentLength
}

// BrowserOptions configures Render.
type BrowserOptions struct {
	Timeout time.Duration
	// Settle is how long to wait after the body is ready for scripts to
	// populate the page.
	Settle time.Duration
}

// Render loads urlStr in headless Chrome and returns the rendered HTML.
// Chrome or Chromium must be installed.
func Render(ctx context.Context, urlStr string, opts BrowserOptions) (string, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultBrowserTimeout
	}
	if opts.Settle <= 0 {
		opts.Settle = 3 * time.Second
	}

	log := logger.Ctx(ctx).With().Str("url", urlStr).Logger()
	log.Debug().Msg("starting headless browser")

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, opts.Timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(opts.Settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	log.Debug().Int("html_bytes", len(html)).Msg("rendered page")
	return html, nil
}

// BrowserSimple renders urlStr with default options.
func BrowserSimple(ctx context.Context, urlStr string) (string, error) {
	return Render(ctx, urlStr, BrowserOptions{})
}
