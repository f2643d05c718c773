package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/logger"
)

var (
	// ErrHTTPRequestFailed is returned when the page could not be fetched
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
	// ErrEmptyContent is returned when the page has no usable text
	ErrEmptyContent = errors.New("no job description text found")
)

// Renderer returns the HTML of a page after its scripts have run.
type Renderer func(ctx context.Context, urlStr string) (string, error)

// URLOptions configures IngestFromURL. The zero value fetches over plain HTTP
// with fetch defaults.
type URLOptions struct {
	Fetch *fetch.Options
	// UseBrowser re-renders the page in a headless browser when the text
	// extracted from the HTTP response is too short.
	UseBrowser bool
	// Render defaults to fetch.BrowserSimple.
	Render Renderer
}

// IngestFromURL fetches a job posting, extracts its main text using
// platform-specific selectors, and returns the cleaned text with metadata.
// A failed browser render keeps the text from the HTTP response.
func IngestFromURL(ctx context.Context, urlStr string, opts *URLOptions) (string, *Metadata, error) {
	if opts == nil {
		opts = &URLOptions{}
	}
	log := logger.Ctx(ctx).With().Str("url", urlStr).Logger()

	platform := fetch.DetectPlatform(urlStr)
	log.Debug().Str("platform", string(platform)).Msg("fetching job posting")

	page, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debug().Int("html_bytes", len(page.HTML)).Msg("fetched job posting")

	content, noise := fetch.Selectors(platform)
	text, err := fetch.ExtractMainText(page.HTML, content, noise...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	renderedByBrowser := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		render := opts.Render
		if render == nil {
			render = fetch.BrowserSimple
		}
		log.Info().Int("chars", len(text)).Int("min_chars", fetch.MinContentLength).
			Msg("extracted text too short, rendering in browser")

		if html, renderErr := render(ctx, urlStr); renderErr != nil {
			log.Warn().Err(renderErr).Msg("browser rendering failed, using HTTP content")
		} else if rendered, extractErr := fetch.ExtractMainText(html, content, noise...); extractErr != nil {
			log.Warn().Err(extractErr).Msg("browser content extraction failed, using HTTP content")
		} else {
			text = rendered
			renderedByBrowser = true
		}
	}

	cleanedText := CleanText(text)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w at %s", ErrEmptyContent, urlStr)
	}
	log.Debug().Int("chars", len(cleanedText)).Bool("browser", renderedByBrowser).Msg("extracted job description")

	metadata := NewMetadata(cleanedText, SourceURL)
	metadata.URL = urlStr
	metadata.Platform = string(platform)
	metadata.Rendered = renderedByBrowser

	return cleanedText, metadata, nil
}
