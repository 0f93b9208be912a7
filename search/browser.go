package search

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/chromedp/chromedp"

	"salon-verifier/utils"
)

// BrowserEngine renders the results page in headless Chrome. It is slower
// than GoogleEngine but sees the same page a user would.
type BrowserEngine struct {
	baseURL   string
	userAgent string
	chromeBin string
	logger    *utils.Logger

	once          sync.Once
	startErr      error
	browserCtx    context.Context
	cancelAlloc   context.CancelFunc
	cancelBrowser context.CancelFunc
}

// NewBrowserEngine creates a BrowserEngine. The browser starts on first use.
func NewBrowserEngine(baseURL, userAgent, chromeBin string, logger *utils.Logger) *BrowserEngine {
	if baseURL == "" {
		baseURL = defaultGoogleURL
	}
	return &BrowserEngine{
		baseURL:   baseURL,
		userAgent: userAgent,
		chromeBin: chromeBin,
		logger:    logger,
	}
}

func (e *BrowserEngine) Name() string {
	return "browser"
}

// start launches one browser process shared by every Search. Running the
// browser context with no actions allocates it; tabs opened later reuse it.
func (e *BrowserEngine) start() {
	chromeBin := findChromeBinary(e.chromeBin)
	e.logger.Info("[browser] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(e.userAgent),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	e.browserCtx = browserCtx
	e.cancelAlloc = cancelAlloc
	e.cancelBrowser = cancelBrowser

	if err := chromedp.Run(browserCtx); err != nil {
		e.startErr = fmt.Errorf("start browser: %w", err)
	}
}

// Search opens a fresh tab, loads the results page and extracts result URLs.
// The tab is closed when ctx is done.
func (e *BrowserEngine) Search(ctx context.Context, query string, limit int) ([]string, error) {
	e.once.Do(e.start)
	if e.startErr != nil {
		return nil, e.startErr
	}

	tabCtx, cancel := chromedp.NewContext(e.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(resultsPageURL(e.baseURL, query, limit)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("chromedp search: %w", ctx.Err())
		}
		return nil, fmt.Errorf("chromedp search: %w", err)
	}

	return ExtractResultLinks(strings.NewReader(html), limit)
}

// Close shuts the browser down. Safe to call when it never started.
func (e *BrowserEngine) Close() error {
	if e.cancelBrowser != nil {
		e.cancelBrowser()
	}
	if e.cancelAlloc != nil {
		e.cancelAlloc()
	}
	return nil
}

var chromeCandidates = []string{
	"google-chrome-stable",
	"google-chrome",
	"chromium",
	"chromium-browser",
	"/snap/bin/chromium",
	"/opt/google/chrome/google-chrome",
}

// findChromeBinary returns configured when set, otherwise the first Chrome or
// Chromium found on PATH or in a well-known install location. An empty result
// leaves the choice to chromedp's own lookup.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	for _, candidate := range chromeCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}
