// Package playwright implements the driver boundary over
// github.com/playwright-community/playwright-go. WebDriver locator
// strategies are translated into Playwright selector-engine syntax before
// each lookup.
package playwright

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/azlan-mn/element/pkg/driver"
)

// Options configures a Playwright session.
type Options struct {
	// Browser is one of chromium, firefox, webkit. Defaults to chromium.
	Browser  string
	Headless bool
}

// Session drives a browser through Playwright. The active frame is tracked
// session-side; a nil frame means the main document.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	frame   playwright.Frame
}

var _ driver.Session = (*Session)(nil)

// NewSession launches a browser and opens a page.
func NewSession(opts Options) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType := pw.Chromium
	switch opts.Browser {
	case "", "chromium", "chrome":
	case "firefox":
		browserType = pw.Firefox
	case "webkit":
		browserType = pw.WebKit
	default:
		pw.Stop()
		return nil, fmt.Errorf("unsupported browser %q", opts.Browser)
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	page, err := browser.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &Session{pw: pw, browser: browser, page: page}, nil
}

// translate maps a WebDriver locator strategy onto a Playwright selector.
func translate(strategy, query string) (string, error) {
	switch strategy {
	case "id":
		return fmt.Sprintf("[id=%q]", query), nil
	case "name":
		return fmt.Sprintf("[name=%q]", query), nil
	case "class name":
		return "." + query, nil
	case "tag name":
		return query, nil
	case "css selector":
		return query, nil
	case "xpath":
		return "xpath=" + query, nil
	case "link text":
		return fmt.Sprintf("a:text-is(%q)", query), nil
	case "partial link text":
		return fmt.Sprintf("a:has-text(%q)", query), nil
	}
	return "", fmt.Errorf("unsupported locator strategy %q", strategy)
}

func wrapAll(els []playwright.ElementHandle) []driver.Handle {
	handles := make([]driver.Handle, len(els))
	for i, el := range els {
		handles[i] = &handle{el: el}
	}
	return handles
}

// FindElements locates nodes from the document root of the active frame.
func (s *Session) FindElements(strategy, query string) ([]driver.Handle, error) {
	selector, err := translate(strategy, query)
	if err != nil {
		return nil, err
	}
	var els []playwright.ElementHandle
	if s.frame != nil {
		els, err = s.frame.QuerySelectorAll(selector)
	} else {
		els, err = s.page.QuerySelectorAll(selector)
	}
	if err != nil {
		return nil, err
	}
	return wrapAll(els), nil
}

// SwitchToDefaultFrame resets lookups to the main document.
func (s *Session) SwitchToDefaultFrame() error {
	s.frame = nil
	return nil
}

// SwitchToFrame makes the given iframe node's content document the lookup
// root.
func (s *Session) SwitchToFrame(frame driver.Handle) error {
	h, ok := frame.(*handle)
	if !ok {
		return fmt.Errorf("frame handle does not belong to this session")
	}
	f, err := h.el.ContentFrame()
	if err != nil {
		return fmt.Errorf("failed to enter frame: %w", err)
	}
	s.frame = f
	return nil
}

// Navigate loads the given URL in the main document.
func (s *Session) Navigate(url string) error {
	_, err := s.page.Goto(url)
	return err
}

// Close shuts the browser and the Playwright driver down.
func (s *Session) Close() error {
	var closeErr error
	if s.browser != nil {
		closeErr = s.browser.Close()
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && closeErr == nil {
			closeErr = err
		}
		s.pw = nil
	}
	return closeErr
}

// handle wraps a playwright.ElementHandle as a driver.Handle.
type handle struct {
	el playwright.ElementHandle
}

func (h *handle) FindElements(strategy, query string) ([]driver.Handle, error) {
	selector, err := translate(strategy, query)
	if err != nil {
		return nil, err
	}
	els, err := h.el.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapAll(els), nil
}

func (h *handle) Click() error { return h.el.Click() }

// Clear empties the node's input value.
func (h *handle) Clear() error { return h.el.Fill("") }

func (h *handle) SendKeys(text string) error { return h.el.Type(text) }

func (h *handle) Text() (string, error) { return h.el.TextContent() }

func (h *handle) IsDisplayed() (bool, error) { return h.el.IsVisible() }
func (h *handle) IsEnabled() (bool, error) { return h.el.IsEnabled() }

// IsSelected maps onto the checked state of checkboxes and radio buttons.
func (h *handle) IsSelected() (bool, error) { return h.el.IsChecked() }

// Probe reads the node's bounding box, which fails once the node is
// detached from the DOM.
func (h *handle) Probe() error {
	_, err := h.el.BoundingBox()
	return err
}
