// Package webdriver implements the driver boundary over a Selenium
// WebDriver session using github.com/tebeka/selenium. The engine's locator
// strategies are the WebDriver strategy names, so lookups pass through
// unchanged.
package webdriver

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"github.com/azlan-mn/element/pkg/driver"
)

// DefaultPort is the port a locally started chromedriver listens on.
const DefaultPort = 9515

// Options configures a WebDriver session.
type Options struct {
	// RemoteURL points at a running WebDriver endpoint (Selenium hub,
	// chromedriver). When empty, a local chromedriver service is started.
	RemoteURL string
	// Browser name for the session capabilities. Defaults to chrome.
	Browser string
	// DriverPath overrides chromedriver discovery for local sessions.
	DriverPath string
	// Headless runs the browser without a visible window.
	Headless bool
	// Port for the locally started chromedriver service.
	Port int
}

// Session drives a browser through a Selenium WebDriver endpoint.
type Session struct {
	wd      selenium.WebDriver
	service *selenium.Service
}

var _ driver.Session = (*Session)(nil)

// findChromeDriver locates the chromedriver binary, honoring
// BROWSER_DRIVER_PATH before the usual install locations and PATH.
func findChromeDriver() (string, error) {
	if path := os.Getenv("BROWSER_DRIVER_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}
	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found; install it or set BROWSER_DRIVER_PATH")
}

// NewSession starts (or connects to) a WebDriver endpoint and opens a
// browser session.
func NewSession(opts Options) (*Session, error) {
	if opts.Browser == "" {
		opts.Browser = "chrome"
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}

	s := &Session{}

	remoteURL := opts.RemoteURL
	if remoteURL == "" {
		driverPath := opts.DriverPath
		if driverPath == "" {
			found, err := findChromeDriver()
			if err != nil {
				return nil, fmt.Errorf("failed to find chromedriver: %w", err)
			}
			driverPath = found
		}

		service, err := selenium.NewChromeDriverService(driverPath, opts.Port)
		if err != nil {
			return nil, fmt.Errorf("failed to start chromedriver: %w", err)
		}
		s.service = service
		remoteURL = fmt.Sprintf("http://127.0.0.1:%d/wd/hub", opts.Port)
	}

	caps := selenium.Capabilities{"browserName": opts.Browser}
	chromeCaps := chrome.Capabilities{
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	}
	if opts.Headless {
		chromeCaps.Args = append(chromeCaps.Args, "--headless=new")
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, remoteURL)
	if err != nil {
		if s.service != nil {
			s.service.Stop()
		}
		return nil, fmt.Errorf("failed to open webdriver session: %w", err)
	}
	s.wd = wd

	return s, nil
}

// byStrategy validates a strategy name against the WebDriver vocabulary.
func byStrategy(strategy string) (string, error) {
	switch strategy {
	case selenium.ByID, selenium.ByName, selenium.ByXPATH, selenium.ByCSSSelector,
		selenium.ByClassName, selenium.ByLinkText, selenium.ByPartialLinkText, selenium.ByTagName:
		return strategy, nil
	}
	return "", fmt.Errorf("unsupported locator strategy %q", strategy)
}

func wrapAll(els []selenium.WebElement) []driver.Handle {
	handles := make([]driver.Handle, len(els))
	for i, el := range els {
		handles[i] = &handle{el: el}
	}
	return handles
}

// FindElements locates nodes from the document root of the active frame.
func (s *Session) FindElements(strategy, query string) ([]driver.Handle, error) {
	by, err := byStrategy(strategy)
	if err != nil {
		return nil, err
	}
	els, err := s.wd.FindElements(by, query)
	if err != nil {
		return nil, err
	}
	return wrapAll(els), nil
}

// SwitchToDefaultFrame resets the session to the top-level document.
func (s *Session) SwitchToDefaultFrame() error {
	return s.wd.SwitchFrame(nil)
}

// SwitchToFrame enters the frame behind the given handle.
func (s *Session) SwitchToFrame(frame driver.Handle) error {
	h, ok := frame.(*handle)
	if !ok {
		return fmt.Errorf("frame handle does not belong to this session")
	}
	return s.wd.SwitchFrame(h.el)
}

// Navigate loads the given URL.
func (s *Session) Navigate(url string) error {
	return s.wd.Get(url)
}

// Close quits the browser session and stops a locally started chromedriver.
func (s *Session) Close() error {
	var quitErr error
	if s.wd != nil {
		quitErr = s.wd.Quit()
		s.wd = nil
	}
	if s.service != nil {
		if err := s.service.Stop(); err != nil && quitErr == nil {
			quitErr = err
		}
		s.service = nil
	}
	return quitErr
}

// handle wraps a selenium.WebElement as a driver.Handle.
type handle struct {
	el selenium.WebElement
}

func (h *handle) FindElements(strategy, query string) ([]driver.Handle, error) {
	by, err := byStrategy(strategy)
	if err != nil {
		return nil, err
	}
	els, err := h.el.FindElements(by, query)
	if err != nil {
		return nil, err
	}
	return wrapAll(els), nil
}

func (h *handle) Click() error { return h.el.Click() }
func (h *handle) Clear() error { return h.el.Clear() }

func (h *handle) SendKeys(text string) error { return h.el.SendKeys(text) }

func (h *handle) Text() (string, error) { return h.el.Text() }

func (h *handle) IsDisplayed() (bool, error) { return h.el.IsDisplayed() }
func (h *handle) IsEnabled() (bool, error) { return h.el.IsEnabled() }
func (h *handle) IsSelected() (bool, error) { return h.el.IsSelected() }

// Probe reads the element's size and location; both raise a stale-element
// error once the node is detached from the DOM.
func (h *handle) Probe() error {
	if _, err := h.el.Size(); err != nil {
		return err
	}
	_, err := h.el.Location()
	return err
}
