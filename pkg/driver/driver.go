// Package driver defines the boundary between the element engine and a
// browser-automation backend. Implementations: webdriver (Selenium),
// playwright, mock (for tests).
package driver

// Finder locates nodes by strategy within a scope. A Session finds from the
// document root, a Handle finds within its own subtree.
type Finder interface {
	// FindElements returns every live node matched by (strategy, query).
	// No match is reported as an empty slice or an error; callers treat
	// both the same way.
	FindElements(strategy, query string) ([]Handle, error)
}

// Handle is a live reference to a single UI node obtained from a lookup.
// The underlying UI can invalidate it at any time, so callers must treat it
// as advisory and re-validate through Probe before acting on it.
type Handle interface {
	Finder

	Click() error
	Clear() error
	SendKeys(text string) error
	Text() (string, error)

	IsDisplayed() (bool, error)
	IsEnabled() (bool, error)
	IsSelected() (bool, error)

	// Probe performs a cheap property read that fails once the handle is
	// detached from the live UI.
	Probe() error
}

// Session is an active automation session: the document-root scope plus
// frame switching and navigation. The session holds a single active frame
// context at a time; switching frames affects every subsequent root lookup
// until the next switch.
type Session interface {
	Finder

	// SwitchToDefaultFrame resets the active frame to the top-level document.
	SwitchToDefaultFrame() error
	// SwitchToFrame makes the given frame node's document the active frame.
	SwitchToFrame(frame Handle) error

	Navigate(url string) error
	Close() error
}
