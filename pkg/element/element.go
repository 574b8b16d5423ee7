// Package element implements a lazily-resolving page-object tree over a
// browser-automation driver. An Element is declared once with a locator and
// a scope (parent element, iframe, or document root) and looks itself up
// against the live DOM only when a condition or action needs it, recovering
// transparently from stale references.
package element

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/azlan-mn/element/pkg/driver"
)

// Element represents one UI node matched by a locator. Locator and scope
// are immutable after construction; only the cached handle and match list
// mutate, and only as a result of a lookup. Elements are not safe for
// concurrent use: one page-object tree per automation session.
type Element struct {
	session  driver.Session
	parent   *Element
	frame    *Element
	locator  Locator
	name     string
	log      *logrus.Logger
	interval time.Duration

	// Cached state from the last successful lookup. Advisory only: the UI
	// can invalidate handles at any time, so every use goes through Handle.
	handle  driver.Handle
	matches []driver.Handle
}

// Option configures an Element at construction time.
type Option func(*Element)

// WithFrame scopes the element's lookup to the given iframe. Frame scoping
// takes precedence over parent scoping: the lookup runs against the frame's
// document root after switching the session to it.
func WithFrame(frame *Element) Option {
	return func(e *Element) { e.frame = frame }
}

// WithLogger sets the logger used by the element and its descendants.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Element) { e.log = log }
}

// WithPollInterval sets the sleep between poll attempts. The default is one
// second; tests shrink it.
func WithPollInterval(d time.Duration) Option {
	return func(e *Element) { e.interval = d }
}

// New creates a root element bound to an explicit session. The name is
// required and is used for diagnostics only, never for identity.
func New(session driver.Session, name string, loc Locator, opts ...Option) *Element {
	e := &Element{
		session:  session,
		name:     name,
		locator:  loc,
		log:      logrus.StandardLogger(),
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewPage creates a root container element with no locator of its own. Its
// direct children resolve against the document root; the page itself is
// never looked up.
func NewPage(session driver.Session, name string, opts ...Option) *Element {
	return New(session, name, Locator{}, opts...)
}

// Child declares a nested element. It inherits the session, logger, and
// poll interval from its parent; the parent becomes its lookup scope unless
// a frame option overrides it.
func (e *Element) Child(name string, loc Locator, opts ...Option) *Element {
	c := &Element{
		session:  e.session,
		parent:   e,
		name:     name,
		locator:  loc,
		log:      e.log,
		interval: e.interval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Visit navigates the session to the given URL.
func (e *Element) Visit(url string) error {
	return e.session.Navigate(url)
}

// Session returns the automation session this element is bound to.
func (e *Element) Session() driver.Session {
	return e.session
}

// Description returns the dot-joined path of ancestor names, e.g.
// "page.section.button". Diagnostics only.
func (e *Element) Description() string {
	if e.parent != nil {
		return e.parent.Description() + "." + e.name
	}
	return e.name
}

func (e *Element) String() string {
	return fmt.Sprintf("%s [%s]", e.Description(), e.locator)
}

// Resolve performs exactly one lookup of this element within its scope and
// reports whether it was found. On success the first match becomes the
// cached handle and the full match list is retained for Collection use. Any
// failure, including driver errors and an unresolvable scope, clears both
// caches and reports not-found; errors are never propagated.
//
// Scope selection: a declared frame overrides parent scoping entirely.
// The session switches to the frame's resolved handle and the lookup runs
// against that frame's document root, regardless of whether the parent
// resolves. Without a frame, a parent that is itself a non-root node
// supplies its resolved handle as the scope, which forces the whole
// ancestor chain to refresh. Otherwise the scope is the document root and
// the active frame is reset first.
func (e *Element) Resolve() bool {
	scope := driver.Finder(e.session)
	switch {
	case e.frame != nil:
		fh := e.frame.Handle()
		if fh == nil {
			return e.invalidate()
		}
		if err := e.session.SwitchToFrame(fh); err != nil {
			return e.invalidate()
		}
	case e.parent != nil && e.parent.parent != nil:
		ph := e.parent.Handle()
		if ph == nil {
			return e.invalidate()
		}
		scope = ph
	default:
		if err := e.session.SwitchToDefaultFrame(); err != nil {
			return e.invalidate()
		}
	}

	matches, err := scope.FindElements(string(e.locator.Strategy), e.locator.Query)
	if err != nil || len(matches) == 0 {
		return e.invalidate()
	}
	e.handle, e.matches = matches[0], matches
	return true
}

func (e *Element) invalidate() bool {
	e.handle, e.matches = nil, nil
	return false
}

// Handle returns the live handle for this element, or nil if it cannot be
// resolved. A cached handle is probed first; if the probe fails the cache
// is invalidated and a fresh Resolve runs, so callers never act on a
// detached reference.
func (e *Element) Handle() driver.Handle {
	if e.handle != nil && e.handle.Probe() == nil {
		return e.handle
	}
	e.invalidate()
	e.Resolve()
	return e.handle
}

// Matches returns the full match list from the most recent lookup, after
// refreshing it through Handle.
func (e *Element) Matches() []driver.Handle {
	e.Handle()
	return e.matches
}

func (e *Element) found(timeout int) bool {
	ok, _ := e.waitFor(e.Resolve, timeout, fmt.Sprintf("found: %s", e), false)
	return ok
}

func (e *Element) notFound(timeout int) bool {
	ok, _ := e.waitFor(func() bool { return !e.Resolve() }, timeout, fmt.Sprintf("not found: %s", e), false)
	return ok
}
