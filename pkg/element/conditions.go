package element

import (
	"fmt"
	"regexp"
	"strings"
)

// Chainable conditions. Each takes an optional timeout in poll ticks
// (default DefaultTimeout) and returns the element itself on success so
// checks compose:
//
//	row.IsDisplayed().IsSelected()
//
// A failed check returns nil; the nil is meant to propagate and fail loudly
// in the caller's chain or assertion, the receiver is deliberately not
// guarded.

// Exists waits for the element to resolve. Returns the element, or nil if
// it was not found within the timeout.
func (e *Element) Exists(timeout ...int) *Element {
	e.log.Infof("[exists] %s", e.Description())
	if e.found(pickTimeout(timeout)) {
		return e
	}
	return nil
}

// NotExists waits for the element to stay unresolved. Returns true once a
// lookup fails within the timeout.
func (e *Element) NotExists(timeout ...int) bool {
	e.log.Infof("[not_exists] %s", e.Description())
	return e.notFound(pickTimeout(timeout))
}

// IsDisplayed waits for the element to resolve, then checks visibility.
func (e *Element) IsDisplayed(timeout ...int) *Element {
	e.log.Infof("[is_displayed] %s", e.Description())
	return e.stateCheck(pickTimeout(timeout), func() (bool, error) {
		return e.handle.IsDisplayed()
	})
}

// IsEnabled waits for the element to resolve, then checks enabled state.
func (e *Element) IsEnabled(timeout ...int) *Element {
	e.log.Infof("[is_enabled] %s", e.Description())
	return e.stateCheck(pickTimeout(timeout), func() (bool, error) {
		return e.handle.IsEnabled()
	})
}

// IsSelected waits for the element to resolve, then checks selected state.
func (e *Element) IsSelected(timeout ...int) *Element {
	e.log.Infof("[is_selected] %s", e.Description())
	return e.stateCheck(pickTimeout(timeout), func() (bool, error) {
		return e.handle.IsSelected()
	})
}

func (e *Element) stateCheck(timeout int, check func() (bool, error)) *Element {
	if !e.found(timeout) {
		return nil
	}
	ok, err := check()
	if err != nil || !ok {
		return nil
	}
	return e
}

// Text reads the element's current text content. No polling: a single
// synchronous read through the staleness probe.
func (e *Element) Text() (string, error) {
	h := e.Handle()
	if h == nil {
		return "", fmt.Errorf("%s: not resolved", e.Description())
	}
	return h.Text()
}

// HasText polls the element's text until it contains substr. Returns a
// *TimeoutError if the substring never appears within the timeout.
func (e *Element) HasText(substr string, timeout ...int) (*Element, error) {
	desc := fmt.Sprintf("[has_text] %s: %s", e.Description(), substr)
	ok, err := e.waitFor(func() bool {
		text, err := e.Text()
		return err == nil && strings.Contains(text, substr)
	}, pickTimeout(timeout), desc, true)
	if !ok {
		return nil, err
	}
	return e, nil
}

// HasTextRegex polls the element's text until pattern matches. An invalid
// pattern never matches and surfaces as a timeout.
func (e *Element) HasTextRegex(pattern string, timeout ...int) (*Element, error) {
	desc := fmt.Sprintf("[has_text_regex] %s: %s", e.Description(), pattern)
	re, compileErr := regexp.Compile(pattern)
	ok, err := e.waitFor(func() bool {
		if compileErr != nil {
			return false
		}
		text, err := e.Text()
		return err == nil && re.MatchString(text)
	}, pickTimeout(timeout), desc, true)
	if !ok {
		return nil, err
	}
	return e, nil
}
