package element

import "fmt"

// Actions share the condition poll loop: the driver primitive is attempted
// each tick until it completes without error, which absorbs the common case
// of an element that is present but not yet interactable. Exhausting the
// budget raises a *TimeoutError.

// Click polls the click action until it succeeds.
func (e *Element) Click(timeout ...int) (*Element, error) {
	e.log.Infof("[click] %s", e.Description())
	return e.act(pickTimeout(timeout),
		fmt.Sprintf("click: %s", e),
		func() error { return e.handle.Click() })
}

// Clear polls the clear action until it succeeds.
func (e *Element) Clear(timeout ...int) (*Element, error) {
	e.log.Infof("[clear] %s", e.Description())
	return e.act(pickTimeout(timeout),
		fmt.Sprintf("clear: %s", e),
		func() error { return e.handle.Clear() })
}

// SendKeys polls the type action until it succeeds.
func (e *Element) SendKeys(text string, timeout ...int) (*Element, error) {
	e.log.Infof("[send_keys] %s: %q", e.Description(), text)
	return e.act(pickTimeout(timeout),
		fmt.Sprintf("send_keys %q: %s", text, e),
		func() error { return e.handle.SendKeys(text) })
}

func (e *Element) act(timeout int, desc string, action func() error) (*Element, error) {
	ok, err := e.waitFor(func() bool {
		if e.Handle() == nil {
			return false
		}
		return action() == nil
	}, timeout, desc, true)
	if !ok {
		return nil, err
	}
	return e, nil
}
