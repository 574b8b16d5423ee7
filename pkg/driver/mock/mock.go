// Package mock provides an in-memory driver session for testing the element
// engine without a real browser. Node state (text, visibility, detachment)
// is scriptable, and the session records frame switches and lookups so
// tests can assert on resolution behavior.
package mock

import (
	"errors"

	"github.com/azlan-mn/element/pkg/driver"
)

// ErrStale is returned by every operation on a detached node.
var ErrStale = errors.New("stale element reference")

// ErrBadFrame is returned when switching to a handle that is not a mock node.
var ErrBadFrame = errors.New("frame handle does not belong to this session")

// Node is a fake live UI node. It implements driver.Handle.
type Node struct {
	Displayed bool
	Enabled   bool
	Selected  bool

	// TextFn, when set, overrides Text on every read. Lets a test change
	// the text between poll ticks without a second goroutine.
	TextFn func() string

	// FailClicks makes the next n Click calls fail, simulating a node that
	// is present but not yet interactable.
	FailClicks int

	// Recorded interactions.
	Clicks  int
	Cleared int
	Typed   string

	text     string
	detached bool
	children map[string][]*Node
}

// NewNode returns a displayed, enabled node with the given text.
func NewNode(text string) *Node {
	return &Node{text: text, Displayed: true, Enabled: true}
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) { n.text = text }

// Detach marks the node stale: lookups stop returning it and every
// operation on an existing handle fails.
func (n *Node) Detach() { n.detached = true }

// SetChildren registers the nodes returned by a scoped lookup within this
// node's subtree. For a frame node, the children double as the frame's
// document content.
func (n *Node) SetChildren(strategy, query string, nodes ...*Node) {
	if n.children == nil {
		n.children = make(map[string][]*Node)
	}
	n.children[key(strategy, query)] = nodes
}

func key(strategy, query string) string { return strategy + "\x00" + query }

func live(nodes []*Node) []driver.Handle {
	out := make([]driver.Handle, 0, len(nodes))
	for _, n := range nodes {
		if !n.detached {
			out = append(out, n)
		}
	}
	return out
}

// FindElements implements driver.Finder over the node's subtree.
func (n *Node) FindElements(strategy, query string) ([]driver.Handle, error) {
	if n.detached {
		return nil, ErrStale
	}
	return live(n.children[key(strategy, query)]), nil
}

func (n *Node) Click() error {
	if n.detached {
		return ErrStale
	}
	if n.FailClicks > 0 {
		n.FailClicks--
		return errors.New("element not interactable")
	}
	n.Clicks++
	return nil
}

func (n *Node) Clear() error {
	if n.detached {
		return ErrStale
	}
	n.Cleared++
	n.Typed = ""
	return nil
}

func (n *Node) SendKeys(text string) error {
	if n.detached {
		return ErrStale
	}
	n.Typed += text
	return nil
}

func (n *Node) Text() (string, error) {
	if n.detached {
		return "", ErrStale
	}
	if n.TextFn != nil {
		return n.TextFn(), nil
	}
	return n.text, nil
}

func (n *Node) IsDisplayed() (bool, error) {
	if n.detached {
		return false, ErrStale
	}
	return n.Displayed, nil
}

func (n *Node) IsEnabled() (bool, error) {
	if n.detached {
		return false, ErrStale
	}
	return n.Enabled, nil
}

func (n *Node) IsSelected() (bool, error) {
	if n.detached {
		return false, ErrStale
	}
	return n.Selected, nil
}

func (n *Node) Probe() error {
	if n.detached {
		return ErrStale
	}
	return nil
}

// Session is a fake driver.Session over a registry of root nodes.
type Session struct {
	roots        map[string][]*Node
	currentFrame *Node

	// Switches records every frame change: "default" for a reset, "frame"
	// for a switch into a node.
	Switches []string
	// FindCalls counts document-root lookups.
	FindCalls int
	// OnFind, when set, runs before each document-root lookup.
	OnFind func(strategy, query string)
	// Visited records Navigate calls.
	Visited []string

	Closed bool
}

// NewSession returns an empty mock session.
func NewSession() *Session {
	return &Session{roots: make(map[string][]*Node)}
}

// Set registers (replacing any previous entry) the nodes returned by a
// document-root lookup for (strategy, query).
func (s *Session) Set(strategy, query string, nodes ...*Node) {
	s.roots[key(strategy, query)] = nodes
}

// FindElements implements driver.Finder at the document root, or within the
// active frame's content after a frame switch.
func (s *Session) FindElements(strategy, query string) ([]driver.Handle, error) {
	s.FindCalls++
	if s.OnFind != nil {
		s.OnFind(strategy, query)
	}
	if s.currentFrame != nil {
		return s.currentFrame.FindElements(strategy, query)
	}
	return live(s.roots[key(strategy, query)]), nil
}

func (s *Session) SwitchToDefaultFrame() error {
	s.Switches = append(s.Switches, "default")
	s.currentFrame = nil
	return nil
}

func (s *Session) SwitchToFrame(frame driver.Handle) error {
	n, ok := frame.(*Node)
	if !ok {
		return ErrBadFrame
	}
	if n.detached {
		return ErrStale
	}
	s.Switches = append(s.Switches, "frame")
	s.currentFrame = n
	return nil
}

func (s *Session) Navigate(url string) error {
	s.Visited = append(s.Visited, url)
	return nil
}

func (s *Session) Close() error {
	s.Closed = true
	return nil
}
