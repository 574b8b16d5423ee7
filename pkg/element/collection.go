package element

import (
	"fmt"

	"github.com/azlan-mn/element/pkg/driver"
)

// Collection exposes an element whose locator matches more than one live
// node as an indexed sequence of Elements, one per match.
//
// The materialized sequence is a snapshot: it is built on first access and
// cached for the lifetime of the Collection, even if the underlying match
// set changes afterwards. Callers that need fresh members build a new
// Collection. Len is the exception: it re-resolves the base element on
// every call.
type Collection struct {
	base  *Element
	items []*Element
}

// NewCollection wraps base in a Collection. No lookup happens until the
// collection is first used.
func NewCollection(base *Element) *Collection {
	return &Collection{base: base}
}

// Len re-resolves the base element and reports the current match count.
// The count is never cached; only the materialized members are.
func (c *Collection) Len() int {
	c.base.Resolve()
	return len(c.base.matches)
}

// Get returns the cached member at index i. Panics if i is out of range of
// the materialized snapshot, like a slice.
func (c *Collection) Get(i int) *Element {
	return c.materialize()[i]
}

// Items returns the cached member sequence for iteration.
func (c *Collection) Items() []*Element {
	return c.materialize()
}

// materialize builds one member Element per match from the base element's
// lookup. Each member shares the base's scope and locator but is pinned to
// its own match handle and carries an index-suffixed name for diagnostics.
// A pinned member that goes stale re-resolves through the shared locator.
func (c *Collection) materialize() []*Element {
	if c.items != nil {
		return c.items
	}
	c.base.Resolve()
	items := make([]*Element, 0, len(c.base.matches))
	for i, m := range c.base.matches {
		items = append(items, &Element{
			session:  c.base.session,
			parent:   c.base.parent,
			frame:    c.base.frame,
			locator:  c.base.locator,
			name:     fmt.Sprintf("%s[%d]", c.base.name, i),
			log:      c.base.log,
			interval: c.base.interval,
			handle:   m,
			matches:  []driver.Handle{m},
		})
	}
	c.items = items
	return c.items
}
