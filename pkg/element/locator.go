package element

import "fmt"

// Strategy identifies how a query is interpreted by the driver. The values
// are the WebDriver locator strategy names, which backends translate as
// needed.
type Strategy string

// Supported locator strategies.
const (
	ByID              Strategy = "id"
	ByName            Strategy = "name"
	ByXPath           Strategy = "xpath"
	ByCSSSelector     Strategy = "css selector"
	ByClassName       Strategy = "class name"
	ByLinkText        Strategy = "link text"
	ByPartialLinkText Strategy = "partial link text"
	ByTagName         Strategy = "tag name"
)

// Locator pairs a strategy with a query. Exactly one strategy per element;
// it is fixed at construction and never changes.
type Locator struct {
	Strategy Strategy
	Query    string
}

// NewLocator validates the strategy and query and returns a Locator.
// Unknown strategies and empty queries are rejected up front rather than
// surfacing later as silent lookup failures.
func NewLocator(strategy Strategy, query string) (Locator, error) {
	if query == "" {
		return Locator{}, fmt.Errorf("locator query must not be empty")
	}
	switch strategy {
	case ByID, ByName, ByXPath, ByCSSSelector, ByClassName, ByLinkText, ByPartialLinkText, ByTagName:
		return Locator{Strategy: strategy, Query: query}, nil
	}
	return Locator{}, fmt.Errorf("unsupported locator strategy %q", strategy)
}

// ID returns an id locator.
func ID(query string) Locator { return Locator{Strategy: ByID, Query: query} }

// Name returns a name locator.
func Name(query string) Locator { return Locator{Strategy: ByName, Query: query} }

// XPath returns an xpath locator.
func XPath(query string) Locator { return Locator{Strategy: ByXPath, Query: query} }

// CSS returns a css selector locator.
func CSS(query string) Locator { return Locator{Strategy: ByCSSSelector, Query: query} }

// ClassName returns a class name locator.
func ClassName(query string) Locator { return Locator{Strategy: ByClassName, Query: query} }

// LinkText returns a link text locator.
func LinkText(query string) Locator { return Locator{Strategy: ByLinkText, Query: query} }

// PartialLinkText returns a partial link text locator.
func PartialLinkText(query string) Locator { return Locator{Strategy: ByPartialLinkText, Query: query} }

// TagName returns a tag name locator.
func TagName(query string) Locator { return Locator{Strategy: ByTagName, Query: query} }

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.Strategy, l.Query)
}
