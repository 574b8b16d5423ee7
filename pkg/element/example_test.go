package element_test

import (
	"fmt"

	"github.com/azlan-mn/element/pkg/driver/mock"
	"github.com/azlan-mn/element/pkg/element"
)

// A page-object tree is declared up front; nothing is looked up until a
// condition or action needs a live handle.
func Example() {
	session := mock.NewSession()
	heading := mock.NewNode("Search results")
	session.Set("css selector", "#heading", heading)

	page := element.NewPage(session, "search")
	results := page.Child("heading", element.CSS("#heading"))

	if results.Exists(1) != nil {
		text, _ := results.Text()
		fmt.Println(text)
	}
	fmt.Println(results.Description())
	// Output:
	// Search results
	// search.heading
}

func ExampleCollection() {
	session := mock.NewSession()
	session.Set("css selector", ".result a",
		mock.NewNode("first"), mock.NewNode("second"), mock.NewNode("third"))

	page := element.NewPage(session, "search")
	links := element.NewCollection(page.Child("links", element.CSS(".result a")))

	fmt.Println(links.Len())
	for _, link := range links.Items() {
		text, _ := link.Text()
		fmt.Println(link.Description(), text)
	}
	// Output:
	// 3
	// search.links[0] first
	// search.links[1] second
	// search.links[2] third
}
