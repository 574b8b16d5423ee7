package element

import "testing"

func TestNewLocator_Valid(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		query    string
	}{
		{"id", ByID, "login"},
		{"name", ByName, "q"},
		{"xpath", ByXPath, "//div[@id='x']"},
		{"css", ByCSSSelector, "input.gsfi"},
		{"class name", ByClassName, "btn-primary"},
		{"link text", ByLinkText, "Sign in"},
		{"partial link text", ByPartialLinkText, "Sign"},
		{"tag name", ByTagName, "button"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewLocator(tt.strategy, tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc.Strategy != tt.strategy || loc.Query != tt.query {
				t.Errorf("got %v, want {%s %s}", loc, tt.strategy, tt.query)
			}
		})
	}
}

func TestNewLocator_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		query    string
	}{
		{"unknown strategy", Strategy("data-testid"), "submit"},
		{"empty strategy", Strategy(""), "submit"},
		{"empty query", ByCSSSelector, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLocator(tt.strategy, tt.query); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLocator_String(t *testing.T) {
	loc := CSS(".g .r > a")
	if got, want := loc.String(), "css selector=.g .r > a"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		loc  Locator
		want Strategy
	}{
		{"ID", ID("x"), ByID},
		{"Name", Name("x"), ByName},
		{"XPath", XPath("x"), ByXPath},
		{"CSS", CSS("x"), ByCSSSelector},
		{"ClassName", ClassName("x"), ByClassName},
		{"LinkText", LinkText("x"), ByLinkText},
		{"PartialLinkText", PartialLinkText("x"), ByPartialLinkText},
		{"TagName", TagName("x"), ByTagName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.loc.Strategy != tt.want {
				t.Errorf("got strategy %q, want %q", tt.loc.Strategy, tt.want)
			}
			if tt.loc.Query != "x" {
				t.Errorf("got query %q, want x", tt.loc.Query)
			}
		})
	}
}
