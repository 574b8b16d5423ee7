package playwright

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		query    string
		want     string
	}{
		{"id", "id", "login", `[id="login"]`},
		{"name", "name", "q", `[name="q"]`},
		{"class name", "class name", "btn-primary", ".btn-primary"},
		{"tag name", "tag name", "button", "button"},
		{"css selector", "css selector", "div.result > a", "div.result > a"},
		{"xpath", "xpath", "//div[@id='x']", "xpath=//div[@id='x']"},
		{"link text", "link text", "Sign in", `a:text-is("Sign in")`},
		{"partial link text", "partial link text", "Sign", `a:has-text("Sign")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translate(tt.strategy, tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("unknown strategy", func(t *testing.T) {
		if _, err := translate("accessibility id", "x"); err == nil {
			t.Error("expected error for an unknown strategy")
		}
	})
}
