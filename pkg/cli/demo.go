package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/azlan-mn/element/pkg/config"
	"github.com/azlan-mn/element/pkg/driver"
	"github.com/azlan-mn/element/pkg/driver/playwright"
	"github.com/azlan-mn/element/pkg/driver/webdriver"
	"github.com/azlan-mn/element/pkg/element"
	"github.com/azlan-mn/element/pkg/logger"
)

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "Run a search-page flow through a declared page-object tree",
	Description: `Declares a small page-object tree (search field, submit button, result
links), types a query, submits it, and walks the result list through the
polling condition protocol.

Examples:
  element demo --url https://www.google.com/ --query "page objects"
  element demo --url https://duckduckgo.com/html/ \
    --field "input[name=q]" --submit "input[type=submit]" --results ".result a"`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "url",
			Usage:    "Page to open",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "query",
			Usage: "Text to type into the search field",
			Value: "page objects",
		},
		&cli.StringFlag{
			Name:  "field",
			Usage: "CSS selector of the search field",
			Value: "input[name=q]",
		},
		&cli.StringFlag{
			Name:  "submit",
			Usage: "CSS selector of the submit button",
			Value: "input[type=submit]",
		},
		&cli.StringFlag{
			Name:  "results",
			Usage: "CSS selector of the result links",
			Value: ".result a",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "Poll budget in ticks for each condition",
			Value: element.DefaultTimeout,
		},
	},
	Action: runDemo,
}

// loadConfig resolves the effective config: file first, flags override.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v := c.String("driver"); v != "" {
		cfg.Driver = v
	}
	if v := c.String("browser"); v != "" {
		cfg.Browser = v
	}
	if v := c.String("remote-url"); v != "" {
		cfg.RemoteURL = v
	}
	if c.Bool("headless") {
		cfg.Headless = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := config.LoadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession opens a driver session for the configured backend.
func newSession(cfg *config.Config) (driver.Session, error) {
	switch cfg.Driver {
	case "playwright":
		return playwright.NewSession(playwright.Options{
			Browser:  cfg.Browser,
			Headless: cfg.Headless,
		})
	default:
		return webdriver.NewSession(webdriver.Options{
			RemoteURL: cfg.RemoteURL,
			Browser:   cfg.Browser,
			Headless:  cfg.Headless,
		})
	}
}

func runDemo(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log := logger.New(c.Bool("verbose"))

	session, err := newSession(cfg)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	timeout := c.Int("timeout")
	if cfg.Timeout > 0 && !c.IsSet("timeout") {
		timeout = cfg.Timeout
	}

	var opts []element.Option
	opts = append(opts, element.WithLogger(log))
	if cfg.PollInterval() > 0 {
		opts = append(opts, element.WithPollInterval(cfg.PollInterval()))
	}

	page := element.NewPage(session, "search", opts...)
	field := page.Child("field", element.CSS(c.String("field")))
	submit := page.Child("submit", element.CSS(c.String("submit")))
	results := element.NewCollection(page.Child("results", element.CSS(c.String("results"))))

	if err := page.Visit(c.String("url")); err != nil {
		return fmt.Errorf("failed to open %s: %w", c.String("url"), err)
	}

	if _, err := field.SendKeys(c.String("query"), timeout); err != nil {
		return err
	}
	if _, err := submit.Click(timeout); err != nil {
		return err
	}

	count := results.Len()
	log.Infof("%d results", count)
	for _, result := range results.Items() {
		text, err := result.Text()
		if err != nil {
			log.Warnf("%s: %v", result.Description(), err)
			continue
		}
		log.Infof("%s: %s", result.Description(), text)
	}

	if count > 0 {
		if _, err := results.Get(0).Click(timeout); err != nil {
			return err
		}
	}
	return nil
}
