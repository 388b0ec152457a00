package tui

import (
	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/progress"
	"github.com/edulog/etugon/internal/service"
	"github.com/edulog/etugon/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Reports   service.ReportService
	Votes     *ledger.Ledger
	Selection listing.Selection
	UserID    int
	Policy    progress.Policy
	Width     int
	Height    int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Selection: listing.DefaultSelection(),
		Policy:    progress.PolicyCompleteAll,
		Width:     80,
		Height:    24,
	}
}

// WithReports sets the service reports are loaded from and completions are pushed to.
func WithReports(svc service.ReportService) Option {
	return func(c *Config) {
		c.Reports = svc
	}
}

// WithUserID sets the signed-in user. Their reports go to the "My Reports" tab.
func WithUserID(id int) Option {
	return func(c *Config) {
		c.UserID = id
	}
}

// WithVotes shares an upvote ledger with the TUI.
func WithVotes(votes *ledger.Ledger) Option {
	return func(c *Config) {
		c.Votes = votes
	}
}

// WithSelection sets the initial filter and sort.
func WithSelection(sel listing.Selection) Option {
	return func(c *Config) {
		c.Selection = sel
	}
}

// WithPolicy sets which timeline steps "mark as completed" closes.
func WithPolicy(p progress.Policy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
