// Package tui provides an interactive receipt editor built on bubbletea.
// Each submitted line is parsed and appended to a live basket whose receipt
// is re-rendered after every change.
package tui

import (
	"strings"

	"github.com/Veraticus/salestax/internal/basket"
	"github.com/Veraticus/salestax/internal/parser"
	"github.com/Veraticus/salestax/internal/receipt"
	"github.com/Veraticus/salestax/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Config holds TUI configuration.
type Config struct {
	Theme  themes.Theme
	Pricer basket.Pricer
	Width  int
	Height int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// WithTheme sets the color scheme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPricer replaces the standard tax engine.
func WithPricer(pricer basket.Pricer) Option {
	return func(c *Config) {
		c.Pricer = pricer
	}
}

func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// Model holds the editor state.
type Model struct {
	theme     themes.Theme
	lastError error
	parser    *parser.Parser
	basket    *basket.Basket
	formatter *receipt.Formatter
	keymap    KeyMap
	help      help.Model
	rendered  string
	input     textinput.Model
	width     int
	height    int
	quitting  bool
}

// New creates an editor with an empty basket.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	input := textinput.New()
	input.Placeholder = "1 imported bottle of perfume at 27.99"
	input.Prompt = "› "
	input.PromptStyle = cfg.Theme.Prompt
	input.Focus()

	m := Model{
		theme:     cfg.Theme,
		parser:    parser.NewParser(),
		basket:    basket.New(cfg.Pricer),
		formatter: receipt.NewFormatter(),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.refresh()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Clear):
			m.basket.Clear()
			m.lastError = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.Submit):
			m.submit(m.input.Value())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses line and appends it to the basket. Blank submissions are ignored.
func (m *Model) submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	item, err := m.parser.ParseLine(line)
	if err == nil {
		err = m.basket.Add(item)
	}
	if err != nil {
		m.lastError = err
		return
	}

	m.lastError = nil
	m.input.Reset()
	m.refresh()
}

func (m *Model) refresh() {
	r, err := receipt.New(m.basket)
	if err != nil {
		m.lastError = err
		return
	}

	text, err := m.formatter.Format(r)
	if err != nil {
		m.lastError = err
		return
	}
	m.rendered = text
}

// Receipt returns the current receipt text.
func (m Model) Receipt() string {
	return m.rendered
}

// Err returns the error from the most recent submission, if any.
func (m Model) Err() error {
	return m.lastError
}
