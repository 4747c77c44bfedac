// Package tui provides the interactive "Hours:" prompt.
package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hours/internal/clock"
)

// PromptLabel is shown in front of the text input.
const PromptLabel = "Hours: "

// Model is the prompt model. It stays open until a range converts
// successfully or the user cancels.
type Model struct {
	input  textinput.Model
	styles Styles
	logger *slog.Logger
	width  int

	result    clock.TimeRange
	done      bool
	cancelled bool
	errMsg    string
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the styles used to render the prompt.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// WithLogger sets the logger used to record rejected input.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New creates a focused prompt model.
func New(opts ...Option) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "9 AM to 5 PM"
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		input:  ti,
		styles: DefaultStyles(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
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
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit converts the current value. Invalid input keeps the prompt open.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	r, err := clock.Parse(value)
	if err != nil {
		m.logger.Debug("Rejected input", "input", value, "kind", clock.ErrorKind(err), "error", err)
		m.errMsg = clock.ErrInvalidInput.Error()
		return m, nil
	}
	m.result = r
	m.done = true
	m.errMsg = ""
	return m, tea.Quit
}

// Result returns the converted range and whether the user submitted one.
func (m Model) Result() (clock.TimeRange, bool) {
	return m.result, m.done && !m.cancelled
}

// Cancelled reports whether the user quit without converting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Run shows the prompt on the given streams and returns the converted
// range. ok is false if the user cancelled.
func Run(in io.Reader, out io.Writer, opts ...Option) (r clock.TimeRange, ok bool, err error) {
	p := tea.NewProgram(New(opts...), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return clock.TimeRange{}, false, err
	}
	m, isModel := final.(Model)
	if !isModel {
		return clock.TimeRange{}, false, nil
	}
	r, ok = m.Result()
	return r, ok, nil
}
