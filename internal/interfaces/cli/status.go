package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// statusResultMsg delivers the outcome of the wrapped operation.
type statusResultMsg struct {
	err error
}

// statusModel shows a transient spinner while a blocking operation runs. The
// view collapses to nothing once the operation finishes, so the indicator is
// cleared on every exit path.
type statusModel struct {
	spinner spinner.Model
	message string
	run     func() error
	done    bool
	err     error
}

func newStatusModel(message string, run func() error) statusModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return statusModel{
		spinner: s,
		message: message,
		run:     run,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return statusResultMsg{err: m.run()} },
	)
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusResultMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m statusModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + m.message
}

// withStatus runs fn behind a transient status indicator when stderr is a
// terminal, and plainly otherwise.
func withStatus(message string, fn func() error) error {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintln(os.Stderr, message)
		return fn()
	}

	program := tea.NewProgram(newStatusModel(message, fn), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("status display failed: %w", err)
	}
	return final.(statusModel).err
}
