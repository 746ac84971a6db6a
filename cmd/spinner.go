package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const modelSpinnerLabel = "Waiting for the model..."

type modelCallDoneMsg struct {
	reply string
	err   error
}

type modelSpinnerModel struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	reply   string
	err     error
	done    bool
}

func newModelSpinnerModel(label string, call tea.Cmd) modelSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return modelSpinnerModel{
		spinner: s,
		label:   label,
		call:    call,
	}
}

func (m modelSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m modelSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case modelCallDoneMsg:
		m.done = true
		m.reply = msg.reply
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m modelSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runModelSpinner runs call behind a spinner. The reply only crosses back
// through the program's message loop, so a canceled run never reads it.
func runModelSpinner(ctx context.Context, output io.Writer, label string, call func(context.Context) (string, error)) (string, error) {
	callCmd := func() tea.Msg {
		reply, err := call(ctx)
		return modelCallDoneMsg{reply: reply, err: err}
	}

	p := tea.NewProgram(
		newModelSpinnerModel(label, callCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	result, ok := finalModel.(modelSpinnerModel)
	if !ok {
		return "", fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.reply, result.err
}

// spinningModel shows a spinner on output while each completion is in flight.
type spinningModel struct {
	next   ports.LanguageModel
	output io.Writer
	label  string
}

func (m spinningModel) Complete(ctx context.Context, prompt domain.Prompt, opts ports.CompletionOptions) (string, error) {
	return runModelSpinner(ctx, m.output, m.label, func(ctx context.Context) (string, error) {
		return m.next.Complete(ctx, prompt, opts)
	})
}
