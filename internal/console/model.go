// Package console hosts a fetch session inside a bubbletea program. The model attaches the
// session on start, redraws whenever the session reports a transition, binds the retry key to
// the error view's retry action and detaches the session on quit.
package console

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	fetcher "github.com/spacemagneto/panel-fetcher"
)

type (
	attachedMsg struct{ err error }
	changedMsg  struct{}
	retriedMsg  struct{ err error }
)

// Model is a bubbletea model displaying one session.
type Model[T any] struct {
	ctx      context.Context
	title    string
	session  *fetcher.Session[T]
	renderer fetcher.Renderer[T]
	notifier fetcher.Notifier
	styles   Styles
	err      error
}

// New returns a model for session. The notifier must be registered as an observer of the
// session so the model learns about transitions.
func New[T any](ctx context.Context, title string, session *fetcher.Session[T], renderer fetcher.Renderer[T], notifier fetcher.Notifier) Model[T] {
	return Model[T]{
		ctx:      ctx,
		title:    title,
		session:  session,
		renderer: renderer,
		notifier: notifier,
		styles:   DefaultStyles(),
	}
}

// Init attaches the session and starts listening for transitions.
func (m Model[T]) Init() tea.Cmd {
	return tea.Batch(m.attach, m.waitForChange)
}

func (m Model[T]) attach() tea.Msg {
	return attachedMsg{err: m.session.Attach(m.ctx)}
}

func (m Model[T]) waitForChange() tea.Msg {
	select {
	case <-m.notifier:
		return changedMsg{}
	case <-m.ctx.Done():
		return nil
	}
}

// Update handles session notifications and key presses.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case attachedMsg:
		m.err = msg.err
		return m, nil

	case changedMsg:
		return m, m.waitForChange

	case retriedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.session.Detach()
			return m, tea.Quit
		case "r":
			view, ok := m.session.Render(m.renderer).(fetcher.ErrorView)
			if !ok || view.Retry == nil {
				return m, nil
			}
			return m, func() tea.Msg {
				return retriedMsg{err: view.Retry()}
			}
		}
	}

	return m, nil
}

// View draws the title and the session's current view.
func (m Model[T]) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	switch view := m.session.Render(m.renderer).(type) {
	case fetcher.LoadingView:
		b.WriteString(m.styles.Loading.Render(view.Message + "..."))
	case fetcher.ErrorView:
		b.WriteString(m.styles.Error.Render(view.Message))
		b.WriteString("  ")
		b.WriteString(m.styles.Retry.Render("[r] " + view.RetryLabel))
	default:
		b.WriteString(m.styles.Body.Render(view.String()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("q: quit"))

	return b.String()
}
