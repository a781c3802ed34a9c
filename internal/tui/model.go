// Package tui implements the interactive terminal chat for stackadvisor.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/metalagman/stackadvisor/internal/advisor"
	"github.com/metalagman/stackadvisor/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fallbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sourceStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Orchestrator runs one pipeline turn for a session.
type Orchestrator interface {
	HandleTurn(ctx context.Context, sess *session.Session, userQuery string) advisor.Result
}

// turnMsg delivers a finished pipeline turn to the UI loop.
type turnMsg struct {
	result advisor.Result
}

// Model is the bubbletea chat model.
type Model struct {
	sess *session.Session
	orch Orchestrator

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	log     []string
	waiting bool
	ready   bool
	width   int
	height  int
}

// New creates the chat model bound to a session and orchestrator.
func New(sess *session.Session, orch Orchestrator) Model {
	input := textinput.New()
	input.Placeholder = `Ask a follow-up or type "recommend" for initial advice`
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		sess:  sess,
		orch:  orch,
		input: input,
		spin:  spin,
	}
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
		vpHeight := msg.Height - 4
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			query := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			switch query {
			case "/quit", "/exit":
				return m, tea.Quit
			case "/clear":
				m.sess.ClearHistory()
				m.log = nil
				m.appendLine(helpStyle.Render("Conversation history cleared."))
				return m, nil
			}
			m.appendLine(userStyle.Render("You: ") + query)
			m.waiting = true
			return m, tea.Batch(m.spin.Tick, m.runTurn(query))
		}

	case turnMsg:
		m.waiting = false
		m.appendLine(renderResult(msg.result, m.contentWidth()))
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Tech Stack Advisor"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.waiting {
		b.WriteString(m.spin.View() + " analyzing...")
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("/clear history  /quit exit"))
	return b.String()
}

// runTurn executes one blocking pipeline turn off the UI loop.
func (m Model) runTurn(query string) tea.Cmd {
	sess, orch := m.sess, m.orch
	return func() tea.Msg {
		result := orch.HandleTurn(context.Background(), sess, query)
		return turnMsg{result: result}
	}
}

func (m *Model) appendLine(line string) {
	m.log = append(m.log, line)
	if m.ready {
		m.viewport.SetContent(m.content())
		m.viewport.GotoBottom()
	}
}

func (m Model) content() string {
	return strings.Join(m.log, "\n")
}

func (m Model) contentWidth() int {
	if m.width > 4 {
		return m.width - 2
	}
	return 78
}

// renderResult formats one pipeline result for the chat log.
func renderResult(result advisor.Result, width int) string {
	switch result.Kind {
	case advisor.KindRecommendations:
		md := recommendationsMarkdown(result.Recommendations)
		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
		if err == nil {
			if out, rerr := renderer.Render(md); rerr == nil {
				return out
			}
		}
		return md
	case advisor.KindFallback:
		return fallbackStyle.Render("AI Response (Fallback): "+result.Details) + "\n" + result.RawText
	default:
		return errorStyle.Render(fmt.Sprintf("%s: %s", result.Code, result.Details))
	}
}

// recommendationsMarkdown renders the list the way the chat displays
// structured recommendations: name, source, components, justification,
// pros and cons.
func recommendationsMarkdown(recs []advisor.Recommendation) string {
	if len(recs) == 0 {
		return sourceStyle.Render("No recommendations returned.")
	}

	var b strings.Builder
	for i, rec := range recs {
		fmt.Fprintf(&b, "#### Recommendation #%d: %s\n\n", i+1, rec.StackName)
		if rec.Source != "" {
			fmt.Fprintf(&b, "*Source: %s*\n\n", rec.Source)
		}
		if len(rec.CoreComponents) > 0 {
			fmt.Fprintf(&b, "**Components:** `%s`\n\n", strings.Join(rec.CoreComponents, "`, `"))
		}
		if rec.Justification != "" {
			fmt.Fprintf(&b, "**Justification:** %s\n\n", rec.Justification)
		}
		if len(rec.Pros) > 0 {
			b.WriteString("**Pros:**\n")
			for _, p := range rec.Pros {
				fmt.Fprintf(&b, "- %s\n", p)
			}
			b.WriteString("\n")
		}
		if len(rec.Cons) > 0 {
			b.WriteString("**Cons:**\n")
			for _, c := range rec.Cons {
				fmt.Fprintf(&b, "- %s\n", c)
			}
			b.WriteString("\n")
		}
		if rec.AddressedFollowUp != "" {
			fmt.Fprintf(&b, "*Follow-up addressed: %s*\n\n", rec.AddressedFollowUp)
		}
		if i < len(recs)-1 {
			b.WriteString("---\n\n")
		}
	}
	return b.String()
}
