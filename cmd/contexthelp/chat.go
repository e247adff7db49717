package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/contexthelp/client"
	"github.com/a-h/contexthelp/models"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type ChatCommand struct {
	ServerURL string `help:"The URL of the context help server." env:"CONTEXT_HELP_SERVER_URL" default:"http://localhost:9020"`
	Context   string `help:"The context questions are asked from, e.g. bet-slip/empty." default:""`
}

func (c ChatCommand) Run(ctx context.Context) (err error) {
	chc := client.New(c.ServerURL)

	questions := make(chan string)
	transcripts := make(chan []transcriptEntry)
	errors := make(chan error)

	go func() {
		var transcript []transcriptEntry
		for q := range questions {
			transcript = append(transcript, transcriptEntry{Kind: entryQuestion, Text: q})
			transcripts <- clone(transcript)

			resp, err := chc.Query(ctx, models.QuestionRequest{
				Question: q,
				Context:  c.Context,
			})
			if err != nil {
				errors <- err
				continue
			}
			transcript = append(transcript, transcriptEntry{Kind: entryAnswer, Text: resp.Answer})
			transcripts <- clone(transcript)
		}
	}()

	p := tea.NewProgram(newModel(ctx, c.Context, questions, transcripts, errors))
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

type entryKind int

const (
	entryQuestion entryKind = iota
	entryAnswer
	entryError
)

type transcriptEntry struct {
	Kind entryKind
	Text string
}

func clone(t []transcriptEntry) []transcriptEntry {
	return append([]transcriptEntry(nil), t...)
}

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Cyan        = lipgloss.Color("#8be9fd")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var headerStyle = lipgloss.NewStyle().Background(CurrentLine).Foreground(Purple).Bold(true).Margin(1).Padding(1)

type model struct {
	viewport viewport.Model
	textarea textarea.Model
	ctx      context.Context

	contextID  string
	transcript []transcriptEntry
	lastErr    error

	questions   chan string
	transcripts chan []transcriptEntry
	errors      chan error
}

func newModel(ctx context.Context, contextID string, questions chan string, transcripts chan []transcriptEntry, errors chan error) model {
	ta := textarea.New()
	ta.Placeholder = "Ask a question..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 500
	ta.SetHeight(3)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(80, 20)
	vp.SetContent(renderHeader(contextID))

	return model{
		ctx:         ctx,
		textarea:    ta,
		viewport:    vp,
		contextID:   contextID,
		questions:   questions,
		transcripts: transcripts,
		errors:      errors,
	}
}

func renderHeader(contextID string) string {
	if contextID == "" {
		contextID = "none"
	}
	return headerStyle.Render(fmt.Sprintf("Help assistant (context: %s)", contextID))
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.waitForTranscript(),
		m.waitForError(),
	)
}

func (m model) waitForTranscript() tea.Cmd {
	return func() tea.Msg {
		select {
		case t := <-m.transcripts:
			return t
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m model) waitForError() tea.Cmd {
	return func() tea.Msg {
		select {
		case err := <-m.errors:
			return err
		case <-m.ctx.Done():
			return nil
		}
	}
}

var entryStyles = map[entryKind]lipgloss.Style{
	entryQuestion: lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background).Foreground(Pink),
	entryAnswer:   lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background).Foreground(Cyan),
	entryError:    lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background).Foreground(Red),
}

var entryIcons = map[entryKind]string{
	entryQuestion: "🥷",
	entryAnswer:   "✨",
	entryError:    "💥",
}

func formatEntry(e transcriptEntry, width int) string {
	style, ok := entryStyles[e.Kind]
	if !ok {
		return e.Text
	}
	wrapped := wordwrap.String(strings.TrimSpace(entryIcons[e.Kind]+" "+e.Text), width)
	return style.Render(wrapped)
}

func (m model) render() string {
	var sb strings.Builder
	sb.WriteString(renderHeader(m.contextID))
	sb.WriteString("\n")
	entries := m.transcript
	if m.lastErr != nil {
		entries = append(clone(entries), transcriptEntry{Kind: entryError, Text: m.lastErr.Error()})
	}
	for _, e := range entries {
		sb.WriteString(formatEntry(e, 80))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		m.lastErr = msg
		m.viewport.SetContent(m.render())
		m.viewport.GotoBottom()
		return m, m.waitForError()
	case []transcriptEntry:
		m.transcript = msg
		m.lastErr = nil
		m.viewport.SetContent(m.render())
		m.viewport.GotoBottom()
		return m, m.waitForTranscript()
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - m.textarea.Height() - 3
		m.textarea.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			q := strings.TrimSpace(m.textarea.Value())
			if q == "" {
				return m, nil
			}
			m.textarea.Reset()
			return m, m.ask(q)
		default:
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd
		}
	case cursor.BlinkMsg:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// ask sends the question without blocking the update loop.
func (m model) ask(q string) tea.Cmd {
	return func() tea.Msg {
		select {
		case m.questions <- q:
		case <-m.ctx.Done():
		}
		return nil
	}
}

func (m model) View() string {
	return fmt.Sprintf("%s\n\n%s",
		m.viewport.View(),
		m.textarea.View(),
	) + "\n\n"
}
