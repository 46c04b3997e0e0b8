package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bares/internal/diagfmt"
	"bares/internal/driver"
	"bares/internal/eval"
	"bares/internal/source"
	"bares/internal/token"
	"bares/internal/trace"
)

// ReplSource is the input name used for REPL lines.
const ReplSource = "<repl>"

const (
	maxEntries  = 200
	traceEvents = 256
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	postfixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

type entry struct {
	outcome driver.Outcome
	note    string // ответ на команду вместо результата
}

type replModel struct {
	ctx         context.Context
	opts        driver.Options
	input       textinput.Model
	entries     []entry
	history     []string
	histPos     int
	num         uint32
	width       int
	showPostfix bool
	quitting    bool
	// recent keeps the stage events of the last lines for :trace.
	recent *trace.RingTracer
}

// NewReplModel returns a Bubble Tea model that evaluates one expression per
// Enter. Lines are processed with driver.Process, so they obey opts exactly
// like lines read from a file.
func NewReplModel(ctx context.Context, opts driver.Options) tea.Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("bares› ")
	ti.Placeholder = "2 ^ 3 ^ 2   (:help)"
	ti.CharLimit = 4096
	ti.Focus()

	recent := trace.NewRingTracer(traceEvents, trace.LevelDebug)
	ctx = trace.WithTracer(ctx, trace.NewMultiTracer(trace.LevelDebug, trace.FromContext(ctx), recent))
	return &replModel{
		ctx:    ctx,
		opts:   opts,
		input:  ti,
		width:  80,
		recent: recent,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit(m.input.Value())
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(+1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = max(msg.Width-10, 10)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) submit(text string) tea.Cmd {
	m.input.Reset()
	if strings.TrimSpace(text) != "" {
		m.history = append(m.history, text)
	}
	m.histPos = len(m.history)

	if cmd, ok := strings.CutPrefix(strings.TrimSpace(text), ":"); ok {
		return m.command(cmd)
	}
	m.num++
	out := driver.Process(m.ctx, source.Line{Name: ReplSource, Num: m.num, Text: text}, m.opts)
	m.push(entry{outcome: out})
	return nil
}

func (m *replModel) command(cmd string) tea.Cmd {
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {
	case "q", "quit", "exit":
		m.quitting = true
		return tea.Quit
	case "postfix":
		m.showPostfix = !m.showPostfix
		m.note(fmt.Sprintf("postfix listing %s", onOff(m.showPostfix)))
	case "domain":
		if arg == "" {
			m.note("domain " + m.opts.Domain.String())
			break
		}
		d, err := eval.ParseDomain(arg)
		if err != nil {
			m.note(err.Error())
			break
		}
		m.opts.Domain = d
		m.note(fmt.Sprintf("domain %s: results in [%d, %d]", d, d.Min(), d.Max()))
	case "fold":
		m.opts.FoldWidth = !m.opts.FoldWidth
		m.note(fmt.Sprintf("full-width folding %s", onOff(m.opts.FoldWidth)))
	case "trace":
		m.note(m.lastTrace())
	case "clear":
		m.entries = m.entries[:0]
	case "help", "h", "?":
		m.note(":postfix  toggle postfix listing\n:domain [int8|int16|int32]\n:fold     toggle full-width folding\n:trace    show stage events of the last line\n:clear    clear the screen\n:quit     leave (also Esc, Ctrl+D)")
	default:
		m.note(fmt.Sprintf("unknown command :%s (try :help)", name))
	}
	return nil
}

// lastTrace renders the events recorded since the last line began.
func (m *replModel) lastTrace() string {
	events := m.recent.Snapshot()
	from := -1
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Scope == trace.ScopeLine && events[i].Kind == trace.KindSpanBegin {
			from = i
			break
		}
	}
	if from < 0 {
		return "no line evaluated yet"
	}
	var b strings.Builder
	for i := from; i < len(events); i++ {
		b.Write(trace.FormatEvent(&events[i], trace.FormatText))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *replModel) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *replModel) note(s string) { m.push(entry{note: s}) }

func (m *replModel) push(e entry) {
	m.entries = append(m.entries, e)
	if over := len(m.entries) - maxEntries; over > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("bares repl · %s", m.opts.Domain)))
	b.WriteString("\n\n")
	for _, e := range m.entries {
		m.renderEntry(&b, e)
	}
	if !m.quitting {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *replModel) renderEntry(b *strings.Builder, e entry) {
	if e.note != "" {
		for _, line := range strings.Split(e.note, "\n") {
			b.WriteString(mutedStyle.Render("  " + truncate(line, m.width-2)))
			b.WriteString("\n")
		}
		return
	}
	o := e.outcome
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%3d ", o.Line.Num)))
	b.WriteString(truncate(o.Line.Text, m.width-4))
	b.WriteString("\n")
	if o.OK() {
		b.WriteString("    ")
		b.WriteString(valueStyle.Render(fmt.Sprintf("= %d", o.Value)))
		b.WriteString("\n")
		if m.showPostfix {
			b.WriteString("    ")
			b.WriteString(postfixStyle.Render(truncate(token.Join(o.Postfix), m.width-4)))
			b.WriteString("\n")
		}
		return
	}
	if o.Diag.Code.Positional() {
		b.WriteString("    ")
		b.WriteString(errorStyle.Render(diagfmt.CaretLine(o.Line.Text, o.Diag.Primary)))
		b.WriteString("\n")
	}
	b.WriteString("    ")
	b.WriteString(errorStyle.Render(diagfmt.Message(o.Diag)))
	b.WriteString("\n")
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// RunRepl runs the REPL until the user quits or ctx is cancelled.
func RunRepl(ctx context.Context, opts driver.Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewReplModel(ctx, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
