// Package tui implements the interactive todo list on top of bubbletea.
//
// Input is modal: navigation mode moves the cursor and triggers actions,
// input mode composes the text of a new item. The mode is an explicit
// enum with an exhaustive switch per state, so a future third mode
// cannot silently fall through to the wrong handler.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/timvw/todo-tui/internal/store"
	"github.com/timvw/todo-tui/internal/todo"
)

// mode is the input mode state machine.
type mode int

const (
	modeNavigate mode = iota // keys move the cursor and trigger actions
	modeInput                // keys compose text for a new item
)

// TUI runs the interactive todo list.
type TUI struct {
	Store *store.Store
	List  *todo.List
	Theme Theme

	// OnMutation is called after every successful list mutation with the
	// operation name ("add", "toggle", "delete"). Optional.
	OnMutation func(op string)
}

// Run starts the event loop on the alternate screen and blocks until the
// user quits. bubbletea restores the terminal (raw mode, alt screen,
// cursor) before Run returns, on the error path included.
func (t *TUI) Run() error {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = "New todo: "

	m := &tuiModel{
		list:       t.List,
		store:      t.Store,
		input:      ti,
		styles:     newStyles(t.Theme),
		onMutation: t.OnMutation,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// tuiModel implements tea.Model.
type tuiModel struct {
	list  *todo.List
	store *store.Store
	mode  mode

	// input holds the pending item text; live only in modeInput and
	// cleared on every exit from it.
	input textinput.Model

	styles     styles
	onMutation func(op string)

	width  int
	height int
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 20
		return m, nil
	}

	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNavigate:
		return m.handleNavigateKey(msg)
	case modeInput:
		return m.handleInputKey(msg)
	}
	return m, nil
}

// persist saves the whole list after a successful mutation. The save is
// best-effort: the mutation already happened in memory, so a disk error
// must not block or interrupt the loop. The store reports the outcome to
// its observer; here the error is deliberately dropped.
func (m *tuiModel) persist(op string) {
	_ = m.store.Save(m.list.Items())
	if m.onMutation != nil {
		m.onMutation(op)
	}
}

func (m *tuiModel) handleNavigateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.list.Previous()

	case "down", "j":
		m.list.Next()

	case " ":
		if m.list.ToggleSelected() {
			m.persist("toggle")
		}

	case "d":
		if m.list.RemoveSelected() {
			m.persist("delete")
		}

	case "a":
		// Enter input mode. The buffer is already empty: it is cleared
		// on every exit from input mode.
		m.mode = modeInput
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m *tuiModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		// Cancel: discard the buffer, no mutation, no save.
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeNavigate
		return m, nil

	case "enter":
		// Commit only a non-empty buffer. Text is taken verbatim —
		// whitespace-only input is a valid item. An empty commit is a
		// complete no-op and notably does not leave input mode.
		text := m.input.Value()
		if text == "" {
			return m, nil
		}
		m.list.Append(text)
		m.persist("add")
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeNavigate
		return m, nil
	}

	// Everything else (runes, backspace, cursor movement) goes to the
	// text input component. There is no quit key in input mode: the
	// typed text may well contain a 'q'.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewList())
	b.WriteString("\n")
	b.WriteString(m.viewInput())
	b.WriteString("\n")
	return b.String()
}

// viewList renders the bordered list panel with the selected row
// highlighted.
func (m *tuiModel) viewList() string {
	s := m.styles

	var rows []string
	rows = append(rows, s.title.Render("Todo List")+"  "+
		s.hint.Render("↑/↓: navigate  Space: toggle  a: add  d: delete  q: quit"))
	rows = append(rows, "")

	if m.list.Len() == 0 {
		rows = append(rows, s.hint.Render("No todos. Press 'a' to add one."))
	}

	innerWidth := m.width - 6 // border + padding + cursor column
	for i, item := range m.list.Items() {
		box := "[ ]"
		if item.Completed {
			box = "[✓]"
		}

		// The selected row is rendered unstyled inside the highlight so
		// the background spans the full width (padRight counts runes,
		// not escape sequences).
		if i == m.list.Selected() {
			rows = append(rows, s.selected.Render(padRight(fmt.Sprintf("► %s %s", box, item.Text), innerWidth)))
			continue
		}

		text := s.pending.Render(item.Text)
		if item.Completed {
			box = s.check.Render(box)
			text = s.done.Render(item.Text)
		}
		rows = append(rows, fmt.Sprintf("  %s %s", box, text))
	}

	return s.panel.Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

// viewInput renders the single-line bordered input region. In input mode
// it shows the live buffer, otherwise a hint.
func (m *tuiModel) viewInput() string {
	s := m.styles

	var line string
	switch m.mode {
	case modeInput:
		line = s.inputOn.Render(m.input.View() + "   (Enter: confirm, Esc: cancel)")
	case modeNavigate:
		line = s.inputOff.Render("Press 'a' to add a new todo")
	}

	return s.panel.Width(m.width - 2).Render(line)
}

// padRight pads a string with spaces to the desired width so the
// selection highlight spans the row.
func padRight(str string, width int) string {
	if n := width - len([]rune(str)); n > 0 {
		return str + strings.Repeat(" ", n)
	}
	return str
}
