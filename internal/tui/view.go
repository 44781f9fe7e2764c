// ABOUTME: Interactive tracker view: year heatmap, cell selection, inline editor.
// ABOUTME: Bubbletea model implementing the Idle/CellSelected interaction machine.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/harperreed/huely/internal/grid"
	"github.com/harperreed/huely/internal/i18n"
	"github.com/harperreed/huely/internal/logbuf"
	"github.com/harperreed/huely/internal/models"
	"github.com/harperreed/huely/internal/storage"
)

type mode int

const (
	modeIdle mode = iota
	modeCellSelected
	modeLog
)

// resumeMsg fires periodically so the view can notice the date rolling
// over while it stays open.
type resumeMsg time.Time

const (
	monthGutter = 4
	cellWidth   = 2
	maxNameLen  = 30
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	editorStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	categoryStyles = map[models.Category]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("#e5c07b")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("#98c379")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("#61afef")),
	}
)

// Model is the tracker view. All interaction state lives here; nothing is
// package-global.
type Model struct {
	store   storage.Store
	tracker *models.Tracker
	loc     *i18n.Localizer
	shell   NativeShell
	buf     *logbuf.Buffer

	now  func() time.Time
	grid *grid.Grid

	mode        mode
	cursorWeek  int
	cursorDay   int
	noteFocused bool
	note        textinput.Model

	notice string
	width  int
	height int
}

// NewModel builds the view for one tracker. now is injectable for tests;
// nil means time.Now.
func NewModel(store storage.Store, tracker *models.Tracker, loc *i18n.Localizer, shell NativeShell, buf *logbuf.Buffer, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	if shell == nil {
		shell = NullShell{}
	}
	if buf == nil {
		buf = logbuf.New()
	}

	note := textinput.New()
	note.Placeholder = loc.Translate("NOTE_PLACEHOLDER")
	note.CharLimit = 200
	note.Width = 28

	m := Model{
		store:   store,
		tracker: tracker,
		loc:     loc,
		shell:   shell,
		buf:     buf,
		now:     now,
		note:    note,
		width:   80,
		height:  24,
	}
	m.rebuild()
	m.jumpToToday()
	return m
}

// Run opens the tracker view as a full-screen program.
func Run(store storage.Store, tracker *models.Tracker, loc *i18n.Localizer, buf *logbuf.Buffer) error {
	m := NewModel(store, tracker, loc, NewTerminalShell(), buf, nil)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, resumeTick())
}

func resumeTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return resumeMsg(t)
	})
}

// rebuild recomputes the grid from scratch for the current dates map.
func (m *Model) rebuild() {
	m.grid = grid.Build(m.tracker.Dates, grid.Options{
		Today:        m.now(),
		FirstWeekday: dateutil.FirstWeekday(m.loc.Tag()),
		MonthName:    m.loc.MonthShort,
		WeekdayName:  m.loc.WeekdayShort,
	})
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursorWeek >= len(m.grid.Weeks) {
		m.cursorWeek = len(m.grid.Weeks) - 1
	}
	if m.cursorWeek < 0 {
		m.cursorWeek = 0
	}
	if m.cursorDay < 0 {
		m.cursorDay = 0
	}
	if m.cursorDay >= grid.DaysPerWeek {
		m.cursorDay = grid.DaysPerWeek - 1
	}
}

// jumpToToday moves the cursor to the newest active cell.
func (m *Model) jumpToToday() {
	m.cursorWeek = 0
	m.cursorDay = 0
	if len(m.grid.Weeks) == 0 {
		return
	}
	for i, c := range m.grid.Weeks[0].Cells {
		if c.Active {
			m.cursorDay = i
		}
	}
}

func (m *Model) cellAtCursor() *grid.Cell {
	if m.cursorWeek < 0 || m.cursorWeek >= len(m.grid.Weeks) {
		return nil
	}
	return &m.grid.Weeks[m.cursorWeek].Cells[m.cursorDay]
}

// SelectedDate returns the ISO date under edit, or empty when idle.
func (m Model) SelectedDate() string {
	if m.mode != modeCellSelected {
		return ""
	}
	if c := m.cellAtCursor(); c != nil {
		return c.Date
	}
	return ""
}

// Idle reports whether no cell is selected.
func (m Model) Idle() bool {
	return m.mode == modeIdle
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case resumeMsg:
		if m.grid.NeedsRebuild(m.now()) {
			m.rebuild()
			m.jumpToToday()
		}
		return m, resumeTick()

	case tea.KeyMsg:
		switch m.mode {
		case modeLog:
			return m.updateLog(msg)
		case modeCellSelected:
			return m.updateSelected(msg)
		default:
			return m.updateIdle(msg)
		}
	}
	return m, nil
}

func (m Model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cursorWeek--
		m.clampCursor()
	case "down", "j":
		m.cursorWeek++
		m.clampCursor()
	case "left", "h":
		m.cursorDay--
		m.clampCursor()
	case "right", "l":
		m.cursorDay++
		m.clampCursor()
	case "t":
		m.jumpToToday()
	case "ctrl+l":
		m.mode = modeLog
	case "enter", " ":
		// Selecting an inactive padding cell is a no-op.
		if c := m.cellAtCursor(); c != nil && c.Active {
			m.mode = modeCellSelected
			m.noteFocused = false
			if a, ok := m.tracker.Dates[c.Date]; ok {
				m.note.SetValue(a.Note)
			} else {
				m.note.SetValue("")
			}
		}
	}
	return m, nil
}

func (m Model) updateSelected(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.noteFocused {
		switch key {
		case "esc", "enter":
			m.dismissEditor()
			return m, nil
		case "tab":
			m.noteFocused = false
			m.note.Blur()
			return m, nil
		case "ctrl+c":
			m.dismissEditor()
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.note, cmd = m.note.Update(msg)
			return m, cmd
		}
	}

	switch key {
	case "1", "2", "3", "4":
		m.applyCategory(models.Category(key[0] - '0'))
		m.shell.Pulse()
		return m, nil
	case "0", "x":
		m.applyCategory(models.CategoryNone)
		return m, nil
	case "tab", "n":
		m.noteFocused = true
		return m, m.note.Focus()
	case "esc", "enter":
		m.dismissEditor()
		return m, nil
	case "ctrl+c", "q":
		m.dismissEditor()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.mode = modeIdle
	}
	return m, nil
}

// applyCategory paints the selected cell and closes the editor. Pending
// note text is committed in the same write.
func (m *Model) applyCategory(c models.Category) {
	cell := m.cellAtCursor()
	if cell == nil || cell.Date == "" {
		m.reset()
		return
	}
	m.tracker.SetNote(cell.Date, m.note.Value())
	m.tracker.Mark(cell.Date, c)
	m.save()
	m.reset()
}

// dismissEditor commits pending note text lazily and returns to idle.
func (m *Model) dismissEditor() {
	cell := m.cellAtCursor()
	if cell != nil && cell.Date != "" {
		before := m.tracker.Dates[cell.Date]
		m.tracker.SetNote(cell.Date, m.note.Value())
		if m.tracker.Dates[cell.Date] != before {
			m.save()
		}
	}
	m.reset()
}

func (m *Model) reset() {
	m.mode = modeIdle
	m.noteFocused = false
	m.note.Blur()
	m.note.SetValue("")
}

func (m *Model) save() {
	if _, err := m.store.Update(m.tracker); err != nil {
		e := m.buf.Push(fmt.Sprintf("save failed: %v", err), logbuf.Callers(2))
		m.notice = e.Message
	}
	m.rebuild()
}

func (m Model) View() string {
	if m.mode == modeLog {
		return m.viewLog()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncateName(m.tracker.Name, maxNameLen)))
	b.WriteString("\n\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderWeeks())

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render("! " + m.notice + " (ctrl+l)"))
	}
	b.WriteString("\n")
	if m.mode == modeCellSelected {
		hint := "PICKER_HINT"
		if m.noteFocused {
			hint = "NOTE_HINT"
		}
		b.WriteString(faintStyle.Render(m.loc.Translate(hint)))
	} else {
		b.WriteString(faintStyle.Render(m.loc.Translate("VIEW_HINT")))
	}
	return b.String()
}

// renderHeader lays the compressed weekday labels over the day columns.
func (m Model) renderHeader() string {
	widths := columnWidths()
	var b strings.Builder
	col := 0
	for _, slot := range m.grid.Header {
		w := 0
		for i := 0; i < slot.Span && col < len(widths); i++ {
			w += widths[col]
			col++
		}
		b.WriteString(pad(slot.Label, w))
	}
	return faintStyle.Render(b.String())
}

// columnWidths returns the widths of the 9 render columns: month gutter,
// seven day cells, month gutter.
func columnWidths() []int {
	widths := make([]int, 9)
	widths[0] = monthGutter
	for i := 1; i <= 7; i++ {
		widths[i] = cellWidth
	}
	widths[8] = monthGutter
	return widths
}

func (m Model) renderWeeks() string {
	first, last := m.visibleRange()

	var rows []string
	for w := first; w <= last; w++ {
		rows = append(rows, m.renderWeekRow(w))
	}

	// The inline editor sits under the selected row when the selection is
	// in the upper half of the viewport, above it otherwise, so it never
	// pushes the selected cell out of view.
	if m.mode == modeCellSelected {
		at := m.cursorWeek - first
		editor := m.renderEditor()
		if at <= (last-first)/2 {
			rows = append(rows[:at+1], append([]string{editor}, rows[at+1:]...)...)
		} else {
			rows = append(rows[:at], append([]string{editor}, rows[at:]...)...)
		}
	}
	return strings.Join(rows, "\n")
}

// visibleRange windows the week rows around the cursor so a multi-year
// grid still fits the terminal.
func (m Model) visibleRange() (int, int) {
	visible := m.height - 8
	if visible < 7 {
		visible = 7
	}
	if len(m.grid.Weeks) <= visible {
		return 0, len(m.grid.Weeks) - 1
	}

	first := m.cursorWeek - visible/2
	if first < 0 {
		first = 0
	}
	last := first + visible - 1
	if last >= len(m.grid.Weeks) {
		last = len(m.grid.Weeks) - 1
		first = last - visible + 1
	}
	return first, last
}

func (m Model) renderWeekRow(w int) string {
	week := m.grid.Weeks[w]
	var b strings.Builder
	b.WriteString(faintStyle.Render(pad(week.MonthLabel, monthGutter)))
	for d, cell := range week.Cells {
		b.WriteString(m.renderCell(cell, w == m.cursorWeek && d == m.cursorDay))
	}
	b.WriteString(faintStyle.Render(pad(week.MonthLabel, monthGutter)))
	return b.String()
}

func (m Model) renderCell(c grid.Cell, selected bool) string {
	var text string
	var style lipgloss.Style

	switch {
	case !c.Active:
		text = strings.Repeat(" ", cellWidth)
	case c.Category != models.CategoryNone:
		text = "█•"
		if !c.HasNote {
			text = "██"
		}
		style = categoryStyles[c.Category]
	case c.HasNote:
		text = "·•"
		style = faintStyle
	default:
		text = "··"
		style = faintStyle
	}

	if selected {
		style = style.Reverse(true)
	}
	return style.Render(text)
}

func (m Model) renderEditor() string {
	cell := m.cellAtCursor()
	if cell == nil || cell.Date == "" {
		return ""
	}

	day, err := dateutil.ParseISODate(cell.Date)
	title := cell.Date
	if err == nil {
		title = m.loc.LongDate(day)
	}

	var palette strings.Builder
	for c := models.CategoryMin; c <= models.CategoryMax; c++ {
		swatch := categoryStyles[c].Render("██")
		if cell.Category == c {
			swatch = categoryStyles[c].Reverse(true).Render("██")
		}
		palette.WriteString(fmt.Sprintf("%d %s  ", c, swatch))
	}
	palette.WriteString("0 " + faintStyle.Render("··"))

	body := title + "\n" + palette.String() + "\n" + m.note.View()
	return editorStyle.Render(body)
}

func (m Model) viewLog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Error log"))
	b.WriteString("\n\n")

	entries := m.buf.Entries()
	if len(entries) == 0 {
		b.WriteString(faintStyle.Render("No captured errors."))
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s  %s\n", faintStyle.Render(e.At.Format("15:04:05")), e.Message))
		for _, frame := range e.Stack {
			b.WriteString(faintStyle.Render("    " + frame))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("press any key to close"))
	return b.String()
}

func truncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
