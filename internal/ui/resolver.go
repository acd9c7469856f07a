package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/martinstarman/mersge/internal/conflict"
	"github.com/martinstarman/mersge/internal/mergefile"
)

const (
	headerHeight = 1
	legendHeight = 3
	statusHeight = 1

	messageDuration = 3 * time.Second
)

// ResolverModel is the bubbletea model for the three pane resolver. The
// document is mutated in place by key commands; everything else is a
// projection of its current state.
type ResolverModel struct {
	doc  *conflict.Document
	file *mergefile.File

	localView    viewport.Model
	resultView   viewport.Model
	incomingView viewport.Model

	localWidth    int
	resultWidth   int
	incomingWidth int

	width    int
	height   int
	ready    bool
	quitting bool

	message    string
	messageErr bool
	messageSeq int

	// Styles
	headerStyle  lipgloss.Style
	warnStyle    lipgloss.Style
	titleStyle   lipgloss.Style
	panelStyle   lipgloss.Style
	addedStyle   lipgloss.Style
	removedStyle lipgloss.Style
	cursorBg     lipgloss.Color
	cursorFg     lipgloss.Color
	legendStyle  lipgloss.Style
	keyStyle     lipgloss.Style
	helpStyle    lipgloss.Style
	messageStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

type messageExpiredMsg struct {
	id int
}

func NewResolverModel(file *mergefile.File, doc *conflict.Document) ResolverModel {
	return ResolverModel{
		doc:  doc,
		file: file,

		localView:    viewport.New(0, 0),
		resultView:   viewport.New(0, 0),
		incomingView: viewport.New(0, 0),

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),

		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true),

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),

		panelStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),

		addedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),

		removedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		cursorBg: lipgloss.Color("226"),
		cursorFg: lipgloss.Color("16"),

		legendStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),

		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")),

		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		messageStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

func (m ResolverModel) Init() tea.Cmd {
	return nil
}

func (m ResolverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.syncViewports()

	case tea.KeyMsg:
		switch commandForKey(msg) {
		case cmdQuit:
			m.quitting = true
			return m, tea.Quit

		case cmdCursorUp:
			m.doc.MoveUp()
			m.syncViewports()

		case cmdCursorDown:
			m.doc.MoveDown()
			m.syncViewports()

		case cmdAcceptLocal:
			m.doc.Accept(conflict.Local)
			m.syncViewports()

		case cmdAcceptIncoming:
			m.doc.Accept(conflict.Incoming)
			m.syncViewports()

		case cmdWrite:
			if err := m.file.Save(m.doc.Resolved()); err != nil {
				return m, m.showMessage("Write failed: "+err.Error(), true)
			}
			return m, m.showMessage("Wrote "+m.file.Path, false)
		}

	case tea.MouseMsg:
		// Mouse events are captured but do not affect the document.

	case messageExpiredMsg:
		if msg.id == m.messageSeq {
			m.message = ""
		}
	}

	return m, nil
}

func (m *ResolverModel) layout() {
	m.localWidth = m.width * 3 / 10
	m.incomingWidth = m.localWidth
	m.resultWidth = m.width - m.localWidth - m.incomingWidth

	// Panel border takes two rows, the title inside it one more.
	innerHeight := m.height - headerHeight - legendHeight - statusHeight - 3
	if innerHeight < 1 {
		innerHeight = 1
	}

	m.localView.Width = max(m.localWidth-2, 0)
	m.resultView.Width = max(m.resultWidth-2, 0)
	m.incomingView.Width = max(m.incomingWidth-2, 0)
	m.localView.Height = innerHeight
	m.resultView.Height = innerHeight
	m.incomingView.Height = innerHeight
}

// syncViewports rebuilds the three panel contents from the document and
// scrolls each one just enough to keep the cursor row visible.
func (m *ResolverModel) syncViewports() {
	if !m.ready {
		return
	}

	m.localView.SetContent(m.renderRows(sideRows(m.doc.Local, m.doc.Cursor), m.localView.Width))
	m.resultView.SetContent(m.renderRows(resultRows(m.doc), m.resultView.Width))
	m.incomingView.SetContent(m.renderRows(sideRows(m.doc.Incoming, m.doc.Cursor), m.incomingView.Width))

	ensureVisible(&m.localView, m.doc.Cursor)
	ensureVisible(&m.resultView, resultCursorRow(m.doc))
	ensureVisible(&m.incomingView, m.doc.Cursor)
}

func ensureVisible(vp *viewport.Model, row int) {
	if vp.Height <= 0 || row < 0 {
		return
	}
	if row < vp.YOffset {
		vp.YOffset = row
		return
	}
	if row >= vp.YOffset+vp.Height {
		vp.YOffset = row - vp.Height + 1
	}
}

func (m *ResolverModel) showMessage(text string, isErr bool) tea.Cmd {
	m.message = text
	m.messageErr = isErr
	m.messageSeq++
	id := m.messageSeq
	return tea.Tick(messageDuration, func(time.Time) tea.Msg {
		return messageExpiredMsg{id: id}
	})
}

func (m ResolverModel) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Loading " + m.file.Path + "..."
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPanel("Local changes", m.localView, m.localWidth),
		m.renderPanel("Result", m.resultView, m.resultWidth),
		m.renderPanel("Incoming changes", m.incomingView, m.incomingWidth),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		panels,
		m.renderLegend(),
		m.renderStatus(),
	)
}

func (m ResolverModel) renderHeader() string {
	var b strings.Builder
	b.WriteString(m.file.Path)
	b.WriteString(" | ")
	b.WriteString(humanize.Bytes(uint64(m.file.Size())))

	if count := m.doc.ConflictCount(); count > 0 {
		b.WriteString(" | ")
		b.WriteString(humanize.Comma(int64(count)))
		b.WriteString(" conflict rows, ")
		b.WriteString(humanize.Comma(int64(m.doc.UnresolvedCount())))
		b.WriteString(" unresolved")
	} else {
		b.WriteString(" | no conflicts")
	}

	header := m.headerStyle.Render(b.String())
	if m.doc.Unbalanced {
		header += "  " + m.warnStyle.Render("unbalanced conflict markers")
	}
	return header
}

func (m ResolverModel) renderPanel(title string, vp viewport.Model, width int) string {
	content := m.titleStyle.Render(title) + "\n" + vp.View()
	return m.panelStyle.Width(max(width-2, 0)).Render(content)
}

func (m ResolverModel) renderRows(rows []panelRow, width int) string {
	var b strings.Builder
	for i, row := range rows {
		style := lipgloss.NewStyle()
		switch row.change {
		case conflict.Added:
			style = m.addedStyle
		case conflict.Removed:
			style = m.removedStyle
		}
		if row.cursor {
			style = style.Background(m.cursorBg).Foreground(m.cursorFg)
		}

		b.WriteString(style.Render(fitLine(row.text, width)))
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m ResolverModel) renderLegend() string {
	controls := []struct {
		key    string
		action string
	}{
		{"Up", "Move up"},
		{"Down", "Move down"},
		{"L", "Accept local"},
		{"R", "Accept incoming"},
		{"W", "Write"},
		{"Q", "Quit"},
	}

	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		parts = append(parts, m.keyStyle.Render("["+c.key+"] ")+m.helpStyle.Render(c.action))
	}

	return m.legendStyle.Width(max(m.width-2, 0)).Render(strings.Join(parts, " "))
}

func (m ResolverModel) renderStatus() string {
	if m.message == "" {
		return ""
	}
	if m.messageErr {
		return m.errorStyle.Render(m.message)
	}
	return m.messageStyle.Render(m.message)
}

// StartResolver runs the resolver until the operator quits. The bubbletea
// program owns the terminal: raw mode and the alternate screen are restored
// on every exit path, including panics inside the update loop.
func StartResolver(file *mergefile.File, doc *conflict.Document) error {
	m := NewResolverModel(file, doc)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
