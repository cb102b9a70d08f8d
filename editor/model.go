package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridtext/buffer"
	"github.com/iw2rmb/gridtext/grid"
	"github.com/iw2rmb/gridtext/session"
)

// Model is a Bubble Tea component that renders and edits a grid document.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	sess *session.Session

	focused bool

	viewport viewport.Model
	layout   gridLayout

	lastBufVersion uint64
	lastCursor     int

	mouseAnchor   int
	mouseDragging bool

	err error
}

func New(cfg Config) Model {
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	opt := grid.Options{Delimiter: cfg.Delimiter, RowBreak: cfg.RowBreak}.Normalized()
	cfg.Delimiter, cfg.RowBreak = opt.Delimiter, opt.RowBreak

	buf := buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit, LineBreak: opt.RowBreak})
	sopt := session.Options{
		Delimiter: opt.Delimiter,
		RowBreak:  opt.RowBreak,
		Events: session.Events{
			OnCaretGridPositionChanged: cfg.OnCaretGridPositionChanged,
			OnTextChanged:              cfg.OnTextChanged,
		},
	}
	if cfg.Clipboard != nil {
		sopt.Clipboard = cfg.Clipboard
	}
	sess := session.New(buf, sopt)
	buf.SetChangeHook(func(c buffer.Change) {
		for _, e := range c.AppliedEdits {
			sess.HandleChange(e.Offset, e.InsertedLen())
		}
	})

	m := Model{
		cfg:      cfg,
		buf:      buf,
		sess:     sess,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Session() *session.Session { return m.sess }

// Grid returns the current grid snapshot.
func (m Model) Grid() *grid.Grid { return m.sess.Grid() }

// Text returns the document text.
func (m Model) Text() string { return m.buf.Text() }

// Err returns the error of the last structural command, if it failed.
func (m Model) Err() error { return m.err }

// Dirty reports whether the document changed since it was loaded or marked
// clean.
func (m Model) Dirty() bool { return m.sess.IsDirty() }

func (m Model) MarkClean() Model {
	m.sess.MarkClean()
	return m
}

// Load replaces the document with text, clearing undo history and the dirty
// flag.
func (m Model) Load(text string) Model {
	m.err = m.sess.Initialize(text)
	m.syncFromBuffer()
	m.followCursorWithForce(true)
	return m
}

// Execute runs a structural command as if its key binding was pressed.
func (m Model) Execute(cmd session.Command) Model {
	m.runCommand(cmd)
	if m.syncFromBuffer() {
		m.followCursorWithForce(true)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursorWithForce(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursorWithForce(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Also picks up edits the host made to the buffer directly.
	if m.syncFromBuffer() {
		m.followCursorWithForce(true)
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()

	m.sess.HandleCaretMoved()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursorWithForce(force bool) {
	if m.buf == nil {
		return
	}
	row := m.sess.Location().Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
		return
	}
}

func mutates(cmd session.Command) bool {
	switch cmd {
	case session.GotoNextColumn, session.GotoPreviousColumn, session.Copy:
		return false
	default:
		return true
	}
}
