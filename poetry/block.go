package poetry

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/stanza/buffer"
	graphemeutil "github.com/iw2rmb/stanza/internal/grapheme"
)

// Block is a Bubble Tea component holding one poetry block.
type Block struct {
	cfg         Config
	buf         *buffer.Buffer
	placeholder string

	focused bool

	viewport viewport.Model
	content  string
	// xOffset is the first text cell shown when lines are wider than the
	// viewport.
	xOffset int

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

// New builds a block from its construction contract.
func New(cfg Config) Block {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Block{
		cfg:         cfg,
		buf:         buffer.New(cfg.Data.Poetry),
		placeholder: cfg.placeholder(),
		focused:     true,
		viewport:    viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	return m.SetSize(cfg.Width, cfg.Height)
}

func (m Block) Buffer() *buffer.Buffer { return m.buf }

func (m Block) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Block) Placeholder() string { return m.placeholder }

func (m Block) Init() tea.Cmd { return nil }

// SetSize sets the outer size of the block, including the wrapper frame.
// A zero height lets the block grow with its content.
func (m Block) SetSize(width, height int) Block {
	fw := m.cfg.Style.Wrapper.GetHorizontalFrameSize()
	fh := m.cfg.Style.Wrapper.GetVerticalFrameSize()
	m.viewport.Width = max(width-fw, 0)
	m.viewport.Height = max(height-fh, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Block) Focus() Block {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Block) Blur() Block {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Block) Focused() bool { return m.focused }

// PasteMsg delivers an externally pasted element to the block.
type PasteMsg struct {
	Event PasteEvent
}

func (m Block) Update(msg tea.Msg) (Block, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Rebuild content in case the host mutated the buffer outside of the block.
		m.syncFromBuffer()
		return m, cmd
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case PasteMsg:
		m, _ = m.Paste(msg.Event)
		return m, nil
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, nil
}

// View implements tea.Model.
func (m Block) View() string {
	body := m.content
	if m.viewport.Height > 0 {
		body = m.viewport.View()
	}
	return m.cfg.Style.Wrapper.Render(body)
}

// Render returns the block's view for mounting by the host.
func (m Block) Render() string { return m.View() }

// Save returns the block's current data.
func (m Block) Save() Data {
	return Data{Poetry: m.buf.Text()}
}

func (m *Block) syncFromBuffer() (changed bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return true
}

func (m *Block) rebuildContent() {
	m.followColumn()
	m.content = m.renderContent()
	m.viewport.SetContent(m.content)
}

// textWidth is the number of cells available for text on each row, or -1
// when the block has no fixed width.
func (m *Block) textWidth() int {
	if m.viewport.Width <= 0 {
		return -1
	}
	w := m.viewport.Width
	if m.cfg.ShowLineNums {
		w -= gutterDigits(m.buf.LineCount()) + 1
	}
	return max(w, 1)
}

// followColumn scrolls horizontally so the caret cell stays in view.
func (m *Block) followColumn() {
	tw := m.textWidth()
	if tw < 0 {
		m.xOffset = 0
		return
	}
	cur := m.buf.Cursor()
	x, w := graphemeutil.Cell(m.buf.Lines()[cur.Row], cur.Col)
	switch {
	case x < m.xOffset:
		m.xOffset = x
	case x+w > m.xOffset+tw:
		m.xOffset = x + w - tw
	}
	m.xOffset = max(m.xOffset, 0)
}

func (m *Block) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}

	row := m.buf.Cursor().Row
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
