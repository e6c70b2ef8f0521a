package nav

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/redsaved/internal/render/markdown"
	"github.com/glabrego/redsaved/internal/saved"
	"github.com/glabrego/redsaved/internal/tui/state"
)

// Move is what the detail view asks the list to do once it closes.
type Move int

const (
	MoveNone Move = iota
	MovePrevious
	MoveNext
)

func (m Move) Delta() int {
	switch m {
	case MovePrevious:
		return -1
	case MoveNext:
		return 1
	}
	return 0
}

type DetailAction int

const (
	DetailNone DetailAction = iota
	DetailClose
	DetailOpenURL
	DetailCopyURL
	DetailHelp
	DetailQuit
	DetailUnhandled
)

type DetailResult struct {
	Action DetailAction
	Move   Move
	Key    string
}

// Detail scrolls over the wrapped text of one entry.
type Detail struct {
	entry     saved.Entry
	lines     []string
	offset    int
	rows      int
	laneWidth int
}

// NewDetail wraps the entry's text for a pane paneWidth columns wide showing
// rows body lines.
func NewDetail(entry saved.Entry, paneWidth, rows int) *Detail {
	d := &Detail{entry: entry}
	d.Resize(paneWidth, rows)
	return d
}

func LaneWidth(paneWidth int) int {
	if paneWidth-2 < 1 {
		return 1
	}
	return paneWidth - 2
}

// Resize rewraps the body when the lane width changes and reclamps the
// scroll offset.
func (d *Detail) Resize(paneWidth, rows int) {
	if rows < 1 {
		rows = 1
	}
	d.rows = rows
	lane := LaneWidth(paneWidth)
	if lane != d.laneWidth || d.lines == nil {
		d.laneWidth = lane
		d.lines = wrapEntry(d.entry, lane)
	}
	d.offset = state.ClampCursor(d.offset, len(d.lines))
}

func wrapEntry(entry saved.Entry, width int) []string {
	if entry.Kind() == saved.KindLink {
		return []string{}
	}
	return markdown.Wrap(entry.Text(), width)
}

func (d *Detail) Entry() saved.Entry { return d.entry }
func (d *Detail) Lines() []string    { return d.lines }
func (d *Detail) Offset() int        { return d.offset }

func (d *Detail) Window() (int, int) {
	return state.ScrollWindow(len(d.lines), d.offset, d.rows)
}

func (d *Detail) HandleKey(msg tea.KeyMsg) DetailResult {
	switch {
	case key.Matches(msg, DetailKeys.Up):
		d.scrollBy(-1)
	case key.Matches(msg, DetailKeys.Down):
		d.scrollBy(1)
	case key.Matches(msg, DetailKeys.PageUp):
		d.scrollBy(-d.rows)
	case key.Matches(msg, DetailKeys.PageDown):
		d.scrollBy(d.rows)
	case key.Matches(msg, DetailKeys.Previous):
		return DetailResult{Action: DetailClose, Move: MovePrevious}
	case key.Matches(msg, DetailKeys.Next):
		return DetailResult{Action: DetailClose, Move: MoveNext}
	case key.Matches(msg, DetailKeys.Back):
		return DetailResult{Action: DetailClose, Move: MoveNone}
	case key.Matches(msg, DetailKeys.Browse):
		return DetailResult{Action: DetailOpenURL}
	case key.Matches(msg, DetailKeys.Copy):
		return DetailResult{Action: DetailCopyURL}
	case key.Matches(msg, DetailKeys.Help):
		return DetailResult{Action: DetailHelp}
	case key.Matches(msg, DetailKeys.Quit):
		return DetailResult{Action: DetailQuit}
	default:
		return DetailResult{Action: DetailUnhandled, Key: msg.String()}
	}
	return DetailResult{}
}

func (d *Detail) scrollBy(delta int) {
	d.offset = state.ClampCursor(d.offset+delta, len(d.lines))
}
