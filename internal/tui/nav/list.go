package nav

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/redsaved/internal/saved"
	"github.com/glabrego/redsaved/internal/store"
	"github.com/glabrego/redsaved/internal/tui/state"
)

type Mode int

const (
	Listing Mode = iota
	Filtering
)

type ListAction int

const (
	ListNone ListAction = iota
	ListOpen
	ListHelp
	ListQuit
	// ListUnhandled leaves the key to the action table.
	ListUnhandled
)

type ListResult struct {
	Action ListAction
	Key    string
}

// List owns the cursor, the active filter and the filtered view over a
// store. The view is recomputed on every filter change.
type List struct {
	store    *store.Store
	view     []saved.Entry
	cursor   int
	filter   string
	mode     Mode
	pageRows int
}

func NewList(s *store.Store) *List {
	l := &List{store: s, pageRows: 1}
	l.refilter()
	return l
}

func (l *List) Mode() Mode             { return l.mode }
func (l *List) Filter() string         { return l.filter }
func (l *List) Cursor() int            { return l.cursor }
func (l *List) Len() int               { return len(l.view) }
func (l *List) Entries() []saved.Entry { return l.view }

func (l *List) Current() (saved.Entry, bool) {
	if len(l.view) == 0 {
		return saved.Entry{}, false
	}
	return l.view[l.cursor], true
}

// SetPageRows sets how many rows the list pane shows; paging moves by it.
func (l *List) SetPageRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	l.pageRows = rows
}

func (l *List) Window() (int, int) {
	return state.ListWindow(len(l.view), l.cursor, l.pageRows)
}

func (l *List) HandleKey(msg tea.KeyMsg) ListResult {
	if l.mode == Filtering {
		return l.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, ListKeys.Up):
		l.moveBy(-1)
	case key.Matches(msg, ListKeys.Down):
		l.moveBy(1)
	case key.Matches(msg, ListKeys.PageUp):
		l.moveBy(-l.pageRows)
	case key.Matches(msg, ListKeys.PageDown):
		l.moveBy(l.pageRows)
	case key.Matches(msg, ListKeys.Open):
		if len(l.view) > 0 {
			return ListResult{Action: ListOpen}
		}
	case key.Matches(msg, ListKeys.Filter):
		l.mode = Filtering
	case key.Matches(msg, ListKeys.Help):
		return ListResult{Action: ListHelp}
	case key.Matches(msg, ListKeys.Quit):
		return ListResult{Action: ListQuit}
	default:
		return ListResult{Action: ListUnhandled, Key: msg.String()}
	}
	return ListResult{}
}

func (l *List) handleFilterKey(msg tea.KeyMsg) ListResult {
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			l.setFilter(l.filter + string(msg.Runes))
			return ListResult{}
		}
	case tea.KeySpace:
		l.setFilter(l.filter + " ")
		return ListResult{}
	}

	switch msg.String() {
	case "backspace":
		runes := []rune(l.filter)
		if len(runes) > 0 {
			runes = runes[:len(runes)-1]
		}
		l.setFilter(string(runes))
		if l.filter == "" {
			l.mode = Listing
		}
	case "esc":
		l.mode = Listing
		l.setFilter("")
	case "ctrl+c":
		return ListResult{Action: ListQuit}
	default:
		// enter and any other key commit the filter
		l.mode = Listing
	}
	return ListResult{}
}

// ApplyMove moves the cursor one entry in the requested direction and
// reports whether it landed on a different entry to reopen.
func (l *List) ApplyMove(move Move) bool {
	delta := move.Delta()
	if delta == 0 {
		return false
	}
	before := l.cursor
	l.moveBy(delta)
	return l.cursor != before
}

func (l *List) moveBy(delta int) {
	l.cursor = state.ClampCursor(l.cursor+delta, len(l.view))
}

func (l *List) setFilter(filter string) {
	if filter == l.filter {
		return
	}
	l.filter = filter
	l.refilter()
}

func (l *List) refilter() {
	l.view = l.store.View(l.filter)
	l.cursor = state.ClampCursor(l.cursor, len(l.view))
}
