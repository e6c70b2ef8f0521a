package tui

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/redsaved/internal/dispatch"
	"github.com/glabrego/redsaved/internal/saved"
	"github.com/glabrego/redsaved/internal/store"
	tuiactions "github.com/glabrego/redsaved/internal/tui/actions"
	"github.com/glabrego/redsaved/internal/tui/nav"
	"github.com/glabrego/redsaved/internal/tui/platform"
	"github.com/glabrego/redsaved/internal/tui/state"
	tuitheme "github.com/glabrego/redsaved/internal/tui/theme"
	"github.com/glabrego/redsaved/internal/tui/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type Options struct {
	UTC    bool
	Logger *slog.Logger
}

type Model struct {
	list       *nav.List
	detail     *nav.Detail
	dispatcher *dispatch.Dispatcher
	theme      tuitheme.Theme
	help       help.Model
	showHelp   bool
	width      int
	height     int
	status     string
	statusWarn bool
	utc        bool
	logger     *slog.Logger
	openURLFn  func(string) error
	copyURLFn  func(string) error
}

func NewModel(entries *store.Store, dispatcher *dispatch.Dispatcher, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := help.New()
	h.ShowAll = true

	m := Model{
		list:       nav.NewList(entries),
		dispatcher: dispatcher,
		theme:      tuitheme.Default(),
		help:       h,
		width:      defaultWidth,
		height:     defaultHeight,
		utc:        opts.UTC,
		logger:     logger,
		openURLFn:  platform.OpenURLInBrowser,
		copyURLFn:  platform.CopyToClipboard,
	}
	m.list.SetPageRows(state.ListPageRows(m.height))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetPageRows(state.ListPageRows(m.height))
		if m.detail != nil {
			m.detail.Resize(m.width, m.detailRows(m.detail.Entry()))
		}
		return m, nil
	case tea.KeyMsg:
		m.status = ""
		m.statusWarn = false

		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		if m.detail != nil {
			return m.handleDetailKey(msg)
		}
		return m.handleListKey(msg)
	case tuiactions.ActionFinishedMsg:
		if msg.Err != nil {
			m.logger.Warn("action failed", "key", msg.Key, "command", msg.Command, "err", msg.Err)
			m.setWarning(msg.Key + ": " + msg.Command + " failed: " + msg.Err.Error())
			return m, nil
		}
		m.logger.Debug("action finished", "key", msg.Key, "command", msg.Command)
		return m, nil
	case tuiactions.OpenURLSuccessMsg:
		m.status = msg.Status
		return m, nil
	case tuiactions.OpenURLErrorMsg:
		m.setWarning(msg.Err.Error())
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.list.HandleKey(msg)
	switch res.Action {
	case nav.ListOpen:
		m.openDetail()
	case nav.ListHelp:
		m.showHelp = true
	case nav.ListQuit:
		return m, tea.Quit
	case nav.ListUnhandled:
		entry, ok := m.list.Current()
		if !ok {
			return m, nil
		}
		return m.dispatchKey(res.Key, entry)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.detail.HandleKey(msg)
	switch res.Action {
	case nav.DetailClose:
		if m.list.ApplyMove(res.Move) {
			m.openDetail()
			return m, nil
		}
		m.detail = nil
	case nav.DetailOpenURL:
		url, err := platform.ValidateEntryURL(m.detail.Entry().ResolvedURL())
		if err != nil {
			m.setWarning(err.Error())
			return m, nil
		}
		return m, tuiactions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
	case nav.DetailCopyURL:
		url, err := platform.ValidateEntryURL(m.detail.Entry().ResolvedURL())
		if err != nil {
			m.setWarning(err.Error())
			return m, nil
		}
		return m, tuiactions.CopyURLCmd(url, m.copyURLFn)
	case nav.DetailHelp:
		m.showHelp = true
	case nav.DetailQuit:
		return m, tea.Quit
	case nav.DetailUnhandled:
		return m.dispatchKey(res.Key, m.detail.Entry())
	}
	return m, nil
}

// dispatchKey runs the action bound to k, if any, against entry.
func (m Model) dispatchKey(k string, entry saved.Entry) (tea.Model, tea.Cmd) {
	action, ok := m.dispatcher.Lookup(k)
	if !ok {
		return m, nil
	}
	cmd, err := m.dispatcher.Command(action, entry)
	if err != nil {
		m.logger.Warn("action not started", "key", k, "command", action.Command, "err", err)
		if errors.Is(err, dispatch.ErrCommandNotFound) {
			m.setWarning(k + ": command not found: " + action.Command)
		} else {
			m.setWarning(k + ": " + err.Error())
		}
		return m, nil
	}
	m.logger.Info("running action", "key", k, "command", action.Describe(), "entry", entry.ID)
	return m, tuiactions.RunActionCmd(k, cmd)
}

func (m *Model) openDetail() {
	entry, ok := m.list.Current()
	if !ok {
		m.detail = nil
		return
	}
	m.detail = nav.NewDetail(entry, m.width, m.detailRows(entry))
}

func (m Model) detailRows(entry saved.Entry) int {
	return state.DetailPageRows(m.height, len(view.DetailHeader(entry, m.width, m.utc, m.theme)))
}

func (m *Model) setWarning(text string) {
	m.status = text
	m.statusWarn = true
}

func (m Model) View() string {
	var lines []string
	switch {
	case m.showHelp:
		lines = m.helpView()
	case m.detail != nil:
		lines = m.detailView()
	default:
		lines = m.listView()
	}
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) listView() []string {
	left, style := view.ListHints(), m.theme.Hint
	if m.list.Mode() == nav.Filtering {
		left, style = view.FilterPrompt(m.list.Filter()), m.theme.Filter
	}
	left, style = m.statusOr(left, style)

	right := view.Position(m.list.Filter(), m.list.Cursor(), m.list.Len())
	lines := view.TitleBar(left, right, style, m.width, m.theme)
	start, end := m.list.Window()
	return append(lines, view.ListPane(m.list.Entries(), start, end, m.list.Cursor(), m.width, m.theme)...)
}

func (m Model) detailView() []string {
	left, style := m.statusOr(view.DetailHints(), m.theme.Hint)
	right := view.Position("", m.list.Cursor(), m.list.Len())

	entry := m.detail.Entry()
	lines := view.TitleBar(left, right, style, m.width, m.theme)
	lines = append(lines, view.DetailHeader(entry, m.width, m.utc, m.theme)...)
	lines = append(lines, "")
	start, end := m.detail.Window()
	return append(lines, view.DetailBody(m.detail.Lines(), start, end, m.width, m.theme)...)
}

func (m Model) helpView() []string {
	var groups [][]key.Binding
	if m.detail != nil {
		groups = nav.DetailKeys.FullHelp()
	} else {
		groups = nav.ListKeys.FullHelp()
	}
	if actions := m.actionBindings(); len(actions) > 0 {
		groups = append(groups, actions)
	}

	lines := view.TitleBar("help | ?/esc:close", "", m.theme.Hint, m.width, m.theme)
	return append(lines, strings.Split(m.help.FullHelpView(groups), "\n")...)
}

func (m Model) actionBindings() []key.Binding {
	actions := m.dispatcher.Actions()
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		out = append(out, key.NewBinding(key.WithKeys(a.Key), key.WithHelp(a.Key, a.Describe())))
	}
	return out
}

func (m Model) statusOr(left string, style lipgloss.Style) (string, lipgloss.Style) {
	if m.status == "" {
		return left, style
	}
	if m.statusWarn {
		return m.status, m.theme.StatusWarn
	}
	return m.status, m.theme.StatusInfo
}
