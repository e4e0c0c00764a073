package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kesh-dev/correlate/internal/correlate"
	"github.com/kesh-dev/correlate/utils"
	zone "github.com/lrstanley/bubblezone"
)

const maxHistoryPoints = 120

// detailLevel controls how much of an action's fields the list row shows.
// Cycled with the "d" key via utils.GetNextEnum, the same helper the
// reference dashboards use to step through view/tab enums.
type detailLevel int

const (
	detailFull detailLevel = iota
	detailCompact
	detailLevelMax = detailCompact
)

// actionItem adapts an emitted Message to bubbles/list's Item interface,
// the same pattern the reference dashboard uses for its process picker.
type actionItem struct {
	msg     *correlate.Message
	at      string
	compact bool
}

func (i actionItem) FilterValue() string {
	name, _ := i.msg.Name()
	return name + " " + i.msg.UUID()
}

func (i actionItem) Title() string {
	name, ok := i.msg.Name()
	if !ok {
		name = i.msg.UUID()
	}
	return fmt.Sprintf("%s  %s", i.at, name)
}

func (i actionItem) Description() string {
	values := i.msg.Values()
	if len(values) == 0 {
		return MutedStyle.Render("(no fields)")
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, values[k]))
	}
	line := strings.Join(parts, "  ")
	if i.compact {
		return utils.TruncateString(line, 48)
	}
	return line
}

type keyMap struct {
	Quit   key.Binding
	Detail key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Detail: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle detail")),
}

// Model is the dashboard's bubbletea model. It owns no reference to the
// Correlator itself — it only ever learns about it through Feed, keeping
// the TUI package free to run against a live correlator, a recording, or
// (in tests) a hand-fed Feed.
type Model struct {
	feed *Feed

	width, height int

	active      int
	closedTotal uint64
	history     []float64
	detail      detailLevel
	startedAt   time.Time

	spark sparkline.Model
	list  list.Model
	zones *zone.Manager

	quitting bool
}

// New builds the dashboard model. zones is the process-wide bubblezone
// manager; callers create exactly one and share it across any other
// zone-aware bubbletea programs in the process.
func New(feed *Feed, zones *zone.Manager) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(InfoColor).BorderForeground(InfoColor)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Recently closed contexts"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return Model{
		feed:      feed,
		spark:     sparkline.New(40, 6, sparkline.WithStyle(lipgloss.NewStyle().Foreground(GoodColor))),
		list:      l,
		zones:     zones,
		startedAt: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForAction(m.feed), waitForStats(m.feed))
}

type actionMsg actionEvent
type statsMsg correlate.Stats

func waitForAction(f *Feed) tea.Cmd {
	return func() tea.Msg { return actionMsg(<-f.actions) }
}

func waitForStats(f *Feed) tea.Cmd {
	return func() tea.Msg { return statsMsg(<-f.stats) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listHeight := max(m.height-12, 5)
		m.list.SetSize(m.width-4, listHeight)
		m.spark.Resize(min(m.width-4, maxHistoryPoints), 6)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) && !m.list.SettingFilter() {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Detail) && !m.list.SettingFilter() {
			m.detail = utils.GetNextEnum(m.detail, detailLevelMax)
			return m, m.list.SetItems(recompactItems(m.list.Items(), m.detail == detailCompact))
		}

	case tea.MouseMsg:
		// The zone bounds check below has no effect on the model; the
		// mouse message falls through unchanged to the list's own Update.
		if m.zones != nil && msg.Action == tea.MouseActionPress {
			_ = m.zones.Get("action-list").InBounds(msg)
		}

	case actionMsg:
		at := msg.At.Format("15:04:05")
		newItem := actionItem{msg: msg.Message, at: at, compact: m.detail == detailCompact}
		items := append([]list.Item{newItem}, m.list.Items()...)
		if len(items) > 200 {
			items = items[:200]
		}
		setCmd := m.list.SetItems(items)
		return m, tea.Batch(setCmd, waitForAction(m.feed))

	case statsMsg:
		m.active = msg.ActiveContexts
		closedThisTick := float64(0)
		if uint64(msg.ClosedTotal) >= m.closedTotal {
			closedThisTick = float64(uint64(msg.ClosedTotal) - m.closedTotal)
		}
		m.closedTotal = uint64(msg.ClosedTotal)
		m.history = append(m.history, closedThisTick)
		if len(m.history) > maxHistoryPoints {
			m.history = m.history[len(m.history)-maxHistoryPoints:]
		}
		m.spark.Push(closedThisTick)
		m.spark.Draw()
		return m, waitForStats(m.feed)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// recompactItems rebuilds the item slice with compact set uniformly, so
// toggling detail level applies retroactively to already-listed actions.
func recompactItems(items []list.Item, compact bool) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		a := it.(actionItem)
		a.compact = compact
		out[i] = a
	}
	return out
}
