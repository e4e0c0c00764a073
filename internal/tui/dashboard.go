package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kesh-dev/correlate/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "booting dashboard…"
	}

	header := HeaderStyle.Render("jcorrelate — live correlation dashboard")

	status := utils.CreateStatusIndicator("connected", "dispatcher running", GoodColor)
	load := utils.CreateProgressBar(loadFraction(m.active), 16, GoodColor)
	stats := lipgloss.JoinHorizontal(lipgloss.Left,
		status,
		"   ",
		utils.FormatKeyValue("open", fmt.Sprintf("%d %s", m.active, load), 6),
		"   ",
		utils.FormatKeyValue("closed", fmt.Sprintf("%d", m.closedTotal), 8),
		"   ",
		utils.FormatKeyValue("uptime", utils.FormatDuration(time.Since(m.startedAt)), 8),
	)

	sparkLabel := MutedStyle.Render("contexts closed per tick")
	sparkView := lipgloss.JoinVertical(lipgloss.Left, sparkLabel, m.spark.View())

	listView := m.zones.Mark("action-list", m.list.View())

	footer := FooterStyle.Render("q quit · / filter · d detail · ↑/↓ select")

	full := lipgloss.JoinVertical(lipgloss.Left, header, stats, "", sparkView, "", listView, footer)
	return m.zones.Scan(full)
}

// maxExpectedActive scales the open-contexts load bar; it's a display
// hint, not an enforced ceiling — a correlator may hold more contexts
// than this without anything breaking.
const maxExpectedActive = 32

func loadFraction(active int) float64 {
	f := float64(active) / maxExpectedActive
	if f > 1 {
		f = 1
	}
	return f
}
