package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"advent/internal/engine"
	"advent/internal/ledger"
	"advent/internal/ui"
)

const gridCols = 6

type boardModel struct {
	ctx        context.Context
	svc        *engine.Service
	milestones *engine.Milestones

	width  int
	height int

	doors []engine.Door
	stats ledger.Stats

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	doors []engine.Door
	stats ledger.Stats
}

type redeemedMsg struct {
	id  int
	res *engine.RedeemResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, milestones *engine.Milestones) boardModel {
	return boardModel{
		ctx:        ctx,
		svc:        svc,
		milestones: milestones,
		loading:    true,
		lastLog:    "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{doors: m.svc.Doors(), stats: m.svc.Stats()}
	}
}

func (m boardModel) redeemCmd(id int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Redeem(m.ctx, id, m.milestones)
		return redeemedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.doors = msg.doors
		m.stats = msg.stats
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case redeemedMsg:
		if msg.err != nil {
			m.lastLog = "Redeem failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyRedeemed {
			m.lastLog = fmt.Sprintf("Door %d was already redeemed.", msg.id)
			return m, m.loadCmd()
		}
		m.lastLog = fmt.Sprintf("Redeemed door %d: %s %s", msg.id, msg.res.Coupon.Emoji, msg.res.Coupon.Title)
		for _, ms := range msg.res.Milestones {
			m.lastLog += " | " + ui.BadgeMilestone + " " + ms.Message
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "right", "l":
			if m.selected < len(m.doors)-1 {
				m.selected++
			}
			return m, nil
		case "up", "k":
			if m.selected-gridCols >= 0 {
				m.selected -= gridCols
			}
			return m, nil
		case "down", "j":
			if m.selected+gridCols < len(m.doors) {
				m.selected += gridCols
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.doors) {
				return m, nil
			}
			door := m.doors[m.selected]
			switch door.Status {
			case engine.StatusLocked:
				// Locked doors never reach the ledger.
				m.lastLog = engine.LockedDoorError{Day: door.Coupon.Day, DaysUntil: door.DaysUntil}.Error()
				return m, nil
			case engine.StatusRedeemed:
				m.lastLog = "Already redeemed."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Redeeming door %d…", door.Coupon.ID)
			return m, m.redeemCmd(door.Coupon.ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	grid := m.renderGrid()
	detail := m.renderDetail()
	footer := m.renderFooter()

	return header + "\n\n" + grid + "\n" + detail + footer
}

func (m boardModel) renderHeader() string {
	if m.loading && len(m.doors) == 0 {
		return "Advent Calendar (loading…)"
	}
	bar := progressBar(m.stats.Redeemed, m.stats.Total, 24)
	return fmt.Sprintf("%s Advent Calendar | %d/%d redeemed (%d%%) %s",
		ui.IconTree, m.stats.Redeemed, m.stats.Total, m.stats.Percentage, bar)
}

func (m boardModel) renderGrid() string {
	if len(m.doors) == 0 {
		return "(empty calendar)"
	}

	var rows []string
	for start := 0; start < len(m.doors); start += gridCols {
		end := start + gridCols
		if end > len(m.doors) {
			end = len(m.doors)
		}
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, m.renderDoor(i))
		}
		rows = append(rows, joinCells(cells))
	}
	return strings.Join(rows, "\n")
}

func (m boardModel) renderDoor(i int) string {
	d := m.doors[i]
	label := fmt.Sprintf("%2d %s", d.Coupon.Day, ui.StatusIcon(string(d.Status)))

	style := ui.DoorLocked
	switch d.Status {
	case engine.StatusUnlocked:
		style = ui.DoorUnlocked
	case engine.StatusRedeemed:
		style = ui.DoorRedeemed
	}
	if i == m.selected {
		style = ui.DoorSelected
	}
	return style.Render(label)
}

func (m boardModel) renderDetail() string {
	if m.selected < 0 || m.selected >= len(m.doors) {
		return ""
	}
	d := m.doors[m.selected]

	var lines []string
	switch d.Status {
	case engine.StatusLocked:
		lines = append(lines, fmt.Sprintf("Door %d: %s", d.Coupon.Day, ui.StatusText(string(d.Status))))
		lines = append(lines, fmt.Sprintf("Opens in %d day(s).", d.DaysUntil))
	case engine.StatusUnlocked:
		today := ""
		if d.IsToday {
			today = " (today!)"
		}
		lines = append(lines, fmt.Sprintf("Door %d: %s%s", d.Coupon.Day, ui.StatusText(string(d.Status)), today))
		lines = append(lines, fmt.Sprintf("%s %s: %s", d.Coupon.Emoji, d.Coupon.Title, d.Coupon.Description))
		lines = append(lines, ui.Muted.Render("enter/space to redeem"))
	case engine.StatusRedeemed:
		lines = append(lines, fmt.Sprintf("Door %d: %s", d.Coupon.Day, ui.StatusText(string(d.Status))))
		lines = append(lines, fmt.Sprintf("%s %s", d.Coupon.Emoji, d.Coupon.Title))
	}
	lines = append(lines, "")
	lines = append(lines, ui.Muted.Render("←/→/↑/↓ move · enter redeem · r refresh · q quit"))
	return strings.Join(lines, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// joinCells glues styled door cells side by side, line by line.
func joinCells(cells []string) string {
	split := make([][]string, len(cells))
	max := 0
	for i, c := range cells {
		split[i] = strings.Split(c, "\n")
		if len(split[i]) > max {
			max = len(split[i])
		}
	}
	var b strings.Builder
	for line := 0; line < max; line++ {
		for i := range split {
			if line < len(split[i]) {
				b.WriteString(split[i][line])
			}
			b.WriteString(" ")
		}
		if line < max-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
