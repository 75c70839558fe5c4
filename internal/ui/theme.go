package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Advent theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTree    = "🎄"
	IconGift    = "🎁"
	IconSparkle = "✨"
	IconLock    = "🔒"
	IconOpen    = "🔓"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconStar    = "⭐"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconKey     = "🔑"
	IconSnow    = "❄️"
)

var (
	cPrimary = lipgloss.Color("28")  // pine green
	cAccent  = lipgloss.Color("161") // christmas red
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel        = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	DoorLocked   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(cMuted).Foreground(cMuted).Padding(0, 1)
	DoorUnlocked = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cGold).Foreground(cGold).Padding(0, 1)
	DoorRedeemed = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cGood).Foreground(cGood).Padding(0, 1)
	DoorSelected = lipgloss.NewStyle().BorderStyle(lipgloss.ThickBorder()).BorderForeground(cAccent).Bold(true).Padding(0, 1)

	BadgeMilestone = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("MILESTONE")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	switch s {
	case "redeemed":
		return Good.Render("redeemed")
	case "unlocked":
		return Gold.Render("unlocked")
	case "locked":
		return Muted.Render("locked")
	default:
		return Muted.Render(status)
	}
}

func StatusIcon(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "redeemed":
		return IconDone
	case "unlocked":
		return IconGift
	default:
		return IconLock
	}
}
