package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the title menu asks the model to do.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScoreboard
	ChoiceResetRecord
	ChoiceQuit
)

// MenuItem is a selectable title-menu line.
type MenuItem struct {
	Title  string
	Key    string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Start", Key: "enter", Choice: ChoiceStart},
	{Title: "Run history", Key: "tab", Choice: ChoiceScoreboard},
	{Title: "Reset record", Key: "r", Choice: ChoiceResetRecord},
	{Title: "Quit", Key: "q", Choice: ChoiceQuit},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))
	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const banner = `▀█▀ ▄▀█ █▄ █ █▀▀ █ █ █▀▀ █▄▀ █▀▀
 █  █▀█ █ ▀█ █▄▄ █▀█ ██▄ █ █ ██▄`

// MenuModel is the title screen: banner, record and the item list.
type MenuModel struct {
	cursor int
	width  int
	height int
	notice string
}

// NewMenuModel creates a title menu sized to the terminal.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{width: width, height: height}
}

// Update handles a key and reports the chosen item, if any.
func (m MenuModel) Update(msg tea.KeyMsg) (MenuModel, MenuChoice) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m, ChoiceQuit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m, menuItems[m.cursor].Choice
	case MenuActionStart:
		return m, ChoiceStart
	case MenuActionResetRecord:
		return m, ChoiceResetRecord
	case MenuActionScoreboard:
		return m, ChoiceScoreboard
	}
	return m, ChoiceNone
}

// Resize updates the layout size.
func (m *MenuModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetNotice shows a one-line message under the item list.
func (m *MenuModel) SetNotice(s string) {
	m.notice = s
}

// View renders the menu with the given record.
func (m MenuModel) View(record int) string {
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range strings.Split(banner, "\n") {
		b.WriteString(centerText(titleStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(recordStyle.Render(fmt.Sprintf("RECORD: %d", record)), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%-14s %6s", item.Title, "["+item.Key+"]")
		if i == m.cursor {
			line = selectedStyle.Render("> " + line + " ")
		} else {
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "arrows/wasd move  space fire  f zoom  b bonus  p pause"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width, measuring its printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
