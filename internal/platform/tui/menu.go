package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuStart
	MenuHighScores
	MenuResetScores
	MenuQuit
)

// MenuItem is one selectable line of the main menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var mainMenuItems = []MenuItem{
	{Label: "Start Game", Choice: MenuStart},
	{Label: "High Scores", Choice: MenuHighScores},
	{Label: "Reset Scores", Choice: MenuResetScores},
	{Label: "Quit", Choice: MenuQuit},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the main menu. It is driven by AppModel and reports the
// player's pick instead of quitting the program.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int
	notice    string
	keyMapper *KeyMapper
	keys      MenuKeyMap
	help      help.Model
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:     mainMenuItems,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		keys:      DefaultMenuKeyMap(),
		help:      help.New(),
	}
}

// Update handles a key press and returns the choice it confirmed, if any.
func (m MenuModel) Update(msg tea.KeyMsg) (MenuModel, MenuChoice) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m, MenuQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.notice = ""

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.notice = ""

	case MenuActionSelect:
		m.notice = ""
		return m, m.items[m.cursor].Choice
	}

	return m, MenuNone
}

// SetSize updates the layout size.
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// SetNotice shows a one-line message under the menu until the next key press.
func (m *MenuModel) SetNotice(text string) {
	m.notice = text
}

// SetBest updates the best score shown under the title.
func (m *MenuModel) SetBest(score int) {
	m.best = score
}

// Cursor returns the highlighted item index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("F L A P P Y   R O C K E T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label + "  "
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.Label + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
