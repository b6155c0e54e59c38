package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/amazeing/internal/core"
	"github.com/vovakirdan/amazeing/internal/savegame"
)

// maxMenuSlots caps how many save slots the launcher lists.
const maxMenuSlots = 8

// MenuChoice is what a launcher entry does.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewGame
	ChoiceContinue
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one launcher entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
	Slot   savegame.Slot // set for ChoiceContinue
}

// MenuModel is the Bubble Tea model for the launcher.
type MenuModel struct {
	title     string
	items     []MenuItem
	cursor    int
	width     int
	height    int
	saves     savegame.Repository
	keyMapper *KeyMapper
	notice    string
	quitting  bool
	selected  *MenuItem // Set when user picks an entry
}

// NewMenuModel creates a launcher listing the saved slots in saves.
func NewMenuModel(title string, saves savegame.Repository, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:     title,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		saves:     saves,
		keyMapper: NewKeyMapper(),
	}
	m.reload()
	return m
}

// reload rebuilds the entries from the save repository.
func (m *MenuModel) reload() {
	items := []MenuItem{{Label: "New game", Choice: ChoiceNewGame}}

	if m.saves != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()

		slots, err := m.saves.List(ctx)
		if err != nil {
			m.notice = "Save slots unavailable"
		}
		for i, s := range slots {
			if i == maxMenuSlots {
				break
			}
			items = append(items, MenuItem{
				Label:  fmt.Sprintf("Continue %q (%s)", s.Name, s.UpdatedAt.Local().Format("Jan 02 15:04")),
				Choice: ChoiceContinue,
				Slot:   s,
			})
		}
	}

	items = append(items,
		MenuItem{Label: "High scores", Choice: ChoiceScores},
		MenuItem{Label: "Quit", Choice: ChoiceQuit},
	)
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionDelete:
		m.deleteSelected()

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
		}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) deleteSelected() {
	item := m.items[m.cursor]
	if item.Choice != ChoiceContinue || m.saves == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	err := m.saves.Delete(ctx, item.Slot.Name)
	switch {
	case err == nil, errors.Is(err, savegame.ErrNotFound):
		m.notice = fmt.Sprintf("Deleted slot %q", item.Slot.Name)
	default:
		m.notice = "Delete failed: " + err.Error()
	}
	m.reload()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(dimStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Select  |  X: Delete slot  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
