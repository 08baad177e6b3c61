package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// menuStyles groups the lipgloss styles of the difficulty picker.
type menuStyles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
}

func defaultMenuStyles() menuStyles {
	return menuStyles{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	styles    menuStyles
	quitting  bool
	selected  *config.DifficultyPreset
}

// NewMenuModel creates a new menu model with the cursor on initial.
func NewMenuModel(cfg core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	items := config.Presets()
	cursor := 0
	for i, p := range items {
		if p == initial {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		styles:    defaultMenuStyles(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
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
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		m.styles.Title.Render("T E T R I S"),
		"",
		m.styles.Subtitle.Render("Select difficulty"),
		"",
	}
	for i, item := range m.items {
		label := fmt.Sprintf("  %-7s", item)
		style := m.styles.ItemNormal
		if i == m.cursor {
			label = fmt.Sprintf("> %-7s", item)
			style = m.styles.ItemActive
		}
		lines = append(lines, style.Render(label)+"  "+m.styles.Description.Render(item.Description()))
	}
	lines = append(lines, "", m.help.View(m.keyMapper.Menu))

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m MenuModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the difficulty picker and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, initial)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: run menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{Preset: *m.Selected(), Config: m.Config()}, nil
}
