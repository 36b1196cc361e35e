// Package tui implements the interactive section browser following the
// Elm architecture. The left pane lists the document's heading outline;
// the right pane shows the selected section's text.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// focusArea tracks which pane receives key events.
type focusArea int

const (
	focusOutline focusArea = iota
	focusContent
)

// sectionItem adapts a domain.Section to the bubbles list.
type sectionItem struct {
	section domain.Section
}

// Title renders the outline entry, indented by heading depth.
func (i sectionItem) Title() string {
	return strings.Repeat("  ", i.section.Level-1) + i.section.HeadingText
}

// Description shows the heading depth.
func (i sectionItem) Description() string {
	return fmt.Sprintf("h%d", i.section.Level)
}

// FilterValue makes the built-in list filter match heading text.
func (i sectionItem) FilterValue() string {
	return i.section.HeadingText
}

// App is the section browser. It implements tea.Model for use with
// Bubbletea.
type App struct {
	path    string
	outline list.Model
	content viewport.Model
	keys    keyMap
	styles  *styles
	focus   focusArea
	width   int
	height  int
	ready   bool
}

// NewApp creates the browser over a parsed outline.
func NewApp(path string, sections []domain.Section) *App {
	items := make([]list.Item, len(sections))
	for i, sec := range sections {
		items[i] = sectionItem{section: sec}
	}

	st := newStyles()
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = st.selectedTitle
	delegate.Styles.SelectedDesc = st.selectedDesc

	outline := list.New(items, delegate, 0, 0)
	outline.Title = path
	outline.SetShowStatusBar(false)
	outline.SetShowHelp(true)
	outline.DisableQuitKeybindings()

	return &App{
		path:    path,
		outline: outline,
		keys:    defaultKeyMap(),
		styles:  st,
		focus:   focusOutline,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.ready = true
		a.refreshContent()
		return a, nil

	case tea.KeyMsg:
		// The list's filter input owns the keyboard while filtering.
		if a.focus == focusOutline && a.outline.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Focus):
			if a.focus == focusOutline {
				a.focus = focusContent
				return a, nil
			}
		case key.Matches(msg, a.keys.Back):
			if a.focus == focusContent {
				a.focus = focusOutline
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	if a.focus == focusContent {
		a.content, cmd = a.content.Update(msg)
		return a, cmd
	}

	before := a.outline.Index()
	a.outline, cmd = a.outline.Update(msg)
	if a.outline.Index() != before {
		a.refreshContent()
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	outlineStyle := a.styles.pane
	contentStyle := a.styles.pane
	if a.focus == focusOutline {
		outlineStyle = a.styles.focusedPane
	} else {
		contentStyle = a.styles.focusedPane
	}

	left := outlineStyle.Render(a.outline.View())
	right := contentStyle.Render(a.content.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// layout sizes both panes from the terminal dimensions.
func (a *App) layout() {
	frameW, frameH := a.styles.pane.GetFrameSize()

	leftWidth := a.width / 3
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := a.width - leftWidth - 2*frameW
	if rightWidth < 20 {
		rightWidth = 20
	}
	height := a.height - frameH

	a.outline.SetSize(leftWidth, height)
	a.content.Width = rightWidth
	a.content.Height = height
}

// refreshContent loads the selected section's text into the right pane.
func (a *App) refreshContent() {
	item, ok := a.outline.SelectedItem().(sectionItem)
	if !ok {
		a.content.SetContent("")
		return
	}
	a.content.SetContent(item.section.FullText)
	a.content.GotoTop()
}

// Sections returns the full outline backing the browser. Used by tests.
func (a *App) Sections() []domain.Section {
	items := a.outline.Items()
	sections := make([]domain.Section, 0, len(items))
	for _, it := range items {
		if si, ok := it.(sectionItem); ok {
			sections = append(sections, si.section)
		}
	}
	return sections
}
