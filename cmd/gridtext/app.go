package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/gridtext/editor"
	"github.com/iw2rmb/gridtext/internal/grapheme"
)

type appKeys struct {
	Save key.Binding
	Quit key.Binding
	Help key.Binding
}

var keys = appKeys{
	Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type app struct {
	path   string
	editor editor.Model
	help   help.Model
	status string
	width  int
}

func newApp(path string, cfg editor.Config) app {
	return app{path: path, editor: editor.New(cfg), help: help.New()}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width - helpStyle.GetHorizontalFrameSize()
		a.editor = a.editor.SetSize(msg.Width, msg.Height-1)
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Save):
			a.save()
			return a, nil
		case key.Matches(msg, keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	if err := a.editor.Err(); err != nil && err.Error() != a.status {
		a.status = err.Error()
		log.Printf("Gridtext: %v", err)
	}
	return a, cmd
}


func (a *app) save() {
	if a.path == "" {
		a.status = "no file to save to"
		return
	}
	if err := os.WriteFile(a.path, []byte(a.editor.Text()), 0o644); err != nil {
		a.status = fmt.Sprintf("save: %v", err)
		log.Printf("Gridtext: save %s: %v", a.path, err)
		return
	}
	a.editor = a.editor.MarkClean()
	a.status = "saved " + a.path
	log.Printf("Gridtext: saved %s", a.path)
}

// View draws the grid with the status line below it. The key help panel is
// composited over the center of the grid.
func (a app) View() string {
	grid := a.editor.View()
	if a.help.ShowAll {
		panel := helpStyle.Render(a.help.View(editor.DefaultKeyMap()))
		grid = overlay.Composite(panel, grid, overlay.Center, overlay.Center, 0, 0)
	}
	return grid + "\n" + statusStyle.Render(a.statusLine())
}

func (a app) statusLine() string {
	loc := a.editor.Session().Location()
	name := a.path
	if name == "" {
		name = "[scratch]"
	}
	if a.editor.Dirty() {
		name += " *"
	}
	cell := grapheme.PadRight(fmt.Sprintf("row %d, col %d", loc.Row+1, loc.Column+1), 18)
	line := fmt.Sprintf("%s  %s%s %s %s", name, cell,
		keys.Save.Help().Key, keys.Quit.Help().Key, keys.Help.Help().Key)
	if a.status != "" {
		line += "  " + a.status
	}
	if a.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(a.width).Render(line)
	}
	return line
}
