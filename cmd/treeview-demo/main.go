// Command treeview-demo is a thin terminal front-end over the treeview
// engine: a bubbletea program that seeds the sample fixture, maps
// keystrokes onto command.Command values, and paints each frame through a
// lipgloss/uniwidth drawing surface.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arbortui/treeview"
	"github.com/arbortui/treeview/command"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/render"
)

const defaultViewportHeight = 20

// glyphSets are the connector glyph choices -glyphs accepts.
var glyphSets = map[string]render.Config{
	"ascii": {
		Connection:  "|",
		Mid:         "+",
		End:         "`",
		IndentWidth: 2,
	},
	"unicode": {
		Connection:  "│",
		Mid:         "├",
		End:         "└",
		IndentWidth: 2,
	},
}

type model struct {
	tree   *treeview.Tree
	width  int
	height int
}

func initialModel(cfg render.Config, height int) model {
	f := forest.New()
	seedSampleData(f)
	tree := treeview.NewFromForest(f, height, cfg)
	return model{tree: tree, height: height}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tree.Resize(m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.tree.Dispatch(command.MoveUp)
		case "down", "j":
			m.tree.Dispatch(command.MoveDown)
		case "left", "h":
			m.tree.Dispatch(command.Collapse)
		case "right", "l":
			m.tree.Dispatch(command.Expand)
		case "c":
			m.tree.Dispatch(command.AddChild)
		case "s":
			m.tree.Dispatch(command.AddSibling)
		case "d":
			m.tree.Dispatch(command.Remove)
		case "m":
			m.tree.Dispatch(command.RecordHandle)
		case "g":
			m.tree.Dispatch(command.GotoRecorded)
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	surface := newScreen(m.width, m.height)
	m.tree.Paint(surface)
	return surface.Render()
}

func main() {
	glyphs := flag.String("glyphs", "ascii", "connector glyph set to draw with (ascii, unicode)")
	height := flag.Int("height", defaultViewportHeight, "initial viewport height in rows")
	flag.Parse()

	cfg, ok := glyphSets[*glyphs]
	if !ok {
		fmt.Fprintf(os.Stderr, "treeview-demo: unknown glyph set %q (want ascii or unicode)\n", *glyphs)
		os.Exit(1)
	}
	if *height < 1 {
		fmt.Fprintf(os.Stderr, "treeview-demo: -height must be positive, got %d\n", *height)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(cfg, *height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "treeview-demo:", err)
		os.Exit(1)
	}
}
