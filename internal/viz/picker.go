package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/kinetic/internal/engine"
)

// Choice is one scene the picker can launch.
type Choice struct {
	Name        string
	Description string
	Config      engine.Config
	Build       Builder
}

const (
	stateMenu = iota
	stateSim
)

// picker is the scene menu shown when no scene is named on the command
// line. Selecting an entry hands every later message to the live view.
type picker struct {
	choices []Choice
	cursor  int
	state   int
	live    Model
}

func NewPicker(choices []Choice) tea.Model { return picker{choices: choices} }

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateSim {
		newLive, cmd := p.live.Update(msg)
		p.live = newLive.(Model)
		return p, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.choices)-1 {
			p.cursor++
		}
	case "enter", " ":
		if len(p.choices) == 0 {
			return p, nil
		}
		c := p.choices[p.cursor]
		p.live = NewModel(c.Name, c.Build, c.Config)
		p.state = stateSim
		return p, p.live.Init()
	}
	return p, nil
}

func (p picker) View() string {
	if p.state == stateSim {
		return p.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("KINETIC") + "\n")
	b.WriteString("    " + dimStyle.Render("constraint physics sandbox") + "\n")
	b.WriteString("    " + dimStyle.Render(strings.Repeat("─", 26)) + "\n\n")
	for i, c := range p.choices {
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cursorStyle.Render("▸"),
				valueStyle.Render(fmt.Sprintf("%-10s", c.Name)),
				statusStyle.Render(c.Description)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				dimStyle.Render(fmt.Sprintf("%-10s", c.Name)),
				dimStyle.Render(c.Description)))
		}
	}
	b.WriteString("\n    " + cursorStyle.Render("j/k") + dimStyle.Render(" navigate  ") +
		cursorStyle.Render("enter") + dimStyle.Render(" select  ") +
		cursorStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

// RunPicker opens the scene menu and blocks until quit.
func RunPicker(choices []Choice) error {
	_, err := tea.NewProgram(NewPicker(choices), tea.WithAltScreen()).Run()
	return err
}
