// Package repl is the interactive session shell: a Bubble Tea program
// with a command prompt and a transcript of results. It is the boundary
// layer that converts errors into rendered text so a session never dies
// on bad input or a failed save.
package repl

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskline/internal/command"
	"github.com/idilsaglam/taskline/internal/render"
)

// Transcript entries kept on screen; older ones scroll away for good.
const maxTranscript = 200

type entry struct {
	input  string
	output string
}

type model struct {
	interp   *command.Interpreter
	ti       textinput.Model
	log      []entry
	quitting bool
}

// Run starts the session and blocks until the user says bye (or hits
// ctrl+c). Every mutation was persisted as it happened, so quitting
// saves nothing extra.
func Run(interp *command.Interpreter) error {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "todo read book"
	ti.CharLimit = 200
	ti.Focus()

	m := model{interp: interp, ti: ti}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.KeyMsg:
		switch x.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.ti.Value()
			m.ti.SetValue("")
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			out, quit := m.run(line)
			m.log = append(m.log, entry{input: line, output: out})
			if len(m.log) > maxTranscript {
				m.log = m.log[len(m.log)-maxTranscript:]
			}
			if quit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// run executes one line. Domain errors render with their own message;
// anything else is a storage fault and gets the generic text (the
// in-memory list is still the source of truth).
func (m model) run(line string) (output string, quit bool) {
	cmd, err := command.Parse(line)
	if err == nil {
		output, err = m.interp.Execute(cmd)
	}
	if err != nil {
		var derr *command.Error
		if errors.As(err, &derr) {
			return render.DomainError(derr.Error()), false
		}
		return render.Fault("I couldn't save your tasks just now; they are still here in memory."), false
	}
	if _, bye := cmd.(command.Bye); bye {
		return output, true
	}
	return output, false
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(render.Greeting())
	b.WriteString("\n\n")
	for _, e := range m.log {
		b.WriteString("> " + e.input + "\n")
		if e.output != "" {
			b.WriteString(e.output + "\n")
		}
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.ti.View())
	b.WriteString("\n")
	return b.String()
}
