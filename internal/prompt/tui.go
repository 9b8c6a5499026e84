package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayushukla02/panda-react-library/internal/project"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type step int

const (
	stepName step = iota
	stepUI
	stepExtras
	stepGit
	stepDone
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

type model struct {
	step    step
	name    textinput.Model
	nameErr string
	cursor  int
	ui      project.UILibrary
	checked []bool
	git     bool
	aborted bool
}

func newModel() model {
	ti := textinput.New()
	ti.Placeholder = DefaultName
	ti.Prompt = ""
	ti.CharLimit = 214
	ti.Focus()

	checked := make([]bool, len(project.ExtraLibraries))
	for i, e := range project.ExtraLibraries {
		for _, d := range defaultExtras() {
			if e == d {
				checked[i] = true
			}
		}
	}
	return model{step: stepName, name: ti, checked: checked, git: true}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.step == stepName {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	}

	switch m.step {
	case stepName:
		return m.updateName(key)
	case stepUI:
		return m.updateUI(key)
	case stepExtras:
		return m.updateExtras(key)
	case stepGit:
		return m.updateGit(key)
	}
	return m, nil
}

func (m model) updateName(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(key)
		m.nameErr = ""
		return m, cmd
	}
	value := m.name.Value()
	if value == "" {
		value = DefaultName
	}
	if project.ValidateName(value) != nil {
		m.nameErr = invalidNameHint
		return m, nil
	}
	m.name.SetValue(value)
	m.name.Blur()
	m.step = stepUI
	m.cursor = 0
	return m, nil
}

func (m model) moveCursor(key tea.KeyMsg, n int) model {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	}
	return m
}

func (m model) updateUI(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		m.ui = project.UILibraries[m.cursor]
		m.step = stepExtras
		m.cursor = 0
		return m, nil
	}
	return m.moveCursor(key, len(project.UILibraries)), nil
}

func (m model) updateExtras(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Type == tea.KeyEnter:
		m.step = stepGit
		return m, nil
	case key.Type == tea.KeySpace || key.String() == " ":
		checked := make([]bool, len(m.checked))
		copy(checked, m.checked)
		checked[m.cursor] = !checked[m.cursor]
		m.checked = checked
		return m, nil
	}
	return m.moveCursor(key, len(project.ExtraLibraries)), nil
}

func (m model) updateGit(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(key.String()) {
	case "y":
		m.git = true
	case "n":
		m.git = false
	case "enter":
	default:
		return m, nil
	}
	m.step = stepDone
	return m, tea.Quit
}

func (m model) extras() []project.ExtraLibrary {
	out := []project.ExtraLibrary{}
	for i, c := range m.checked {
		if c {
			out = append(out, project.ExtraLibraries[i])
		}
	}
	return out
}

func (m model) answers() Answers {
	return Answers{
		Name:    m.name.Value(),
		UI:      m.ui,
		Extras:  m.extras(),
		InitGit: m.git,
	}
}

func (m model) View() string {
	var b strings.Builder

	question := func(q string) {
		b.WriteString(markStyle.Render("?") + " " + questionStyle.Render(q) + " ")
	}

	question(QuestionName)
	if m.step == stepName {
		b.WriteString(m.name.View() + "\n")
		if m.nameErr != "" {
			b.WriteString(errorStyle.Render(">> "+m.nameErr) + "\n")
		}
		return b.String()
	}
	b.WriteString(answerStyle.Render(m.name.Value()) + "\n")

	question(QuestionUI)
	if m.step == stepUI {
		b.WriteString(hintStyle.Render("(Use arrow keys)") + "\n")
		for i, u := range project.UILibraries {
			b.WriteString(m.row(i, u.Label()) + "\n")
		}
		return b.String()
	}
	b.WriteString(answerStyle.Render(m.ui.Label()) + "\n")

	question(QuestionExtras)
	if m.step == stepExtras {
		b.WriteString(hintStyle.Render("(Press <space> to select, <enter> to proceed)") + "\n")
		for i, e := range project.ExtraLibraries {
			box := "◯"
			if m.checked[i] {
				box = markStyle.Render("◉")
			}
			b.WriteString(m.row(i, box+" "+e.Label()) + "\n")
		}
		return b.String()
	}
	labels := []string{}
	for _, e := range m.extras() {
		labels = append(labels, e.Label())
	}
	b.WriteString(answerStyle.Render(strings.Join(labels, ", ")) + "\n")

	question(QuestionGit)
	if m.step == stepGit {
		b.WriteString(hintStyle.Render("(Y/n)") + "\n")
		return b.String()
	}
	answer := "No"
	if m.git {
		answer = "Yes"
	}
	b.WriteString(answerStyle.Render(answer) + "\n")
	return b.String()
}

func (m model) row(i int, label string) string {
	if i == m.cursor {
		return cursorStyle.Render("❯ " + label)
	}
	return "  " + label
}

// RunTUI runs the questions as an inline bubbletea program. Ctrl+C or Esc
// returns ErrAborted.
func RunTUI(in io.Reader, out io.Writer) (Answers, error) {
	p := tea.NewProgram(newModel(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("running prompt: %w", err)
	}
	m, ok := final.(model)
	if !ok || m.aborted || m.step != stepDone {
		return Answers{}, ErrAborted
	}
	return m.answers(), nil
}
