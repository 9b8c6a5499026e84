package prompt

import (
	"errors"
	"io"
	"os"

	"github.com/ayushukla02/panda-react-library/internal/project"
)

// ErrAborted is returned when the user cancels or input ends early.
var ErrAborted = errors.New("prompt aborted")

// DefaultName is offered for the project name question.
const DefaultName = "my-panda-app"

// Question texts.
const (
	QuestionName   = "Project name:"
	QuestionUI     = "Choose a UI library (one):"
	QuestionExtras = "Choose extra Libraries (select all that apply):"
	QuestionGit    = "Initialize a git repository?"

	invalidNameHint = "Use only letters, numbers, hyphen, underscore"
)

// Answers are the raw responses. Extras may still contain "none".
type Answers struct {
	Name    string
	UI      project.UILibrary
	Extras  []project.ExtraLibrary
	InitGit bool
}

// Selection validates the answers and normalizes them into a Selection for
// the given package manager.
func (a Answers) Selection(packageManager string) (project.Selection, error) {
	return project.NewSelection(a.Name, a.UI, a.Extras, a.InitGit, packageManager)
}

// defaultExtras are pre-checked in the extras question.
func defaultExtras() []project.ExtraLibrary {
	return []project.ExtraLibrary{project.ExtraNone}
}

// Interactive runs the TUI when in is a terminal and the line prompt
// otherwise.
func Interactive(in *os.File, out io.Writer) (Answers, error) {
	if isTerminal(in) {
		return RunTUI(in, out)
	}
	return Collect(in, out)
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
