package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ayushukla02/panda-react-library/internal/project"
)

// Collect asks the questions on w and reads answers from r, one per line.
// Invalid answers are asked again. End of input before all answers are in
// returns ErrAborted.
func Collect(r io.Reader, w io.Writer) (Answers, error) {
	reader := bufio.NewReader(r)
	var a Answers

	name, err := askName(reader, w)
	if err != nil {
		return Answers{}, err
	}
	a.Name = name

	uiLabels := make([]string, len(project.UILibraries))
	for i, u := range project.UILibraries {
		uiLabels[i] = u.Label()
	}
	idx, err := selectFromList(reader, w, QuestionUI, uiLabels)
	if err != nil {
		return Answers{}, err
	}
	a.UI = project.UILibraries[idx]

	extras, err := selectMany(reader, w)
	if err != nil {
		return Answers{}, err
	}
	a.Extras = extras

	git, err := confirm(reader, w, QuestionGit, true)
	if err != nil {
		return Answers{}, err
	}
	a.InitGit = git

	return a, nil
}

// readLine returns the next line without its line terminator. A final line
// without a newline still counts; an empty read at end of input is ErrAborted.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func askName(reader *bufio.Reader, w io.Writer) (string, error) {
	for {
		fmt.Fprintf(w, "? %s (%s) ", QuestionName, DefaultName)
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if line == "" {
			line = DefaultName
		}
		if project.ValidateName(line) == nil {
			return line, nil
		}
		fmt.Fprintf(w, ">> %s\n", invalidNameHint)
	}
}

// selectFromList presents a numbered list and returns the selected index.
// An empty answer picks the first item.
func selectFromList(reader *bufio.Reader, w io.Writer, question string, items []string) (int, error) {
	for {
		fmt.Fprintf(w, "? %s\n", question)
		for i, item := range items {
			fmt.Fprintf(w, "  %d) %s\n", i+1, item)
		}
		fmt.Fprintf(w, "Enter number [1-%d]: ", len(items))

		line, err := readLine(reader)
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, nil
		}
		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		fmt.Fprintf(w, ">> invalid selection %q: choose 1-%d\n", line, len(items))
	}
}

// selectMany asks the extras checkbox question. Numbers may be separated by
// commas or spaces; an empty answer keeps the pre-checked defaults.
func selectMany(reader *bufio.Reader, w io.Writer) ([]project.ExtraLibrary, error) {
	defaults := defaultExtras()
	for {
		fmt.Fprintf(w, "? %s\n", QuestionExtras)
		for i, e := range project.ExtraLibraries {
			mark := " "
			for _, d := range defaults {
				if d == e {
					mark = "x"
				}
			}
			fmt.Fprintf(w, "  %d) [%s] %s\n", i+1, mark, e.Label())
		}
		fmt.Fprintf(w, "Enter numbers separated by commas [1-%d]: ", len(project.ExtraLibraries))

		line, err := readLine(reader)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaults, nil
		}
		picked, err := parseNumbers(line, len(project.ExtraLibraries))
		if err != nil {
			fmt.Fprintf(w, ">> %v\n", err)
			continue
		}
		extras := make([]project.ExtraLibrary, len(picked))
		for i, n := range picked {
			extras[i] = project.ExtraLibraries[n-1]
		}
		return extras, nil
	}
}

func parseNumbers(line string, limit int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > limit {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", f, limit)
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("invalid selection %q", line)
	}
	return nums, nil
}

func confirm(reader *bufio.Reader, w io.Writer, question string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		fmt.Fprintf(w, "? %s %s ", question, hint)
		line, err := readLine(reader)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(w, ">> Please enter y or n\n")
	}
}
