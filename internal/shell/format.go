package shell

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/go-tasks/internal/config"
	"github.com/jakoblorz/go-tasks/internal/models"
	"github.com/jakoblorz/go-tasks/internal/tui"
)

// Formatter renders interpreter responses.
//
// Project headings and task lines come from text/template sources with the
// sprig function map plus two helpers: heading (project name) and mark
// (checkbox marker). Both helpers are identities unless styles are set.
type Formatter struct {
	project *template.Template
	task    *template.Template
	styles  *tui.Styles
}

// NewFormatter parses the show templates. A nil styles renders plain text.
func NewFormatter(format config.FormatConfig, styles *tui.Styles) (*Formatter, error) {
	f := &Formatter{styles: styles}

	var err error
	f.project, err = f.parse("project", format.Project)
	if err != nil {
		return nil, err
	}

	f.task, err = f.parse("task", format.Task)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// DefaultFormatter returns the plain formatter for the reference protocol.
func DefaultFormatter() *Formatter {
	f, err := NewFormatter(config.Default().Format, nil)
	if err != nil {
		panic(fmt.Sprintf("default templates must parse: %v", err))
	}
	return f
}

func (f *Formatter) parse(name, src string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{
			"heading": f.heading,
			"mark":    f.mark,
		}).
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	return tmpl, nil
}

func (f *Formatter) heading(name string) string {
	if f.styles == nil {
		return name
	}
	return f.styles.Project.Render(name)
}

func (f *Formatter) mark(marker string) string {
	if f.styles == nil {
		return marker
	}
	return f.styles.Mark(marker)
}

// WriteProjects writes the show listing: each project heading, its task lines
// and a trailing blank line, also for projects without tasks.
func (f *Formatter) WriteProjects(w io.Writer, projects []*models.Project) error {
	for _, project := range projects {
		if err := f.project.Execute(w, project); err != nil {
			return fmt.Errorf("failed to render project %q: %w", project.Name, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}

		for _, task := range project.Tasks() {
			if err := f.task.Execute(w, task); err != nil {
				return fmt.Errorf("failed to render task %d: %w", task.ID, err)
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteError writes the user-facing message for err on its own line.
func (f *Formatter) WriteError(w io.Writer, err error) error {
	msg := Message(err)
	if f.styles != nil {
		msg = f.styles.Error.Render(msg)
	}
	_, werr := io.WriteString(w, msg+"\n")
	return werr
}

const helpText = `Commands:
  show
  add project <project name>
  add task <project name> <task description>
  check <task ID>
  uncheck <task ID>
  delete <task ID>

`

// WriteHelp writes the fixed command summary.
func (f *Formatter) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, helpText)
	return err
}
