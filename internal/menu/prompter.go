package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/huh/v2"
)

// ErrAborted is returned by a Prompter when the user cancels input
var ErrAborted = errors.New("input aborted")

// Option is one numbered menu entry
type Option struct {
	Key   string
	Label string
}

// Prompter collects console input. Validate, when non-nil, lets an
// interactive prompter re-ask until the answer is acceptable.
type Prompter interface {
	Choose(ctx context.Context, title string, options []Option) (string, error)
	Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error)
}

// HuhPrompter prompts with interactive huh forms. It needs a terminal; use
// LinePrompter for piped input.
type HuhPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Choose shows the numbered options and returns the chosen key
func (p *HuhPrompter) Choose(ctx context.Context, title string, options []Option) (string, error) {
	var choice string

	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		huhOptions = append(huhOptions, huh.NewOption(o.Key+". "+o.Label, o.Key))
	}

	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&choice)

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return choice, nil
}

// Input asks a free-text question
func (p *HuhPrompter) Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error) {
	var value string

	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false)
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

// LinePrompter reads one answer per line. All prompts share one buffered
// reader, so input piped in ahead of time is consumed in order. End of input
// aborts.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a line prompter reading from in and writing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Choose prints the numbered options and returns the answer as typed, so the
// caller decides whether it is a valid choice
func (p *LinePrompter) Choose(ctx context.Context, title string, options []Option) (string, error) {
	for _, o := range options {
		fmt.Fprintf(p.out, "%s. %s\n", o.Key, o.Label)
	}
	fmt.Fprintf(p.out, "%s: ", title)
	return p.readLine(ctx)
}

// Input asks a free-text question, asking again while validate rejects the answer
func (p *LinePrompter) Input(ctx context.Context, title, _ string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s ", title)
		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if validate == nil {
			return answer, nil
		}
		if err := validate(answer); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return answer, nil
	}
}

func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrAborted
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		// A last line without a newline still counts
		if line == "" {
			return "", ErrAborted
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
