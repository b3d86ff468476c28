package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"keirsey-sorter/internal/domain"
)

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("no more input")

// Options controls prompter behavior.
type Options struct {
	Clear bool
	Color bool
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	term   *termenv.Output
	styles Styles
	clear  bool
}

func NewPrompter(in io.Reader, out io.Writer, opts Options) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		term:   termenv.NewOutput(out),
		styles: NewStyles(out, opts.Color),
		clear:  opts.Clear,
	}
}

// Styles returns the styles bound to the prompter's output.
func (p *Prompter) Styles() Styles {
	return p.styles
}

// Clear wipes the screen when clearing is enabled.
func (p *Prompter) Clear() {
	if p.clear {
		p.term.ClearScreen()
	}
}

// SetTitle sets the terminal window title when clearing is enabled.
func (p *Prompter) SetTitle(title string) {
	if p.clear {
		p.term.SetWindowTitle(title)
	}
}

// Score prints the running A/B totals.
func (p *Prompter) Score(a, b int) {
	fmt.Fprintln(p.out, "Score:")
	fmt.Fprintf(p.out, "A: %s B: %s\n\n",
		p.styles.Score.Render(fmt.Sprint(a)),
		p.styles.Score.Render(fmt.Sprint(b)),
	)
}

// Progress prints the position of the current question.
func (p *Prompter) Progress(current, total int) {
	fmt.Fprintln(p.out, p.styles.Muted.Render(fmt.Sprintf("Question %d of %d", current, total)))
}

// Ask shows a question and repeats it until the user answers A or B.
func (p *Prompter) Ask(q domain.Question) (domain.Answer, error) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.styles.Question.Render(q.Text))
		fmt.Fprintln(p.out, p.styles.Option.Render("A: "+q.OptionA))
		fmt.Fprintln(p.out, p.styles.Option.Render("B: "+q.OptionB))
		fmt.Fprint(p.out, p.styles.Input.Render("> "))

		line, err := p.in.ReadString('\n')
		if answer, ok := domain.ParseAnswer(line); ok {
			return answer, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrNoInput
			}
			return "", fmt.Errorf("read answer: %w", err)
		}

		p.Clear()
		fmt.Fprintln(p.out, p.styles.Error.Render("Invalid input"))
	}
}

// ConfirmAgain asks whether to run the questionnaire again. End of input
// counts as no.
func (p *Prompter) ConfirmAgain() (bool, error) {
	fmt.Fprint(p.out, "\nRun again? [y/N]: ")
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
