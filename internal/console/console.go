package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// Category selects the colour a progress line is printed in.
type Category int

const (
	AICall Category = iota
	UnitTesting
	Issue
)

func (c Category) String() string {
	switch c {
	case AICall:
		return "ai_call"
	case UnitTesting:
		return "unit_testing"
	case Issue:
		return "issue"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

var (
	agentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	statementStyles = map[Category]lipgloss.Style{
		AICall:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		UnitTesting: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Issue:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// Printer writes agent progress lines: the agent label in green, the statement
// in the category's colour.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out}
}

func (p *Printer) PrintAgentMessage(category Category, agent, statement string) {
	style, ok := statementStyles[category]
	if !ok {
		style = statementStyles[AICall]
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, agentStyle.Render(fmt.Sprintf("Agent: %s:", agent)), style.Render(statement))
}

// Prompter asks a question on the console and reads one line of reply.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints question and blocks until a line is read. The reply is returned
// with surrounding whitespace trimmed. A final line without a newline is
// accepted; EOF before any input is an error.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, questionStyle.Render(question))

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("read user response: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}
