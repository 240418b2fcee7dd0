package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InputFormatError is returned when a line cannot be read as an integer.
type InputFormatError struct {
	Input string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("not an integer: %q", e.Input)
}

// Prompter reads line-oriented answers from the user. Once the input is
// exhausted every read returns io.EOF.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line with surrounding
// whitespace removed.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt prompts until the user enters a valid integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := parseInt(line)
		var formatErr *InputFormatError
		if errors.As(err, &formatErr) {
			fmt.Fprintln(p.out, "Please enter a valid integer.")
			continue
		}
		return n, nil
	}
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InputFormatError{Input: s}
	}
	return n, nil
}
