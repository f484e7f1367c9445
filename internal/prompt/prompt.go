// Package prompt asks yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in             *bufio.Reader
	out            io.Writer
	assumeDefaults bool
	echo           bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithAssumeDefaults answers every question with its default without reading input.
func WithAssumeDefaults(enabled bool) Option {
	return func(p *Prompter) { p.assumeDefaults = enabled }
}

// WithEcho forces questions to be written even when in is not a terminal.
func WithEcho(enabled bool) Option {
	return func(p *Prompter) { p.echo = enabled }
}

// New creates a Prompter. Questions are only echoed when in is a terminal.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:   bufio.NewReader(in),
		out:  out,
		echo: isTerminal(in),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// YesNo implements ports.Prompter. It asks until the answer is y or n; an
// empty answer or end of input selects the default.
func (p *Prompter) YesNo(message string, defaultYes bool) (bool, error) {
	if p.assumeDefaults {
		return defaultYes, nil
	}
	for {
		if p.echo {
			fmt.Fprint(p.out, message)
		}
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		case "":
			return defaultYes, nil
		}
		if errors.Is(err, io.EOF) {
			return defaultYes, nil
		}
	}
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	return isTerminal(w)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
