// Package repl drives the language pipeline one input line at a time.
// The loop owns all the I/O; the pipeline itself stays pure.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/all-an/nimlisp"
)

// REPL reads expressions from in line by line and prints the result of
// each one to out. An evaluation error never stops the loop, it is
// printed like any other result.
type REPL struct {
	in  io.Reader
	out io.Writer

	cfg         Config
	interactive bool
}

// New creates a REPL over the given streams
func New(in io.Reader, out io.Writer, cfg Config) *REPL {
	return &REPL{
		in:  in,
		out: out,
		cfg: cfg,
	}
}

// Interactive toggles the greeting and the per-line prompt. Drivers
// turn it on when stdin is a terminal and leave it off for piped
// input.
func (r *REPL) Interactive(on bool) *REPL {
	r.interactive = on
	return r
}

// Run loops until end of input or a quit keyword. It returns the read
// error, if any; evaluation failures are not errors of the loop.
func (r *REPL) Run() error {
	errPrint := color.New(color.FgRed)
	if !r.colorEnabled() {
		errPrint.DisableColor()
	}

	if r.interactive && r.cfg.Greeting != "" {
		fmt.Fprintln(r.out, r.cfg.Greeting)
	}

	sc := bufio.NewScanner(r.in)

	for {
		if r.interactive {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}

		if !sc.Scan() {
			break
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		result := nimlisp.EvalString(line)
		if strings.HasPrefix(result, "Error: ") {
			errPrint.Fprintln(r.out, result)
			continue
		}
		fmt.Fprintln(r.out, result)
	}

	return sc.Err()
}

func (r *REPL) colorEnabled() bool {
	switch r.cfg.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return r.interactive
}
