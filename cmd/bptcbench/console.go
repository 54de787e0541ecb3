package main

import (
	"fmt"
	"io"
	"os"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// console writes RESULT lines to stdout and diagnostics to stderr. Tags are colored only
// when the stream is a terminal.
type console struct {
	stdout io.Writer
	stderr io.Writer
	color  bool
}

func newConsole(f *os.File) *console {
	c := &console{stdout: f, stderr: os.Stderr}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		c.stdout = colorable.NewColorable(f)
		c.stderr = colorable.NewColorable(os.Stderr)
		c.color = true
	}
	return c
}

var tagStrings = [2][3]string{
	// uncolored
	{"RESULT", "warning:", "error:"},
	// colored
	{"\033[32mRESULT\033[0m", "\033[33mwarning:\033[0m", "\033[31merror:\033[0m"},
}

const (
	tagResult = iota
	tagWarn
	tagError
)

func (c *console) tag(t int) string {
	if c.color {
		return tagStrings[1][t]
	}
	return tagStrings[0][t]
}

func (c *console) result(line string) {
	fmt.Fprintf(c.stdout, "%s %s\n", c.tag(tagResult), line)
}

func (c *console) warn(err error) {
	fmt.Fprintf(c.stderr, "%s %v\n", c.tag(tagWarn), err)
}

func (c *console) fail(err error) {
	fmt.Fprintf(c.stderr, "%s %v\n", c.tag(tagError), err)
}
