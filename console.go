package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console etiketli durum satırlarını yazar: "[TAG] mesaj".
type Console struct {
	w     io.Writer
	quiet bool
	tags  map[string]*color.Color
}

func NewConsole(w io.Writer, quiet bool) *Console {
	c := &Console{w: w, quiet: quiet}
	if isTerminal(w) {
		c.tags = map[string]*color.Color{
			"INFO":    color.New(color.FgCyan),
			"SKIP":    color.New(color.FgYellow),
			"DRY":     color.New(color.FgBlue),
			"DEL":     color.New(color.FgGreen),
			"ERR":     color.New(color.FgRed, color.Bold),
			"SUMMARY": color.New(color.Bold),
		}
	}
	return c
}

// Renk sadece TTY'ye yazarken; NO_COLOR varsa color.NoColor true olur.
func isTerminal(w io.Writer) bool {
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

func (c *Console) line(tag, format string, args ...any) {
	label := "[" + tag + "]"
	if col, ok := c.tags[tag]; ok {
		label = col.Sprint(label)
	}
	fmt.Fprintf(c.w, "%s %s\n", label, fmt.Sprintf(format, args...))
}

func (c *Console) Info(format string, args ...any) {
	if !c.quiet {
		c.line("INFO", format, args...)
	}
}

func (c *Console) Skip(format string, args ...any) {
	if !c.quiet {
		c.line("SKIP", format, args...)
	}
}

func (c *Console) Dry(format string, args ...any) {
	if !c.quiet {
		c.line("DRY", format, args...)
	}
}

func (c *Console) Del(format string, args ...any) {
	if !c.quiet {
		c.line("DEL", format, args...)
	}
}

// Err ve Summary quiet modda da yazılır.
func (c *Console) Err(format string, args ...any) {
	c.line("ERR", format, args...)
}

func (c *Console) Summary(format string, args ...any) {
	c.line("SUMMARY", format, args...)
}
