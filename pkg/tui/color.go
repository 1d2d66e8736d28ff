// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// Colorizer decorates diagnostics written by a hosting program. The zero
// value passes text through unchanged.
type Colorizer struct {
	Enabled bool
}

// NewColorizer enables color only when f is a terminal and the environment
// allows it (NO_COLOR unset, TERM set and not "dumb").
func NewColorizer(f *os.File) Colorizer {
	if f == nil {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	if !isTerminalFn(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Error(text string) string {
	return c.wrap(text, color.FgRed, color.Bold)
}

func (c Colorizer) Dim(text string) string {
	return c.wrap(text, color.FgHiBlack)
}

func (c Colorizer) wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attrs...)
	// fatih/color disables itself when stdout is not a tty; the decision
	// here is made per file instead.
	col.EnableColor()
	return col.Sprint(text)
}
