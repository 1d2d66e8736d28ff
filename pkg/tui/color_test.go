// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	old := isTerminalFn
	isTerminalFn = func(int) bool { return isTTY }
	t.Cleanup(func() { isTerminalFn = old })
}

func TestNewColorizer(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		term    string
		isTTY   bool
		want    bool
	}{
		{name: "terminal", term: "xterm-256color", isTTY: true, want: true},
		{name: "not a terminal", term: "xterm-256color", isTTY: false, want: false},
		{name: "NO_COLOR", noColor: "1", term: "xterm-256color", isTTY: true, want: false},
		{name: "dumb terminal", term: "dumb", isTTY: true, want: false},
		{name: "no TERM", term: "", isTTY: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			withTerminal(t, tt.isTTY)
			if got := NewColorizer(os.Stderr).Enabled; got != tt.want {
				t.Errorf("Enabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewColorizerRegularFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if NewColorizer(f).Enabled {
		t.Error("Enabled = true for a regular file")
	}
	if NewColorizer(nil).Enabled {
		t.Error("Enabled = true for nil file")
	}
}

func TestColorizerWrap(t *testing.T) {
	var off Colorizer
	for _, got := range []string{off.Error("boom"), off.Dim("boom")} {
		if got != "boom" {
			t.Errorf("disabled colorizer returned %q, want %q", got, "boom")
		}
	}

	on := Colorizer{Enabled: true}
	tests := []struct {
		name  string
		got   string
		attrs []color.Attribute
	}{
		{name: "error", got: on.Error("boom"), attrs: []color.Attribute{color.FgRed, color.Bold}},
		{name: "dim", got: on.Dim("boom"), attrs: []color.Attribute{color.FgHiBlack}},
	}
	for _, tt := range tests {
		c := color.New(tt.attrs...)
		c.EnableColor()
		if want := c.Sprint("boom"); tt.got != want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, want)
		}
		if !strings.HasPrefix(tt.got, "\x1b[") || !strings.Contains(tt.got, "boom") {
			t.Errorf("%s: got %q, want ANSI-wrapped text", tt.name, tt.got)
		}
	}
}
