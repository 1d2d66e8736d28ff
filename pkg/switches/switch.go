// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switches

import (
	"fmt"
	"strings"
)

// Switch binds a Value to its command-line spellings.
type Switch struct {
	name  string
	short rune   // 0 if the switch has no short form
	long  string // "" if the switch has no long form
	value Value
}

// NewSwitch returns a switch reachable as -short and --long. Pass 0 or "" to
// omit either form. The name is only used in usage output and errors.
//
// The Value is referenced, not copied: after Build, read results from the
// handler that was passed in.
func NewSwitch(name string, short rune, long string, v Value) *Switch {
	return &Switch{name: name, short: short, long: long, value: v}
}

// Name returns the display name.
func (s *Switch) Name() string { return s.name }

// Short returns the short key, or 0 if there is none.
func (s *Switch) Short() rune { return s.short }

// Long returns the long key, or "" if there is none.
func (s *Switch) Long() string { return s.long }

// Value returns the handler the switch was created with.
func (s *Switch) Value() Value { return s.value }

// String renders the switch as a usage line, for example
// "-p (or --port) int - port".
func (s *Switch) String() string {
	return s.render(s.short, s.long)
}

// render builds a usage line advertising only the given keys.
func (s *Switch) render(short rune, long string) string {
	var b strings.Builder
	if short != 0 {
		fmt.Fprintf(&b, "-%c", short)
	}
	if long != "" {
		if b.Len() > 0 {
			fmt.Fprintf(&b, " (or --%s)", long)
		} else {
			fmt.Fprintf(&b, "--%s", long)
		}
	}
	if b.Len() == 0 {
		return s.name
	}
	if s.value.RequiresValue() {
		b.WriteString(s.value.Type())
	}
	b.WriteString(" - ")
	b.WriteString(s.name)
	return b.String()
}

// Parse, RequiresValue and Set forward to the handler.
func (s *Switch) Parse(v string) bool { return s.value.Parse(v) }
func (s *Switch) RequiresValue() bool { return s.value.RequiresValue() }
func (s *Switch) Set()                { s.value.Set() }
