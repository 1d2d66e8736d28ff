// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switches

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// Arguments is a registered switch set and the positional arguments collected
// by Build. It is not safe for concurrent use.
type Arguments struct {
	programName string

	// switches is the registration order, used for usage output.
	switches []*Switch
	short    map[rune]*Switch
	long     map[string]*Switch
	shadowed []*Switch

	argNames  []string
	checkArgs bool

	args []string
}

// New indexes the given switches by their short and long spellings. When two
// switches share a spelling the later one wins; see Shadowed.
func New(programName string, switches ...*Switch) *Arguments {
	a := &Arguments{
		programName: programName,
		switches:    switches,
		short:       make(map[rune]*Switch),
		long:        make(map[string]*Switch),
	}
	for _, sw := range switches {
		if sw.short != 0 {
			a.shadow(a.short[sw.short], sw)
			a.short[sw.short] = sw
		}
		if sw.long != "" {
			a.shadow(a.long[sw.long], sw)
			a.long[sw.long] = sw
		}
	}
	return a
}

func (a *Arguments) shadow(prev, next *Switch) {
	if prev == nil || prev == next || slices.Contains(a.shadowed, prev) {
		return
	}
	a.shadowed = append(a.shadowed, prev)
}

// ExpectArgs declares the positional arguments by name. Build then fails
// unless exactly len(names) positionals were given. Calling ExpectArgs with
// no names requires that there are none. The names appear in usage output.
func (a *Arguments) ExpectArgs(names ...string) *Arguments {
	a.argNames = slices.Clone(names)
	a.checkArgs = true
	return a
}

// Shadowed returns the switches that lost at least one spelling to a later
// switch registered with the same short or long key.
func (a *Arguments) Shadowed() []*Switch {
	return slices.Clone(a.shadowed)
}

// Build scans tokens, usually os.Args[1:], and applies each switch to its
// Value. Tokens that are not switches or switch values are collected in
// order and returned by Args.
//
// Build stops at the first error. Values applied before the error keep their
// new state.
func (a *Arguments) Build(tokens []string) error {
	var (
		pending      *Switch
		pendingToken string
	)
	for _, tok := range tokens {
		if pending != nil {
			if !pending.Parse(tok) {
				return &SwitchError{
					Token:    pendingToken,
					Name:     pending.name,
					Value:    tok,
					HasValue: true,
					Reason:   msgInvalidValue,
				}
			}
			pending = nil
			continue
		}

		if !strings.HasPrefix(tok, "-") {
			a.args = append(a.args, tok)
			continue
		}

		sw, err := a.lookup(tok)
		if err != nil {
			return err
		}
		if sw.RequiresValue() {
			pending, pendingToken = sw, tok
			continue
		}
		sw.Set()
	}

	if pending != nil {
		return &SwitchError{Token: pendingToken, Name: pending.name, Reason: msgValueExpected}
	}
	if a.checkArgs && len(a.args) != len(a.argNames) {
		return &ArgsError{Expected: slices.Clone(a.argNames), Got: slices.Clone(a.args)}
	}
	return nil
}

// lookup resolves a token starting with "-" to its switch.
func (a *Arguments) lookup(tok string) (*Switch, error) {
	if key, ok := strings.CutPrefix(tok, "--"); ok {
		if key == "" {
			return nil, &SwitchError{Token: tok, Reason: msgInvalidExtSwitch}
		}
		sw, ok := a.long[key]
		if !ok {
			return nil, &SwitchError{Token: tok, Reason: msgUnknownExtSwitch}
		}
		return sw, nil
	}

	if utf8.RuneCountInString(tok) != 2 {
		return nil, &SwitchError{Token: tok, Reason: msgInvalidSwitch}
	}
	key, _ := utf8.DecodeRuneInString(tok[1:])
	sw, ok := a.short[key]
	if !ok {
		return nil, &SwitchError{Token: tok, Reason: msgUnknownSwitch}
	}
	return sw, nil
}

// Args returns the positional arguments collected so far.
func (a *Arguments) Args() []string {
	return slices.Clone(a.args)
}

// ProgramName returns the name shown in usage output.
func (a *Arguments) ProgramName() string {
	return a.programName
}

// Usage writes the usage block to standard output.
func (a *Arguments) Usage() {
	fmt.Fprint(os.Stdout, a.UsageString())
}

// WriteUsage writes the usage block to w.
func (a *Arguments) WriteUsage(w io.Writer) error {
	_, err := io.WriteString(w, a.UsageString())
	return err
}

// routedKeys returns the keys of sw that still resolve to it.
func (a *Arguments) routedKeys(sw *Switch) (rune, string) {
	var (
		short rune
		long  string
	)
	if sw.short != 0 && a.short[sw.short] == sw {
		short = sw.short
	}
	if sw.long != "" && a.long[sw.long] == sw {
		long = sw.long
	}
	return short, long
}

// UsageString renders the usage block: a "Usage:" line with the program name
// and positional argument names, then one line per reachable switch. Switches
// with a short spelling come first, then long-only switches, each group in
// registration order. Keys taken over by a later switch are not shown.
func (a *Arguments) UsageString() string {
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(a.programName)
	for _, name := range a.argNames {
		b.WriteString(" ")
		b.WriteString(name)
	}
	b.WriteString("\n")

	var shortKeyed, longOnly []*Switch
	for _, sw := range a.switches {
		switch {
		case sw.short != 0 && a.short[sw.short] == sw:
			shortKeyed = append(shortKeyed, sw)
		case sw.long != "" && a.long[sw.long] == sw:
			longOnly = append(longOnly, sw)
		}
	}
	for _, sw := range append(slices.Clip(shortKeyed), longOnly...) {
		b.WriteString("    ")
		b.WriteString(sw.render(a.routedKeys(sw)))
		b.WriteString("\n")
	}
	return b.String()
}
