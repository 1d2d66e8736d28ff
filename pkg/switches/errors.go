// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switches

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the category of every error returned by Build.
var ErrInvalidInput = errors.New("invalid input")

const (
	msgInvalidExtSwitch = "invalid ext_switch"
	msgUnknownExtSwitch = "unknown ext switch"
	msgInvalidSwitch    = "invalid switch"
	msgUnknownSwitch    = "unknown switch"
	msgValueExpected    = "switch value expected"
	msgInvalidValue     = "invalid value"
)

// SwitchError is returned when a switch token is malformed or unknown, or
// when the value given to a switch is rejected by its handler.
type SwitchError struct {
	Token string // The switch as written on the command line (e.g. "-p", "--threads")
	Name  string // Display name of the matched switch. Empty if the token matched nothing.
	Value string // The rejected value. Only meaningful when HasValue is true.

	HasValue bool
	Reason   string
}

func (e *SwitchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)
	if e.Token != "" {
		b.WriteString(": ")
		b.WriteString(e.Token)
	}
	if e.HasValue {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Name != "" {
		fmt.Fprintf(&b, " (%s)", e.Name)
	}
	return b.String()
}

func (e *SwitchError) Unwrap() error {
	return ErrInvalidInput
}

// ArgsError is returned when the number of positional arguments differs from
// the names declared with ExpectArgs.
type ArgsError struct {
	Expected []string
	Got      []string
}

func (e *ArgsError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("incorrect number of arguments: expected none, got %d", len(e.Got))
	}
	return fmt.Sprintf("incorrect number of arguments: expected %d (%s), got %d",
		len(e.Expected), strings.Join(e.Expected, " "), len(e.Got))
}

func (e *ArgsError) Unwrap() error {
	return ErrInvalidInput
}
