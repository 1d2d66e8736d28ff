// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switches

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Value is the typed state behind a switch.
//
// Parse converts and validates text and commits it only when both succeed.
// RequiresValue reports whether the switch consumes the following token;
// when it is false the scanner calls Set instead of Parse. Type describes the
// value for usage output and is expected to start with a space, or be empty.
type Value interface {
	Parse(s string) bool
	RequiresValue() bool
	Set()
	Type() string
}

// Integer is the set of types accepted by the validator helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Range returns a validator accepting min <= v <= max.
func Range[T Integer](min, max T) func(T) bool {
	return func(v T) bool {
		return v >= min && v <= max
	}
}

// Positive is a validator accepting v > 0.
func Positive[T Integer](v T) bool {
	return v > 0
}

// NonNegative is a validator accepting v >= 0.
func NonNegative[T Integer](v T) bool {
	return v >= 0
}

// IntValue holds a signed decimal integer.
type IntValue struct {
	v        int
	validate func(int) bool
}

// NewInt returns an IntValue holding def. If validate is non-nil, parsed
// values it rejects are not committed. The default is not validated.
func NewInt(def int, validate func(int) bool) *IntValue {
	return &IntValue{v: def, validate: validate}
}

// Parse accepts a decimal integer that passes the validator.
func (i *IntValue) Parse(s string) bool {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	if i.validate != nil && !i.validate(n) {
		return false
	}
	i.v = n
	return true
}

// RequiresValue, Set and Type implement Value; Set is a no-op.
func (i *IntValue) RequiresValue() bool { return true }
func (i *IntValue) Set()                {}
func (i *IntValue) Type() string        { return " int" }

// Int returns the current value.
func (i *IntValue) Int() int { return i.v }

// SizeValue holds a byte count. The textual form is a decimal integer with an
// optional K, M or G suffix multiplying it by 1024, 1024² or 1024³.
type SizeValue struct {
	v        int64
	validate func(int64) bool
}

// NewSize returns a SizeValue holding def bytes. If validate is non-nil it is
// applied to the scaled value.
func NewSize(def int64, validate func(int64) bool) *SizeValue {
	return &SizeValue{v: def, validate: validate}
}

// Parse accepts the forms described by ParseSize and applies the validator
// to the scaled value.
func (z *SizeValue) Parse(s string) bool {
	n, ok := ParseSize(s)
	if !ok {
		return false
	}
	if z.validate != nil && !z.validate(n) {
		return false
	}
	z.v = n
	return true
}

// RequiresValue, Set and Type implement Value; Set is a no-op.
func (z *SizeValue) RequiresValue() bool { return true }
func (z *SizeValue) Set()                {}
func (z *SizeValue) Type() string        { return " size" }

// Size returns the current value in bytes.
func (z *SizeValue) Size() int64 { return z.v }

// ParseSize converts "512", "64K", "1M" or "2G" to a byte count. It reports
// false for empty input, a non-decimal number, or a result that does not fit
// in an int64. Suffixes are case-sensitive.
func ParseSize(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	mult := int64(1)
	switch s[len(s)-1] {
	case 'K':
		mult = 1 << 10
	case 'M':
		mult = 1 << 20
	case 'G':
		mult = 1 << 30
	}
	if mult != 1 {
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if n > math.MaxInt64/mult || n < math.MinInt64/mult {
		return 0, false
	}
	return n * mult, true
}

// StringValue holds arbitrary text. Parse always succeeds.
type StringValue struct {
	v string
}

// NewString returns a StringValue holding def.
func NewString(def string) *StringValue {
	return &StringValue{v: def}
}

// Parse stores v.
func (s *StringValue) Parse(v string) bool {
	s.v = v
	return true
}

// RequiresValue, Set and Type implement Value; Set is a no-op.
func (s *StringValue) RequiresValue() bool { return true }
func (s *StringValue) Set()                {}
func (s *StringValue) Type() string        { return " string" }

// String returns the current value.
func (s *StringValue) String() string { return s.v }

// EnumValue holds one of a fixed set of strings.
type EnumValue struct {
	v       string
	allowed []string
}

// NewEnum returns an EnumValue holding def and accepting only the allowed
// strings, matched exactly. def itself does not have to be allowed.
func NewEnum(def string, allowed ...string) *EnumValue {
	return &EnumValue{v: def, allowed: slices.Clone(allowed)}
}

// Parse accepts s only if it is one of the allowed values.
func (e *EnumValue) Parse(s string) bool {
	if !slices.Contains(e.allowed, s) {
		return false
	}
	e.v = s
	return true
}

// RequiresValue, Set and Type implement Value; Type lists the allowed values.
func (e *EnumValue) RequiresValue() bool { return true }
func (e *EnumValue) Set()                {}
func (e *EnumValue) Type() string        { return " " + strings.Join(e.allowed, "|") }

// String returns the current value.
func (e *EnumValue) String() string { return e.v }

// Allowed returns a copy of the accepted values.
func (e *EnumValue) Allowed() []string { return slices.Clone(e.allowed) }

// BoolValue is a presence flag. It starts false and becomes true when its
// switch appears; it never takes a value token.
type BoolValue struct {
	v bool
}

// NewBool returns a BoolValue holding false.
func NewBool() *BoolValue {
	return &BoolValue{}
}

// Parse panics. The scanner only calls Set on values that do not require a
// value token.
func (b *BoolValue) Parse(string) bool {
	panic("switches: BoolValue.Parse called; presence flags take no value")
}

// RequiresValue reports false; Set turns the flag on; Type is empty.
func (b *BoolValue) RequiresValue() bool { return false }
func (b *BoolValue) Set()                { b.v = true }
func (b *BoolValue) Type() string        { return "" }

// Bool returns the current value.
func (b *BoolValue) Bool() bool { return b.v }
