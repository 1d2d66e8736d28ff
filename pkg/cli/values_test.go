// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"testing"

	"github.com/google/uuid"
	"github.com/yeetrun/switches/pkg/switches"
)

var (
	_ switches.Value = (*VersionValue)(nil)
	_ switches.Value = (*UUIDValue)(nil)
)

func TestVersionValue(t *testing.T) {
	v := NewVersion("1.0.0", ">= 1.0.0, < 3")
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{in: "1.2.3", ok: true, want: "1.2.3"},
		{in: "v2", ok: true, want: "2.0.0"},
		{in: "0.9.9", ok: false, want: "2.0.0"},
		{in: "3.0.0", ok: false, want: "2.0.0"},
		{in: "not-a-version", ok: false, want: "2.0.0"},
	}
	for _, tt := range tests {
		if got := v.Parse(tt.in); got != tt.ok {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.ok)
		}
		if got := v.Version().String(); got != tt.want {
			t.Errorf("after Parse(%q): Version() = %s, want %s", tt.in, got, tt.want)
		}
	}
	if v.Type() != " version" || !v.RequiresValue() {
		t.Errorf("Type() = %q, RequiresValue() = %v", v.Type(), v.RequiresValue())
	}
}

func TestNewVersionPanicsOnBadConstraint(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewVersion did not panic on an invalid constraint")
		}
	}()
	NewVersion("1.0.0", ">>> nope")
}

func TestUUIDValue(t *testing.T) {
	v := NewUUID(uuid.Nil)
	if v.Parse("nope") {
		t.Error("Parse(nope) = true")
	}
	if v.UUID() != uuid.Nil {
		t.Errorf("UUID() = %s after rejected parse", v.UUID())
	}
	id := uuid.New()
	if !v.Parse(id.String()) {
		t.Fatalf("Parse(%s) = false", id)
	}
	if v.UUID() != id {
		t.Errorf("UUID() = %s, want %s", v.UUID(), id)
	}
	if !v.Parse("urn:uuid:" + id.String()) {
		t.Error("Parse of urn form failed")
	}
}
