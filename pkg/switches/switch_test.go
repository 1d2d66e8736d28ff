// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switches

import "testing"

func TestSwitchString(t *testing.T) {
	tests := []struct {
		name string
		sw   *Switch
		want string
	}{
		{
			name: "short and long",
			sw:   NewSwitch("port", 'p', "port", NewInt(6379, nil)),
			want: "-p (or --port) int - port",
		},
		{
			name: "short only",
			sw:   NewSwitch("threads", 't', "", NewInt(4, nil)),
			want: "-t int - threads",
		},
		{
			name: "long only",
			sw:   NewSwitch("string", 0, "ss", NewString("init")),
			want: "--ss string - string",
		},
		{
			name: "size",
			sw:   NewSwitch("max memory", 'm', "", NewSize(1<<30, nil)),
			want: "-m size - max memory",
		},
		{
			name: "enum lists members",
			sw:   NewSwitch("mode", 'e', "mode", NewEnum("a", "a", "b")),
			want: "-e (or --mode) a|b - mode",
		},
		{
			name: "flag has no type",
			sw:   NewSwitch("verbose", 'v', "verbose", NewBool()),
			want: "-v (or --verbose) - verbose",
		},
		{
			name: "unreachable switch renders its name",
			sw:   NewSwitch("orphan", 0, "", NewString("")),
			want: "orphan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sw.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSwitchDelegates(t *testing.T) {
	iv := NewInt(1, nil)
	sw := NewSwitch("n", 'n', "", iv)
	if !sw.RequiresValue() {
		t.Error("RequiresValue() = false for int switch")
	}
	if !sw.Parse("9") || iv.Int() != 9 {
		t.Errorf("Parse(9) did not reach handler, Int() = %d", iv.Int())
	}
	if sw.Parse("x") || iv.Int() != 9 {
		t.Errorf("Parse(x) changed handler, Int() = %d", iv.Int())
	}

	bv := NewBool()
	flag := NewSwitch("flag", 'f', "", bv)
	if flag.RequiresValue() {
		t.Error("RequiresValue() = true for flag switch")
	}
	flag.Set()
	if !bv.Bool() {
		t.Error("Set did not reach handler")
	}

	if sw.Name() != "n" || sw.Short() != 'n' || sw.Long() != "" || sw.Value() != Value(iv) {
		t.Errorf("accessors = %q %q %q %v", sw.Name(), sw.Short(), sw.Long(), sw.Value())
	}
}
