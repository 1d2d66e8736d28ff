// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
)

// VersionValue holds a semantic version, optionally restricted by a
// constraint such as ">= 1.2, < 3".
type VersionValue struct {
	v          *semver.Version
	constraint *semver.Constraints
}

// NewVersion returns a VersionValue holding def. An empty constraint accepts
// any version. It panics if def or constraint do not parse.
func NewVersion(def, constraint string) *VersionValue {
	v := &VersionValue{v: semver.MustParse(def)}
	if constraint != "" {
		c, err := semver.NewConstraint(constraint)
		if err != nil {
			panic(err)
		}
		v.constraint = c
	}
	return v
}

// Parse accepts any version semver.NewVersion reads that meets the constraint.
func (v *VersionValue) Parse(s string) bool {
	ver, err := semver.NewVersion(s)
	if err != nil {
		return false
	}
	if v.constraint != nil && !v.constraint.Check(ver) {
		return false
	}
	v.v = ver
	return true
}

// RequiresValue, Set and Type implement switches.Value.
func (v *VersionValue) RequiresValue() bool { return true }
func (v *VersionValue) Set()                {}
func (v *VersionValue) Type() string        { return " version" }

// Version returns the current value.
func (v *VersionValue) Version() *semver.Version { return v.v }

// UUIDValue holds a UUID in any form uuid.Parse accepts.
type UUIDValue struct {
	v uuid.UUID
}

// NewUUID returns a UUIDValue holding def.
func NewUUID(def uuid.UUID) *UUIDValue {
	return &UUIDValue{v: def}
}

// Parse accepts the forms uuid.Parse reads.
func (u *UUIDValue) Parse(s string) bool {
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	u.v = id
	return true
}

// RequiresValue, Set and Type implement switches.Value.
func (u *UUIDValue) RequiresValue() bool { return true }
func (u *UUIDValue) Set()                {}
func (u *UUIDValue) Type() string        { return " uuid" }

// UUID returns the current value.
func (u *UUIDValue) UUID() uuid.UUID { return u.v }
