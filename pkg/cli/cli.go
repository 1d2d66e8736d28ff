// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/yeetrun/switches/pkg/render"
	"github.com/yeetrun/switches/pkg/switches"
)

const (
	DefaultPort      = 6379
	DefaultMaxMemory = 1 << 30
	DefaultThreads   = 4
	DefaultSchedule  = "3600 1"
	DefaultEviction  = "noeviction"
	DefaultMinClient = "1.0.0"
	MaxThreads       = 1024
)

var EvictionPolicies = []string{"noeviction", "allkeys-lru", "volatile-lru", "allkeys-random"}

// ServerFlags is the resolved configuration of a key-value server.
type ServerFlags struct {
	Port      int    `json:"port" yaml:"port" toml:"port"`
	MaxMemory int64  `json:"maxMemory" yaml:"maxMemory" toml:"max_memory"`
	Threads   int    `json:"threads" yaml:"threads" toml:"threads"`
	Verbose   bool   `json:"verbose" yaml:"verbose" toml:"verbose"`
	Schedule  string `json:"saveSchedule" yaml:"saveSchedule" toml:"save_schedule"`
	Eviction  string `json:"eviction" yaml:"eviction" toml:"eviction"`
	MinClient string `json:"minClient" yaml:"minClient" toml:"min_client"`
	NodeID    string `json:"nodeID,omitempty" yaml:"nodeID,omitempty" toml:"node_id,omitempty"`
	DataDir   string `json:"dataDir" yaml:"dataDir" toml:"data_dir"`

	// Format selects how the configuration is printed; it is not part of it.
	Format string `json:"-" yaml:"-" toml:"-"`
}

func (f ServerFlags) Fields() []render.Field {
	nodeID := f.NodeID
	if nodeID == "" {
		nodeID = "-"
	}
	return []render.Field{
		{Label: "port", Value: strconv.Itoa(f.Port)},
		{Label: "max memory", Value: strconv.FormatInt(f.MaxMemory, 10)},
		{Label: "threads", Value: strconv.Itoa(f.Threads)},
		{Label: "verbose", Value: strconv.FormatBool(f.Verbose)},
		{Label: "save schedule", Value: f.Schedule},
		{Label: "eviction", Value: f.Eviction},
		{Label: "min client", Value: f.MinClient},
		{Label: "node id", Value: nodeID},
		{Label: "data dir", Value: f.DataDir},
	}
}

// ServerSwitches is the switch set of the server. Each instance parses one
// command line.
type ServerSwitches struct {
	Port      *switches.IntValue
	MaxMemory *switches.SizeValue
	Threads   *switches.IntValue
	Verbose   *switches.BoolValue
	Schedule  *switches.StringValue
	Eviction  *switches.EnumValue
	Format    *switches.EnumValue
	MinClient *VersionValue
	NodeID    *UUIDValue

	args *switches.Arguments
}

func NewServerSwitches(programName string) *ServerSwitches {
	s := &ServerSwitches{
		Port:      switches.NewInt(DefaultPort, switches.Range(1, 65535)),
		MaxMemory: switches.NewSize(DefaultMaxMemory, switches.Positive[int64]),
		Threads:   switches.NewInt(DefaultThreads, switches.Range(1, MaxThreads)),
		Verbose:   switches.NewBool(),
		Schedule:  switches.NewString(DefaultSchedule),
		Eviction:  switches.NewEnum(DefaultEviction, EvictionPolicies...),
		Format:    switches.NewEnum(render.FormatText, render.Formats...),
		MinClient: NewVersion(DefaultMinClient, ">= 1.0.0"),
		NodeID:    NewUUID(uuid.Nil),
	}
	s.args = switches.New(programName,
		switches.NewSwitch("port", 'p', "port", s.Port),
		switches.NewSwitch("max memory", 'm', "max-memory", s.MaxMemory),
		switches.NewSwitch("threads", 't', "threads", s.Threads),
		switches.NewSwitch("verbose", 'v', "verbose", s.Verbose),
		switches.NewSwitch("save schedule", 0, "ss", s.Schedule),
		switches.NewSwitch("eviction policy", 'e', "eviction", s.Eviction),
		switches.NewSwitch("output format", 'f', "format", s.Format),
		switches.NewSwitch("minimum client version", 0, "min-client", s.MinClient),
		switches.NewSwitch("node id", 0, "node-id", s.NodeID),
	).ExpectArgs("DATA_DIR")
	return s
}

// Parse builds the switch set from args, which should not include the
// program name.
func (s *ServerSwitches) Parse(args []string) (ServerFlags, error) {
	if err := s.args.Build(args); err != nil {
		return ServerFlags{}, err
	}
	flags := ServerFlags{
		Port:      s.Port.Int(),
		MaxMemory: s.MaxMemory.Size(),
		Threads:   s.Threads.Int(),
		Verbose:   s.Verbose.Bool(),
		Schedule:  s.Schedule.String(),
		Eviction:  s.Eviction.String(),
		MinClient: s.MinClient.Version().String(),
		DataDir:   s.args.Args()[0],
		Format:    s.Format.String(),
	}
	if id := s.NodeID.UUID(); id != uuid.Nil {
		flags.NodeID = id.String()
	}
	return flags, nil
}

func (s *ServerSwitches) Usage() string {
	return s.args.UsageString()
}

// ParseServer parses args with a fresh ServerSwitches.
func ParseServer(programName string, args []string) (ServerFlags, error) {
	return NewServerSwitches(programName).Parse(args)
}
