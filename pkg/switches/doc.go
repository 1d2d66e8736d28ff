// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package switches parses a command line into typed switch values and a list
// of positional arguments.
//
// A program declares each value it accepts as a Value handler, binds every
// handler to a short spelling (-p), a long spelling (--port), or both, and
// hands the resulting switches to New:
//
//	port := switches.NewInt(6379, switches.Range(1, 65535))
//	mem := switches.NewSize(1<<30, nil)
//	verbose := switches.NewBool()
//
//	args := switches.New("server",
//	    switches.NewSwitch("port", 'p', "port", port),
//	    switches.NewSwitch("max memory", 'm', "max-memory", mem),
//	    switches.NewSwitch("verbose", 'v', "", verbose),
//	).ExpectArgs("DATA_DIR")
//
//	if err := args.Build(os.Args[1:]); err != nil {
//	    args.Usage()
//	    log.Fatal(err)
//	}
//	fmt.Println(port.Int(), mem.Size(), verbose.Bool(), args.Args())
//
// # Switch Syntax
//
//   - Short switches are a dash and exactly one character: -p
//   - Long switches are two dashes and a name: --port
//   - A switch that takes a value consumes the next token verbatim: -p 8080
//   - Boolean switches consume nothing: -v
//   - Every other token is a positional argument, kept in order.
//
// There is no -p=8080 form, no grouping of short switches (-vx), and no "--"
// terminator. A negative number can only appear as the value of a switch.
//
// # Value Handlers
//
// IntValue, SizeValue, StringValue, EnumValue and BoolValue cover the common
// cases. SizeValue accepts an optional K, M or G suffix (powers of 1024).
// Programs can supply their own handlers by implementing Value.
//
// # Errors
//
// Every error returned by Build satisfies errors.Is(err, ErrInvalidInput).
// The concrete type is *SwitchError for problems with a switch or its value
// and *ArgsError when the positional argument count does not match the names
// given to ExpectArgs. The package never prints errors or exits; Usage is the
// only output and only happens on request.
package switches
