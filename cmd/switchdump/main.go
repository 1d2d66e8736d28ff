// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command switchdump parses a key-value server command line and prints the
// configuration it resolves to.
//
//	switchdump -p 3333 -m 1M -t 12 -v --format yaml /var/lib/kv
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/yeetrun/switches/pkg/cli"
	"github.com/yeetrun/switches/pkg/render"
	"github.com/yeetrun/switches/pkg/switches"
	"github.com/yeetrun/switches/pkg/tui"
)

const exitUsage = 2

func main() {
	log.SetFlags(0)
	log.SetPrefix("switchdump: ")

	color := tui.NewColorizer(os.Stderr)
	if err := run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr, color); err != nil {
		if errors.Is(err, switches.ErrInvalidInput) {
			os.Exit(exitUsage)
		}
		log.Fatal(err)
	}
}

// run parses args and writes the configuration to stdout. Invalid input is
// reported on stderr together with the usage block and returned unchanged.
func run(prog string, args []string, stdout, stderr io.Writer, color tui.Colorizer) error {
	sw := cli.NewServerSwitches(prog)
	flags, err := sw.Parse(args)
	if err != nil {
		if errors.Is(err, switches.ErrInvalidInput) {
			fmt.Fprintln(stderr, color.Error("error: "+err.Error()))
			fmt.Fprint(stderr, color.Dim(sw.Usage()))
		}
		return err
	}
	if flags.Verbose {
		log.Printf("argv: %q", args)
	}
	if err := render.Write(stdout, flags.Format, flags); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
