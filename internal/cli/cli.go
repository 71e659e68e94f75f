/*
 * cli.go, part of mdconv
 *
 * Copyright 2024 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

// Package cli has the bits shared by the mdconv programs: flags, configuration
// loading and the reporting of fatal errors.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/config"
)

// Usage sets the usage message of the program: a line with the arguments,
// a description and the flags.
func Usage(args, description string) {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage:\n  %s: [flags] %s\n\n%s\n\nFlags:\n", os.Args[0], args, description)
		flag.PrintDefaults()
	}
}

// Context returns the text that precedes an error in the final message.
func Context(err error) string {
	switch mdconv.ExitCode(err) {
	case mdconv.ExitIO:
		return "Problems reading file:"
	case mdconv.ExitInput:
		return "Input data missing:"
	default:
		return "Problems reading data:"
	}
}

// Fatal prints err as a warning and exits with the code for its kind.
func Fatal(log *mdconv.Log, err error) {
	log.Warn(Context(err), err.Error())
	os.Exit(mdconv.ExitCode(err))
}

// Check calls Fatal if err is not nil.
func Check(log *mdconv.Log, err error) {
	if err != nil {
		Fatal(log, err)
	}
}

// Config loads the configuration file name, exiting if it can't be read.
func Config(name string, schema config.Schema, log *mdconv.Log) *config.Config {
	c, err := config.Load(name, schema, log)
	Check(log, err)
	log.LogV(2, "Read configuration from", name)
	return c
}

// Done prints the number of warnings, if any.
func Done(log *mdconv.Log) {
	if n := len(log.Warnings()); n > 0 {
		log.LogV(1, fmt.Sprintf("%d warning(s) were printed", n))
	}
}
