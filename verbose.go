/*
 * verbose.go, part of mdconv
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

package mdconv

import (
	"fmt"
	"io"
	"os"
)

// WarnPrefix starts every warning line.
const WarnPrefix = "WARNING: "

// Log prints information and warnings depending on a verbosity level.
// A nil *Log is valid: it prints warnings and level <=1 messages to the
// standard streams.
type Log struct {
	Verbosity int
	Out       io.Writer //information, stdout by default
	Err       io.Writer //warnings and diagnostics, stderr by default
	warnings  []string
}

// NewLog returns a Log with verbosity verb writing to stdout and stderr.
func NewLog(verb int) *Log {
	return &Log{Verbosity: verb, Out: os.Stdout, Err: os.Stderr}
}

func (L *Log) verb() int {
	if L == nil {
		return 1
	}
	return L.Verbosity
}

func (L *Log) errw() io.Writer {
	if L == nil || L.Err == nil {
		return os.Stderr
	}
	return L.Err
}

func (L *Log) outw() io.Writer {
	if L == nil || L.Out == nil {
		return os.Stdout
	}
	return L.Out
}

// LogV prints d to the diagnostics stream if level is smaller or equal than the verbosity.
func (L *Log) LogV(level int, d ...interface{}) {
	if level <= L.verb() {
		fmt.Fprintln(L.errw(), d...)
	}
}

// PrintV prints d to the information stream if level is smaller or equal than the verbosity.
// LogV is for things that may go wrong, PrintV for results, so the two streams can
// be redirected to different files.
func (L *Log) PrintV(level int, d ...interface{}) {
	if level <= L.verb() {
		fmt.Fprintln(L.outw(), d...)
	}
}

// Warn always prints d, with the warning prefix, to the diagnostics stream, and
// keeps track of it.
func (L *Log) Warn(d ...interface{}) {
	msg := fmt.Sprintln(append([]interface{}{WarnPrefix}, d...)...)
	fmt.Fprint(L.errw(), msg)
	if L != nil {
		L.warnings = append(L.warnings, msg)
	}
}

// Warnf is Warn with a format.
func (L *Log) Warnf(format string, args ...interface{}) {
	L.Warn(fmt.Sprintf(format, args...))
}

// Warnings returns the warnings printed so far.
func (L *Log) Warnings() []string {
	if L == nil {
		return nil
	}
	return L.warnings
}
