/*
 * errors.go, part of mdconv
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
	"errors"
	"fmt"
	"io/fs"
)

// Exit codes shared by all the command-line tools.
const (
	ExitOK    = 0
	ExitInput = 1
	ExitIO    = 2
	ExitData  = 3
)

// Kind classifies an Error so the tools can pick an exit code.
type Kind int

const (
	KindData Kind = iota //structural/invalid data. The zero value, as it is the most common one.
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindIO:
		return "I/O"
	default:
		return "invalid data"
	}
}

// Error is the error type returned by all packages in mdconv. Like the trajectory errors
// it carries the name of the offending file and a "decoration" with the functions
// it went through, so the final message can be traced back.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	kind     Kind
	err      error //wrapped cause, may be nil
}

// NewError returns an *Error of the given kind for the file filename. caller is
// the first decoration.
func NewError(kind Kind, filename, caller, format string, args ...interface{}) *Error {
	return &Error{
		message:  fmt.Sprintf(format, args...),
		filename: filename,
		deco:     []string{caller},
		kind:     kind,
	}
}

// ioError wraps a failure to open, create or read a file.
func ioError(err error, filename, caller string) *Error {
	return &Error{
		message:  err.Error(),
		filename: filename,
		deco:     []string{caller},
		kind:     KindIO,
		err:      err,
	}
}

func (E *Error) Error() string {
	if E.filename == "" {
		return E.message
	}
	return fmt.Sprintf("%s (file: %s)", E.message, E.filename)
}

// Decorate adds deco to the list of callers, unless it is empty, and returns the list.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (E *Error) FileName() string { return E.filename }

func (E *Error) Kind() Kind { return E.kind }

func (E *Error) Unwrap() error { return E.err }

// errDecorate decorates err with caller if it is an *Error, and returns it.
// Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var E *Error
	if errors.As(err, &E) {
		E.Decorate(caller)
	}
	return err
}

// Decorate adds caller to the decorations of err if it is an *Error, and
// returns err.
func Decorate(err error, caller string) error {
	return errDecorate(err, caller)
}

// ExitCode maps an error to one of the exit codes of the tools. nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var E *Error
	if errors.As(err, &E) {
		switch E.kind {
		case KindConfig:
			return ExitInput
		case KindIO:
			return ExitIO
		default:
			return ExitData
		}
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return ExitIO
	}
	return ExitData
}

// Messages for the structural errors of the section reader.
const (
	AtomCountMissing   = "Did not find the number of atoms"
	TruncatedAtomBlock = "Reached the end of the atom block early"
	MalformedRecord    = "Malformed atom record"
	NonBlankAfterBlock = "Expected a blank line after the atom block"
	UnexpectedSection  = "Encountered next section before reading all atoms"
	MismatchedAtoms    = "Mismatched numbers of atoms"
	IncompleteAtoms    = "Incomplete atom block"
)
