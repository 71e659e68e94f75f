/*
 * section.go, part of mdconv
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

package mdconv

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

type section int

const (
	inPreamble section = iota
	inBlock
	afterBlock //count reached, waiting for the blank line
	inTrailer
)

const maxLine = 1024 * 1024

// ReadSections reads a structure file from r, splitting it in preamble, atom
// block and trailer according to f. name is only used in error messages. Lines
// are trimmed of leading and trailing whitespace.
func ReadSections(r io.Reader, name string, f *Format) (*Content, error) {
	C := &Content{Name: name, NAtoms: -1}
	if f.CountPattern == nil && f.NAtoms > 0 {
		C.NAtoms = f.NAtoms
	}
	counted := func() bool { return C.NAtoms >= 0 }
	state := inPreamble
	boxrow := -1
	skip := 0
	lineno := 0
	add := func(line string) error {
		rec, err := f.Decode(line, len(C.Atoms)+1)
		if err != nil {
			if f.Sections[line] {
				return NewError(KindData, name, "ReadSections", "%s ('%s') after reading %d of %d atoms", UnexpectedSection, line, len(C.Atoms), C.NAtoms)
			}
			return NewError(KindData, name, "ReadSections", "%s on line %d: '%s' (%s)", MalformedRecord, lineno, line, err.Error())
		}
		C.Atoms = append(C.Atoms, rec)
		return nil
	}
	//after each record, or at the start of a block, checks whether the block is over.
	full := func() section {
		if counted() && len(C.Atoms) == C.NAtoms {
			if f.BlankAfterBlock {
				return afterBlock
			}
			return inTrailer
		}
		return inBlock
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		switch state {
		case inPreamble:
			if f.StartIsRecord && f.BlockStart(line) {
				if err := add(line); err != nil {
					return nil, err
				}
				state = full()
				continue
			}
			C.Preamble = append(C.Preamble, line)
			if boxrow < 0 && !C.HasBox && f.BoxPattern != nil && f.BoxPattern.MatchString(line) {
				boxrow = 0
			}
			if boxrow >= 0 && boxrow < 3 {
				if err := C.boxLine(line, boxrow); err != nil {
					return nil, err
				}
				boxrow++
				continue
			}
			if !counted() && f.CountPattern != nil {
				if m := f.CountPattern.FindStringSubmatch(line); m != nil {
					n, err := strconv.Atoi(m[1])
					if err != nil {
						return nil, NewError(KindData, name, "ReadSections", "Could not read the number of atoms from '%s'", line)
					}
					C.NAtoms = n
				}
			}
			if !f.StartIsRecord && f.BlockStart(line) {
				if f.CountPattern != nil && !counted() {
					return nil, NewError(KindData, name, "ReadSections", "%s before line %d", AtomCountMissing, lineno)
				}
				if f.BlankAfterStart {
					C.Preamble = append(C.Preamble, "")
				}
				skip = f.SkipAfterStart
				state = full()
			}
		case inBlock:
			if skip > 0 {
				skip--
				C.Preamble = append(C.Preamble, line)
				continue
			}
			if line == "" {
				if !counted() {
					C.Trailer = append(C.Trailer, line)
					state = inTrailer
				} else if f.BlankAfterBlock {
					return nil, NewError(KindData, name, "ReadSections", "%s: blank line on line %d after reading %d atoms, expected %d", TruncatedAtomBlock, lineno, len(C.Atoms), C.NAtoms)
				}
				continue
			}
			if !counted() && !f.IsRecord(line) {
				C.Trailer = append(C.Trailer, line)
				state = inTrailer
				continue
			}
			if err := add(line); err != nil {
				return nil, err
			}
			state = full()
		case afterBlock:
			if line != "" {
				return nil, NewError(KindData, name, "ReadSections", "%s (read %d atoms), found '%s' on line %d", NonBlankAfterBlock, C.NAtoms, line, lineno)
			}
			C.Trailer = append(C.Trailer, line)
			state = inTrailer
		case inTrailer:
			if !counted() && f.StartIsRecord && f.BlockStart(line) && len(C.Atoms) > 0 {
				//the lines read since the last record (i.e. TER between chains) stay after it.
				last := C.Atoms[len(C.Atoms)-1]
				last.After = append(last.After, C.Trailer...)
				C.Trailer = nil
				if err := add(line); err != nil {
					return nil, err
				}
				continue
			}
			C.Trailer = append(C.Trailer, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ioError(err, name, "ReadSections")
	}
	switch {
	case state == inPreamble && f.CountPattern != nil && !counted():
		return nil, NewError(KindData, name, "ReadSections", AtomCountMissing)
	case state == inPreamble && counted() && C.NAtoms > 0:
		return nil, NewError(KindData, name, "ReadSections", "%s: atom block not found, %d atoms expected", TruncatedAtomBlock, C.NAtoms)
	case state == inBlock && counted():
		return nil, NewError(KindData, name, "ReadSections", "%s: read %d atoms, expected %d", TruncatedAtomBlock, len(C.Atoms), C.NAtoms)
	}
	if !counted() {
		C.NAtoms = len(C.Atoms)
	}
	return C, nil
}

func (C *Content) boxLine(line string, row int) error {
	f := strings.Fields(line)
	if len(f) >= 2 {
		lo, err1 := strconv.ParseFloat(f[0], 64)
		hi, err2 := strconv.ParseFloat(f[1], 64)
		if err1 == nil && err2 == nil {
			C.Box[row] = hi - lo
			if row == 2 {
				C.HasBox = true
			}
			return nil
		}
	}
	return NewError(KindData, C.Name, "ReadSections", "Could not read box dimensions from '%s'", line)
}

// ReadFile opens the file at path, which may be zstd or gzip-compressed, and reads
// it with ReadSections.
func ReadFile(path string, f *Format) (*Content, error) {
	fin, err := Open(path)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	defer fin.Close()
	C, err := ReadSections(fin, path, f)
	if err != nil {
		return nil, errDecorate(err, "ReadFile")
	}
	return C, nil
}
