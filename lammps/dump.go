/*
 * dump.go, part of mdconv
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

// Package lammps reads LAMMPS dump (trajectory) files, one timestep at a time,
// and uses them to build data files, measure distances and follow the excess
// proton of EVB simulations.
package lammps

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/mdconv"
)

// Frame is one timestep of a dump file.
type Frame struct {
	Timestep int
	NAtoms   int
	Box      [3]float64
	Atoms    []*mdconv.Record
	Fields   mdconv.Fields //the record fields present in the dump
}

// Content returns the frame as the Content of a subject file, with the given name.
func (F *Frame) Content(name string) *mdconv.Content {
	return &mdconv.Content{Name: name, NAtoms: F.NAtoms, Atoms: F.Atoms, Box: F.Box, HasBox: true}
}

// SortByID sorts the atoms of the frame by ID.
func (F *Frame) SortByID() {
	sort.SliceStable(F.Atoms, func(i, j int) bool { return F.Atoms[i].ID < F.Atoms[j].ID })
}

// Atom returns the atom with the given ID, or nil.
func (F *Frame) Atom(id int) *mdconv.Record {
	for _, a := range F.Atoms {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindAtoms returns the atoms with the given IDs, in the same order.
func (F *Frame) FindAtoms(ids []int) ([]*mdconv.Record, error) {
	byid := make(map[int]*mdconv.Record, len(F.Atoms))
	for _, a := range F.Atoms {
		byid[a.ID] = a
	}
	ret := make([]*mdconv.Record, len(ids))
	var missing []string
	for i, id := range ids {
		if ret[i] = byid[id]; ret[i] == nil {
			missing = append(missing, strconv.Itoa(id))
		}
	}
	if len(missing) > 0 {
		return nil, mdconv.NewError(mdconv.KindData, "", "FindAtoms", "Could not find atoms %s at timestep %d", strings.Join(missing, ", "), F.Timestep)
	}
	return ret, nil
}

// Reader reads the frames of a dump file.
type Reader struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	lineno  int
}

// NewReader returns a Reader for r. name is used in error messages.
func NewReader(r io.Reader, name string) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{name: name, scanner: s}
}

// Open opens the dump file name, which may be compressed.
func Open(name string) (*Reader, error) {
	f, err := mdconv.Open(name)
	if err != nil {
		return nil, err
	}
	R := NewReader(f, name)
	R.closer = f
	return R, nil
}

func (R *Reader) Close() error {
	if R.closer != nil {
		return R.closer.Close()
	}
	return nil
}

// Name returns the name of the file read.
func (R *Reader) Name() string { return R.name }

func (R *Reader) next() (string, bool) {
	if !R.scanner.Scan() {
		return "", false
	}
	R.lineno++
	return strings.TrimSpace(R.scanner.Text()), true
}

func (R *Reader) errorf(format string, args ...interface{}) error {
	return mdconv.NewError(mdconv.KindData, R.name, "lammps.Reader", format, args...)
}

// columns of the atom lines, found from the ITEM: ATOMS header.
type columns struct {
	id, mol, typ, q int
	xyz             [3]int
	max             int
}

// fields returns the record fields the columns provide.
func (c columns) fields() mdconv.Fields {
	f := mdconv.FieldPos | mdconv.FieldType
	if c.q >= 0 {
		f |= mdconv.FieldCharge
	}
	if c.mol >= 0 {
		f |= mdconv.FieldGroup
	}
	return f
}

func findColumns(header []string) (columns, bool) {
	c := columns{id: -1, mol: -1, typ: -1, q: -1, xyz: [3]int{-1, -1, -1}}
	for i, h := range header {
		switch h {
		case "id":
			c.id = i
		case "mol":
			c.mol = i
		case "type":
			c.typ = i
		case "q":
			c.q = i
		case "x", "xu":
			c.xyz[0] = i
		case "y", "yu":
			c.xyz[1] = i
		case "z", "zu":
			c.xyz[2] = i
		}
		c.max = i
	}
	ok := c.id >= 0 && c.typ >= 0 && c.xyz[0] >= 0 && c.xyz[1] >= 0 && c.xyz[2] >= 0
	return c, ok
}

func (c columns) decode(line string) (*mdconv.Record, error) {
	f := strings.Fields(line)
	if len(f) <= c.max {
		return nil, strconv.ErrSyntax
	}
	r := new(mdconv.Record)
	var err error
	ints := map[int]*int{c.id: &r.ID, c.typ: &r.Type, c.mol: &r.Group}
	for col, v := range ints {
		if col < 0 {
			continue
		}
		if *v, err = strconv.Atoi(f[col]); err != nil {
			return nil, err
		}
	}
	if c.q >= 0 {
		if r.Charge, err = strconv.ParseFloat(f[c.q], 64); err != nil {
			return nil, err
		}
	}
	for i, col := range c.xyz {
		if r.Pos[i], err = strconv.ParseFloat(f[col], 64); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Next returns the next frame in the file. At the end of the file it
// returns nil and io.EOF.
func (R *Reader) Next() (*Frame, error) {
	var F *Frame
	started := func() error {
		if F == nil {
			return R.errorf("Found data before 'ITEM: TIMESTEP' on line %d", R.lineno)
		}
		return nil
	}
	for {
		line, ok := R.next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		switch {
		case line == "ITEM: TIMESTEP":
			if F != nil {
				return nil, R.errorf("%s: timestep %d has no atoms", mdconv.TruncatedAtomBlock, F.Timestep)
			}
			l, _ := R.next()
			ts, err := strconv.Atoi(l)
			if err != nil {
				return nil, R.errorf("Could not read the timestep on line %d: '%s'", R.lineno, l)
			}
			F = &Frame{Timestep: ts, NAtoms: -1}
		case line == "ITEM: NUMBER OF ATOMS":
			if err := started(); err != nil {
				return nil, err
			}
			l, _ := R.next()
			n, err := strconv.Atoi(l)
			if err != nil || n < 0 {
				return nil, R.errorf("Could not read the number of atoms on line %d: '%s'", R.lineno, l)
			}
			F.NAtoms = n
		case strings.HasPrefix(line, "ITEM: BOX BOUNDS"):
			if err := started(); err != nil {
				return nil, err
			}
			for i := 0; i < 3; i++ {
				l, _ := R.next()
				f := strings.Fields(l)
				var lo, hi float64
				var err1, err2 error
				if len(f) >= 2 {
					lo, err1 = strconv.ParseFloat(f[0], 64)
					hi, err2 = strconv.ParseFloat(f[1], 64)
				}
				if len(f) < 2 || err1 != nil || err2 != nil {
					return nil, R.errorf("Could not read box dimensions on line %d: '%s'", R.lineno, l)
				}
				F.Box[i] = hi - lo
			}
		case strings.HasPrefix(line, "ITEM: ATOMS"):
			if err := started(); err != nil {
				return nil, err
			}
			if F.NAtoms < 0 {
				return nil, R.errorf("%s for timestep %d", mdconv.AtomCountMissing, F.Timestep)
			}
			cols, ok := findColumns(strings.Fields(strings.TrimPrefix(line, "ITEM: ATOMS")))
			if !ok {
				return nil, R.errorf("The atoms section needs at least the id, type, x, y and z columns, found: '%s'", line)
			}
			F.Fields = cols.fields()
			F.Atoms = make([]*mdconv.Record, 0, F.NAtoms)
			for len(F.Atoms) < F.NAtoms {
				l, ok := R.next()
				if !ok {
					return nil, R.errorf("%s at timestep %d: read %d atoms, expected %d", mdconv.TruncatedAtomBlock, F.Timestep, len(F.Atoms), F.NAtoms)
				}
				if l == "" {
					continue
				}
				if strings.HasPrefix(l, "ITEM:") {
					return nil, R.errorf("%s ('%s') at timestep %d: read %d atoms, expected %d", mdconv.UnexpectedSection, l, F.Timestep, len(F.Atoms), F.NAtoms)
				}
				r, err := cols.decode(l)
				if err != nil {
					return nil, R.errorf("%s on line %d: '%s'", mdconv.MalformedRecord, R.lineno, l)
				}
				F.Atoms = append(F.Atoms, r)
			}
			return F, nil
		default:
			return nil, R.errorf("Unexpected line %d: '%s'", R.lineno, line)
		}
	}
	if err := R.scanner.Err(); err != nil {
		return nil, mdconv.NewError(mdconv.KindIO, R.name, "lammps.Reader", "%s", err.Error())
	}
	if F != nil {
		return nil, R.errorf("%s: timestep %d has no atoms", mdconv.TruncatedAtomBlock, F.Timestep)
	}
	return nil, io.EOF
}
