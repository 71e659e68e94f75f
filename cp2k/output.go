/*
 * output.go, part of mdconv
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

// Package cp2k gathers the final energy and the coordinates from CP2K QM/MM
// output files, and writes them as LAMMPS data, PDB or XYZ files.
package cp2k

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rmera/mdconv"
)

var (
	coordMarker   = regexp.MustCompile(`MODULE FIST:  ATOMIC COORDINATES IN`)
	energyPattern = regexp.MustCompile(`ENERGY\| Total FORCE_EVAL \( QMMM \)`)
)

// CoordFormat returns the Format for the MM coordinate block of a CP2K output.
// If natoms is positive, exactly natoms records must be followed by a blank
// line. Otherwise the block lasts until the first blank line.
func CoordFormat(natoms int) *mdconv.Format {
	f := &mdconv.Format{
		Name:           "cp2k",
		BlockStart:     coordMarker.MatchString,
		SkipAfterStart: 3,
		IsRecord:       func(line string) bool { return line != "" },
		Decode:         decodeCoord,
	}
	if natoms > 0 {
		f.NAtoms = natoms
		f.BlankAfterBlock = true
	}
	return f
}

// An MM coordinate line: atom number, kind, MM type, x, y, z, and then
// charge and mass, which we don't need.
func decodeCoord(line string, n int) (*mdconv.Record, error) {
	f := strings.Fields(line)
	if len(f) < 6 {
		return nil, fmt.Errorf("found %d fields, expected at least 6", len(f))
	}
	r := &mdconv.Record{Label: f[2]}
	var err error
	if r.ID, err = strconv.Atoi(f[0]); err != nil {
		return nil, err
	}
	if r.Type, err = strconv.Atoi(f[1]); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if r.Pos[i], err = strconv.ParseFloat(f[3+i], 64); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Output is what we take from a CP2K output file.
type Output struct {
	Name   string
	Energy string //the last QM/MM energy, as written, or empty if none
	Atoms  []*mdconv.Record
}

// EnergyValue returns the energy as a float.
func (O *Output) EnergyValue() (float64, error) {
	if O.Energy == "" {
		return 0, mdconv.NewError(mdconv.KindData, O.Name, "EnergyValue", "No QM/MM energy found")
	}
	v, err := strconv.ParseFloat(O.Energy, 64)
	if err != nil {
		return 0, mdconv.NewError(mdconv.KindData, O.Name, "EnergyValue", "Could not read the energy '%s'", O.Energy)
	}
	return v, nil
}

// ReadOutput reads the CP2K output in r. natoms is the number of atoms expected
// (0 if unknown). The last coordinate block and the last QM/MM energy are taken,
// so both belong to the final step.
func ReadOutput(r io.Reader, name string, natoms int) (*Output, error) {
	C, err := mdconv.ReadSections(r, name, CoordFormat(natoms))
	if err != nil {
		return nil, mdconv.Decorate(err, "ReadOutput")
	}
	if len(C.Atoms) == 0 {
		return nil, mdconv.NewError(mdconv.KindData, name, "ReadOutput", "Did not find atom coordinates")
	}
	O := &Output{Name: name}
	for _, lines := range [][]string{C.Preamble, C.Trailer} {
		for _, l := range lines {
			if energyPattern.MatchString(l) {
				f := strings.Fields(l)
				O.Energy = f[len(f)-1]
			}
		}
	}
	//every later block is read again from the lines after the previous one.
	for {
		O.Atoms = C.Atoms
		next := slices.IndexFunc(C.Trailer, coordMarker.MatchString)
		if next < 0 {
			break
		}
		rest := strings.Join(C.Trailer[next:], "\n")
		if C, err = mdconv.ReadSections(strings.NewReader(rest), name, CoordFormat(natoms)); err != nil {
			return nil, mdconv.Decorate(err, "ReadOutput")
		}
	}
	return O, nil
}

// Read opens and reads the CP2K output file name.
func Read(name string, natoms int) (*Output, error) {
	fin, err := mdconv.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadOutput(fin, name, natoms)
}

// Content returns the coordinates as a subject Content.
func (O *Output) Content() *mdconv.Content {
	return &mdconv.Content{Name: O.Name, NAtoms: len(O.Atoms), Atoms: O.Atoms}
}
