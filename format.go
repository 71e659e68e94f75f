/*
 * format.go, part of mdconv
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
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Format describes how the lines of a structure file are classified, decoded
// and written. The same section reader and serializer work for every format,
// only the Format changes.
type Format struct {
	Name string
	//Matches the line declaring the number of atoms. The first capture group
	//must be the number. If nil, the count is NAtoms, or, if that is 0, the
	//number of records read.
	CountPattern *regexp.Regexp
	NAtoms       int
	//Marks the start of the atom block. If StartIsRecord, the marker line is
	//itself the first record.
	BlockStart    func(line string) bool
	StartIsRecord bool
	//Lines skipped (but kept in the preamble) after the block start.
	SkipAfterStart int
	//A blank line is added to the preamble after the block start.
	BlankAfterStart bool
	//Matches the first of the three "low high" box lines.
	BoxPattern *regexp.Regexp
	//The line after the last record must be blank. Blank lines before the
	//count is reached are an error.
	BlankAfterBlock bool
	//For formats without a known count, the block lasts while this returns true.
	IsRecord func(line string) bool
	//Names of sections that may not appear inside the atom block.
	Sections map[string]bool
	//n is the 1-based index of the record in the block.
	Decode func(line string, n int) (*Record, error)
	Encode func(w io.Writer, r *Record) error
}

// LAMMPSSections are the section headers of a LAMMPS data file.
var LAMMPSSections = map[string]bool{
	"Atoms": true, "Velocities": true, "Masses": true, "Ellipsoids": true, "Lines": true,
	"Triangles": true, "Bodies": true, "Bonds": true, "Angles": true, "Dihedrals": true,
	"Impropers": true, "Pair Coeffs": true, "PairIJ Coeffs": true, "Bond Coeffs": true,
	"Angle Coeffs": true, "Dihedral Coeffs": true, "Improper Coeffs": true,
	"BondBond Coeffs": true, "BondAngle Coeffs": true, "MiddleBondTorsion Coeffs": true,
	"EndBondTorsion Coeffs": true, "AngleTorsion Coeffs": true, "AngleAngleTorsion Coeffs": true,
	"BondBond13 Coeffs": true, "AngleAngle Coeffs": true,
}

var (
	dataCount = regexp.MustCompile(`^(\d+).*atoms$`)
	dataAtoms = regexp.MustCompile(`^Atoms`)
	dataBox   = regexp.MustCompile(`xhi`)
)

// DataFormat returns the descriptor for the "full" atom style of LAMMPS data
// files: id mol type charge x y z, followed by an optional annotation (image
// flags and/or a comment).
func DataFormat() *Format {
	return &Format{
		Name:            "data",
		CountPattern:    dataCount,
		BlockStart:      dataAtoms.MatchString,
		BlankAfterStart: true,
		BoxPattern:      dataBox,
		Sections:        LAMMPSSections,
		Decode:          decodeData,
		Encode:          encodeData,
	}
}

func decodeData(line string, n int) (*Record, error) {
	f := strings.Fields(line)
	if len(f) < 7 {
		return nil, fmt.Errorf("found %d fields, expected three ints followed by four floats", len(f))
	}
	r := new(Record)
	var err error
	ints := []*int{&r.ID, &r.Group, &r.Type}
	for i, v := range ints {
		if *v, err = strconv.Atoi(f[i]); err != nil {
			return nil, err
		}
	}
	if r.Charge, err = strconv.ParseFloat(f[3], 64); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if r.Pos[i], err = strconv.ParseFloat(f[4+i], 64); err != nil {
			return nil, err
		}
	}
	r.Annotation = strings.Join(f[7:], " ")
	return r, nil
}

func encodeData(w io.Writer, r *Record) error {
	line := fmt.Sprintf("%d %d %d %s %s %s %s", r.ID, r.Group, r.Type, FmtFloat(r.Charge),
		FmtFloat(r.Pos[0]), FmtFloat(r.Pos[1]), FmtFloat(r.Pos[2]))
	if r.Annotation != "" {
		line += " " + r.Annotation
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}

// FmtFloat returns the shortest representation of f that reads back to the same
// value, always with a decimal point.
func FmtFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Columns gives, for each field of a PDB atom line, the index of its last
// character. Each field starts where the previous one ends.
type Columns struct {
	LineTypeEnd int
	AtomNumEnd  int
	LabelEnd    int //atom name, residue name and chain
	MolNumEnd   int
	XEnd        int
	YEnd        int
	ZEnd        int
}

// DefaultColumns are the columns of a standard PDB file.
var DefaultColumns = Columns{
	LineTypeEnd: 6,
	AtomNumEnd:  11,
	LabelEnd:    22,
	MolNumEnd:   28,
	XEnd:        38,
	YEnd:        46,
	ZEnd:        54,
}

// DefaultPDBPrint is the print format for PDB atom lines. It takes, in order,
// the record name, the atom number, the label, the molecule number, the three
// coordinates and the rest of the line.
const DefaultPDBPrint = "%s%s%s%4d    %8.3f%8.3f%8.3f%s"

func (c Columns) check() error {
	b := []int{0, c.LineTypeEnd, c.AtomNumEnd, c.LabelEnd, c.MolNumEnd, c.XEnd, c.YEnd, c.ZEnd}
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			return fmt.Errorf("PDB column boundaries must increase, got %v", b[1:])
		}
	}
	return nil
}

func isPDBAtom(line string) bool {
	return strings.HasPrefix(line, "ATOM  ") || strings.HasPrefix(line, "HETATM")
}

// PDBFormat returns the descriptor for PDB files with the given columns and
// print format. If printFormat is empty, DefaultPDBPrint is used. Atoms are
// renumbered in file order, so the atom number columns are never read.
func PDBFormat(cols Columns, printFormat string) (*Format, error) {
	if err := cols.check(); err != nil {
		return nil, NewError(KindConfig, "", "PDBFormat", "%s", err.Error())
	}
	if printFormat == "" {
		printFormat = DefaultPDBPrint
	}
	decode := func(line string, n int) (*Record, error) {
		if len(line) < cols.ZEnd {
			return nil, fmt.Errorf("line too short for the PDB columns (%d characters, need %d)", len(line), cols.ZEnd)
		}
		r := &Record{
			ID:         n,
			Kind:       line[:cols.LineTypeEnd],
			Label:      line[cols.AtomNumEnd:cols.LabelEnd],
			Annotation: line[cols.ZEnd:],
		}
		var err error
		if r.Group, err = strconv.Atoi(strings.TrimSpace(line[cols.LabelEnd:cols.MolNumEnd])); err != nil {
			return nil, err
		}
		bounds := [4]int{cols.MolNumEnd, cols.XEnd, cols.YEnd, cols.ZEnd}
		for i := 0; i < 3; i++ {
			if r.Pos[i], err = strconv.ParseFloat(strings.TrimSpace(line[bounds[i]:bounds[i+1]]), 64); err != nil {
				return nil, err
			}
		}
		return r, nil
	}
	encode := func(w io.Writer, r *Record) error {
		_, err := fmt.Fprintf(w, printFormat+"\n", r.Kind, PDBAtomNum(r.ID), r.Label, r.Group, r.Pos[0], r.Pos[1], r.Pos[2], r.Annotation)
		return err
	}
	return &Format{
		Name:          "pdb",
		BlockStart:    isPDBAtom,
		StartIsRecord: true,
		IsRecord:      isPDBAtom,
		Decode:        decode,
		Encode:        encode,
	}, nil
}

// PDBAtomNum renders an atom number for the 5-character PDB field. Numbers that
// don't fit are written in hexadecimal.
func PDBAtomNum(id int) string {
	if id > 99999 {
		return strconv.FormatInt(int64(id), 16)
	}
	return fmt.Sprintf("%5d", id)
}
