/*
 * record.go, part of mdconv
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

// Record is one parsed atom line. Not every format uses every field:
// LAMMPS data files leave Kind and Label empty, while PDB files use Label
// (the atom and residue name columns) instead of Type.
type Record struct {
	ID         int
	Group      int //molecule/residue ID
	Type       int //category code, 0 if the format has none
	Charge     float64
	Pos        [3]float64
	Annotation string   //whatever follows the fields we care about, kept verbatim
	Kind       string   //PDB record name, i.e. "ATOM  " or "HETATM"
	Label      string   //PDB atom + residue name columns
	After      []string //non-record lines between this record and the next one, such as TER
}

// Copy returns a copy of the Record.
func (R *Record) Copy() *Record {
	if R == nil {
		panic("Attempted to copy a nil record")
	}
	r := *R
	return &r
}

// Fields selects which fields of a record can be replaced with the values from a subject file.
type Fields uint8

const (
	FieldPos Fields = 1 << iota
	FieldType
	FieldCharge
	FieldGroup //molecule ID
)

// Has returns true if all the fields in g are selected in F.
func (F Fields) Has(g Fields) bool {
	return F&g == g
}

// Content is a parsed structure file: the lines before the atom block, the atom
// block and the lines after it.
type Content struct {
	Name     string //where it was read from
	Preamble []string
	NAtoms   int //declared number of atoms
	Atoms    []*Record
	Trailer  []string
	Box      [3]float64
	HasBox   bool
}

// Len returns the number of atom records.
func (C *Content) Len() int {
	return len(C.Atoms)
}

// CopyAtoms returns a deep copy of the atom records. The copy can be modified
// without affecting the Content.
func (C *Content) CopyAtoms() []*Record {
	ret := make([]*Record, len(C.Atoms))
	for i, v := range C.Atoms {
		ret[i] = v.Copy()
	}
	return ret
}

// CopyPreamble returns a copy of the preamble lines, so they can be
// edited for one output.
func (C *Content) CopyPreamble() []string {
	return append([]string(nil), C.Preamble...)
}
