/*
 * serialize.go, part of mdconv
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
)

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteContent writes the preamble, the atoms (with f's encoder) and the trailer to w.
func WriteContent(w io.Writer, preamble []string, atoms []*Record, trailer []string, f *Format) error {
	if err := writeLines(w, preamble); err != nil {
		return err
	}
	for _, a := range atoms {
		if err := f.Encode(w, a); err != nil {
			return err
		}
		if err := writeLines(w, a.After); err != nil {
			return err
		}
	}
	return writeLines(w, trailer)
}

// WriteFile writes a structure file to name. Either the whole file is written
// or nothing is.
func WriteFile(name string, preamble []string, atoms []*Record, trailer []string, f *Format) error {
	err := WriteWith(name, func(w io.Writer) error {
		return WriteContent(w, preamble, atoms, trailer, f)
	})
	return errDecorate(err, "WriteFile")
}

// WriteXYZ writes the atoms in XYZ format, with the given element symbols (one per atom)
// and comment line.
func WriteXYZ(w io.Writer, comment string, symbols []string, atoms []*Record) error {
	if len(symbols) != len(atoms) {
		return NewError(KindData, "", "WriteXYZ", "%d symbols for %d atoms", len(symbols), len(atoms))
	}
	if _, err := fmt.Fprintf(w, "%d\n%s\n", len(atoms), comment); err != nil {
		return err
	}
	for i, a := range atoms {
		if _, err := fmt.Fprintf(w, "%-2s  %8.3f%8.3f%8.3f\n", symbols[i], a.Pos[0], a.Pos[1], a.Pos[2]); err != nil {
			return err
		}
	}
	return nil
}
