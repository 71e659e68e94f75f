/*
 * subst.go, part of mdconv
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
	"strconv"
	"strings"
)

// SubstOptions controls what Substitute takes from the subject file.
type SubstOptions struct {
	Fields     Fields           //FieldPos if zero
	Types      *Table[int, int] //if not nil, subject types are checked against the template
	ImageFlags bool             //copy the image flags at the start of the subject annotation
}

// Mismatch is an atom whose type in the subject file doesn't match the template.
// It is reported, but the template type is always the one written.
type Mismatch struct {
	Pos      int //0-based
	Label    string
	Expected int
	Found    int
}

func (M Mismatch) String() string {
	if M.Label != "" {
		return fmt.Sprintf("Data mismatch on atom %d (%s): expected type %d but found type %d", M.Pos+1, M.Label, M.Expected, M.Found)
	}
	return fmt.Sprintf("Data mismatch on atom %d: expected type %d but found type %d", M.Pos+1, M.Expected, M.Found)
}

func incomplete(tpl, subj *Content, caller string) error {
	if len(subj.Atoms) >= len(tpl.Atoms) {
		return nil
	}
	return NewError(KindData, subj.Name, caller, "%s in %s: read %d atoms, expected %d", IncompleteAtoms, subj.Name, len(subj.Atoms), len(tpl.Atoms))
}

// Substitute returns a copy of the template atoms with the fields selected in s
// replaced by those of the subject atoms at the same position. The template
// is not modified.
func Substitute(tpl, subj *Content, s SubstOptions) ([]*Record, []Mismatch, error) {
	if err := countMismatch(tpl, subj, "Substitute"); err != nil {
		return nil, nil, err
	}
	if err := incomplete(tpl, subj, "Substitute"); err != nil {
		return nil, nil, err
	}
	fields := s.Fields
	if fields == 0 {
		fields = FieldPos
	}
	var mism []Mismatch
	out := tpl.CopyAtoms()
	for i, o := range out {
		sr := subj.Atoms[i]
		if s.Types != nil {
			if exp, ok := s.Types.Get(sr.Type); ok && exp != o.Type {
				mism = append(mism, Mismatch{Pos: i, Expected: exp, Found: o.Type})
			}
		}
		if fields.Has(FieldPos) {
			o.Pos = sr.Pos
		}
		if fields.Has(FieldType) {
			o.Type = sr.Type
		}
		if fields.Has(FieldCharge) {
			o.Charge = sr.Charge
		}
		if fields.Has(FieldGroup) {
			o.Group = sr.Group
		}
		if s.ImageFlags {
			if flags := leadingInts(sr.Annotation, 3); len(flags) > 0 {
				o.Annotation = spliceInts(o.Annotation, flags)
			}
		}
	}
	return out, mism, nil
}

// SubstituteLabels puts the positions of the subject atoms in a copy of the
// atoms of a template that uses labels instead of types (a PDB file). If labels
// is not nil, the subject types are checked against it.
func SubstituteLabels(tpl, subj *Content, labels *Table[string, int]) ([]*Record, []Mismatch, error) {
	if subj.NAtoms != len(tpl.Atoms) {
		return nil, nil, NewError(KindData, subj.Name, "SubstituteLabels", "%s: %d atoms in %s, but %d in the template %s", MismatchedAtoms, subj.NAtoms, subj.Name, len(tpl.Atoms), tpl.Name)
	}
	if err := incomplete(tpl, subj, "SubstituteLabels"); err != nil {
		return nil, nil, err
	}
	var mism []Mismatch
	out := tpl.CopyAtoms()
	for i, o := range out {
		sr := subj.Atoms[i]
		if labels != nil {
			label := strings.TrimSpace(o.Label)
			if exp, ok := labels.Get(label); ok && exp != sr.Type {
				mism = append(mism, Mismatch{Pos: i, Label: label, Expected: exp, Found: sr.Type})
			}
		}
		o.Pos = sr.Pos
	}
	return out, mism, nil
}

// leadingInts returns up to max integers at the start of s, stopping at the
// first token that is not an integer or starts a comment.
func leadingInts(s string, max int) []string {
	var ret []string
	for _, t := range strings.Fields(s) {
		if len(ret) == max || strings.HasPrefix(t, "#") {
			break
		}
		if _, err := strconv.Atoi(t); err != nil {
			break
		}
		ret = append(ret, t)
	}
	return ret
}

// spliceInts replaces the leading integers of s by ints.
func spliceInts(s string, ints []string) string {
	f := strings.Fields(s)
	n := len(leadingInts(s, 3))
	return strings.Join(append(append([]string(nil), ints...), f[n:]...), " ")
}
