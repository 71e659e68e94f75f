/*
 * convert.go, part of mdconv
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

// Substituter produces the output atoms from the template and a subject file.
type Substituter func(tpl, subj *Content) ([]*Record, []Mismatch, error)

// Subst returns a Substituter that calls Substitute with s.
func Subst(s SubstOptions) Substituter {
	return func(tpl, subj *Content) ([]*Record, []Mismatch, error) {
		return Substitute(tpl, subj, s)
	}
}

// Labels returns a Substituter that calls SubstituteLabels with labels.
func Labels(labels *Table[string, int]) Substituter {
	return func(tpl, subj *Content) ([]*Record, []Mismatch, error) {
		return SubstituteLabels(tpl, subj, labels)
	}
}

// Convert reads the subject file subj with the format sf, builds the new atoms with
// sub and writes the template, with the new atoms, to out using the format tf.
// The mismatches are logged and returned. If anything fails, out is not created.
func Convert(tpl *Content, tf *Format, subj string, sf *Format, out string, sub Substituter, log *Log) ([]Mismatch, error) {
	S, err := ReadFile(subj, sf)
	if err != nil {
		return nil, errDecorate(err, "Convert")
	}
	atoms, mism, err := sub(tpl, S)
	if err != nil {
		return nil, errDecorate(err, "Convert")
	}
	for _, m := range mism {
		log.LogV(1, m.String())
	}
	if err := WriteFile(out, tpl.Preamble, atoms, tpl.Trailer, tf); err != nil {
		return mism, errDecorate(err, "Convert")
	}
	log.PrintV(1, "Completed writing", out)
	return mism, nil
}
