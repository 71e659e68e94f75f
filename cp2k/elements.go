/*
 * elements.go, part of mdconv
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

package cp2k

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/mdconv"
)

// Masses of the elements we expect to find in a biomolecular system.
// An element symbol not in this map is warned about when reading a dictionary.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Si": 28.08,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// Mass returns the mass of the element with the given symbol, and false if
// the element is unknown.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

// CHARMM names of monoatomic ions.
var ionNames = map[string]string{"SOD": "Na", "POT": "K", "CLA": "Cl", "CAL": "Ca", "MG": "Mg", "ZN2": "Zn"}

// symbolFromName guesses the element symbol from a force field atom name.
// Only common bio-elements are considered.
func symbolFromName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return "", fmt.Errorf("Can't guess the element of an empty name")
	}
	if s, ok := ionNames[name]; ok {
		return s, nil
	}
	for _, two := range []string{"CL", "CU", "CO", "NA", "SE", "ZN", "MG", "FE", "BR"} {
		if name == two || (len(name) > 2 && strings.HasPrefix(name, two) && name[2] >= '0' && name[2] <= '9') {
			return two[:1] + strings.ToLower(two[1:]), nil
		}
	}
	switch name[0] {
	case 'H', 'C', 'N', 'O', 'P', 'S', 'K', 'F', 'I':
		return name[:1], nil
	}
	return "", fmt.Errorf("Couldn't guess the element from the name '%s'", name)
}

// Elements maps force field (MM) atom types to element symbols.
type Elements map[string]string

// ReadElements reads a dictionary of MM types to elements: one pair per line,
// separated by a comma or whitespace. Lines starting with '#' are comments.
func ReadElements(name string, log *mdconv.Log) (Elements, error) {
	fin, err := mdconv.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	r := csv.NewReader(fin)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	E := make(Elements)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mdconv.NewError(mdconv.KindData, name, "ReadElements", "%s", err.Error())
		}
		if len(rec) == 1 {
			rec = strings.Fields(rec[0])
		}
		if len(rec) != 2 {
			return nil, mdconv.NewError(mdconv.KindData, name, "ReadElements", "Expected an MM type and an element, found '%s'", strings.Join(rec, ","))
		}
		mm, el := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if _, ok := symbolMass[el]; !ok {
			log.Warnf("Unknown element '%s' for MM type %s in %s", el, mm, name)
		}
		E[mm] = el
	}
	return E, nil
}

// Symbol returns the element for the MM type mm. Types not in the dictionary
// are guessed from their names.
func (E Elements) Symbol(mm string) (string, error) {
	mm = strings.TrimSuffix(strings.TrimSpace(mm), ",")
	if s, ok := E[mm]; ok {
		return s, nil
	}
	return symbolFromName(mm)
}

// MMType returns the MM type in the annotation of a data file atom,
// which is the first word of the comment, i.e. "HGA2" in "0 0 0 # HGA2, CH2".
func MMType(annotation string) string {
	i := strings.Index(annotation, "#")
	if i < 0 {
		return ""
	}
	f := strings.Fields(annotation[i+1:])
	if len(f) == 0 {
		return ""
	}
	return strings.TrimSuffix(f[0], ",")
}
