/*
 * adjust.go, part of mdconv
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
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Emit receives each structure produced by the scans. The atoms slice is reused
// between calls, so it must be consumed before returning.
type Emit func(suffix string, atoms []*Record) error

func checkAtom(tpl *Content, key string, atom int) error {
	if atom < 1 || atom > tpl.NAtoms {
		return NewError(KindConfig, tpl.Name, "checkAtom", "Keyword '%s' specified atom index %d, but found only %d atoms in the data template file", key, atom, tpl.NAtoms)
	}
	return nil
}

// AdjustAtomXYZ moves the atom with 1-based index atom along the line from xyz1
// to xyz2 in steps steps, starting extend steps before xyz1 and ending extend
// steps after xyz2 (xyz2 itself is only reached if extend>0). The suffix of each
// structure is "_k", with k the step number.
func AdjustAtomXYZ(tpl *Content, atom int, xyz1, xyz2 [3]float64, steps, extend int, emit Emit) error {
	if err := checkAtom(tpl, "adjust_atom", atom); err != nil {
		return err
	}
	if steps <= 0 {
		return NewError(KindConfig, tpl.Name, "AdjustAtomXYZ", "A positive number of steps is needed to move atom %d, got %d", atom, steps)
	}
	var inc [3]float64
	floats.SubTo(inc[:], xyz2[:], xyz1[:])
	floats.Scale(1/float64(steps), inc[:])
	atoms := tpl.CopyAtoms()
	for k := -extend; k < steps+extend; k++ {
		var p [3]float64
		floats.AddScaledTo(p[:], xyz1[:], float64(k), inc[:])
		atoms[atom-1].Pos = Round6(p)
		if err := emit("_"+strconv.Itoa(k), atoms); err != nil {
			return errDecorate(err, "AdjustAtomXYZ")
		}
	}
	return nil
}

// DistList returns the distances from min to max (both included) every step.
// If min equals max, only min is returned. step must have the sign of max-min.
func DistList(min, max, step float64) ([]float64, error) {
	if min == max {
		return []float64{min}, nil
	}
	if step == 0 || (max-min)*step < 0 {
		return nil, NewError(KindConfig, "", "DistList", "Invalid distance range: min %g, max %g, step %g", min, max, step)
	}
	n := int(math.Floor((max-min)/step + 1e-9))
	ret := make([]float64, 0, n+1)
	for k := 0; k <= n; k++ {
		ret = append(ret, math.Round((min+float64(k)*step)*1e10)/1e10)
	}
	return ret, nil
}

// AdjustAtomDist moves the atom moving along the minimum image vector from the
// atom pivot so the distance between them takes each value in dists. Atoms are
// 1-based indexes. The suffix of each structure is "_" followed by the distance.
func AdjustAtomDist(tpl *Content, pivot, moving int, dists []float64, emit Emit) error {
	for _, a := range []int{pivot, moving} {
		if err := checkAtom(tpl, "atoms_dist", a); err != nil {
			return err
		}
	}
	if !tpl.HasBox {
		return NewError(KindData, tpl.Name, "AdjustAtomDist", "No box dimensions found in the template")
	}
	atoms := tpl.CopyAtoms()
	p := atoms[pivot-1].Pos
	diff := PBCVector(atoms[moving-1].Pos, p, tpl.Box)
	base := floats.Norm(diff[:], 2)
	if base == 0 {
		return NewError(KindData, tpl.Name, "AdjustAtomDist", "Atoms %d and %d are on top of each other", pivot, moving)
	}
	for _, d := range dists {
		var np [3]float64
		floats.AddScaledTo(np[:], p[:], d/base, diff[:])
		atoms[moving-1].Pos = Round6(np)
		if err := emit("_"+FmtFloat(d), atoms); err != nil {
			return errDecorate(err, "AdjustAtomDist")
		}
	}
	return nil
}
