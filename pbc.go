/*
 * pbc.go, part of mdconv
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

	"gonum.org/v1/gonum/floats"
)

// PBCVector returns the minimum image vector a-b in an orthorhombic box.
// Box sides that are not positive are treated as non-periodic.
func PBCVector(a, b, box [3]float64) [3]float64 {
	var d [3]float64
	floats.SubTo(d[:], a[:], b[:])
	for i, l := range box {
		if l > 0 {
			d[i] -= l * math.RoundToEven(d[i]/l)
		}
	}
	return d
}

// PBCDist returns the minimum image distance between a and b.
func PBCDist(a, b, box [3]float64) float64 {
	d := PBCVector(a, b, box)
	return floats.Norm(d[:], 2)
}

// Round6 rounds each coordinate of v to 6 decimals.
func Round6(v [3]float64) [3]float64 {
	for i := range v {
		v[i] = math.Round(v[i]*1e6) / 1e6
	}
	return v
}
