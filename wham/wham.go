/*
 * wham.go, part of mdconv
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

// Package wham applies the radial (Jacobian) correction to the one-dimensional
// potentials of mean force written by WHAM.
package wham

import (
	"math"
	"path/filepath"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/stats"
)

// Boltz is the Boltzmann constant in kcal/(mol K).
const Boltz = 0.0019872041

// Prefix is added to the name of the PMF files to name the corrected files.
const Prefix = "rad_"

// Point is one row of a PMF.
type Point struct {
	Coord float64
	Free  float64
	Corr  float64
}

// KBT returns kB*T for the temperature temp, in K.
func KBT(temp float64) float64 {
	return Boltz * temp
}

// Corr returns the free energy free at the distance r, corrected for the
// volume of the spherical shell. Infinite free energies are returned unchanged.
func Corr(r, free, kbt float64) float64 {
	if math.IsInf(free, 0) || math.IsNaN(free) {
		return free
	}
	return free + kbt*math.Log(4*math.Pi*r*r)
}

// ReadPMF reads the coordinate and free energy columns of the WHAM output file name,
// and computes the correction for each point.
func ReadPMF(name string, kbt float64, log *mdconv.Log) ([]Point, error) {
	T, err := stats.ReadTable(name, "", false, log)
	if err != nil {
		return nil, err
	}
	if T.NCols() < 2 {
		return nil, mdconv.NewError(mdconv.KindData, name, "ReadPMF", "Expected at least 2 columns, found %d", T.NCols())
	}
	ret := make([]Point, len(T.Rows))
	for i, r := range T.Rows {
		ret[i] = Point{Coord: r[0], Free: r[1], Corr: Corr(r[0], r[1], kbt)}
	}
	return ret, nil
}

// ZeroPoint shifts the corrections so the largest finite one is 0.
func ZeroPoint(points []Point) {
	max := math.Inf(-1)
	for _, p := range points {
		if !math.IsInf(p.Corr, 0) && p.Corr > max {
			max = p.Corr
		}
	}
	if math.IsInf(max, -1) {
		return
	}
	for i := range points {
		points[i].Corr -= max
	}
}

// Table returns the points as a table with the columns coord, free and corr.
func Table(name string, points []Point) *stats.Table {
	T := &stats.Table{Name: name, Header: []string{"coord", "free", "corr"}}
	for _, p := range points {
		T.Rows = append(T.Rows, []float64{p.Coord, p.Free, p.Corr})
	}
	return T
}

// Process reads the PMF in name, corrects it for the temperature temp and, if
// write is true, writes the result to the file Prefix+name, in the same directory
// as name, or in outdir if it is not empty. It returns the corrected points and
// the name of the file written, if any.
func Process(name string, temp float64, write bool, outdir string, log *mdconv.Log) ([]Point, string, error) {
	points, err := ReadPMF(name, KBT(temp), log)
	if err != nil {
		return nil, "", err
	}
	ZeroPoint(points)
	if !write {
		return points, "", nil
	}
	out := mdconv.InDir(mdconv.Prefixed(name, Prefix, ""), outdir)
	if err := mdconv.WriteWith(out, Table(filepath.Base(name), points).WriteCSV); err != nil {
		return points, "", err
	}
	log.LogV(1, "Wrote file:", out)
	return points, out, nil
}
