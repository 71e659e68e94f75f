/*
 * pairs.go, part of mdconv
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

package lammps

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/mdconv"
)

// Pair is a pair of atom IDs.
type Pair [2]int

func (p Pair) String() string { return fmt.Sprintf("%d_%d", p[0], p[1]) }

// ReadPairs reads a file with two atom IDs per line, separated by spaces or commas.
func ReadPairs(name string) ([]Pair, error) {
	lines, err := mdconv.ReadFileList(name)
	if err != nil {
		return nil, err
	}
	ret := make([]Pair, 0, len(lines))
	for _, l := range lines {
		f := strings.Fields(strings.ReplaceAll(l, ",", " "))
		var p Pair
		var err1, err2 error
		if len(f) == 2 {
			p[0], err1 = strconv.Atoi(f[0])
			p[1], err2 = strconv.Atoi(f[1])
		}
		if len(f) != 2 || err1 != nil || err2 != nil {
			return nil, mdconv.NewError(mdconv.KindData, name, "ReadPairs", "Expected two atom numbers per line, found '%s'", l)
		}
		ret = append(ret, p)
	}
	if len(ret) == 0 {
		return nil, mdconv.NewError(mdconv.KindData, name, "ReadPairs", "No atom pairs found")
	}
	return ret, nil
}

// Distances returns the distance, with periodic boundary conditions, between
// the atoms of each pair.
func (F *Frame) Distances(pairs []Pair) ([]float64, error) {
	ids := make([]int, 0, 2*len(pairs))
	for _, p := range pairs {
		ids = append(ids, p[0], p[1])
	}
	atoms, err := F.FindAtoms(ids)
	if err != nil {
		return nil, err
	}
	ret := make([]float64, len(pairs))
	for i := range pairs {
		ret[i] = mdconv.PBCDist(atoms[2*i].Pos, atoms[2*i+1].Pos, F.Box)
	}
	return ret, nil
}

// PairDistances writes, as CSV, the distances between the pairs of atoms at every
// timestep of the given dump files. The header is "timestep" followed by a
// column per pair.
func PairDistances(w io.Writer, dumps []string, pairs []Pair, log *mdconv.Log) error {
	c := csv.NewWriter(w)
	header := make([]string, 1, len(pairs)+1)
	header[0] = "timestep"
	for _, p := range pairs {
		header = append(header, p.String())
	}
	if err := c.Write(header); err != nil {
		return err
	}
	for _, name := range dumps {
		R, err := Open(name)
		if err != nil {
			return err
		}
		n := 0
		for {
			F, err := R.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				R.Close()
				return err
			}
			d, err := F.Distances(pairs)
			if err != nil {
				R.Close()
				return mdconv.NewError(mdconv.KindData, name, "PairDistances", "%s", err.Error())
			}
			row := make([]string, 1, len(d)+1)
			row[0] = strconv.Itoa(F.Timestep)
			for _, v := range d {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			}
			if err := c.Write(row); err != nil {
				R.Close()
				return err
			}
			n++
		}
		R.Close()
		log.LogV(1, "Read", n, "timesteps from", name)
	}
	c.Flush()
	return c.Error()
}
