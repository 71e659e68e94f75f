/*
 * main.go, part of mdconv
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

// lammpsdist writes the distances between pairs of atoms at each timestep of
// LAMMPS dump files.
package main

import (
	"flag"
	"io"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/internal/cli"
	"github.com/rmera/mdconv/lammps"
)

func main() {
	dump := flag.String("f", "", "A LAMMPS dump file")
	list := flag.String("l", "", "A file with a list of LAMMPS dump files, one per line")
	pairsname := flag.String("p", "atom_pairs.txt", "A file with a pair of atom numbers (space or comma separated) per line")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Computes the distances, with periodic boundary conditions, between the given pairs of atoms\nat every timestep of the dump files. The output is written to pairs_<dump or list name>.csv")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	if *dump == "" && *list == "" {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "lammpsdist", "A dump file (-f) or a list of dump files (-l) is required"))
	}
	names, err := mdconv.FileNames(*list, *dump, log)
	cli.Check(log, err)
	pairs, err := lammps.ReadPairs(*pairsname)
	cli.Check(log, err)
	base := *dump
	if *list != "" {
		base = *list
	}
	out := mdconv.Prefixed(base, "pairs_", ".csv")
	cli.Check(log, mdconv.WriteWith(out, func(w io.Writer) error { return lammps.PairDistances(w, names, pairs, log) }))
	log.PrintV(1, "Wrote file:", out)
	cli.Done(log)
}
