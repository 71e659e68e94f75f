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

// pressdups combines the rows of a CSV file that have the same value in one
// column, averaging the other columns.
package main

import (
	"flag"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/internal/cli"
	"github.com/rmera/mdconv/stats"
)

func main() {
	column := flag.String("c", "RMSD", "The column with the values to look for duplicates")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("file.csv", "Compresses a CSV file (with a header) to combine rows that have the same value in the given column.\nThe other columns are averaged. The output, sorted by the column, is written to pressed_<file>.")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	args := flag.Args()
	if len(args) < 1 {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "pressdups", "pressdups requires one argument, the CSV file to compress"))
	}
	name := args[0]
	T, err := stats.ReadTable(name, ",", true, log)
	cli.Check(log, err)
	col := T.Index(*column)
	if col < 0 {
		cli.Fatal(log, mdconv.NewError(mdconv.KindData, name, "pressdups", "Column '%s' not found in the header %v", *column, T.Header))
	}
	P := stats.Press(T, col)
	log.LogV(2, "Compressed", len(T.Rows), "rows into", len(P.Rows))
	out := mdconv.Prefixed(name, "pressed_", "")
	cli.Check(log, mdconv.WriteWith(out, P.WriteCSV))
	log.PrintV(1, "Wrote file:", out)
	cli.Done(log)
}
