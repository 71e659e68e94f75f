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

// percolstats prints the minimum, maximum, average and standard deviation of
// each column of a numeric table.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/internal/cli"
	"github.com/rmera/mdconv/stats"
)

func main() {
	fname := flag.String("f", "", "The file with the data to analyze (required)")
	delim := flag.String("d", "", "The delimiter between values, whitespace by default")
	header := flag.Bool("n", false, "The first non-comment line of the file holds the column names")
	buffer := flag.Float64("b", 0, "If given, also prints the maximum of each column plus this buffer")
	bins := flag.Int("hist", 0, "If larger than 0, writes a histogram with this many bins for each column")
	norm := flag.Bool("norm", false, "Write the histograms as fractions of the total instead of counts")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Reads a file with a table of numbers and prints per-column statistics.\nThe statistics are also written to stats_<file>.csv")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	if *fname == "" {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "percolstats", "A data file (-f) is required"))
	}
	T, err := stats.ReadTable(*fname, *delim, *header, log)
	cli.Check(log, err)
	S, err := stats.Columns(T)
	cli.Check(log, err)
	bufset := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "b" {
			bufset = true
		}
	})
	if bufset {
		S.SetBuffer(*buffer)
	}
	cli.Check(log, S.Report(os.Stdout))
	out := mdconv.Prefixed(*fname, "stats_", ".csv")
	cli.Check(log, mdconv.WriteWith(out, S.WriteCSV))
	log.PrintV(1, "Wrote file:", out)
	if *bins > 0 {
		hout := mdconv.Prefixed(*fname, "histo_", ".csv")
		err := mdconv.WriteWith(hout, func(w io.Writer) error {
			for _, H := range stats.Histograms(T, S, *bins) {
				if *norm {
					H.Normalize()
				}
				log.LogV(2, H.String())
				if _, err := fmt.Fprintf(w, "# %s, %d values\n", H.Name, H.Total()); err != nil {
					return err
				}
				if _, err := H.WriteTo(w); err != nil {
					return err
				}
			}
			return nil
		})
		cli.Check(log, err)
		log.PrintV(1, "Wrote file:", hout)
	}
	cli.Done(log)
}
