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

// mdplot plots columns of a CSV file against another column.
package main

import (
	"flag"
	"strings"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/internal/cli"
	"github.com/rmera/mdconv/mdplot"
	"github.com/rmera/mdconv/stats"
	"gonum.org/v1/plot/vg"
)

func main() {
	fname := flag.String("f", "", "The CSV file to plot, with a header (required)")
	xcol := flag.String("x", "1", "The column for the x axis, by name or 1-based number")
	ycols := flag.String("y", "2", "Comma-separated columns for the y axis, by name or 1-based number")
	out := flag.String("o", "", "The output file. The extension gives the format. <file>.png by default")
	title := flag.String("title", "", "The title of the plot")
	ylabel := flag.String("ylabel", "", "The label of the y axis")
	scatter := flag.Bool("scatter", false, "Plot points instead of lines")
	width := flag.String("width", "12cm", "The width of the plot (mm, cm, in or pt)")
	height := flag.String("height", "9cm", "The height of the plot (mm, cm, in or pt)")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Plots columns of a CSV file, such as the ones written by lammpsdist, whamrad or pressdups.")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	if *fname == "" {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "mdplot", "A CSV file (-f) is required"))
	}
	O := &mdplot.Options{Title: *title, YLabel: *ylabel, Scatter: *scatter}
	var err error
	if O.Width, err = vg.ParseLength(*width); err != nil {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "mdplot", "Invalid width '%s'", *width))
	}
	if O.Height, err = vg.ParseLength(*height); err != nil {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "mdplot", "Invalid height '%s'", *height))
	}
	T, err := stats.ReadTable(*fname, ",", true, log)
	cli.Check(log, err)
	x, err := mdplot.ColumnIndex(T, *xcol)
	cli.Check(log, err)
	var ys []int
	for _, c := range strings.Split(*ycols, ",") {
		y, err := mdplot.ColumnIndex(T, strings.TrimSpace(c))
		cli.Check(log, err)
		ys = append(ys, y)
	}
	name := *out
	if name == "" {
		name = mdconv.OutName(*fname, "", ".png")
	}
	cli.Check(log, mdplot.Plot(T, x, ys, O, name, log))
	cli.Done(log)
}
