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

// whamrad applies the radial correction to the potentials of mean force
// written by WHAM.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/internal/cli"
	"github.com/rmera/mdconv/wham"
)

func main() {
	files := flag.String("f", "", "Comma-separated PMF files to process. By default, every PMF*.txt file in the working directory")
	write := flag.Bool("o", false, "Write the corrected PMFs to rad_<file>")
	outdir := flag.String("d", "", "Directory for the output files, the directory of each PMF file by default")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("temperature", "Creates a radial correction value for each line of the WHAM potentials of mean force,\nat the given temperature (in K).")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "whamrad", "too few arguments: the temperature is required"))
	}
	temp, err := strconv.ParseFloat(args[0], 64)
	if err != nil || temp <= 0 {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "whamrad", "Invalid temperature '%s'", args[0]))
	}
	var names []string
	if *files != "" {
		for _, f := range strings.Split(*files, ",") {
			if f = strings.TrimSpace(f); f != "" {
				names = append(names, f)
			}
		}
	} else if names, err = filepath.Glob("PMF*.txt"); err != nil || len(names) == 0 {
		cli.Fatal(log, mdconv.NewError(mdconv.KindConfig, "", "whamrad", "No PMF*.txt files found in the working directory"))
	}
	for _, name := range names {
		points, out, err := wham.Process(name, temp, *write, *outdir, log)
		cli.Check(log, err)
		if out != "" {
			continue
		}
		fmt.Println("#", name)
		cli.Check(log, wham.Table(name, points).WriteCSV(os.Stdout))
	}
	cli.Done(log)
}
