/*
 * wham_test.go
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

package wham

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mdconv"
)

const pmfText = `#Coor		Free	+/-		Prob		+/-
1.050000	inf	0.000000	0.000000	0.000000
2.050000	0.000000	0.146531	0.000000	0.000000
4.050000	2.000000	0.012017	0.000033	0.000000
6.050000	3.500000	0.007003	0.001541	0.000019
`

func TestCorr(Te *testing.T) {
	if c := Corr(2.05, 9.532083, KBT(310)); math.Abs(c-11.9757045375) > 1e-6 {
		Te.Errorf("Wrong correction %.10f", c)
	}
	if c := Corr(2.05, math.Inf(1), KBT(310)); !math.IsInf(c, 1) {
		Te.Errorf("Infinite free energy corrected to %f", c)
	}
}

func TestProcess(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "PMF_test.txt")
	if err := os.WriteFile(name, []byte(pmfText), 0644); err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	log := &mdconv.Log{Out: &b, Err: &b}
	points, out, err := Process(name, 310, true, "", log)
	if err != nil {
		Te.Fatal(err)
	}
	if out != filepath.Join(dir, "rad_PMF_test.txt") || len(points) != 4 {
		Te.Fatalf("Wrong output %s, %d points", out, len(points))
	}
	for _, p := range points {
		switch {
		case math.IsInf(p.Corr, 1):
			if p.Coord != 1.05 {
				Te.Errorf("Unexpected infinite correction at %f", p.Coord)
			}
		case p.Corr == 0:
			if p.Coord != 6.05 {
				Te.Errorf("Zero point at %f, expected 6.05", p.Coord)
			}
		case p.Corr > 0:
			Te.Errorf("Positive correction %f at %f", p.Corr, p.Coord)
		}
	}
	data, err := os.ReadFile(out)
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[0] != "coord,free,corr" || lines[1] != "1.050000,inf,inf" || !strings.HasPrefix(lines[4], "6.050000,3.500000,0.000000") {
		Te.Errorf("Wrong output file:\n%s", data)
	}
}
