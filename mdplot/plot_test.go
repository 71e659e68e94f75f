/*
 * plot_test.go
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

package mdplot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/stats"
)

func table() *stats.Table {
	return &stats.Table{
		Name:   "pairs.csv",
		Header: []string{"timestep", "1_2", "1_3"},
		Rows: [][]float64{
			{0, 1.0, 2.0},
			{100, 1.2, math.Inf(1)},
			{200, 1.1, 2.2},
		},
	}
}

func TestPlot(Te *testing.T) {
	T := table()
	var b bytes.Buffer
	log := &mdconv.Log{Verbosity: 1, Out: &b, Err: &b}
	dir := Te.TempDir()
	for i, scatter := range []bool{false, true} {
		name := filepath.Join(dir, []string{"line.png", "scatter.png"}[i])
		err := Plot(T, 0, []int{1, 2}, &Options{Title: "Distances", Scatter: scatter}, name, log)
		if err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
			Te.Errorf("Plot %s not written: %v", name, err)
		}
	}
	if !bytes.Contains(b.Bytes(), []byte("1 non-finite points of 1_3 left out")) {
		Te.Errorf("Non-finite point not reported: %s", b.String())
	}
	if err := Plot(T, 0, []int{5}, nil, filepath.Join(dir, "x.png"), log); mdconv.ExitCode(err) != mdconv.ExitInput {
		Te.Errorf("Column out of range should be a configuration error: %v", err)
	}
}

func TestColumnIndex(Te *testing.T) {
	T := table()
	for col, exp := range map[string]int{"1_3": 2, "1": 0, "timestep": 0, "2": 1} {
		if i, err := ColumnIndex(T, col); err != nil || i != exp {
			Te.Errorf("Column %s: expected %d got %d (%v)", col, exp, i, err)
		}
	}
	if _, err := ColumnIndex(T, "4"); err == nil {
		Te.Error("Column 4 of 3 found")
	}
}

func TestColors(Te *testing.T) {
	if r, g, b := iHVS2RGB(0, 1, 1); r != 255 || g != 0 || b != 0 {
		Te.Errorf("Hue 0 should be red, got %d %d %d", r, g, b)
	}
	if r, g, b := iHVS2RGB(240, 1, 0); r != 255 || g != 255 || b != 255 {
		Te.Errorf("No saturation should be white, got %d %d %d", r, g, b)
	}
	r1, g1, b1 := colors(0, 2)
	r2, g2, b2 := colors(1, 2)
	if r1 == r2 && g1 == g2 && b1 == b2 {
		Te.Error("Two series got the same color")
	}
}
