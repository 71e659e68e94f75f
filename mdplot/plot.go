/*
 * plot.go, part of mdconv
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

// Package mdplot produces quick line and scatter plots of the columns of
// numeric tables, such as the CSV files written by the other mdconv tools.
package mdplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options for Plot.
type Options struct {
	Title   string
	XLabel  string //the header of the x column if empty
	YLabel  string
	Scatter bool
	Width   vg.Length //12 cm if 0
	Height  vg.Length //9 cm if 0
}

func basicPlot(O *Options) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = O.Title
	p.X.Label.Text = O.XLabel
	p.Y.Label.Text = O.YLabel
	p.Add(plotter.NewGrid())
	return p
}

// points returns the rows of T where both columns are finite.
func points(T *stats.Table, xcol, ycol int) (plotter.XYs, int) {
	pts := make(plotter.XYs, 0, len(T.Rows))
	skipped := 0
	for _, r := range T.Rows {
		x, y := r[xcol], r[ycol]
		if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
			skipped++
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts, skipped
}

func colname(T *stats.Table, i int) string {
	if T.Header != nil {
		return T.Header[i]
	}
	return fmt.Sprintf("column %d", i+1)
}

// ColumnIndex returns the 0-based index of the column given by its header or by
// its 1-based number.
func ColumnIndex(T *stats.Table, col string) (int, error) {
	if i := T.Index(col); i >= 0 {
		return i, nil
	}
	if i, err := strconv.Atoi(col); err == nil && i >= 1 && i <= T.NCols() {
		return i - 1, nil
	}
	return -1, mdconv.NewError(mdconv.KindConfig, T.Name, "mdplot.ColumnIndex", "Column '%s' not found", col)
}

// Plot plots the columns ycols of T against the column xcol, and saves the plot
// in the file name. The format is given by the extension of name (png, svg, pdf...).
// Points with infinite or NaN values are left out.
func Plot(T *stats.Table, xcol int, ycols []int, O *Options, name string, log *mdconv.Log) error {
	if O == nil {
		O = &Options{}
	}
	n := T.NCols()
	if xcol < 0 || xcol >= n {
		return mdconv.NewError(mdconv.KindConfig, T.Name, "mdplot.Plot", "Column %d out of range, the table has %d columns", xcol+1, n)
	}
	if len(ycols) == 0 {
		return mdconv.NewError(mdconv.KindConfig, T.Name, "mdplot.Plot", "No columns to plot")
	}
	opts := *O
	if opts.XLabel == "" {
		opts.XLabel = colname(T, xcol)
	}
	p := basicPlot(&opts)
	for key, c := range ycols {
		if c < 0 || c >= n {
			return mdconv.NewError(mdconv.KindConfig, T.Name, "mdplot.Plot", "Column %d out of range, the table has %d columns", c+1, n)
		}
		pts, skipped := points(T, xcol, c)
		if skipped > 0 {
			log.LogV(1, fmt.Sprintf("%d non-finite points of %s left out", skipped, colname(T, c)))
		}
		if len(pts) == 0 {
			return mdconv.NewError(mdconv.KindData, T.Name, "mdplot.Plot", "No finite values to plot in %s", colname(T, c))
		}
		r, g, b := colors(key, len(ycols))
		col := color.RGBA{R: r, G: g, B: b, A: 255}
		if opts.Scatter {
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			s.GlyphStyle.Color = col
			s.GlyphStyle.Shape = shape(key)
			p.Add(s)
			p.Legend.Add(colname(T, c), s)
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = col
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(colname(T, c), l)
	}
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 12 * vg.Centimeter
	}
	if h == 0 {
		h = 9 * vg.Centimeter
	}
	if err := p.Save(w, h, name); err != nil {
		return mdconv.NewError(mdconv.KindIO, name, "mdplot.Plot", "Could not save plot: %s", err.Error())
	}
	log.LogV(1, "Wrote file:", name)
	return nil
}

func shape(key int) draw.GlyphDrawer {
	switch key % 4 {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.PyramidGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}

// iHVS2RGB takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors spreads steps hues between red and violet, skipping the yellows,
// which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
