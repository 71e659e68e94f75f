/*
 * columns.go, part of mdconv
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

package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/rmera/mdconv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColStats holds the statistics of each column of a table.
type ColStats struct {
	Header []string
	Min    []float64
	Max    []float64
	Mean   []float64
	Std    []float64 //population standard deviation
	Buffer float64   //added to Max in the reports, if HasBuf
	HasBuf bool
}

// Columns returns the statistics for each column of T. Tables with a single
// column are rejected.
func Columns(T *Table) (*ColStats, error) {
	n := T.NCols()
	if n < 2 {
		return nil, mdconv.NewError(mdconv.KindData, T.Name, "Columns", "File contains a vector instead of an array; this program is meant for arrays")
	}
	S := &ColStats{Header: T.Header, Min: make([]float64, n), Max: make([]float64, n), Mean: make([]float64, n), Std: make([]float64, n)}
	for i := 0; i < n; i++ {
		c := T.Column(i)
		S.Min[i] = floats.Min(c)
		S.Max[i] = floats.Max(c)
		S.Mean[i], S.Std[i] = popMeanStd(c)
	}
	return S, nil
}

// stat.PopMeanStdDev gives NaN for a single value, we want 0.
func popMeanStd(c []float64) (float64, float64) {
	if len(c) == 1 {
		return c[0], 0
	}
	return stat.PopMeanStdDev(c, nil)
}

// SetBuffer makes the reports include the maximum of each column plus b.
func (S *ColStats) SetBuffer(b float64) {
	S.Buffer = b
	S.HasBuf = true
}

func (S *ColStats) rows() ([]string, [][]float64) {
	labels := []string{"Min value per column:", "Max value per column:", "Avg value per column:", "Std. dev. per column:"}
	vals := [][]float64{S.Min, S.Max, S.Mean, S.Std}
	if S.HasBuf {
		labels = append(labels, fmt.Sprintf("Max value plus %s buffer:", mdconv.FmtFloat(S.Buffer)))
		buf := make([]float64, len(S.Max))
		floats.AddConst(S.Buffer, floats.AddTo(buf, buf, S.Max))
		vals = append(vals, buf)
	}
	return labels, vals
}

// Report writes the statistics in a human-readable form.
func (S *ColStats) Report(w io.Writer) error {
	labels, vals := S.rows()
	for i, l := range labels {
		if _, err := fmt.Fprintf(w, "%26s", l); err != nil {
			return err
		}
		for _, v := range vals[i] {
			fmt.Fprintf(w, "%13.6f", v)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the statistics as CSV: the header, if any, and then one row
// for each statistic, with 6 decimals.
func (S *ColStats) WriteCSV(w io.Writer) error {
	c := csv.NewWriter(w)
	if S.Header != nil {
		c.Write(S.Header)
	}
	_, vals := S.rows()
	for _, v := range vals {
		row := make([]string, len(v))
		for i, f := range v {
			row[i] = strconv.FormatFloat(f, 'f', 6, 64)
		}
		c.Write(row)
	}
	c.Flush()
	return c.Error()
}

// Press averages the rows of T that have the same value in the column col,
// and returns them sorted by that value.
func Press(T *Table, col int) *Table {
	groups := make(map[float64][]int)
	keys := make([]float64, 0)
	for i, r := range T.Rows {
		k := r[col]
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], i)
	}
	sort.Float64s(keys)
	ret := &Table{Name: T.Name, Header: T.Header, Rows: make([][]float64, 0, len(keys))}
	for _, k := range keys {
		avg := make([]float64, T.NCols())
		for _, i := range groups[k] {
			floats.Add(avg, T.Rows[i])
		}
		floats.Scale(1/float64(len(groups[k])), avg)
		avg[col] = k
		ret.Rows = append(ret.Rows, avg)
	}
	return ret
}

// WriteCSV writes the table as CSV, with the values formatted with 6 decimals.
// Infinite values are written as "inf".
func (T *Table) WriteCSV(w io.Writer) error {
	c := csv.NewWriter(w)
	if T.Header != nil {
		c.Write(T.Header)
	}
	for _, r := range T.Rows {
		row := make([]string, len(r))
		for i, f := range r {
			row[i] = FmtValue(f)
		}
		c.Write(row)
	}
	c.Flush()
	return c.Error()
}

// FmtValue formats v with 6 decimals, or as "inf".
func FmtValue(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
