/*
 * table.go, part of mdconv
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

// Package stats computes per-column statistics and histograms of numeric
// tables, such as the CSV files produced by the other mdconv tools.
package stats

import (
	"strconv"
	"strings"

	"github.com/rmera/mdconv"
)

// Table is a numeric table with an optional header.
type Table struct {
	Name   string
	Header []string //nil if the file has none
	Rows   [][]float64
}

// NCols returns the number of columns.
func (T *Table) NCols() int {
	if len(T.Rows) == 0 {
		return len(T.Header)
	}
	return len(T.Rows[0])
}

// Column returns a copy of the column i.
func (T *Table) Column(i int) []float64 {
	ret := make([]float64, len(T.Rows))
	for j, r := range T.Rows {
		ret[j] = r[i]
	}
	return ret
}

// Index returns the index of the column with the given header, or -1.
func (T *Table) Index(name string) int {
	for i, h := range T.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func split(line, delim string) []string {
	if delim == "" {
		return strings.Fields(line)
	}
	f := strings.Split(line, delim)
	for i := range f {
		f[i] = strings.TrimSpace(f[i])
	}
	return f
}

// ReadTable reads the numeric table in the file name. Values are separated by
// delim, or by whitespace if delim is empty. Empty lines, and lines starting
// with '#', are ignored. If header is true, the first other line holds the
// column names. Rows with values that can't be read as floats are skipped with
// a warning, but all rows must have the same number of values.
func ReadTable(name, delim string, header bool, log *mdconv.Log) (*Table, error) {
	T := &Table{Name: name}
	first := 0 //line of the first row, for error messages
	err := mdconv.ReadLines(name, func(lineno int, line string) error {
		if line == "" || strings.HasPrefix(line, "#") {
			return nil
		}
		fields := split(line, delim)
		if header && T.Header == nil {
			T.Header = fields
			return nil
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			var err error
			if row[i], err = strconv.ParseFloat(f, 64); err != nil {
				log.Warnf("Line %d of %s: '%s' could not be converted to a float, the line will be skipped", lineno, name, f)
				return nil
			}
		}
		if len(T.Rows) == 0 {
			first = lineno
		} else if n := len(T.Rows[0]); n != len(row) {
			return mdconv.NewError(mdconv.KindData, name, "ReadTable", "Problems reading data: found %d values on line %d and %d values on line %d", n, first, len(row), lineno)
		}
		T.Rows = append(T.Rows, row)
		return nil
	})
	if err != nil {
		return nil, mdconv.Decorate(err, "ReadTable")
	}
	if len(T.Rows) == 0 {
		return nil, mdconv.NewError(mdconv.KindData, name, "ReadTable", "No numeric data found")
	}
	if T.Header != nil && len(T.Header) != T.NCols() {
		return nil, mdconv.NewError(mdconv.KindData, name, "ReadTable", "The header has %d columns, but the data has %d", len(T.Header), T.NCols())
	}
	return T, nil
}
