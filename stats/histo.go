/*
 * histo.go, part of mdconv
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
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts the values of a column in bins.
type Histogram struct {
	Name       string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Dividers returns the bins+1 dividers of bins equal bins spanning [min, max].
// The last divider is nudged up so max falls in the last bin.
func Dividers(min, max float64, bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	if max <= min {
		max = min + 1
	}
	d := floats.Span(make([]float64, bins+1), min, max)
	d[bins] += (max - min) * 1e-9
	return d
}

// NewHistogram returns a histogram of rawdata with the given dividers.
// rawdata can be nil, in which case the histogram is empty. The dividers are copied.
func NewHistogram(name string, dividers, rawdata []float64) *Histogram {
	H := &Histogram{Name: name, dividers: append([]float64(nil), dividers...)}
	H.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		H.rehisto(rawdata)
	}
	return H
}

func (H *Histogram) rehisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram panics on values out of range, so they are removed first.
	maxi := sort.SearchFloat64s(data, H.dividers[len(H.dividers)-1])
	mini := sort.SearchFloat64s(data, H.dividers[0])
	data = data[mini:maxi]
	H.total = len(data)
	H.histo = stat.Histogram(nil, H.dividers, data, nil)
}

// Total returns the number of values counted.
func (H *Histogram) Total() int { return H.total }

// Normalize turns the counts into fractions of the total.
func (H *Histogram) Normalize() {
	if H.total <= 0 || H.normalized {
		return
	}
	floats.Scale(1/float64(H.total), H.histo)
	H.normalized = true
}

// String uses 3 lines: the name and total, the bins and the counts.
func (H *Histogram) String() string {
	ret := fmt.Sprintf("%s, Normalized: %v, TotalData: %d\n", H.Name, H.normalized, H.total)
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// WriteTo writes one "low,high,count" line per bin. The count is a fraction
// if the histogram is normalized.
func (H *Histogram) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for i, v := range H.histo {
		m, err := fmt.Fprintf(w, "%.6f,%.6f,%g\n", H.dividers[i], H.dividers[i+1], v)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Histograms returns a histogram with bins bins for each column of T.
func Histograms(T *Table, S *ColStats, bins int) []*Histogram {
	ret := make([]*Histogram, T.NCols())
	for i := range ret {
		name := fmt.Sprintf("column %d", i+1)
		if T.Header != nil {
			name = T.Header[i]
		}
		ret[i] = NewHistogram(name, Dividers(S.Min[i], S.Max[i], bins), T.Column(i))
	}
	return ret
}
