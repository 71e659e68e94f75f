/*
 * stats_test.go
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

package stats

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mdconv"
)

func write(Te *testing.T, name, text string) string {
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func quietLog() (*mdconv.Log, *bytes.Buffer) {
	var b bytes.Buffer
	return &mdconv.Log{Out: &b, Err: &b}, &b
}

func TestReport(Te *testing.T) {
	log, _ := quietLog()
	T, err := ReadTable(write(Te, "data.txt", "10 1\n\n# comment\n20 3\n"), "", false, log)
	if err != nil {
		Te.Fatal(err)
	}
	S, err := Columns(T)
	if err != nil {
		Te.Fatal(err)
	}
	S.SetBuffer(6)
	var b bytes.Buffer
	if err := S.Report(&b); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	expected := []string{
		"     Min value per column:    10.000000     1.000000",
		"     Max value per column:    20.000000     3.000000",
		"     Avg value per column:    15.000000     2.000000",
		"     Std. dev. per column:     5.000000     1.000000",
		"Max value plus 6.0 buffer:    26.000000     9.000000",
	}
	for i, e := range expected {
		if lines[i] != e {
			Te.Errorf("Line %d:\n got %q\nwant %q", i, lines[i], e)
		}
	}
	b.Reset()
	if err := S.WriteCSV(&b); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "10.000000,1.000000\n20.000000,3.000000\n") || strings.Count(b.String(), "\n") != 5 {
		Te.Errorf("Wrong CSV:\n%s", b.String())
	}
}

func TestTableErrors(Te *testing.T) {
	log, out := quietLog()
	T, err := ReadTable(write(Te, "vec.txt", "1\n2\n3\n"), "", false, log)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := Columns(T); err == nil || !strings.Contains(err.Error(), "vector instead of an array") {
		Te.Errorf("Vector not rejected: %v", err)
	}
	_, err = ReadTable(write(Te, "uneq.txt", "1 2\n3 4\n5 6 7\n"), "", false, log)
	if err == nil || !strings.Contains(err.Error(), "found 2 values on line 1 and 3 values on line 3") {
		Te.Errorf("Unequal rows not reported: %v", err)
	}
	T, err = ReadTable(write(Te, "bad.csv", "a,b\n1,2\nx,4\n3,4\n"), ",", true, log)
	if err != nil {
		Te.Fatal(err)
	}
	if len(T.Rows) != 2 || T.Index("b") != 1 {
		Te.Errorf("Wrong table %+v", T)
	}
	if !strings.Contains(out.String(), "Line 3 of") || !strings.Contains(out.String(), "'x' could not be converted") {
		Te.Errorf("Bad value not warned about: %s", out.String())
	}
	if _, err = ReadTable(filepath.Join(Te.TempDir(), "none.txt"), "", false, log); mdconv.ExitCode(err) != mdconv.ExitIO {
		Te.Errorf("Missing file should be an I/O error: %v", err)
	}
}

func TestLastLine(Te *testing.T) {
	log, _ := quietLog()
	T, err := ReadTable(write(Te, "nonl.txt", "1 2\n3 4\n100 200"), "", false, log)
	if err != nil {
		Te.Fatal(err)
	}
	S, err := Columns(T)
	if err != nil {
		Te.Fatal(err)
	}
	if len(T.Rows) != 3 || S.Max[0] != 100 || S.Max[1] != 200 {
		Te.Errorf("Last line without newline not read: %d rows, max %v", len(T.Rows), S.Max)
	}
}

func TestPress(Te *testing.T) {
	log, _ := quietLog()
	T, err := ReadTable(write(Te, "rmsd.csv", "RMSD,E\n2,10\n1,4\n2,20\n1,6\n"), ",", true, log)
	if err != nil {
		Te.Fatal(err)
	}
	P := Press(T, T.Index("RMSD"))
	var b bytes.Buffer
	if err := P.WriteCSV(&b); err != nil {
		Te.Fatal(err)
	}
	if b.String() != "RMSD,E\n1.000000,5.000000\n2.000000,15.000000\n" {
		Te.Errorf("Wrong pressed table:\n%s", b.String())
	}
	if FmtValue(math.Inf(1)) != "inf" {
		Te.Error("Infinity not written as inf")
	}
}

func TestHistogram(Te *testing.T) {
	d := Dividers(0, 4, 4)
	H := NewHistogram("test", d, []float64{0, 0.5, 1.5, 3, 4, 7, -1})
	c := H.histo
	if H.Total() != 5 || c[0] != 2 || c[1] != 1 || c[2] != 0 || c[3] != 2 {
		Te.Errorf("Wrong histogram: %s", H)
	}
	if !strings.Contains(H.String(), "0.00-1.00") {
		Te.Errorf("Wrong string:\n%s", H)
	}
	H.Normalize()
	H.Normalize()
	if math.Abs(H.histo[0]-0.4) > 1e-9 || H.Total() != 5 {
		Te.Errorf("Wrong normalization: %s", H)
	}
	var b bytes.Buffer
	if _, err := H.WriteTo(&b); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "0.000000,1.000000,0.4\n") {
		Te.Errorf("Wrong histogram file:\n%s", b.String())
	}
}
