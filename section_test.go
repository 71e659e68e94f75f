/*
 * section_test.go
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

package mdconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// dataText returns a LAMMPS data file with declared atoms, of which only
// written are actually in the Atoms section.
func dataText(declared, written int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "LAMMPS data file test\n\n%d atoms\n2 atom types\n\n", declared)
	b.WriteString("0.0 50.0 xlo xhi\n0.0 50.0 ylo yhi\n0.0 50.0 zlo zhi\n\n")
	b.WriteString("Masses\n\n1 1.008\n2 15.999\n\nAtoms\n\n")
	for i := 1; i <= written; i++ {
		typ, q := 2, "-0.82"
		if i%3 != 1 {
			typ, q = 1, "0.41"
		}
		fmt.Fprintf(&b, "%d %d %d %s %d.5 %d.25 -1.0 0 0 0 # type%d\n", i, (i-1)/3+1, typ, q, i%50, i%40, typ)
	}
	b.WriteString("\nBonds\n\n1 1 1 2\n")
	return b.String()
}

func readData(Te *testing.T, text, name string) *Content {
	C, err := ReadSections(strings.NewReader(text), name, DataFormat())
	if err != nil {
		Te.Fatal(err)
	}
	return C
}

func TestDataRoundTrip(Te *testing.T) {
	text := dataText(9, 9)
	C := readData(Te, text, "tpl.data")
	if C.NAtoms != 9 || C.Len() != 9 {
		Te.Errorf("Expected 9 atoms, declared %d, read %d", C.NAtoms, C.Len())
	}
	var b bytes.Buffer
	if err := WriteContent(&b, C.Preamble, C.Atoms, C.Trailer, DataFormat()); err != nil {
		Te.Fatal(err)
	}
	if b.String() != text {
		Te.Errorf("Round trip changed the file:\n%s\n---\n%s", text, b.String())
	}
}

func TestBox(Te *testing.T) {
	C := readData(Te, dataText(3, 3), "tpl.data")
	if !C.HasBox || C.Box != [3]float64{50, 50, 50} {
		Te.Errorf("Expected box (50,50,50), got %v (found: %v)", C.Box, C.HasBox)
	}
}

func TestCountMissing(Te *testing.T) {
	text := strings.Replace(dataText(3, 3), "3 atoms\n", "", 1)
	_, err := ReadSections(strings.NewReader(text), "nocount.data", DataFormat())
	if err == nil || !strings.Contains(err.Error(), AtomCountMissing) {
		Te.Errorf("Expected '%s', got %v", AtomCountMissing, err)
	}
	if ExitCode(err) != ExitData {
		Te.Errorf("Expected exit code %d, got %d", ExitData, ExitCode(err))
	}
}

func TestTruncated(Te *testing.T) {
	text := strings.Replace(dataText(500, 495), "\nBonds\n\n1 1 1 2\n", "", 1)
	_, err := ReadSections(strings.NewReader(text), "short.data", DataFormat())
	if err == nil {
		Te.Fatal("Truncated atom block not detected")
	}
	if !strings.Contains(err.Error(), "read 495 atoms, expected 500") {
		Te.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestUnexpectedSection(Te *testing.T) {
	text := dataText(10, 9) //the Bonds section comes before the 10th atom
	_, err := ReadSections(strings.NewReader(text), "sect.data", DataFormat())
	if err == nil || !strings.Contains(err.Error(), UnexpectedSection) {
		Te.Errorf("Expected '%s', got %v", UnexpectedSection, err)
	}
}

func TestMalformed(Te *testing.T) {
	text := strings.Replace(dataText(3, 3), "2 1 1 0.41", "2 1 X 0.41", 1)
	_, err := ReadSections(strings.NewReader(text), "bad.data", DataFormat())
	if err == nil || !strings.Contains(err.Error(), MalformedRecord) || !strings.Contains(err.Error(), "line 18") {
		Te.Errorf("Expected '%s' on line 18, got %v", MalformedRecord, err)
	}
	var E *Error
	if !errors.As(err, &E) || E.FileName() != "bad.data" {
		Te.Errorf("Error doesn't carry the file name: %v", err)
	}
}

func TestBlankAfterBlock(Te *testing.T) {
	f := DataFormat()
	f.BlankAfterBlock = true
	f.BlankAfterStart = false
	f.SkipAfterStart = 1 //the blank line after "Atoms"
	text := strings.Replace(dataText(3, 3), "\nBonds", "Bonds", 1)
	_, err := ReadSections(strings.NewReader(text), "noblank.data", f)
	if err == nil || !strings.Contains(err.Error(), NonBlankAfterBlock) {
		Te.Errorf("Expected '%s', got %v", NonBlankAfterBlock, err)
	}
	if _, err = ReadSections(strings.NewReader(dataText(3, 3)), "blank.data", f); err != nil {
		Te.Error(err)
	}
}

func pdbText(n int) string {
	var b strings.Builder
	b.WriteString("REMARK   1 test structure\nCRYST1   50.000   50.000   50.000  90.00  90.00  90.00 P 1           1\n")
	names := []string{"OH2", "H1", "H2"}
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "ATOM  %5d  %-3s TIP3W%4d    %8.3f%8.3f%8.3f  1.00  0.00      WT1  %s\n", i, names[(i-1)%3], (i-1)/3+1, float64(i)*0.5, -float64(i), 1.25, names[(i-1)%3][:1])
	}
	b.WriteString("TER\nEND\n")
	return b.String()
}

func TestPDBRoundTrip(Te *testing.T) {
	f, err := PDBFormat(DefaultColumns, "")
	if err != nil {
		Te.Fatal(err)
	}
	text := pdbText(6)
	C, err := ReadSections(strings.NewReader(text), "tpl.pdb", f)
	if err != nil {
		Te.Fatal(err)
	}
	if C.NAtoms != 6 || len(C.Preamble) != 2 || len(C.Trailer) != 2 {
		Te.Errorf("Wrong sections: %d atoms, %d preamble lines, %d trailer lines", C.NAtoms, len(C.Preamble), len(C.Trailer))
	}
	if C.Atoms[3].Group != 2 || strings.TrimSpace(C.Atoms[3].Label) != "OH2 TIP3W" {
		Te.Errorf("Wrong atom 4: %+v", *C.Atoms[3])
	}
	var b bytes.Buffer
	if err := WriteContent(&b, C.Preamble, C.Atoms, C.Trailer, f); err != nil {
		Te.Fatal(err)
	}
	if b.String() != text {
		Te.Errorf("Round trip changed the file:\n%s\n---\n%s", text, b.String())
	}
}

func TestPDBChains(Te *testing.T) {
	f, _ := PDBFormat(DefaultColumns, "")
	text := strings.Replace(pdbText(6), "ATOM      4", "TER\nATOM      4", 1)
	C, err := ReadSections(strings.NewReader(text), "chains.pdb", f)
	if err != nil {
		Te.Fatal(err)
	}
	if C.NAtoms != 6 || len(C.Atoms[2].After) != 1 || len(C.Trailer) != 2 {
		Te.Fatalf("Wrong sections: %d atoms, %v after atom 3, trailer %v", C.NAtoms, C.Atoms[2].After, C.Trailer)
	}
	subj := &Content{Name: "subj.data", NAtoms: 6, Atoms: make([]*Record, 6)}
	for i := range subj.Atoms {
		subj.Atoms[i] = &Record{ID: i + 1, Pos: [3]float64{float64(i), 0, 0}}
	}
	atoms, _, err := SubstituteLabels(C, subj, nil)
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteContent(&b, C.Preamble, atoms, C.Trailer, f); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	if lines[5] != "TER" || !strings.HasPrefix(lines[6], "ATOM      4") || !strings.Contains(lines[6], "   3.000   0.000   0.000") {
		Te.Errorf("Chains not kept apart:\n%s", b.String())
	}
	b.Reset()
	WriteContent(&b, C.Preamble, C.Atoms, C.Trailer, f)
	if b.String() != text {
		Te.Errorf("Round trip changed the file:\n%s\n---\n%s", text, b.String())
	}
}

func TestHexRollover(Te *testing.T) {
	f, _ := PDBFormat(DefaultColumns, "")
	atoms := make([]*Record, 100000)
	for i := range atoms {
		atoms[i] = &Record{ID: i + 1, Kind: "ATOM  ", Label: "  C   LIG A", Group: 1}
	}
	var b bytes.Buffer
	if err := WriteContent(&b, nil, atoms, nil, f); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	if !strings.HasPrefix(lines[99998], "ATOM  99999  C") {
		Te.Errorf("Wrong line for atom 99999: %s", lines[99998])
	}
	if !strings.HasPrefix(lines[99999], "ATOM  186a0  C") {
		Te.Errorf("Atom 100000 not written in hexadecimal: %s", lines[99999])
	}
}

func TestFmtFloat(Te *testing.T) {
	for v, s := range map[float64]string{1: "1.0", -0.82: "-0.82", 12.345: "12.345", 0: "0.0", 1e6: "1000000.0"} {
		if FmtFloat(v) != s {
			Te.Errorf("FmtFloat(%g) gave %s, expected %s", v, FmtFloat(v), s)
		}
	}
}

func TestCompressedIO(Te *testing.T) {
	dir := Te.TempDir()
	C := readData(Te, dataText(6, 6), "tpl.data")
	for _, name := range []string{"out.data.zst", "out.data.gz", "out.data"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, C.Preamble, C.Atoms, C.Trailer, DataFormat()); err != nil {
			Te.Fatal(err)
		}
		C2, err := ReadFile(path, DataFormat())
		if err != nil {
			Te.Fatal(err)
		}
		if C2.Len() != 6 || !reflect.DeepEqual(*C2.Atoms[5], *C.Atoms[5]) {
			Te.Errorf("%s: atoms changed after writing and reading", name)
		}
	}
}

func TestAbortedWrite(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "never.data")
	err := WriteWith(path, func(w io.Writer) error {
		fmt.Fprintln(w, "half a file")
		return NewError(KindData, "", "test", "failed halfway")
	})
	if err == nil {
		Te.Error("Error not returned")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		Te.Errorf("Files left after a failed write: %d", len(entries))
	}
}

func TestOutName(Te *testing.T) {
	cases := [][4]string{
		{"dir/a.data", "_new", ".data", "dir/a_new.data"},
		{"a.data", "", ".data", "a_new.data"},
		{"x.data.zst", "", ".pdb", "x.pdb"},
		{"run/dump.lammpstrj", "_100", ".data", "run/dump_100.data"},
	}
	for _, c := range cases {
		if o := OutName(c[0], c[1], c[2]); o != c[3] {
			Te.Errorf("OutName(%s, %s, %s) gave %s, expected %s", c[0], c[1], c[2], o, c[3])
		}
	}
	if p := Prefixed("w/PMF_1.txt", "rad_", ""); p != "w/rad_PMF_1.txt" {
		Te.Errorf("Wrong prefixed name %s", p)
	}
	if p := Prefixed("data.txt", "stats_", ".csv"); p != "stats_data.csv" {
		Te.Errorf("Wrong prefixed name %s", p)
	}
}

func TestFileList(Te *testing.T) {
	dir := Te.TempDir()
	list := filepath.Join(dir, "list.txt")
	os.WriteFile(list, []byte("a.data\n\n  b.data \nc.data\n"), 0644)
	names, err := FileNames(list, "d.data", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if strings.Join(names, ",") != "a.data,b.data,c.data,d.data" {
		Te.Errorf("Wrong file names: %v", names)
	}
	if _, err := FileNames(filepath.Join(dir, "none.txt"), "", nil); ExitCode(err) != ExitIO {
		Te.Errorf("Missing list should be an I/O error, got %v", err)
	}
}

func TestListWithoutNewline(Te *testing.T) {
	list := filepath.Join(Te.TempDir(), "list.txt")
	os.WriteFile(list, []byte("a.data\nEOF\nb.data"), 0644)
	names, err := ReadFileList(list)
	if err != nil {
		Te.Fatal(err)
	}
	if strings.Join(names, ",") != "a.data,EOF,b.data" {
		Te.Errorf("Lines lost from the list: %v", names)
	}
}
