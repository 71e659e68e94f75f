/*
 * config_test.go
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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mdconv"
)

var testSchema = Schema{
	{Name: "data_tpl_file", Kind: String, Required: true},
	{Name: "data_list_file", Kind: String, Default: "data_list.txt"},
	{Name: "xyz_steps", Kind: Int, Default: 0},
	{Name: "make_atom_type_dict_flag", Kind: Bool, Default: false},
	{Name: "xyz1", Kind: FloatList},
	{Name: "atoms_dist", Kind: IntList},
	{Name: "temp", Kind: Float, Default: 300.0},
}

func testLog() (*mdconv.Log, *bytes.Buffer) {
	var b bytes.Buffer
	return &mdconv.Log{Out: &b, Err: &b}, &b
}

func write(Te *testing.T, name, text string) string {
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func check(Te *testing.T, C *Config) {
	if C.Str("data_tpl_file") != "tpl.data" || C.Str("data_list_file") != "data_list.txt" {
		Te.Errorf("Wrong strings: %s %s", C.Str("data_tpl_file"), C.Str("data_list_file"))
	}
	if C.Int("xyz_steps") != 5 || !C.Bool("make_atom_type_dict_flag") || C.Float("temp") != 310.0 {
		Te.Errorf("Wrong values: %d %v %f", C.Int("xyz_steps"), C.Bool("make_atom_type_dict_flag"), C.Float("temp"))
	}
	if x := C.Floats("xyz1"); len(x) != 3 || x[2] != 3.5 {
		Te.Errorf("Wrong float list %v", x)
	}
	if d := C.Ints("atoms_dist"); len(d) != 2 || d[1] != 7 {
		Te.Errorf("Wrong int list %v", d)
	}
	if !C.IsSet("xyz_steps") || C.IsSet("data_list_file") {
		Te.Error("IsSet gives wrong answers")
	}
}

func TestINI(Te *testing.T) {
	path := write(Te, "data2data.ini", "[main]\ndata_tpl_file = tpl.data\nxyz_steps = 5\nmake_atom_type_dict_flag = yes\n"+
		"xyz1 = 1.0, 2.0,3.5\natoms_dist = 3,7\ntemp = 310\nsomething_else = 1\n")
	log, out := testLog()
	C, err := Load(path, testSchema, log)
	if err != nil {
		Te.Fatal(err)
	}
	check(Te, C)
	if !strings.Contains(out.String(), "Unexpected key 'something_else'") || len(log.Warnings()) != 1 {
		Te.Errorf("Unknown key not warned about: %s", out.String())
	}
}

func TestTOML(Te *testing.T) {
	path := write(Te, "data2data.toml", "[main]\ndata_tpl_file = \"tpl.data\"\nxyz_steps = 5\nmake_atom_type_dict_flag = true\n"+
		"xyz1 = [1.0, 2.0, 3.5]\natoms_dist = [3, 7]\ntemp = 310.0\n")
	C, err := Load(path, testSchema, nil)
	if err != nil {
		Te.Fatal(err)
	}
	check(Te, C)
}

func TestYAML(Te *testing.T) {
	path := write(Te, "data2data.yaml", "main:\n  data_tpl_file: tpl.data\n  xyz_steps: 5\n  make_atom_type_dict_flag: true\n"+
		"  xyz1: [1.0, 2.0, 3.5]\n  atoms_dist: \"3,7\"\n  temp: 310\n")
	C, err := Load(path, testSchema, nil)
	if err != nil {
		Te.Fatal(err)
	}
	check(Te, C)
}

func TestErrors(Te *testing.T) {
	log, _ := testLog()
	_, err := Load(write(Te, "a.ini", "[main]\nxyz_steps = 5\n"), testSchema, log)
	if err == nil || !strings.Contains(err.Error(), "Missing config val for key 'data_tpl_file'") {
		Te.Errorf("Missing key not reported: %v", err)
	}
	if mdconv.ExitCode(err) != mdconv.ExitInput {
		Te.Errorf("Wrong exit code %d", mdconv.ExitCode(err))
	}
	_, err = Load(write(Te, "b.ini", "[main]\ndata_tpl_file = a\nxyz_steps = five\n"), testSchema, log)
	if err == nil || !strings.Contains(err.Error(), "xyz_steps") {
		Te.Errorf("Bad integer not reported: %v", err)
	}
	_, err = Load(filepath.Join(Te.TempDir(), "none.ini"), testSchema, log)
	if mdconv.ExitCode(err) != mdconv.ExitIO {
		Te.Errorf("A missing file should be an I/O error, got %v", err)
	}
	_, err = Load(write(Te, "c.ini", "[other]\ndata_tpl_file = a\n"), testSchema, log)
	if mdconv.ExitCode(err) != mdconv.ExitInput {
		Te.Errorf("A file without a main section should be a configuration error, got %v", err)
	}
}
