/*
 * cli_test.go, part of mdconv
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

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/config"
)

var schema = config.Schema{
	{Name: "data_tpl_file", Kind: config.String, Required: true},
	{Name: "data_file", Kind: config.String, Default: ""},
}

func TestContext(Te *testing.T) {
	_, perr := os.Open(filepath.Join(Te.TempDir(), "none.data"))
	cases := []struct {
		err     error
		code    int
		context string
	}{
		{mdconv.NewError(mdconv.KindIO, "a.data", "test", "Could not read file"), mdconv.ExitIO, "Problems reading file:"},
		{mdconv.NewError(mdconv.KindConfig, "a.ini", "test", "Missing config val"), mdconv.ExitInput, "Input data missing:"},
		{mdconv.NewError(mdconv.KindData, "a.data", "test", "Malformed atom record"), mdconv.ExitData, "Problems reading data:"},
		{fmt.Errorf("opening: %w", perr), mdconv.ExitIO, "Problems reading file:"},
		{errors.New("something else"), mdconv.ExitData, "Problems reading data:"},
	}
	for _, c := range cases {
		if code := mdconv.ExitCode(c.err); code != c.code {
			Te.Errorf("Exit code for '%v' is %d, expected %d", c.err, code, c.code)
		}
		if ctx := Context(c.err); ctx != c.context {
			Te.Errorf("Context for '%v' is %q, expected %q", c.err, ctx, c.context)
		}
	}
	if mdconv.ExitCode(nil) != mdconv.ExitOK {
		Te.Error("nil should map to ExitOK")
	}
}

func TestConfig(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "ok.ini")
	os.WriteFile(path, []byte("[main]\ndata_tpl_file = tpl.data\n"), 0644)
	var b bytes.Buffer
	C := Config(path, schema, &mdconv.Log{Out: &b, Err: &b})
	if C.Str("data_tpl_file") != "tpl.data" || C.IsSet("data_file") {
		Te.Errorf("Wrong configuration read from %s", path)
	}
}

// runFailure is run in a child process, where it is expected to exit.
func runFailure(name, dir string) {
	log := mdconv.NewLog(1)
	switch name {
	case "nofile":
		Config(filepath.Join(dir, "none.ini"), schema, log)
	case "nokey":
		path := filepath.Join(dir, "nokey.ini")
		os.WriteFile(path, []byte("[main]\ndata_file = a.data\n"), 0644)
		Config(path, schema, log)
	case "baddata":
		Check(log, mdconv.NewError(mdconv.KindData, "a.data", "test", "Malformed atom record"))
	}
	os.Exit(mdconv.ExitOK)
}

func TestFatal(Te *testing.T) {
	if name := os.Getenv("MDCONV_CLI_FAILURE"); name != "" {
		runFailure(name, os.Getenv("MDCONV_CLI_DIR"))
		return
	}
	cases := []struct {
		name    string
		code    int
		context string
		message string
	}{
		{"nofile", mdconv.ExitIO, "Problems reading file:", "none.ini"},
		{"nokey", mdconv.ExitInput, "Input data missing:", "Missing config val for key 'data_tpl_file'"},
		{"baddata", mdconv.ExitData, "Problems reading data:", "Malformed atom record"},
	}
	dir := Te.TempDir()
	for _, c := range cases {
		cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
		cmd.Env = append(os.Environ(), "MDCONV_CLI_FAILURE="+c.name, "MDCONV_CLI_DIR="+dir)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		err := cmd.Run()
		var exit *exec.ExitError
		if !errors.As(err, &exit) || exit.ExitCode() != c.code {
			Te.Errorf("%s: expected exit code %d, got %v", c.name, c.code, err)
			continue
		}
		out := stderr.String()
		if !strings.HasPrefix(out, mdconv.WarnPrefix) || !strings.Contains(out, c.context) || !strings.Contains(out, c.message) {
			Te.Errorf("%s: wrong message: %s", c.name, out)
		}
	}
}
