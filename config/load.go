/*
 * load.go, part of mdconv
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

package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/rmera/mdconv"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration file name and checks it against schema. TOML and
// YAML files are recognized by their extension, anything else is read as INI.
// A file that can't be opened is an I/O error, anything else a configuration error.
func Load(name string, schema Schema, log *mdconv.Log) (*Config, error) {
	if _, err := os.Stat(name); err != nil {
		return nil, mdconv.NewError(mdconv.KindIO, name, "Load", "Could not read file %s", name)
	}
	var raw map[string]string
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		raw, err = readTOML(name)
	case ".yaml", ".yml":
		raw, err = readYAML(name)
	default:
		raw, err = readINI(name)
	}
	if err != nil {
		return nil, cfgError(name, "Could not parse configuration file: %s", err.Error())
	}
	return FromMap(name, raw, schema, log)
}

func readINI(name string) (map[string]string, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, name)
	if err != nil {
		return nil, err
	}
	sec, err := f.GetSection(Section)
	if err != nil {
		return nil, fmt.Errorf("no [%s] section", Section)
	}
	raw := make(map[string]string)
	for _, k := range sec.Keys() {
		raw[k.Name()] = k.String()
	}
	return raw, nil
}

func readTOML(name string) (map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tree, err := toml.LoadReader(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	sec, ok := tree.Get(Section).(*toml.Tree)
	if !ok {
		return nil, fmt.Errorf("no [%s] table", Section)
	}
	return flatten(sec.ToMap()), nil
}

func readYAML(name string) (map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var doc map[string]map[string]interface{}
	if err := yaml.NewDecoder(bufio.NewReader(f)).Decode(&doc); err != nil {
		return nil, err
	}
	sec, ok := doc[Section]
	if !ok {
		return nil, fmt.Errorf("no '%s' mapping", Section)
	}
	return flatten(sec), nil
}

// flatten turns the values of a TOML table or YAML mapping into the strings an INI
// file would have. Lists become comma-separated values.
func flatten(m map[string]interface{}) map[string]string {
	raw := make(map[string]string, len(m))
	for k, v := range m {
		if l := reflect.ValueOf(v); l.Kind() == reflect.Slice {
			s := make([]string, l.Len())
			for i := range s {
				s[i] = fmt.Sprint(l.Index(i).Interface())
			}
			raw[strings.ToLower(k)] = strings.Join(s, ",")
			continue
		}
		raw[strings.ToLower(k)] = fmt.Sprint(v)
	}
	return raw
}
