/*
 * config.go, part of mdconv
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

// Package config reads the configuration files of the mdconv tools. All the values
// are read from one section, "main", of an INI, TOML or YAML file, and checked
// against a Schema.
package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/mdconv"
)

// Section is the only section read from configuration files.
const Section = "main"

// Kind is the type of a configuration value.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
	IntList   //comma-separated integers
	FloatList //comma-separated floats
)

func (k Kind) String() string {
	return [...]string{"string", "integer", "float", "boolean", "list of integers", "list of floats"}[k]
}

// Key describes one configuration key. Default must be nil or of the Go type
// matching Kind (string, int, float64, bool, []int, []float64).
type Key struct {
	Name     string
	Kind     Kind
	Default  interface{}
	Required bool
}

// Schema is the set of keys a program accepts.
type Schema []Key

func (s Schema) key(name string) (Key, bool) {
	for _, k := range s {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}

// Config is a validated configuration. It is not modified after it is built.
type Config struct {
	name   string
	schema Schema
	vals   map[string]interface{}
	set    map[string]bool
}

func cfgError(name, format string, args ...interface{}) error {
	return mdconv.NewError(mdconv.KindConfig, name, "config", format, args...)
}

// FromMap builds a Config from raw string values. Keys not in the schema are
// warned about and ignored.
func FromMap(name string, raw map[string]string, schema Schema, log *mdconv.Log) (*Config, error) {
	C := &Config{name: name, schema: schema, vals: make(map[string]interface{}), set: make(map[string]bool)}
	unknown := make([]string, 0)
	for k := range raw {
		if _, ok := schema.key(k); !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		log.Warnf("Unexpected key '%s' in configuration file %s, will be ignored", k, name)
	}
	for _, k := range schema {
		r, ok := raw[k.Name]
		if !ok {
			if k.Required {
				return nil, cfgError(name, "Missing config val for key '%s'", k.Name)
			}
			C.vals[k.Name] = k.Default
			continue
		}
		v, err := convert(strings.TrimSpace(r), k.Kind)
		if err != nil {
			return nil, cfgError(name, "Could not read '%s' as a %s for key '%s'", r, k.Kind, k.Name)
		}
		C.vals[k.Name] = v
		C.set[k.Name] = true
	}
	return C, nil
}

func convert(r string, kind Kind) (interface{}, error) {
	switch kind {
	case Int:
		return strconv.Atoi(r)
	case Float:
		return strconv.ParseFloat(r, 64)
	case Bool:
		switch strings.ToLower(r) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		return strconv.ParseBool(r)
	case IntList:
		ret := make([]int, 0)
		for _, f := range split(r) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, err
			}
			ret = append(ret, v)
		}
		return ret, nil
	case FloatList:
		ret := make([]float64, 0)
		for _, f := range split(r) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, err
			}
			ret = append(ret, v)
		}
		return ret, nil
	}
	return r, nil
}

func split(r string) []string {
	ret := make([]string, 0, 3)
	for _, f := range strings.Split(r, ",") {
		if f = strings.TrimSpace(f); f != "" {
			ret = append(ret, f)
		}
	}
	return ret
}

// Name returns the file the configuration was read from.
func (C *Config) Name() string { return C.name }

func (C *Config) get(key string, kind Kind) interface{} {
	k, ok := C.schema.key(key)
	if !ok || k.Kind != kind {
		panic(fmt.Sprintf("config: key %s of kind %s not in the schema", key, kind))
	}
	return C.vals[key]
}

// IsSet returns true if key was given in the file.
func (C *Config) IsSet(key string) bool { return C.set[key] }

func (C *Config) Str(key string) string {
	v, _ := C.get(key, String).(string)
	return v
}

func (C *Config) Int(key string) int {
	v, _ := C.get(key, Int).(int)
	return v
}

func (C *Config) Float(key string) float64 {
	v, _ := C.get(key, Float).(float64)
	return v
}

func (C *Config) Bool(key string) bool {
	v, _ := C.get(key, Bool).(bool)
	return v
}

func (C *Config) Ints(key string) []int {
	v, _ := C.get(key, IntList).([]int)
	return v
}

func (C *Config) Floats(key string) []float64 {
	v, _ := C.get(key, FloatList).([]float64)
	return v
}
