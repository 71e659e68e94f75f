/*
 * main.go, part of mdconv
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

// data2data writes LAMMPS data files in the format of a template data file.
// It can also move one atom of the template along a line, or to several
// distances from another atom.
package main

import (
	"flag"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/config"
	"github.com/rmera/mdconv/internal/cli"
)

var schema = config.Schema{
	{Name: "data_tpl_file", Kind: config.String, Required: true},
	{Name: "data_list_file", Kind: config.String, Default: "data_list.txt"},
	{Name: "data_file", Kind: config.String, Default: ""},
	{Name: "atom_type_dict_filename", Kind: config.String, Default: ""},
	{Name: "make_atom_type_dict_flag", Kind: config.Bool, Default: false},
	{Name: "atom_num_dict_filename", Kind: config.String, Default: ""},
	{Name: "make_atom_num_dict_flag", Kind: config.Bool, Default: false},
	{Name: "adjust_atom", Kind: config.Int, Default: 0},
	{Name: "xyz1", Kind: config.FloatList, Default: []float64{}},
	{Name: "xyz2", Kind: config.FloatList, Default: []float64{}},
	{Name: "xyz_steps", Kind: config.Int, Default: 0},
	{Name: "xyz_steps_extend", Kind: config.Int, Default: 0},
	{Name: "atoms_dist", Kind: config.IntList, Default: []int{}},
	{Name: "dist_min_max_step", Kind: config.FloatList, Default: []float64{}},
	{Name: "output_directory", Kind: config.String, Default: ""},
}

func cfgError(cfg *config.Config, format string, args ...interface{}) error {
	return mdconv.NewError(mdconv.KindConfig, cfg.Name(), "data2data", format, args...)
}

func xyz(cfg *config.Config, key string) ([3]float64, error) {
	var ret [3]float64
	v := cfg.Floats(key)
	if len(v) != 3 {
		return ret, cfgError(cfg, "Use the '%s' keyword to provide a comma-separated list of three floats (read %v)", key, v)
	}
	copy(ret[:], v)
	return ret, nil
}

// emitter returns an Emit that writes each structure to the template name plus
// the suffix.
func emitter(tpl *mdconv.Content, outdir string, log *mdconv.Log) mdconv.Emit {
	return func(suffix string, atoms []*mdconv.Record) error {
		name := mdconv.InDir(mdconv.OutName(tpl.Name, suffix, ".data"), outdir)
		err := mdconv.WriteFile(name, tpl.Preamble, atoms, tpl.Trailer, mdconv.DataFormat())
		if err == nil {
			log.PrintV(1, "Wrote file:", name)
		}
		return err
	}
}

func adjustXYZ(cfg *config.Config, tpl *mdconv.Content, log *mdconv.Log) error {
	atom := cfg.Int("adjust_atom")
	if atom < 1 {
		return cfgError(cfg, "The value for the 'adjust_atom' keyword must be a positive integer (read %d), as it specifies the 1-based atom index number that will have its xyz coordinates adjusted", atom)
	}
	if cfg.Int("xyz_steps") <= 0 {
		return cfgError(cfg, "When using the 'adjust_atom' keyword, use the 'xyz_steps' keyword to specify a positive number of steps to be taken between coordinates provided for 'xyz1' and 'xyz2'")
	}
	x1, err := xyz(cfg, "xyz1")
	if err != nil {
		return err
	}
	x2, err := xyz(cfg, "xyz2")
	if err != nil {
		return err
	}
	return mdconv.AdjustAtomXYZ(tpl, atom, x1, x2, cfg.Int("xyz_steps"), cfg.Int("xyz_steps_extend"), emitter(tpl, cfg.Str("output_directory"), log))
}

func adjustDist(cfg *config.Config, tpl *mdconv.Content, log *mdconv.Log) error {
	atoms := cfg.Ints("atoms_dist")
	if len(atoms) != 2 {
		return cfgError(cfg, "Use the 'atoms_dist' keyword to provide a comma-separated list of two integers (atom ids, with the second one to be moved as specified; read %v)", atoms)
	}
	r := cfg.Floats("dist_min_max_step")
	if len(r) != 3 {
		return cfgError(cfg, "Use the 'dist_min_max_step' keyword to provide a comma-separated list of three floats (min dist, max dist, step-size) (read %v)", r)
	}
	dists, err := mdconv.DistList(r[0], r[1], r[2])
	if err != nil {
		return err
	}
	return mdconv.AdjustAtomDist(tpl, atoms[0], atoms[1], dists, emitter(tpl, cfg.Str("output_directory"), log))
}

func writeTable(name string, t *mdconv.Table[int, int], log *mdconv.Log) error {
	if name == "" || t == nil {
		return nil
	}
	if err := t.WriteFile(name); err != nil {
		return err
	}
	log.PrintV(1, "Wrote file:", name)
	return nil
}

func convert(cfg *config.Config, tpl *mdconv.Content, log *mdconv.Log) error {
	names, err := mdconv.FileNames(cfg.Str("data_list_file"), cfg.Str("data_file"), log)
	if err != nil {
		return err
	}
	opts := mdconv.TableOptions{IDs: cfg.Bool("make_atom_num_dict_flag"), Types: cfg.Bool("make_atom_type_dict_flag")}
	var types *mdconv.Table[int, int]
	if opts.IDs || opts.Types {
		T, err := mdconv.BuildFromList(tpl, names, mdconv.DataFormat(), opts, log)
		if err != nil {
			return err
		}
		if err := writeTable(cfg.Str("atom_num_dict_filename"), T.IDs, log); err != nil {
			return err
		}
		if err := writeTable(cfg.Str("atom_type_dict_filename"), T.Types, log); err != nil {
			return err
		}
		types = T.Types
	}
	if !opts.Types {
		if types, err = mdconv.ReadTable(cfg.Str("atom_type_dict_filename"), log); err != nil {
			return err
		}
	}
	sub := mdconv.Subst(mdconv.SubstOptions{Types: types, ImageFlags: true})
	for _, name := range names {
		out := mdconv.InDir(mdconv.OutName(name, "_new", ".data"), cfg.Str("output_directory"))
		if _, err := mdconv.Convert(tpl, mdconv.DataFormat(), name, mdconv.DataFormat(), out, sub, log); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfgname := flag.String("c", "data2data.ini", "The location of the configuration file, in INI, TOML or YAML format")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Creates data files from LAMMPS data in the format of a template data file. Optionally builds\ntables mapping old atom numbers and types to new ones, or moves one atom of the template.")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	cfg := cli.Config(*cfgname, schema, log)
	tpl, err := mdconv.ReadFile(cfg.Str("data_tpl_file"), mdconv.DataFormat())
	cli.Check(log, err)
	log.LogV(2, "Read", tpl.NAtoms, "atoms from the template", tpl.Name)
	switch {
	case cfg.IsSet("atoms_dist"):
		err = adjustDist(cfg, tpl, log)
	case cfg.IsSet("adjust_atom"):
		err = adjustXYZ(cfg, tpl, log)
	default:
		err = convert(cfg, tpl, log)
	}
	cli.Check(log, err)
	cli.Done(log)
}
