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

// dump2data writes a LAMMPS data file for each timestep of LAMMPS dump files,
// using a data file with the same atoms as a template.
package main

import (
	"flag"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/config"
	"github.com/rmera/mdconv/internal/cli"
	"github.com/rmera/mdconv/lammps"
)

var evbKeys = []string{"water_o_type", "water_h_type", "h3o_o_type", "h3o_h_type", "prot_res_mol_id", "prot_h_type"}

var schema = config.Schema{
	{Name: "data_tpl_file", Kind: config.String, Required: true},
	{Name: "dump_list_file", Kind: config.String, Default: "dump_list.txt"},
	{Name: "dump_file", Kind: config.String, Default: ""},
	{Name: "sort_by_id", Kind: config.Bool, Default: false},
	{Name: "output_directory", Kind: config.String, Default: ""},
	{Name: "water_o_type", Kind: config.Int, Default: 0},
	{Name: "water_h_type", Kind: config.Int, Default: 0},
	{Name: "h3o_o_type", Kind: config.Int, Default: 0},
	{Name: "h3o_h_type", Kind: config.Int, Default: 0},
	{Name: "prot_res_mol_id", Kind: config.Int, Default: 0},
	{Name: "prot_h_type", Kind: config.Int, Default: 0},
	{Name: "prot_ignore_atom_nums", Kind: config.IntList, Default: []int{}},
}

// evb returns the EVB types if all of them are given, nil if none is given, and
// an error otherwise.
func evb(cfg *config.Config) (*lammps.EVB, error) {
	set := 0
	for _, k := range evbKeys {
		if cfg.IsSet(k) {
			set++
		}
	}
	if set == 0 {
		return nil, nil
	}
	if set != len(evbKeys) {
		return nil, mdconv.NewError(mdconv.KindConfig, cfg.Name(), "dump2data", "To relabel the excess proton, all of these keys are needed: %v", evbKeys)
	}
	return &lammps.EVB{
		WaterO:     cfg.Int("water_o_type"),
		WaterH:     cfg.Int("water_h_type"),
		H3OO:       cfg.Int("h3o_o_type"),
		H3OH:       cfg.Int("h3o_h_type"),
		ProtResMol: cfg.Int("prot_res_mol_id"),
		ProtH:      cfg.Int("prot_h_type"),
		Ignore:     cfg.Ints("prot_ignore_atom_nums"),
	}, nil
}

func main() {
	cfgname := flag.String("c", "dump2data.ini", "The location of the configuration file, in INI, TOML or YAML format")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Creates LAMMPS data files from the timesteps of LAMMPS dump files, in the format of a template data file.\nIf the EVB keys are given, each timestep is relabeled to the protonation state of the template:\nthe excess proton on the residue and the closest water become the hydronium of the template.")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	cfg := cli.Config(*cfgname, schema, log)
	tpl, err := mdconv.ReadFile(cfg.Str("data_tpl_file"), mdconv.DataFormat())
	cli.Check(log, err)
	names, err := mdconv.FileNames(cfg.Str("dump_list_file"), cfg.Str("dump_file"), log)
	cli.Check(log, err)
	E, err := evb(cfg)
	cli.Check(log, err)
	opts := lammps.DataOptions{OutDir: cfg.Str("output_directory"), SortByID: cfg.Bool("sort_by_id"), EVB: E}
	total := 0
	for _, name := range names {
		written, err := lammps.ToData(tpl, name, opts, log)
		total += len(written)
		cli.Check(log, err)
	}
	log.LogV(2, "Wrote", total, "data files")
	cli.Done(log)
}
