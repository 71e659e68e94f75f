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

// cp2kproc gets the QM/MM energy and the coordinates from CP2K output
// files, and writes them as LAMMPS data, PDB and/or XYZ files.
package main

import (
	"flag"
	"io"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/config"
	"github.com/rmera/mdconv/cp2k"
	"github.com/rmera/mdconv/internal/cli"
)

var schema = config.Schema{
	{Name: "cp2k_list_file", Kind: config.String, Default: "cp2k_files.txt"},
	{Name: "cp2k_file", Kind: config.String, Default: ""},
	{Name: "data_tpl_file", Kind: config.String, Default: ""},
	{Name: "pdb_tpl_file", Kind: config.String, Default: ""},
	{Name: "print_xyz_files", Kind: config.Bool, Default: false},
	{Name: "xyz_file_suffix", Kind: config.String, Default: ".xyz"},
	{Name: "element_dict_file", Kind: config.String, Default: ""},
	{Name: "energy_file", Kind: config.String, Default: ""},
	{Name: "output_directory", Kind: config.String, Default: ""},
}

func options(cfg *config.Config, log *mdconv.Log) (*cp2k.Options, error) {
	O := &cp2k.Options{
		XYZ:       cfg.Bool("print_xyz_files"),
		XYZSuffix: cfg.Str("xyz_file_suffix"),
		OutDir:    cfg.Str("output_directory"),
	}
	var err error
	if name := cfg.Str("data_tpl_file"); name != "" {
		if O.Data, err = mdconv.ReadFile(name, mdconv.DataFormat()); err != nil {
			return nil, err
		}
	}
	if name := cfg.Str("pdb_tpl_file"); name != "" {
		if O.PDBFormat, err = mdconv.PDBFormat(mdconv.DefaultColumns, ""); err != nil {
			return nil, err
		}
		if O.PDB, err = mdconv.ReadFile(name, O.PDBFormat); err != nil {
			return nil, err
		}
	}
	if name := cfg.Str("element_dict_file"); name != "" {
		if O.Elements, err = cp2k.ReadElements(name, log); err != nil {
			return nil, err
		}
	}
	if O.Data == nil && O.PDB == nil && !O.XYZ {
		return nil, mdconv.NewError(mdconv.KindConfig, cfg.Name(), "cp2kproc", "No output requested: give a data or PDB template, or set print_xyz_files")
	}
	return O, nil
}

func main() {
	cfgname := flag.String("c", "cp2kproc.ini", "The location of the configuration file, in INI, TOML or YAML format")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Gets the QM/MM energy and the coordinates from CP2K output files. The coordinates are\nwritten in the format of the data and/or PDB templates given, and/or as XYZ files.")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	cfg := cli.Config(*cfgname, schema, log)
	O, err := options(cfg, log)
	cli.Check(log, err)
	names, err := mdconv.FileNames(cfg.Str("cp2k_list_file"), cfg.Str("cp2k_file"), log)
	cli.Check(log, err)
	results := make([]*cp2k.Result, 0, len(names))
	for _, name := range names {
		R, err := cp2k.Process(name, O, log)
		cli.Check(log, err)
		results = append(results, R)
	}
	if name := cfg.Str("energy_file"); name != "" {
		cli.Check(log, mdconv.WriteWith(name, func(w io.Writer) error { return cp2k.WriteEnergies(w, results) }))
		log.PrintV(1, "Wrote file:", name)
	}
	cli.Done(log)
}
