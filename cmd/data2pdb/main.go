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

// data2pdb writes PDB files with the coordinates of LAMMPS data files, using a
// PDB file with the same atoms as a template.
package main

import (
	"flag"

	"github.com/rmera/mdconv"
	"github.com/rmera/mdconv/config"
	"github.com/rmera/mdconv/internal/cli"
)

var schema = config.Schema{
	{Name: "pdb_tpl_file", Kind: config.String, Required: true},
	{Name: "data_list_file", Kind: config.String, Default: "data_list.txt"},
	{Name: "data_file", Kind: config.String, Default: ""},
	{Name: "atom_type_dict_file", Kind: config.String, Default: "atom_dict.csv"},
	{Name: "make_atom_type_dict", Kind: config.Bool, Default: true},
	{Name: "pdb_line_type_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.LineTypeEnd},
	{Name: "pdb_atom_num_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.AtomNumEnd},
	{Name: "pdb_atom+res_type_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.LabelEnd},
	{Name: "pdb_mol_num_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.MolNumEnd},
	{Name: "pdb_x_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.XEnd},
	{Name: "pdb_y_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.YEnd},
	{Name: "pdb_z_last_char", Kind: config.Int, Default: mdconv.DefaultColumns.ZEnd},
	{Name: "pdb_print_format", Kind: config.String, Default: mdconv.DefaultPDBPrint},
	{Name: "output_directory", Kind: config.String, Default: ""},
}

func pdbFormat(cfg *config.Config) (*mdconv.Format, error) {
	cols := mdconv.Columns{
		LineTypeEnd: cfg.Int("pdb_line_type_last_char"),
		AtomNumEnd:  cfg.Int("pdb_atom_num_last_char"),
		LabelEnd:    cfg.Int("pdb_atom+res_type_last_char"),
		MolNumEnd:   cfg.Int("pdb_mol_num_last_char"),
		XEnd:        cfg.Int("pdb_x_last_char"),
		YEnd:        cfg.Int("pdb_y_last_char"),
		ZEnd:        cfg.Int("pdb_z_last_char"),
	}
	return mdconv.PDBFormat(cols, cfg.Str("pdb_print_format"))
}

func main() {
	cfgname := flag.String("c", "data2pdb.ini", "The location of the configuration file, in INI, TOML or YAML format")
	verbose := flag.Int("v", 1, "Level of verbosity")
	cli.Usage("", "Creates PDB files from LAMMPS data files, using the PDB template given in the configuration file.\nThe atom types of the first data file are matched to the atom labels of the template.")
	flag.Parse()
	log := mdconv.NewLog(*verbose)

	cfg := cli.Config(*cfgname, schema, log)
	pf, err := pdbFormat(cfg)
	cli.Check(log, err)
	tpl, err := mdconv.ReadFile(cfg.Str("pdb_tpl_file"), pf)
	cli.Check(log, err)
	log.LogV(2, "Read", tpl.NAtoms, "atoms from the template", tpl.Name)
	names, err := mdconv.FileNames(cfg.Str("data_list_file"), cfg.Str("data_file"), log)
	cli.Check(log, err)

	var labels *mdconv.Table[string, int]
	if cfg.Bool("make_atom_type_dict") {
		first, err := mdconv.ReadFile(names[0], mdconv.DataFormat())
		cli.Check(log, err)
		var conflicts []mdconv.Outcome[string, int]
		labels, conflicts, err = mdconv.BuildLabelTable(tpl, first)
		cli.Check(log, err)
		for _, c := range conflicts {
			log.Warn(c.String())
		}
		if dict := cfg.Str("atom_type_dict_file"); dict != "" {
			cli.Check(log, labels.WriteFile(dict))
			log.PrintV(1, "Wrote file:", dict)
		}
	}
	for _, name := range names {
		out := mdconv.InDir(mdconv.OutName(name, "", ".pdb"), cfg.Str("output_directory"))
		_, err := mdconv.Convert(tpl, pf, name, mdconv.DataFormat(), out, mdconv.Labels(labels), log)
		cli.Check(log, err)
	}
	cli.Done(log)
}
