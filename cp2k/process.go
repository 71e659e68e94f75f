/*
 * process.go, part of mdconv
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

package cp2k

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/rmera/mdconv"
)

// Options for Process. Every output is optional.
type Options struct {
	Data      *mdconv.Content //data file template
	PDB       *mdconv.Content //PDB template
	PDBFormat *mdconv.Format
	XYZ       bool
	XYZSuffix string //".xyz" if empty
	Elements  Elements
	OutDir    string
}

// Result of processing one CP2K output file.
type Result struct {
	File    string
	Energy  string
	Written []string
}

func (O *Options) natoms() int {
	switch {
	case O.Data != nil:
		return O.Data.NAtoms
	case O.PDB != nil:
		return O.PDB.NAtoms
	}
	return 0
}

// Provenance returns the line that replaces the first line of the data
// template in the files written.
func Provenance(tpl, cp2kfile string) string {
	return fmt.Sprintf("Created on %s by cp2kproc from template file %s and cp2k output file %s", time.Now().Format(time.RFC3339), tpl, cp2kfile)
}

// Process reads the CP2K output file name and writes the files requested in O.
// Nothing is written if the coordinates don't match the templates.
func Process(name string, O *Options, log *mdconv.Log) (*Result, error) {
	out, err := Read(name, O.natoms())
	if err != nil {
		return nil, err
	}
	R := &Result{File: name, Energy: out.Energy}
	if out.Energy == "" {
		log.Warnf("No QM/MM energy found in %s", name)
	}
	subj := out.Content()
	var dataAtoms, pdbAtoms []*mdconv.Record
	if O.Data != nil {
		if dataAtoms, _, err = mdconv.Substitute(O.Data, subj, mdconv.SubstOptions{}); err != nil {
			return nil, mdconv.Decorate(err, "cp2k.Process")
		}
	}
	if O.PDB != nil {
		if pdbAtoms, _, err = mdconv.SubstituteLabels(O.PDB, subj, nil); err != nil {
			return nil, mdconv.Decorate(err, "cp2k.Process")
		}
	}
	var symbols []string
	if O.XYZ {
		if symbols, err = O.symbols(out); err != nil {
			return nil, mdconv.NewError(mdconv.KindData, name, "cp2k.Process", "%s", err.Error())
		}
		log.LogV(2, "Total mass in", name, totalMass(symbols))
	}
	if dataAtoms != nil {
		pre := O.Data.CopyPreamble()
		if len(pre) > 0 {
			pre[0] = Provenance(O.Data.Name, name)
		}
		fname := mdconv.InDir(mdconv.OutName(name, "", ".data"), O.OutDir)
		if err := mdconv.WriteFile(fname, pre, dataAtoms, O.Data.Trailer, mdconv.DataFormat()); err != nil {
			return R, err
		}
		R.Written = append(R.Written, fname)
	}
	if pdbAtoms != nil {
		fname := mdconv.InDir(mdconv.OutName(name, "", ".pdb"), O.OutDir)
		if err := mdconv.WriteFile(fname, O.PDB.Preamble, pdbAtoms, O.PDB.Trailer, O.PDBFormat); err != nil {
			return R, err
		}
		R.Written = append(R.Written, fname)
	}
	if symbols != nil {
		suffix := O.XYZSuffix
		if suffix == "" {
			suffix = ".xyz"
		}
		fname := mdconv.InDir(mdconv.OutName(name, "", suffix), O.OutDir)
		comment := fmt.Sprintf("%s energy: %s", name, out.Energy)
		err := mdconv.WriteWith(fname, func(w io.Writer) error {
			return mdconv.WriteXYZ(w, comment, symbols, out.Atoms)
		})
		if err != nil {
			return R, err
		}
		R.Written = append(R.Written, fname)
	}
	log.PrintV(0, fmt.Sprintf("%s energy: %s", name, out.Energy))
	return R, nil
}

// symbols returns the element of each atom, taken from the MM types in the data
// template if there is one, or from the MM types in the CP2K file.
func (O *Options) symbols(out *Output) ([]string, error) {
	ret := make([]string, len(out.Atoms))
	for i, a := range out.Atoms {
		mm := a.Label
		if O.Data != nil {
			mm = MMType(O.Data.Atoms[i].Annotation)
		}
		s, err := O.Elements.Symbol(mm)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %s", i+1, err.Error())
		}
		ret[i] = s
	}
	return ret, nil
}

func totalMass(symbols []string) float64 {
	var m float64
	for _, s := range symbols {
		v, _ := Mass(s)
		m += v
	}
	return m
}

// WriteEnergies writes the file name and energy of each result as CSV.
func WriteEnergies(w io.Writer, results []*Result) error {
	c := csv.NewWriter(w)
	if err := c.Write([]string{"file", "energy"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := c.Write([]string{r.File, r.Energy}); err != nil {
			return err
		}
	}
	c.Flush()
	return c.Error()
}
