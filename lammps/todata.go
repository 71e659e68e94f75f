/*
 * todata.go, part of mdconv
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

package lammps

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rmera/mdconv"
)

// DataOptions controls ToData.
type DataOptions struct {
	OutDir   string //where to put the data files, next to the dump if empty
	SortByID bool   //sort the atoms of each frame by ID before substitution
	EVB      *EVB   //if not nil, each timestep is relabeled to the protonation state of the template
}

// ToData writes one data file per timestep of the dump file name, with the
// template tpl and the positions of the frame, and returns the names of the
// files written. Atoms are matched by position in the file, so the dump must
// list them in the template order (or SortByID must be set). With EVB options,
// the molecule IDs, types and charges are also taken from the relabeled frame.
// If any timestep fails, the files already written for the dump are removed.
func ToData(tpl *mdconv.Content, name string, opts DataOptions, log *mdconv.Log) ([]string, error) {
	R, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer R.Close()
	var written []string
	fail := func(err error) ([]string, error) {
		for _, w := range written {
			os.Remove(w)
		}
		return nil, mdconv.Decorate(err, "ToData")
	}
	var evbtpl *evbTemplate
	fields := mdconv.FieldPos
	if opts.EVB != nil {
		if evbtpl, err = opts.EVB.template(tpl); err != nil {
			return nil, err
		}
		fields |= mdconv.FieldType | mdconv.FieldCharge | mdconv.FieldGroup
	}
	f := mdconv.DataFormat()
	for {
		F, err := R.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(err)
		}
		if opts.SortByID {
			F.SortByID()
		}
		if opts.EVB != nil {
			H, err := opts.EVB.relabel(F, evbtpl)
			if err != nil {
				return fail(err)
			}
			log.PrintV(1, H.String())
		}
		subj := F.Content(fmt.Sprintf("%s, timestep %d", name, F.Timestep))
		atoms, _, err := mdconv.Substitute(tpl, subj, mdconv.SubstOptions{Fields: fields})
		if err != nil {
			return fail(err)
		}
		out := mdconv.InDir(mdconv.OutName(name, fmt.Sprintf("_%d", F.Timestep), ".data"), opts.OutDir)
		if err := mdconv.WriteFile(out, tpl.Preamble, atoms, tpl.Trailer, f); err != nil {
			return fail(err)
		}
		log.PrintV(1, "Wrote file:", out)
		written = append(written, out)
	}
	if len(written) == 0 {
		log.Warnf("No timesteps found in %s", name)
	}
	return written, nil
}
