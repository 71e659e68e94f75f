/*
 * evb.go, part of mdconv
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
	"fmt"
	"math"

	"github.com/rmera/mdconv"
)

// EVB holds the atom types and molecule IDs needed to follow the excess
// proton in a dump of an EVB simulation with one protonatable residue.
type EVB struct {
	WaterO     int
	WaterH     int
	H3OO       int
	H3OH       int
	ProtResMol int   //molecule ID of the protonatable residue
	ProtH      int   //type of the acidic hydrogen of the residue
	Ignore     []int //hydrogens of the residue with type ProtH that are never acidic
}

func (E *EVB) ignored(id int) bool {
	for _, v := range E.Ignore {
		if v == id {
			return true
		}
	}
	return false
}

// Hydronium is the location of the excess proton at one timestep.
type Hydronium struct {
	Timestep   int
	Mol        int     //hydronium molecule, or the closest water when the residue is protonated
	Protonated bool    //the excess proton sits on the protonatable residue
	Proton     int     //ID of the excess proton, when Protonated
	Dist       float64 //distance from the proton to the oxygen of the closest water, when Protonated
}

func (H *Hydronium) String() string {
	if H.Protonated {
		return fmt.Sprintf("Timestep %d: residue protonated (atom %d), closest water is molecule %d at %.3f A", H.Timestep, H.Proton, H.Mol, H.Dist)
	}
	return fmt.Sprintf("Timestep %d: hydronium is molecule %d", H.Timestep, H.Mol)
}

// Locate finds the excess proton in the frame. If it sits on the protonatable
// residue, the water whose oxygen is closest to it (with periodic boundary
// conditions) is reported as the molecule that would become the hydronium.
func (E *EVB) Locate(F *Frame) (*Hydronium, error) {
	H := &Hydronium{Timestep: F.Timestep, Mol: -1}
	var proton *mdconv.Record
	for _, a := range F.Atoms {
		switch {
		case a.Group == E.ProtResMol && a.Type == E.ProtH && !E.ignored(a.ID):
			proton = a
		case a.Group != E.ProtResMol && a.Type == E.H3OO:
			H.Mol = a.Group
		}
	}
	if H.Mol >= 0 {
		return H, nil
	}
	if proton == nil {
		return nil, mdconv.NewError(mdconv.KindData, "", "EVB.Locate", "Found neither a hydronium nor a protonated residue at timestep %d", F.Timestep)
	}
	H.Protonated = true
	H.Proton = proton.ID
	H.Dist = math.Inf(1)
	for _, a := range F.Atoms {
		if a.Type != E.WaterO {
			continue
		}
		if d := mdconv.PBCDist(proton.Pos, a.Pos, F.Box); d < H.Dist {
			H.Dist = d
			H.Mol = a.Group
		}
	}
	if H.Mol < 0 {
		return nil, mdconv.NewError(mdconv.KindData, "", "EVB.Locate", "No water found to take the excess proton at timestep %d", F.Timestep)
	}
	return H, nil
}

// evbTemplate holds what the relabeling takes from the data template: the
// hydronium molecule, the charges of its atoms and the deprotonated residue.
type evbTemplate struct {
	name    string
	h3oMol  int
	oCharge float64
	hCharge float64
	res     []*mdconv.Record
}

func (E *EVB) template(tpl *mdconv.Content) (*evbTemplate, error) {
	t := &evbTemplate{name: tpl.Name, h3oMol: -1}
	hasH := false
	for _, a := range tpl.Atoms {
		switch {
		case a.Type == E.H3OO:
			t.h3oMol = a.Group
			t.oCharge = a.Charge
		case a.Type == E.H3OH:
			t.hCharge = a.Charge
			hasH = true
		case a.Group == E.ProtResMol:
			t.res = append(t.res, a)
		}
	}
	if t.h3oMol < 0 || !hasH {
		return nil, mdconv.NewError(mdconv.KindData, tpl.Name, "EVB", "The data template has no hydronium (atom types %d and %d)", E.H3OO, E.H3OH)
	}
	return t, nil
}

// Relabel changes the molecule IDs, types and charges of the atoms of F so they
// describe the same protonation state as the template tpl, which must hold a
// hydronium and the deprotonated residue. If the residue holds the excess
// proton, the proton and the closest water become the hydronium and the residue
// takes the types and charges of the template. The hydronium then takes the
// molecule ID it has in the template, swapping IDs with the water that had it.
// F needs the mol and q columns.
func (E *EVB) Relabel(F *Frame, tpl *mdconv.Content) (*Hydronium, error) {
	t, err := E.template(tpl)
	if err != nil {
		return nil, err
	}
	return E.relabel(F, t)
}

func (E *EVB) relabel(F *Frame, t *evbTemplate) (*Hydronium, error) {
	if !F.Fields.Has(mdconv.FieldGroup | mdconv.FieldCharge) {
		return nil, mdconv.NewError(mdconv.KindData, "", "EVB.Relabel", "The mol and q columns are needed to relabel timestep %d", F.Timestep)
	}
	H, err := E.Locate(F)
	if err != nil {
		return nil, err
	}
	if H.Protonated {
		proton := F.Atom(H.Proton)
		proton.Group, proton.Type, proton.Charge = t.h3oMol, E.H3OH, t.hCharge
		for _, a := range F.Atoms {
			if a.Group != H.Mol || a == proton {
				continue
			}
			switch a.Type {
			case E.WaterO:
				a.Type, a.Charge = E.H3OO, t.oCharge
			case E.WaterH:
				a.Type, a.Charge = E.H3OH, t.hCharge
			}
		}
		if err := E.deprotonate(F, t); err != nil {
			return nil, err
		}
	}
	if H.Mol != t.h3oMol {
		E.swapMol(F, H.Mol, t.h3oMol)
	}
	return H, nil
}

// deprotonate gives the atoms of the residue the types and charges they have
// in the template. The residue must have the same atoms, in the same order.
func (E *EVB) deprotonate(F *Frame, t *evbTemplate) error {
	var res []*mdconv.Record
	for _, a := range F.Atoms {
		if a.Group == E.ProtResMol {
			res = append(res, a)
		}
	}
	if len(res) != len(t.res) {
		return mdconv.NewError(mdconv.KindData, t.name, "EVB.Relabel", "%d atoms in the protonatable residue at timestep %d, but %d in the template", len(res), F.Timestep, len(t.res))
	}
	for i, a := range res {
		ta := t.res[i]
		if a.ID != ta.ID {
			return mdconv.NewError(mdconv.KindData, t.name, "EVB.Relabel", "The atoms of the protonatable residue at timestep %d are not ordered as in the template (found atom %d, expected %d)", F.Timestep, a.ID, ta.ID)
		}
		a.Type, a.Charge = ta.Type, ta.Charge
	}
	return nil
}

// swapMol moves the hydronium from molecule from to molecule to, and the water
// that was molecule to, to from.
func (E *EVB) swapMol(F *Frame, from, to int) {
	for _, a := range F.Atoms {
		switch {
		case a.Group == from && (a.Type == E.H3OO || a.Type == E.H3OH):
			a.Group = to
		case a.Group == to && (a.Type == E.WaterO || a.Type == E.WaterH):
			a.Group = from
		}
	}
}
