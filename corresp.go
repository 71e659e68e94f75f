/*
 * corresp.go, part of mdconv
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

package mdconv

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Result says what happened when a pair was offered to a Table.
type Result int

const (
	Inserted Result = iota
	Skipped
	Conflict
)

func (r Result) String() string {
	return [...]string{"inserted", "skipped", "conflict"}[r]
}

// Outcome is the result of Table.Add. For a Conflict, Old is the value kept and
// New the one rejected. For Skipped, Reason says why.
type Outcome[K cmp.Ordered, V comparable] struct {
	Result Result
	Pos    int //0-based position of the atom that produced the pair
	Key    K
	Old    V
	New    V
	Reason string
}

func (O Outcome[K, V]) String() string {
	switch O.Result {
	case Conflict:
		return fmt.Sprintf("Previously matched %v to %v. At atom %d, also found %v matched to %v. Kept %v", O.Key, O.Old, O.Pos+1, O.Key, O.New, O.Old)
	case Skipped:
		return fmt.Sprintf("%v: %s", O.Key, O.Reason)
	}
	return fmt.Sprintf("%v -> %v", O.Key, O.New)
}

// Table maps values in a subject file to values in the template.
// Pairs where the key equals the value are never stored, and the first
// value stored for a key is never replaced.
type Table[K cmp.Ordered, V comparable] struct {
	m map[K]V
}

func NewTable[K cmp.Ordered, V comparable]() *Table[K, V] {
	return &Table[K, V]{m: make(map[K]V)}
}

// Add offers the pair k->v found at atom pos.
func (T *Table[K, V]) Add(pos int, k K, v V) Outcome[K, V] {
	o := Outcome[K, V]{Pos: pos, Key: k, New: v}
	if old, ok := T.m[k]; ok {
		o.Old = old
		if old == v {
			o.Result = Skipped
			o.Reason = "already in table"
			return o
		}
		o.Result = Conflict
		return o
	}
	if any(k) == any(v) {
		o.Result = Skipped
		o.Reason = "identity"
		return o
	}
	T.m[k] = v
	o.Result = Inserted
	return o
}

// Get returns the value for k, and whether k is in the table.
func (T *Table[K, V]) Get(k K) (V, bool) {
	v, ok := T.m[k]
	return v, ok
}

func (T *Table[K, V]) Len() int {
	if T == nil {
		return 0
	}
	return len(T.m)
}

// Keys returns the keys in increasing order.
func (T *Table[K, V]) Keys() []K {
	keys := make([]K, 0, len(T.m))
	for k := range T.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Write writes the table as "old,new" lines, sorted by key.
func (T *Table[K, V]) Write(w io.Writer) error {
	for _, k := range T.Keys() {
		if _, err := fmt.Fprintf(w, "%v,%v\n", k, T.m[k]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes the table to the file name.
func (T *Table[K, V]) WriteFile(name string) error {
	return errDecorate(WriteWith(name, T.Write), "WriteFile")
}

// ReadTable reads an integer table written by WriteFile. A missing file (or an
// empty name) gives an empty table and a warning, not an error.
func ReadTable(name string, log *Log) (*Table[int, int], error) {
	T := NewTable[int, int]()
	if name == "" {
		return T, nil
	}
	fin, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("Could not find", name, "; continuing without checking atom types")
		return T, nil
	} else if err != nil {
		return nil, ioError(err, name, "ReadTable")
	}
	defer fin.Close()
	r := csv.NewReader(fin)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true
	for pos := 0; ; pos++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, NewError(KindData, name, "ReadTable", "Could not read mapping: %s", err.Error())
		}
		k, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
		v, err2 := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err1 != nil || err2 != nil {
			return nil, NewError(KindData, name, "ReadTable", "Expected two integers, found '%s'", strings.Join(rec, ","))
		}
		T.m[k] = v
	}
	return T, nil
}

// TableOptions selects the tables BuildTables builds.
type TableOptions struct {
	IDs   bool //subject atom ID -> template atom ID
	Types bool //subject type -> template type
}

// Tables are the correspondence tables built from one subject file.
type Tables struct {
	IDs       *Table[int, int]
	Types     *Table[int, int]
	Conflicts []Outcome[int, int]
	From      string //the subject file used
}

// Empty returns true if no table has any pair.
func (T *Tables) Empty() bool {
	return T.IDs.Len() == 0 && T.Types.Len() == 0
}

// Report warns about each conflict.
func (T *Tables) Report(log *Log) {
	for _, c := range T.Conflicts {
		log.Warn(c.String())
	}
}

func countMismatch(tpl, subj *Content, caller string) error {
	if subj.NAtoms == tpl.NAtoms {
		return nil
	}
	return NewError(KindData, subj.Name, caller, "%s: %d atoms in %s, but %d in the template %s", MismatchedAtoms, subj.NAtoms, subj.Name, tpl.NAtoms, tpl.Name)
}

// BuildTables compares the template and subject atoms position by position and
// builds the tables selected in opts. The files must have the same number of atoms.
func BuildTables(tpl, subj *Content, opts TableOptions) (*Tables, error) {
	if err := countMismatch(tpl, subj, "BuildTables"); err != nil {
		return nil, err
	}
	T := &Tables{From: subj.Name}
	if opts.IDs {
		T.IDs = NewTable[int, int]()
	}
	if opts.Types {
		T.Types = NewTable[int, int]()
	}
	for i, s := range subj.Atoms {
		t := tpl.Atoms[i]
		if opts.IDs {
			T.IDs.Add(i, s.ID, t.ID)
		}
		if opts.Types {
			if o := T.Types.Add(i, s.Type, t.Type); o.Result == Conflict {
				T.Conflicts = append(T.Conflicts, o)
			}
		}
	}
	return T, nil
}

// BuildLabelTable maps the labels of a PDB template to the types of a data
// file with the same atoms, and returns the conflicts found.
func BuildLabelTable(tpl, subj *Content) (*Table[string, int], []Outcome[string, int], error) {
	if len(tpl.Atoms) != subj.NAtoms {
		return nil, nil, NewError(KindData, subj.Name, "BuildLabelTable", "%s: %d atoms in %s, but %d in the template %s", MismatchedAtoms, subj.NAtoms, subj.Name, len(tpl.Atoms), tpl.Name)
	}
	T := NewTable[string, int]()
	var conflicts []Outcome[string, int]
	seen := make(map[string]bool)
	for i, s := range subj.Atoms {
		label := strings.TrimSpace(tpl.Atoms[i].Label)
		if o := T.Add(i, label, s.Type); o.Result == Conflict && !seen[label] {
			seen[label] = true
			conflicts = append(conflicts, o)
		}
	}
	return T, conflicts, nil
}

// BuildFromList builds the tables from the files in list, reading them with f,
// and stops at the first file that gives a non-empty table.
func BuildFromList(tpl *Content, list []string, f *Format, opts TableOptions, log *Log) (*Tables, error) {
	var T *Tables
	for i, name := range list {
		subj, err := ReadFile(name, f)
		if err != nil {
			return nil, errDecorate(err, "BuildFromList")
		}
		T, err = BuildTables(tpl, subj, opts)
		if err != nil {
			return nil, errDecorate(err, "BuildFromList")
		}
		T.Report(log)
		log.PrintV(1, fmt.Sprintf("Created dictionary based on 'old' info from: %s\n%24s and 'new' info from: %s", name, "", tpl.Name))
		if !T.Empty() {
			if rest := len(list) - i - 1; rest > 0 {
				log.Warnf("Correspondence tables built from %s only; the other %d files were not checked", name, rest)
			}
			break
		}
	}
	if T == nil {
		return &Tables{IDs: NewTable[int, int](), Types: NewTable[int, int]()}, nil
	}
	return T, nil
}
