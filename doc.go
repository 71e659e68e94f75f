/*
 * doc.go, part of mdconv.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package mdconv is the main package of the mdconv tools. It reads structure files
used in molecular dynamics (LAMMPS data files, PDB files, CP2K output) as a preamble,
a block of atom records and a trailer, and writes them back after replacing
some fields of the atoms with those from other files.


	**mdconv Capabilities**


    Reads and writes LAMMPS data files and PDB files, keeping everything that is not
	an atom record verbatim. Writes XYZ files.

    The file formats are described by a Format, so the same reader and writer
	serve every format.

    Builds correspondence tables between the atom IDs and atom types of two
	files with the same atoms in the same order.

    Replaces coordinates (and, optionally, types and charges) of a template
	with those of another file.

    Moves one atom along a line, or to given distances from another atom,
	using the minimum image convention.

The sub-packages handle LAMMPS dump files (lammps), CP2K output (cp2k),
configuration files (config), simple statistics of tables (stats), WHAM
potentials of mean force (wham) and plots (mdplot). The programs are in cmd/.
*/
package mdconv
