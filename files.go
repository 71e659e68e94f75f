/*
 * files.go, part of mdconv
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
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/scu"
)

func compression(name string) string {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		return "zst"
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return "gz"
	}
	return ""
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Open opens a file for reading. Files ending in .zst or .gz are decompressed
// on the fly.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, ioError(err, name, "Open")
	}
	switch compression(name) {
	case "zst":
		d, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, ioError(err, name, "Open")
		}
		dc := d.IOReadCloser()
		return &readCloser{dc, []func() error{dc.Close, f.Close}}, nil
	case "gz":
		g, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, ioError(err, name, "Open")
		}
		return &readCloser{g, []func() error{g.Close, f.Close}}, nil
	}
	return f, nil
}

// OutFile is a file being written. The data goes to a temporary file in the same
// directory, which only gets its final name when Close succeeds.
type OutFile struct {
	*bufio.Writer
	name string
	tmp  *os.File
	comp io.WriteCloser
}

// Create returns an OutFile that will be written to name. Names ending in .zst
// or .gz are compressed with zstd or gzip.
func Create(name string) (*OutFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return nil, ioError(err, name, "Create")
	}
	O := &OutFile{name: name, tmp: tmp}
	var w io.Writer = tmp
	switch compression(name) {
	case "zst":
		O.comp, err = zstd.NewWriter(tmp, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	case "gz":
		O.comp, err = gzip.NewWriterLevel(tmp, gzip.BestCompression)
	}
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, ioError(err, name, "Create")
	}
	if O.comp != nil {
		w = O.comp
	}
	O.Writer = bufio.NewWriter(w)
	return O, nil
}

// Name returns the final name of the file.
func (O *OutFile) Name() string { return O.name }

// Abort discards everything written. The final file is never created.
func (O *OutFile) Abort() {
	O.tmp.Close()
	os.Remove(O.tmp.Name())
}

// Close flushes the data and moves the file to its final name.
func (O *OutFile) Close() error {
	err := O.Flush()
	if err == nil && O.comp != nil {
		err = O.comp.Close()
	}
	if err == nil {
		err = O.tmp.Chmod(0644)
	}
	if err == nil {
		err = O.tmp.Close()
	} else {
		O.tmp.Close()
	}
	if err == nil {
		err = os.Rename(O.tmp.Name(), O.name)
	}
	if err != nil {
		os.Remove(O.tmp.Name())
		return ioError(err, O.name, "Close")
	}
	return nil
}

// WriteWith creates the file name and passes it to fn. If fn returns an error
// nothing is left on disk.
func WriteWith(name string, fn func(w io.Writer) error) error {
	out, err := Create(name)
	if err != nil {
		return err
	}
	if err := fn(out); err != nil {
		out.Abort()
		return errDecorate(err, "WriteWith")
	}
	return out.Close()
}

// ReadLines calls fn with each line of the file name, trimmed of leading and
// trailing whitespace, and its 1-based number. A last line without a newline
// is also passed to fn. Reading stops at the first error returned by fn.
func ReadLines(name string, fn func(lineno int, line string) error) error {
	fin, err := scu.NewMustReadFile(name)
	if err != nil {
		return ioError(err, name, "ReadLines")
	}
	defer fin.Close()
	for lineno := 1; ; lineno++ {
		line, err := fin.ErrNext()
		if err != nil && !errors.Is(err, io.EOF) {
			return ioError(err, name, "ReadLines")
		}
		if line != "" {
			if ferr := fn(lineno, strings.TrimSpace(line)); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			return nil
		}
	}
}

// ReadFileList reads a file with one file name per line. Blank lines are ignored.
func ReadFileList(name string) ([]string, error) {
	ret := make([]string, 0, 10)
	err := ReadLines(name, func(_ int, line string) error {
		if line != "" {
			ret = append(ret, line)
		}
		return nil
	})
	if err != nil {
		return nil, errDecorate(err, "ReadFileList")
	}
	return ret, nil
}

// FileNames joins the names listed in the file list (if it exists) and the
// single file name single (if not empty). If neither gives any name an input
// error is returned.
func FileNames(list, single string, log *Log) ([]string, error) {
	var names []string
	if list != "" {
		if _, err := os.Stat(list); err == nil {
			names, err = ReadFileList(list)
			if err != nil {
				return nil, errDecorate(err, "FileNames")
			}
		} else if single == "" {
			return nil, ioError(err, list, "FileNames")
		} else {
			log.LogV(2, "File list", list, "not found, will use only", single)
		}
	}
	if single != "" {
		names = append(names, single)
	}
	if len(names) == 0 {
		return nil, NewError(KindConfig, list, "FileNames", "No files to process")
	}
	return names, nil
}

// OutName returns the name of the output file for the input path: the same
// directory and base name without extension, followed by suffix and ext. A
// compression extension in path is ignored. The returned name is never path itself.
func OutName(path, suffix, ext string) string {
	base := path
	if c := compression(base); c != "" {
		base = strings.TrimSuffix(base, base[len(base)-len(c)-1:])
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	ret := base + suffix + ext
	if ret == path {
		ret = base + suffix + "_new" + ext
	}
	return ret
}

// InDir moves the file name to dir, if dir is not empty.
func InDir(name, dir string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, filepath.Base(name))
}

// Prefixed returns path with prefix added to its base name. If ext is not
// empty, it replaces the extension of path.
func Prefixed(path, prefix, ext string) string {
	dir, base := filepath.Split(path)
	if ext != "" {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	}
	return filepath.Join(dir, prefix+base)
}
