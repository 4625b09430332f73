// This file is part of Gopher9640.
//
// Gopher9640 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher9640 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher9640.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher9640/curated"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// separator between key and value on each line of the prefs file.
const keySep = " :: "

// NoPrefsFile is the curated error pattern returned by Load() when the prefs
// file does not exist. This is not usually a problem because the file will be
// created on the first call to Save().
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk. Values are added with
// Add() and are then loaded and saved together.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk. The key must
// not contain whitespace or the key separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \t\n") || strings.Contains(key, strings.TrimSpace(keySep)) {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preferences added to the disk to their zero value. Defaults should
// be applied by the caller after a reset.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the existing file that
// have not been added to this Disk instance are preserved. This means that
// more than one Disk can share the same file.
func (dsk *Disk) Save() error {
	data, err := load(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range slices.Sorted(maps.Keys(data)) {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values in the file that haven't been added
// to this Disk instance are ignored. Values on the current command line stack
// take priority over values on disk.
func (dsk *Disk) Load() error {
	data, err := load(dsk.path)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
			continue
		}
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return err
}

// load the key/value pairs from the file at path. the returned map is never
// nil, even on error.
func load(path string) (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, curated.Errorf(NoPrefsFile, path)
		}
		return data, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := scanner.Text()
		if len(l) == 0 || l == WarningBoilerPlate {
			continue
		}
		k, v, ok := strings.Cut(l, keySep)
		if !ok {
			continue
		}
		data[k] = v
	}

	if err := scanner.Err(); err != nil {
		return data, curated.Errorf("prefs: %v", err)
	}

	return data, nil
}
