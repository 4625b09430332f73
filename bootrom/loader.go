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

package bootrom

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/preferences"
)

// Sentinel error patterns.
const (
	WrongSize      = "bootrom: image is %d bytes (should be %d)"
	UnexpectedHash = "bootrom: unexpected hash value (%s)"
)

// Loader specifies the boot ROM image to load.
type Loader struct {
	// filename or URL of the image
	Filename string

	// expected hash of the image. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the image is intended for a genmod board
	Genmod bool

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The filename is taken from the preferences and depends on whether the
// board is a genmod board.
func NewLoader(prefs *preferences.Preferences) Loader {
	genmod := prefs.Genmod.Get().(bool)
	if genmod {
		return NewLoaderFromFilename(prefs.GenmodBootROM.String(), true)
	}
	return NewLoaderFromFilename(prefs.BootROM.String(), false)
}

// NewLoaderFromFilename is the same as NewLoader except that the file is
// specified explicitly.
func NewLoaderFromFilename(filename string, genmod bool) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
		Genmod:   genmod,
	}
}

// ShortName returns the filename without the path or the extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

func (ld Loader) String() string {
	if ld.Genmod {
		return fmt.Sprintf("%s (genmod)", ld.ShortName())
	}
	return ld.ShortName()
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the boot ROM image. Filenames with a URL scheme of http or https are
// fetched over the network. Anything else is treated as a local file.
//
// Calling Load() a second time has no effect.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []uint8
	var err error

	switch scheme {
	case "http", "https":
		data, err = fetch(ld.Filename)
	case "file":
		data, err = os.ReadFile(ld.Filename)
	default:
		// a single letter scheme is a windows drive letter
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}
	if err != nil {
		return curated.Errorf("bootrom: %v", err)
	}

	if len(data) != memorymap.BootROMSize {
		return curated.Errorf(WrongSize, len(data), memorymap.BootROMSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && !strings.EqualFold(ld.Hash, hash) {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func fetch(address string) ([]uint8, error) {
	resp, err := http.Get(address)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	// read one byte more than we need so that an oversized image is
	// detected without reading all of it
	return io.ReadAll(io.LimitReader(resp.Body, memorymap.BootROMSize+1))
}
