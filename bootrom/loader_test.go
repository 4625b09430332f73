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

package bootrom_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher9640/bootrom"
	"github.com/jetsetilly/gopher9640/curated"
	"github.com/jetsetilly/gopher9640/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher9640/hardware/preferences"
	"github.com/jetsetilly/gopher9640/test"
)

func image(fill uint8) []uint8 {
	img := make([]uint8, memorymap.BootROMSize)
	for i := range img {
		img[i] = fill
	}
	return img
}

func writeImage(t *testing.T, name string, data []uint8) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))
	return pth
}

func TestLoadFile(t *testing.T) {
	img := image(0xa5)
	pth := writeImage(t, "boot.bin", img)

	ld := bootrom.NewLoaderFromFilename(pth, false)
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "boot")

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), memorymap.BootROMSize)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(img)))
}

func TestWrongSize(t *testing.T) {
	pth := writeImage(t, "short.bin", make([]uint8, 100))
	ld := bootrom.NewLoaderFromFilename(pth, false)
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bootrom.WrongSize))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestHash(t *testing.T) {
	img := image(0x00)
	pth := writeImage(t, "boot.bin", img)

	ld := bootrom.NewLoaderFromFilename(pth, false)
	ld.Hash = "0000000000000000000000000000000000000000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, bootrom.UnexpectedHash))

	ld = bootrom.NewLoaderFromFilename(pth, false)
	ld.Hash = fmt.Sprintf("%X", sha1.Sum(img))
	test.ExpectSuccess(t, ld.Load())
}

func TestMissingFile(t *testing.T) {
	ld := bootrom.NewLoaderFromFilename(filepath.Join(t.TempDir(), "missing.bin"), false)
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestPreferences(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, prefs.BootROM.Set("roms/standard.bin"))
	test.DemandSuccess(t, prefs.GenmodBootROM.Set("roms/modified.bin"))

	ld := bootrom.NewLoader(prefs)
	test.ExpectEquality(t, ld.Filename, "roms/standard.bin")
	test.ExpectEquality(t, ld.String(), "standard")

	test.DemandSuccess(t, prefs.Genmod.Set(true))
	ld = bootrom.NewLoader(prefs)
	test.ExpectEquality(t, ld.Filename, "roms/modified.bin")
	test.ExpectEquality(t, ld.String(), "modified (genmod)")
}

func TestHTTP(t *testing.T) {
	img := image(0x3c)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boot.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write(img)
	}))
	defer srv.Close()

	ld := bootrom.NewLoaderFromFilename(srv.URL+"/boot.bin", false)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Data[0], uint8(0x3c))

	ld = bootrom.NewLoaderFromFilename(srv.URL+"/missing.bin", false)
	test.ExpectFailure(t, ld.Load())
}
