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

// Package bootrom is used to load the boot ROM image before the memory system
// is created. The image is chosen by the board preferences: a genmod board
// needs a different boot ROM to a standard board.
//
// Images can be loaded from the local filesystem or over HTTP. In both cases
// the size of the image is checked and an optional SHA-1 hash is verified.
package bootrom
