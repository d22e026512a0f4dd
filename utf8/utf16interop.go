// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utf8

import "github.com/thanhtphung/cppware-sub002/internal/codec"

// bswap16 and decodeUTF16 let Sequence.ConvertFromUTF16* decode UTF-16
// input without importing the sibling utf16 package (which itself
// depends on codec, not on utf8, to avoid a cycle).
func bswap16(v uint16) uint16 { return codec.Bswap16(v) }

func decodeUTF16(seq []uint16) (c uint32, n int) { return codec.DecodeUTF16(seq) }
