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

package utf16

import "github.com/thanhtphung/cppware-sub002/utfseq"

// body wraps a Sequence to satisfy utfseq.Body the same way the
// sibling utf8 package's body type does.
type body struct{ *Sequence }

func (b body) Clone() utfseq.Body { return body{b.Sequence.Clone()} }

// AsBody exposes s through the cross-encoding utfseq.Body contract.
func (s *Sequence) AsBody() utfseq.Body { return body{s} }

var _ utfseq.Body = body{}
