// Copyright 2024 The uplc-go Authors
// This file is part of the uplc-go library.
//
// The uplc-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The uplc-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the uplc-go library. If not, see <http://www.gnu.org/licenses/>.

package flat

// Bit widths for fixed-size tag fields (spec.md §4.3).
const (
	TermTagWidth    = 4
	ConstTagWidth   = 4
	BuiltinTagWidth = 7
)

// Term tags.
const (
	TagVar      uint8 = 0
	TagDelay    uint8 = 1
	TagLambda   uint8 = 2
	TagApply    uint8 = 3
	TagConstant uint8 = 4
	TagForce    uint8 = 5
	TagError    uint8 = 6
	TagBuiltin  uint8 = 7
	TagConstr   uint8 = 8
	TagCase     uint8 = 9
)

// Constant tags.
const (
	TagInteger     uint8 = 0
	TagByteString  uint8 = 1
	TagString      uint8 = 2
	TagUnit        uint8 = 3
	TagBool        uint8 = 4
	TagProtoListA  uint8 = 7
	TagProtoListB  uint8 = 5
	TagProtoPairA  uint8 = 7
	TagProtoPairB  uint8 = 7
	TagProtoPairC  uint8 = 6
	TagData        uint8 = 8
)
