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

package params

import "github.com/uplc-go/uplc/builtin"

// ProtocolConfig is the feature gate active for one recognized Program
// version triple: which builtin behavior revision applies, and whether
// Constr and Case terms are legal at all (spec.md §4.6, "Version
// invariants"). The teacher gates opcode and gas-schedule behavior by
// block number against one of several named chain configs; this table
// gates builtin semantics and term grammar by version triple instead.
type ProtocolConfig struct {
	Semantics       builtin.Semantics
	AllowConstrCase bool
}

var (
	// V1ProtocolConfig is active below 1.1.0 (spec.md: "protocol v1/v2
	// semantics"): V1 builtin behavior, no Constr/Case terms.
	V1ProtocolConfig = &ProtocolConfig{
		Semantics:       builtin.SemanticsV1,
		AllowConstrCase: false,
	}

	// V3ProtocolConfig is active at 1.1.0 (spec.md: "protocol v3"): V2
	// builtin behavior (strict consByteString) plus Constr/Case terms.
	V3ProtocolConfig = &ProtocolConfig{
		Semantics:       builtin.SemanticsV2,
		AllowConstrCase: true,
	}
)
