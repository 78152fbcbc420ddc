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

// Package params resolves a decoded Program's version triple to the
// ProtocolConfig that governs its evaluation: which builtin semantics
// revision applies and whether Constr/Case terms are legal at all
// (spec.md §4.6, "Version invariants"). The teacher resolves a block
// height against a handful of named ChainConfigs (Mainnet, Devin,
// Koliba); the same shape here resolves a version triple against the
// two recognized ProtocolConfigs instead of a block height against a
// fork schedule.
package params

import "github.com/uplc-go/uplc/syn"

// ConfigForVersion resolves a Program's version triple to its feature
// gate. Selection follows the reference evaluator's patch-ignoring
// predicate (syn.Version.IsLessThan110), not an exact-match lookup and
// not the named plutus_v1/plutus_v2 constructor the triple came from —
// the source's Version::plutus_v2 returns the same 1.0.0 triple as
// plutus_v1, so only the triple's shape can be trusted, never its name
// (spec.md §9, "Version::plutus_v2 quirk").
func ConfigForVersion(v syn.Version) *ProtocolConfig {
	if v.IsLessThan110() {
		return V1ProtocolConfig
	}
	return V3ProtocolConfig
}
