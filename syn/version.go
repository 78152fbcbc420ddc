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

package syn

import "fmt"

// Version is the (major, minor, patch) triple every Program carries.
type Version struct {
	Major, Minor, Patch uint64
}

func NewVersion(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// PlutusV1 and PlutusV2 are the two version markers that select builtin
// semantics (SPEC_FULL.md §5, "Open Questions — Decisions": the version
// carried by the program, not the ledger-protocol era, picks the builtin
// semantics set).
var (
	PlutusV1 = Version{Major: 1, Minor: 0, Patch: 0}
	PlutusV2 = Version{Major: 1, Minor: 1, Patch: 0}
)

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) Equal(o Version) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

// IsLessThan110 preserves the reference evaluator's patch-ignoring version
// predicate verbatim (SPEC_FULL.md §5 "is_less_than_1_1_0 quirk"): a
// version is considered less than 1.1.0 whenever its major component is 0
// or its minor component is 0, regardless of major otherwise or of patch.
// This is intentionally not full semver comparison.
func (v Version) IsLessThan110() bool {
	return v.Major == 0 || v.Minor == 0
}
