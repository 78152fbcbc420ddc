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

// Version holds the library's release version string, reported by the
// CLI's --version flag.
var Version = func() string {
	return "#VERSION#"
}()

// VersionWithCommit appends whatever commit/tag/branch information the
// build carries to Version, the way a release binary stamps its exact
// provenance.
func VersionWithCommit(gitTag, gitBranch, gitCommit, gitDate string) string {
	vsn := Version
	switch {
	case gitTag != "":
		vsn += "-" + gitTag
	case gitBranch != "":
		vsn += "-" + gitBranch
	}
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if gitDate != "" {
		vsn += "-" + gitDate
	}
	return vsn
}
