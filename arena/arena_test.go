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

package arena

import "testing"

func TestTrackAndReset(t *testing.T) {
	a := New()
	if a.Allocs() != 0 {
		t.Fatalf("expected a fresh arena to report 0 allocs, got %d", a.Allocs())
	}
	a.Track()
	a.Track()
	a.Track()
	if a.Allocs() != 3 {
		t.Fatalf("expected 3 allocs, got %d", a.Allocs())
	}
	a.Reset()
	if a.Allocs() != 0 {
		t.Fatalf("expected Reset to zero the counter, got %d", a.Allocs())
	}
}
