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

import (
	"testing"

	"github.com/uplc-go/uplc/builtin"
	"github.com/uplc-go/uplc/syn"
)

func TestConfigForVersionV1(t *testing.T) {
	cfg := ConfigForVersion(syn.PlutusV1)
	if cfg.Semantics != builtin.SemanticsV1 {
		t.Fatalf("expected SemanticsV1 for version %s, got %v", syn.PlutusV1, cfg.Semantics)
	}
	if cfg.AllowConstrCase {
		t.Fatalf("version %s must not allow Constr/Case terms", syn.PlutusV1)
	}
}

func TestConfigForVersionV3(t *testing.T) {
	cfg := ConfigForVersion(syn.PlutusV2)
	if cfg.Semantics != builtin.SemanticsV2 {
		t.Fatalf("expected SemanticsV2 for version %s, got %v", syn.PlutusV2, cfg.Semantics)
	}
	if !cfg.AllowConstrCase {
		t.Fatalf("version %s must allow Constr/Case terms", syn.PlutusV2)
	}
}

func TestConfigForVersionIgnoresPatch(t *testing.T) {
	// IsLessThan110 is patch-ignoring: any major==0 or minor==0 triple is
	// still V1, no matter the patch component (spec.md §9).
	weird := syn.NewVersion(7, 0, 99)
	cfg := ConfigForVersion(weird)
	if cfg.Semantics != builtin.SemanticsV1 {
		t.Fatalf("expected SemanticsV1 for patch-ignoring version %s, got %v", weird, cfg.Semantics)
	}
}
