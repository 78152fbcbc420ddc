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

// Package costmodel implements component B's cost side: the per-builtin
// parameterized cost functions (spec.md §4.2) and the fixed ExBudget
// machine-step costs (spec.md §4.1).
package costmodel

// LinearSize, AddedSizes, MultipliedSizes, MinSize and MaxSize all share
// the same (intercept, slope) shape; they are kept as distinct types (as
// in the reference cost model) so each cost function's match arm reads as
// its own named case rather than an anonymous pair of ints.
type LinearSize struct{ Intercept, Slope int64 }
type AddedSizes struct{ Intercept, Slope int64 }
type MultipliedSizes struct{ Intercept, Slope int64 }
type MinSize struct{ Intercept, Slope int64 }
type MaxSize struct{ Intercept, Slope int64 }

type SubtractedSizes struct {
	Intercept, Slope, Minimum int64
}

type ConstantOrLinear struct {
	Constant, Intercept, Slope int64
}

type QuadraticFunction struct {
	Coeff0, Coeff1, Coeff2 int64
}

type TwoArgumentsQuadraticFunction struct {
	Minimum                                        int64
	Coeff00, Coeff10, Coeff01, Coeff20, Coeff11, Coeff02 int64
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// OneArgument is the cost-function grammar for unary builtins.
type OneArgument struct {
	Kind   string // "constant" | "linear"
	Const  int64
	Linear LinearSize
}

func ConstantCost1(c int64) OneArgument { return OneArgument{Kind: "constant", Const: c} }
func LinearCost1(intercept, slope int64) OneArgument {
	return OneArgument{Kind: "linear", Linear: LinearSize{Intercept: intercept, Slope: slope}}
}

func (o OneArgument) Cost(x int64) int64 {
	switch o.Kind {
	case "constant":
		return o.Const
	case "linear":
		return o.Linear.Slope*x + o.Linear.Intercept
	default:
		return 0
	}
}

// TwoArguments is the cost-function grammar for binary builtins.
type TwoArguments struct {
	Kind                  string
	Const                 int64
	LinearX, LinearY      LinearSize
	Added                 AddedSizes
	Subtracted            SubtractedSizes
	Multiplied            MultipliedSizes
	Min                   MinSize
	Max                   MaxSize
	LinearOnDiagonal      ConstantOrLinear
	QuadraticY            QuadraticFunction
	ConstAboveDiagConst   int64
	ConstAboveDiagQuad    TwoArgumentsQuadraticFunction
}

func ConstantCost2(c int64) TwoArguments { return TwoArguments{Kind: "constant", Const: c} }
func LinearInX(intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "linear_x", LinearX: LinearSize{Intercept: intercept, Slope: slope}}
}
func LinearInY(intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "linear_y", LinearY: LinearSize{Intercept: intercept, Slope: slope}}
}
func AddedSizesCost(intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "added", Added: AddedSizes{Intercept: intercept, Slope: slope}}
}
func SubtractedSizesCost(intercept, slope, minimum int64) TwoArguments {
	return TwoArguments{Kind: "subtracted", Subtracted: SubtractedSizes{Intercept: intercept, Slope: slope, Minimum: minimum}}
}
func MultipliedSizesCost(intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "multiplied", Multiplied: MultipliedSizes{Intercept: intercept, Slope: slope}}
}
func MinSizeCost(intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "min", Min: MinSize{Intercept: intercept, Slope: slope}}
}
func MaxSizeCost(intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "max", Max: MaxSize{Intercept: intercept, Slope: slope}}
}
func LinearOnDiagonalCost(constant, intercept, slope int64) TwoArguments {
	return TwoArguments{Kind: "linear_on_diagonal", LinearOnDiagonal: ConstantOrLinear{Constant: constant, Intercept: intercept, Slope: slope}}
}
func QuadraticInY(c0, c1, c2 int64) TwoArguments {
	return TwoArguments{Kind: "quadratic_y", QuadraticY: QuadraticFunction{Coeff0: c0, Coeff1: c1, Coeff2: c2}}
}
func ConstAboveDiagonalIntoQuadraticXAndY(constant int64, q TwoArgumentsQuadraticFunction) TwoArguments {
	return TwoArguments{Kind: "const_above_diag_quad_xy", ConstAboveDiagConst: constant, ConstAboveDiagQuad: q}
}

func (t TwoArguments) Cost(x, y int64) int64 {
	switch t.Kind {
	case "constant":
		return t.Const
	case "linear_x":
		return t.LinearX.Slope*x + t.LinearX.Intercept
	case "linear_y":
		return t.LinearY.Slope*y + t.LinearY.Intercept
	case "added":
		return t.Added.Slope*(x+y) + t.Added.Intercept
	case "subtracted":
		return t.Subtracted.Slope*maxI64(t.Subtracted.Minimum, x-y) + t.Subtracted.Intercept
	case "multiplied":
		return t.Multiplied.Slope*(x*y) + t.Multiplied.Intercept
	case "min":
		return t.Min.Slope*minI64(x, y) + t.Min.Intercept
	case "max":
		return t.Max.Slope*maxI64(x, y) + t.Max.Intercept
	case "linear_on_diagonal":
		if x == y {
			return x*t.LinearOnDiagonal.Slope + t.LinearOnDiagonal.Intercept
		}
		return t.LinearOnDiagonal.Constant
	case "quadratic_y":
		return t.QuadraticY.Coeff0 + t.QuadraticY.Coeff1*y + t.QuadraticY.Coeff2*y*y
	case "const_above_diag_quad_xy":
		if x < y {
			return t.ConstAboveDiagConst
		}
		q := t.ConstAboveDiagQuad
		return maxI64(q.Minimum, q.Coeff00+q.Coeff10*x+q.Coeff01*y+q.Coeff20*x*x+q.Coeff11*x*y+q.Coeff02*y*y)
	default:
		return 0
	}
}

// ThreeArguments is the cost-function grammar for ternary builtins.
type ThreeArguments struct {
	Kind             string
	Const            int64
	LinearY, LinearZ LinearSize
	QuadraticZ       QuadraticFunction
	LiteralYLinearZ  LinearSize
}

func ConstantCost3(c int64) ThreeArguments { return ThreeArguments{Kind: "constant", Const: c} }
func LinearInY3(intercept, slope int64) ThreeArguments {
	return ThreeArguments{Kind: "linear_y", LinearY: LinearSize{Intercept: intercept, Slope: slope}}
}
func LinearInZ3(intercept, slope int64) ThreeArguments {
	return ThreeArguments{Kind: "linear_z", LinearZ: LinearSize{Intercept: intercept, Slope: slope}}
}
func QuadraticInZ3(c0, c1, c2 int64) ThreeArguments {
	return ThreeArguments{Kind: "quadratic_z", QuadraticZ: QuadraticFunction{Coeff0: c0, Coeff1: c1, Coeff2: c2}}
}
func LiteralInYOrLinearInZ(intercept, slope int64) ThreeArguments {
	return ThreeArguments{Kind: "literal_y_or_linear_z", LiteralYLinearZ: LinearSize{Intercept: intercept, Slope: slope}}
}

func (t ThreeArguments) Cost(x, y, z int64) int64 {
	switch t.Kind {
	case "constant":
		return t.Const
	case "linear_y":
		return y*t.LinearY.Slope + t.LinearY.Intercept
	case "linear_z":
		return z*t.LinearZ.Slope + t.LinearZ.Intercept
	case "quadratic_z":
		return t.QuadraticZ.Coeff0 + t.QuadraticZ.Coeff1*z + t.QuadraticZ.Coeff2*z*z
	case "literal_y_or_linear_z":
		if y == 0 {
			return t.LiteralYLinearZ.Slope*z + t.LiteralYLinearZ.Intercept
		}
		return y
	default:
		return 0
	}
}

// SixArguments only ever appears as a constant cost: chooseData, the one
// six-argument builtin in the default table, has constant cpu and mem
// parameters.
type SixArguments struct {
	Const int64
}

func ConstantCost6(c int64) SixArguments { return SixArguments{Const: c} }

func (s SixArguments) Cost(_ [6]int64) int64 { return s.Const }

// CostingFunction is a (mem, cpu) pair of cost functions sharing the same
// arity, mirroring the reference Costing<N, T> struct.
type CostingFunction[T any] struct {
	Mem, Cpu T
}
