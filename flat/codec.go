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

import (
	"github.com/uplc-go/uplc/binder"
	"github.com/uplc-go/uplc/syn"
)

// EncodeProgram serializes a Program to its flat binary form.
func EncodeProgram[B binder.Binder](p *syn.Program[B]) ([]byte, error) {
	e := NewEncoder()
	e.Word(p.Version.Major)
	e.Word(p.Version.Minor)
	e.Word(p.Version.Patch)
	if err := encodeTerm(e, p.Term); err != nil {
		return nil, err
	}
	e.Filler()
	return e.Buffer, nil
}

// DecodeProgram deserializes a flat-encoded byte slice into a Program,
// parameterized by the Kind that resolves the concrete binder
// representation (spec.md §4.3/§6).
func DecodeProgram[B binder.Binder](data []byte, kind binder.Kind, wrap func(binder.Binder) B) (*syn.Program[B], error) {
	d := NewDecoder(data)
	major, err := d.Word()
	if err != nil {
		return nil, err
	}
	minor, err := d.Word()
	if err != nil {
		return nil, err
	}
	patch, err := d.Word()
	if err != nil {
		return nil, err
	}
	term, err := decodeTerm(d, kind, wrap)
	if err != nil {
		return nil, err
	}
	if err := d.Filler(); err != nil {
		return nil, err
	}
	return syn.NewProgram(syn.NewVersion(major, minor, patch), term), nil
}

func encodeTerm[B binder.Binder](e *Encoder, t *syn.Term[B]) error {
	switch t.Kind {
	case syn.TermVar:
		if err := e.SafeBits(TermTagWidth, TagVar); err != nil {
			return err
		}
		return t.Var.EncodeVar(e)
	case syn.TermDelay:
		if err := e.SafeBits(TermTagWidth, TagDelay); err != nil {
			return err
		}
		return encodeTerm(e, t.DelayBody)
	case syn.TermLambda:
		if err := e.SafeBits(TermTagWidth, TagLambda); err != nil {
			return err
		}
		if err := t.LambdaParam.EncodeParameter(e); err != nil {
			return err
		}
		return encodeTerm(e, t.LambdaBody)
	case syn.TermApply:
		if err := e.SafeBits(TermTagWidth, TagApply); err != nil {
			return err
		}
		if err := encodeTerm(e, t.ApplyFun); err != nil {
			return err
		}
		return encodeTerm(e, t.ApplyArg)
	case syn.TermConstant:
		if err := e.SafeBits(TermTagWidth, TagConstant); err != nil {
			return err
		}
		return encodeConstant(e, t.Constant)
	case syn.TermForce:
		if err := e.SafeBits(TermTagWidth, TagForce); err != nil {
			return err
		}
		return encodeTerm(e, t.ForceBody)
	case syn.TermError:
		return e.SafeBits(TermTagWidth, TagError)
	case syn.TermBuiltin:
		if err := e.SafeBits(TermTagWidth, TagBuiltin); err != nil {
			return err
		}
		return e.SafeBits(BuiltinTagWidth, uint8(t.Builtin))
	case syn.TermConstr:
		if err := e.SafeBits(TermTagWidth, TagConstr); err != nil {
			return err
		}
		e.Word(t.ConstrTag)
		return EncodeList(e, t.ConstrFields, encodeTerm[B])
	case syn.TermCase:
		if err := e.SafeBits(TermTagWidth, TagCase); err != nil {
			return err
		}
		if err := encodeTerm(e, t.CaseScrutinee); err != nil {
			return err
		}
		return EncodeList(e, t.CaseBranches, encodeTerm[B])
	default:
		return errUnknownTermTag(uint8(t.Kind))
	}
}

func decodeTerm[B binder.Binder](d *Decoder, kind binder.Kind, wrap func(binder.Binder) B) (*syn.Term[B], error) {
	tagByte, err := d.Bits(TermTagWidth)
	if err != nil {
		return nil, err
	}
	switch tagByte {
	case TagVar:
		b, err := kind.DecodeVar(d)
		if err != nil {
			return nil, err
		}
		return syn.Var(wrap(b)), nil
	case TagDelay:
		body, err := decodeTerm(d, kind, wrap)
		if err != nil {
			return nil, err
		}
		return syn.Delay(body), nil
	case TagLambda:
		param, err := kind.DecodeParameter(d)
		if err != nil {
			return nil, err
		}
		body, err := decodeTerm(d, kind, wrap)
		if err != nil {
			return nil, err
		}
		return syn.Lambda(wrap(param), body), nil
	case TagApply:
		fn, err := decodeTerm(d, kind, wrap)
		if err != nil {
			return nil, err
		}
		arg, err := decodeTerm(d, kind, wrap)
		if err != nil {
			return nil, err
		}
		return syn.Apply(fn, arg), nil
	case TagConstant:
		c, err := decodeConstant(d)
		if err != nil {
			return nil, err
		}
		return syn.ConstantTerm[B](c), nil
	case TagForce:
		body, err := decodeTerm(d, kind, wrap)
		if err != nil {
			return nil, err
		}
		return syn.Force(body), nil
	case TagError:
		return syn.Error[B](), nil
	case TagBuiltin:
		fnTag, err := d.Bits(BuiltinTagWidth)
		if err != nil {
			return nil, err
		}
		if int(fnTag) >= syn.NumDefaultFunctions {
			return nil, errUnknownBuiltin(fnTag)
		}
		return syn.Builtin[B](syn.DefaultFunction(fnTag)), nil
	case TagConstr:
		tag, err := d.Word()
		if err != nil {
			return nil, err
		}
		fields, err := DecodeList(d, func(d *Decoder) (*syn.Term[B], error) { return decodeTerm(d, kind, wrap) })
		if err != nil {
			return nil, err
		}
		return syn.Constr(tag, fields), nil
	case TagCase:
		scrutinee, err := decodeTerm(d, kind, wrap)
		if err != nil {
			return nil, err
		}
		branches, err := DecodeList(d, func(d *Decoder) (*syn.Term[B], error) { return decodeTerm(d, kind, wrap) })
		if err != nil {
			return nil, err
		}
		return syn.Case(scrutinee, branches), nil
	default:
		return nil, errUnknownTermTag(tagByte)
	}
}
