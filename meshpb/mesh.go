// SPDX-License-Identifier: GPL-2.0-or-later

// Package meshpb stores assembled geometry in protobuf wire format:
//
//	message Mesh {
//	  string name = 1;
//	  uint32 frame = 2;
//	  repeated float positions = 3; // x, y, z per vertex
//	  repeated float texcoords = 4; // s, t per vertex
//	  repeated uint32 indices = 5;
//	}
//
// Repeated fields are written packed and read in both encodings.
package meshpb

import (
	"math"

	"cake/md2"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldName      protowire.Number = 1
	fieldFrame     protowire.Number = 2
	fieldPositions protowire.Number = 3
	fieldTexCoords protowire.Number = 4
	fieldIndices   protowire.Number = 5
)

type Mesh struct {
	Name     string
	Frame    int
	Geometry md2.Geometry
}

func appendFloats(b []byte, num protowire.Number, fs []float32) []byte {
	if len(fs) == 0 {
		return b
	}
	packed := make([]byte, 0, 4*len(fs))
	for _, f := range fs {
		packed = protowire.AppendFixed32(packed, math.Float32bits(f))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func Marshal(m *Mesh) []byte {
	g := &m.Geometry
	pos := make([]float32, 0, 3*len(g.Vertices))
	st := make([]float32, 0, 2*len(g.Vertices))
	for _, v := range g.Vertices {
		pos = append(pos, v.X, v.Y, v.Z)
		st = append(st, v.S, v.T)
	}

	var b []byte
	if m.Name != "" {
		b = protowire.AppendTag(b, fieldName, protowire.BytesType)
		b = protowire.AppendString(b, m.Name)
	}
	if m.Frame != 0 {
		b = protowire.AppendTag(b, fieldFrame, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(m.Frame))
	}
	b = appendFloats(b, fieldPositions, pos)
	b = appendFloats(b, fieldTexCoords, st)
	if len(g.Indices) > 0 {
		var packed []byte
		for _, i := range g.Indices {
			packed = protowire.AppendVarint(packed, uint64(i))
		}
		b = protowire.AppendTag(b, fieldIndices, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	return b
}

// consumeFloats reads one packed or unpacked float field value.
func consumeFloats(dst []float32, typ protowire.Type, b []byte) ([]float32, int, error) {
	switch typ {
	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return dst, n, protowire.ParseError(n)
		}
		return append(dst, math.Float32frombits(v)), n, nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return dst, n, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed32(packed)
			if m < 0 {
				return dst, m, protowire.ParseError(m)
			}
			dst = append(dst, math.Float32frombits(v))
			packed = packed[m:]
		}
		return dst, n, nil
	}
	return dst, 0, errors.Errorf("float field with wire type %d", typ)
}

func consumeIndices(dst []uint16, typ protowire.Type, b []byte) ([]uint16, int, error) {
	add := func(v uint64) error {
		if v > math.MaxUint16 {
			return errors.Errorf("index %d does not fit 16 bit", v)
		}
		dst = append(dst, uint16(v))
		return nil
	}
	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return dst, n, protowire.ParseError(n)
		}
		return dst, n, add(v)
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return dst, n, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return dst, m, protowire.ParseError(m)
			}
			if err := add(v); err != nil {
				return dst, n, err
			}
			packed = packed[m:]
		}
		return dst, n, nil
	}
	return dst, 0, errors.Errorf("index field with wire type %d", typ)
}

func Unmarshal(b []byte) (*Mesh, error) {
	m := &Mesh{}
	var pos, st []float32
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "mesh")
		}
		b = b[n:]
		var err error
		switch {
		case num == fieldName && typ == protowire.BytesType:
			m.Name, n = protowire.ConsumeString(b)
		case num == fieldFrame && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			m.Frame = int(v)
		case num == fieldPositions:
			pos, n, err = consumeFloats(pos, typ, b)
		case num == fieldTexCoords:
			st, n, err = consumeFloats(st, typ, b)
		case num == fieldIndices:
			m.Geometry.Indices, n, err = consumeIndices(m.Geometry.Indices, typ, b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if err == nil && n < 0 {
			err = protowire.ParseError(n)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "mesh field %d", num)
		}
		b = b[n:]
	}

	if len(pos)%3 != 0 || len(st)%2 != 0 || len(pos)/3 != len(st)/2 {
		return nil, errors.Errorf("mesh has %d position and %d texcoord values", len(pos), len(st))
	}
	count := len(pos) / 3
	m.Geometry.Vertices = make([]md2.Vertex, count)
	for i := range m.Geometry.Vertices {
		m.Geometry.Vertices[i] = md2.Vertex{
			X: pos[3*i],
			Y: pos[3*i+1],
			Z: pos[3*i+2],
			S: st[2*i],
			T: st[2*i+1],
		}
	}
	for _, idx := range m.Geometry.Indices {
		if int(idx) >= count {
			return nil, errors.Errorf("mesh index %d out of %d vertices", idx, count)
		}
	}
	return m, nil
}
