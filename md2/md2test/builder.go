// SPDX-License-Identifier: GPL-2.0-or-later

// Package md2test writes synthetic model files for tests.
package md2test

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Byte offsets of header fields.
const (
	OffsetMagic         = 0
	OffsetVersion       = 4
	OffsetSkinWidth     = 8
	OffsetFrameSize     = 16
	OffsetVertexCount   = 24
	OffsetTexCoordCount = 28
	OffsetTriangleCount = 32
	OffsetCommandCount  = 36
	OffsetFrameCount    = 40
	OffsetFrameOffset   = 56
	OffsetCommandOffset = 60
	OffsetEnd           = 64

	HeaderSize = 68
)

type Vertex [3]uint8

type Frame struct {
	Name      string
	Scale     [3]float32
	Translate [3]float32
	Vertices  []Vertex
}

type Corner struct {
	S, T   float32
	Vertex int32
}

type Face struct {
	Vertices  [3]int16
	TexCoords [3]int16
}

// Builder collects the parts of a file. The zero value is usable.
type Builder struct {
	SkinWidth  int32
	SkinHeight int32
	Skins      []string
	TexCoords  [][2]int16
	Faces      []Face
	Frames     []Frame

	// NoTerminator leaves out the zero word ending the command buffer.
	NoTerminator bool

	commands []uint32
}

func (b *Builder) group(n int32, corners []Corner) {
	b.commands = append(b.commands, uint32(n))
	for _, c := range corners {
		b.commands = append(b.commands,
			math.Float32bits(c.S), math.Float32bits(c.T), uint32(c.Vertex))
	}
}

func (b *Builder) Strip(corners ...Corner) *Builder {
	b.group(int32(len(corners)), corners)
	return b
}

func (b *Builder) Fan(corners ...Corner) *Builder {
	b.group(-int32(len(corners)), corners)
	return b
}

// Words appends raw command words.
func (b *Builder) Words(w ...uint32) *Builder {
	b.commands = append(b.commands, w...)
	return b
}

func (b *Builder) vertexCount() int {
	if len(b.Frames) == 0 {
		return 0
	}
	return len(b.Frames[0].Vertices)
}

// Bytes returns the little endian file.
func (b *Builder) Bytes() []byte {
	cmds := b.commands
	if !b.NoTerminator {
		cmds = append(cmds[:len(cmds):len(cmds)], 0)
	}
	nv := b.vertexCount()
	frameSize := 40 + 4*nv

	var body bytes.Buffer
	off := HeaderSize
	skinOffset := off
	for _, s := range b.Skins {
		var name [64]byte
		copy(name[:], s)
		body.Write(name[:])
	}
	texOffset := skinOffset + 64*len(b.Skins)
	for _, st := range b.TexCoords {
		binary.Write(&body, binary.LittleEndian, st)
	}
	triOffset := texOffset + 4*len(b.TexCoords)
	for _, f := range b.Faces {
		binary.Write(&body, binary.LittleEndian, f)
	}
	frameOffset := triOffset + 12*len(b.Faces)
	for _, f := range b.Frames {
		binary.Write(&body, binary.LittleEndian, f.Scale)
		binary.Write(&body, binary.LittleEndian, f.Translate)
		var name [16]byte
		copy(name[:], f.Name)
		body.Write(name[:])
		for i := 0; i < nv; i++ {
			var v Vertex
			if i < len(f.Vertices) {
				v = f.Vertices[i]
			}
			body.Write(v[:])
			body.WriteByte(0)
		}
	}
	cmdOffset := frameOffset + frameSize*len(b.Frames)
	binary.Write(&body, binary.LittleEndian, cmds)
	end := cmdOffset + 4*len(cmds)

	h := []int32{
		'I' | 'D'<<8 | 'P'<<16 | '2'<<24, 8,
		b.SkinWidth, b.SkinHeight, int32(frameSize),
		int32(len(b.Skins)), int32(nv), int32(len(b.TexCoords)), int32(len(b.Faces)),
		int32(len(cmds)), int32(len(b.Frames)),
		int32(skinOffset), int32(texOffset), int32(triOffset), int32(frameOffset),
		int32(cmdOffset), int32(end),
	}
	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, h)
	out.Write(body.Bytes())
	return out.Bytes()
}

// PutInt32 overwrites the little endian value at off.
func PutInt32(data []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(data[off:], uint32(v))
}

// Int32 reads the little endian value at off.
func Int32(data []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(data[off:]))
}

// Square is the single frame quad model used by many tests: four vertices
// (0,0,0) (10,0,0) (10,10,0) (0,10,0) drawn as one fan.
func Square() *Builder {
	b := &Builder{
		SkinWidth:  64,
		SkinHeight: 64,
		Skins:      []string{"models/square/skin.pcx"},
		Frames: []Frame{{
			Name:  "stand01",
			Scale: [3]float32{1, 1, 1},
			Vertices: []Vertex{
				{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0},
			},
		}},
	}
	b.Fan(
		Corner{0, 0, 0},
		Corner{1, 0, 1},
		Corner{1, 1, 2},
		Corner{0, 1, 3},
	)
	return b
}
