// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"encoding/binary"

	"cake/math/vec"
)

const (
	aliasVersion = 8
	Magic        = '2'<<24 | 'P'<<16 | 'D'<<8 | 'I'
)

const (
	MaxTriangles = 4096
	MaxVertices  = 2048
	MaxTexCoords = 2048
	MaxFrames    = 512
	MaxSkins     = 32

	skinNameLength  = 64
	frameNameLength = 16
)

type header struct { // dmdl_t
	ID      int32
	Version int32

	SkinWidth  int32
	SkinHeight int32
	FrameSize  int32 // byte size of each frame

	SkinCount     int32
	VertexCount   int32
	TexCoordCount int32 // greater than VertexCount for seams
	TriangleCount int32
	CommandCount  int32 // dwords in the command buffer
	FrameCount    int32

	SkinOffset     int32 // each skin is a MAX_SKINNAME string
	TexCoordOffset int32
	TriangleOffset int32
	FrameOffset    int32
	CommandOffset  int32
	EndOffset      int32 // end of file
}

type frameHeader struct { // daliasframe_t without the verts
	Scale     [3]float32
	Translate [3]float32
	Name      [frameNameLength]byte
}

var (
	headerSize      = binary.Size(header{})
	frameHeaderSize = binary.Size(frameHeader{})
	vertexSize      = binary.Size(QuantizedVertex{})
	texCoordSize    = binary.Size(TexCoord{})
	faceSize        = binary.Size(Face{})
)

// Header is the validated form of the file header. All counts are non
// negative and every section described by an offset/count pair lies inside
// the file.
type Header struct {
	SkinWidth  int
	SkinHeight int
	FrameSize  int

	SkinCount     int
	VertexCount   int
	TexCoordCount int
	TriangleCount int
	CommandCount  int
	FrameCount    int

	SkinOffset     int
	TexCoordOffset int
	TriangleOffset int
	FrameOffset    int
	CommandOffset  int
	EndOffset      int
}

type QuantizedVertex struct { // dtrivertx_t
	Position    [3]uint8 // final is (Scale * Position) + Translate
	NormalIndex uint8    // index into the anorms table, unused here
}

// TexCoord is a skin position in texels.
type TexCoord struct { // dstvert_t
	S int16
	T int16
}

// Face is an entry of the triangle table.
type Face struct { // dtriangle_t
	Vertices  [3]int16
	TexCoords [3]int16
}

type Frame struct {
	Name      string
	Scale     vec.Vec3
	Translate vec.Vec3
	Vertices  []QuantizedVertex
}

// Position expands the quantized vertex i into model space.
func (f *Frame) Position(i int, translate bool) vec.Vec3 {
	q := f.Vertices[i].Position
	p := vec.Mul(vec.Vec3{X: float32(q[0]), Y: float32(q[1]), Z: float32(q[2])}, f.Scale)
	if translate {
		p = vec.Add(p, f.Translate)
	}
	return p
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
