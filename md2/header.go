// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"bytes"
	"encoding/binary"
)

func readHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, formatErrorf("header", 0, "file has %d bytes, need at least %d", len(data), headerSize)
	}
	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return Header{}, formatErrorf("header", 0, "%v", err)
	}
	if h.ID != Magic {
		return Header{}, formatErrorf("header", 0, "wrong magic %#08x (should be %#08x)", uint32(h.ID), uint32(Magic))
	}
	if h.Version != aliasVersion {
		return Header{}, formatErrorf("header", 4, "wrong version number (%d should be %d)", h.Version, aliasVersion)
	}
	return h.validate(len(data))
}

type field struct {
	name  string
	at    int // byte offset of the field inside the header
	value int32
	limit int32
}

// validate checks every count and section once so later readers can slice
// without further range checks on the header itself.
func (h *header) validate(size int) (Header, error) {
	counts := []field{
		{"frame size", 16, h.FrameSize, -1},
		{"skin count", 20, h.SkinCount, MaxSkins},
		{"vertex count", 24, h.VertexCount, MaxVertices},
		{"texcoord count", 28, h.TexCoordCount, MaxTexCoords},
		{"triangle count", 32, h.TriangleCount, MaxTriangles},
		{"command count", 36, h.CommandCount, -1},
		{"frame count", 40, h.FrameCount, MaxFrames},
	}
	for _, c := range counts {
		if c.value < 0 {
			return Header{}, formatErrorf("header", c.at, "negative %s %d", c.name, c.value)
		}
		if c.limit >= 0 && c.value > c.limit {
			return Header{}, formatErrorf("header", c.at, "%s %d exceeds %d", c.name, c.value, c.limit)
		}
	}
	if h.FrameCount < 1 {
		return Header{}, formatErrorf("header", 40, "invalid # of frames: %d", h.FrameCount)
	}
	if h.VertexCount < 1 {
		return Header{}, formatErrorf("header", 24, "invalid # of vertices: %d", h.VertexCount)
	}
	if need := int32(frameHeaderSize + int(h.VertexCount)*vertexSize); h.FrameSize < need {
		return Header{}, formatErrorf("header", 16, "frame size %d cannot hold %d vertices (need %d)", h.FrameSize, h.VertexCount, need)
	}

	sections := []struct {
		name   string
		at     int
		offset int32
		count  int32
		stride int
	}{
		{"skins", 44, h.SkinOffset, h.SkinCount, skinNameLength},
		{"texcoords", 48, h.TexCoordOffset, h.TexCoordCount, texCoordSize},
		{"triangles", 52, h.TriangleOffset, h.TriangleCount, faceSize},
		{"frames", 56, h.FrameOffset, h.FrameCount, int(h.FrameSize)},
		{"commands", 60, h.CommandOffset, h.CommandCount, 4},
	}
	for _, s := range sections {
		if s.offset < 0 || int(s.offset) > size {
			return Header{}, formatErrorf("header", s.at, "%s offset %d outside of file (%d bytes)", s.name, s.offset, size)
		}
		end := int64(s.offset) + int64(s.count)*int64(s.stride)
		if end > int64(size) {
			return Header{}, formatErrorf(s.name, 0, "%d entries of %d bytes at %d exceed file size %d", s.count, s.stride, s.offset, size)
		}
	}
	if h.EndOffset < 0 || int(h.EndOffset) > size {
		return Header{}, formatErrorf("header", 64, "end offset %d outside of file (%d bytes)", h.EndOffset, size)
	}

	return Header{
		SkinWidth:      int(h.SkinWidth),
		SkinHeight:     int(h.SkinHeight),
		FrameSize:      int(h.FrameSize),
		SkinCount:      int(h.SkinCount),
		VertexCount:    int(h.VertexCount),
		TexCoordCount:  int(h.TexCoordCount),
		TriangleCount:  int(h.TriangleCount),
		CommandCount:   int(h.CommandCount),
		FrameCount:     int(h.FrameCount),
		SkinOffset:     int(h.SkinOffset),
		TexCoordOffset: int(h.TexCoordOffset),
		TriangleOffset: int(h.TriangleOffset),
		FrameOffset:    int(h.FrameOffset),
		CommandOffset:  int(h.CommandOffset),
		EndOffset:      int(h.EndOffset),
	}, nil
}
