// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"bytes"
	"encoding/binary"
	"strings"
)

func readSkins(data []byte, h *Header) []string {
	skins := make([]string, h.SkinCount)
	for i := range skins {
		start := h.SkinOffset + i*skinNameLength
		name := cString(data[start : start+skinNameLength])
		skins[i] = strings.ReplaceAll(name, "\\", "/")
	}
	return skins
}

func readTexCoords(data []byte, h *Header) ([]TexCoord, error) {
	st := make([]TexCoord, h.TexCoordCount)
	end := h.TexCoordOffset + h.TexCoordCount*texCoordSize
	if err := binary.Read(bytes.NewReader(data[h.TexCoordOffset:end]), binary.LittleEndian, st); err != nil {
		return nil, formatErrorf("texcoords", 0, "%v", err)
	}
	return st, nil
}

func readFaces(data []byte, h *Header) ([]Face, error) {
	faces := make([]Face, h.TriangleCount)
	end := h.TriangleOffset + h.TriangleCount*faceSize
	if err := binary.Read(bytes.NewReader(data[h.TriangleOffset:end]), binary.LittleEndian, faces); err != nil {
		return nil, formatErrorf("triangles", 0, "%v", err)
	}
	return faces, nil
}

// faceTriangles builds triangles from the triangle table instead of the
// command buffer. Texture coordinates are normalized by the skin size and
// the corners are reversed like the command buffer output.
func (m *Model) faceTriangles() ([]Triangle, error) {
	w, h := float32(m.Header.SkinWidth), float32(m.Header.SkinHeight)
	if w <= 0 || h <= 0 {
		return nil, formatErrorf("header", 8, "skin size %dx%d can not normalize texcoords", m.Header.SkinWidth, m.Header.SkinHeight)
	}
	tris := make([]Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		var tri Triangle
		for k := 0; k < 3; k++ {
			st := int(f.TexCoords[k])
			if st < 0 || st >= len(m.TexCoords) {
				return nil, &IndexError{Kind: "texcoord", Index: st, Limit: len(m.TexCoords)}
			}
			tc := m.TexCoords[st]
			tri[2-k] = Corner{
				Vertex: int(f.Vertices[k]),
				S:      float32(tc.S) / w,
				T:      float32(tc.T) / h,
			}
		}
		tris = append(tris, tri)
	}
	return tris, nil
}
