// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"bytes"
	"encoding/binary"

	"cake/math/vec"
)

// readFrame decodes frame i of the frame table.
func readFrame(data []byte, h *Header, i int) (Frame, error) {
	if i < 0 || i >= h.FrameCount {
		return Frame{}, &IndexError{Kind: "frame", Index: i, Limit: h.FrameCount}
	}
	need := frameHeaderSize + h.VertexCount*vertexSize
	if h.FrameSize < need {
		return Frame{}, formatErrorf("frames", i*h.FrameSize, "frame size %d cannot hold %d vertices", h.FrameSize, h.VertexCount)
	}
	start := h.FrameOffset + i*h.FrameSize
	end := start + need
	if end > len(data) {
		return Frame{}, formatErrorf("frames", i*h.FrameSize, "frame %d ends at %d behind end of file %d", i, end, len(data))
	}

	buf := bytes.NewReader(data[start:end])
	fh := frameHeader{}
	if err := binary.Read(buf, binary.LittleEndian, &fh); err != nil {
		return Frame{}, formatErrorf("frames", i*h.FrameSize, "%v", err)
	}
	verts := make([]QuantizedVertex, h.VertexCount)
	if err := binary.Read(buf, binary.LittleEndian, verts); err != nil {
		return Frame{}, formatErrorf("frames", i*h.FrameSize+frameHeaderSize, "%v", err)
	}
	return Frame{
		Name:      cString(fh.Name[:]),
		Scale:     vec.VFromA(fh.Scale),
		Translate: vec.VFromA(fh.Translate),
		Vertices:  verts,
	}, nil
}

func readFrames(data []byte, h *Header) ([]Frame, error) {
	frames := make([]Frame, 0, h.FrameCount)
	for i := 0; i < h.FrameCount; i++ {
		f, err := readFrame(data, h, i)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
