// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"cake/math/vec"
)

// Model is a fully decoded file. It is never modified after Load and can be
// shared between goroutines.
type Model struct {
	Header    Header
	Skins     []string
	TexCoords []TexCoord
	Faces     []Face
	Frames    []Frame
	Commands  []CommandWord

	groups []DrawGroup
	name   string
	mins   vec.Vec3
	maxs   vec.Vec3
}

// Load decodes a complete file held in memory. No partial model is returned
// on error.
func Load(data []byte) (*Model, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Header: h,
		Skins:  readSkins(data, &h),
	}
	if m.TexCoords, err = readTexCoords(data, &h); err != nil {
		return nil, err
	}
	if m.Faces, err = readFaces(data, &h); err != nil {
		return nil, err
	}
	if m.Frames, err = readFrames(data, &h); err != nil {
		return nil, err
	}
	if m.Commands, err = readCommands(data, &h); err != nil {
		return nil, err
	}
	if m.groups, err = Interpret(m.Commands); err != nil {
		return nil, err
	}
	m.calcBounds()
	return m, nil
}

func (m *Model) calcBounds() {
	points := make([]vec.Vec3, 0, len(m.Frames)*m.Header.VertexCount)
	for i := range m.Frames {
		f := &m.Frames[i]
		for j := range f.Vertices {
			points = append(points, f.Position(j, true))
		}
	}
	m.mins, m.maxs = vec.Bounds(points)
}

func (m *Model) Name() string {
	return m.name
}

// Mins is the lower corner of the box around all frames.
func (m *Model) Mins() vec.Vec3 {
	return m.mins
}

// Maxs is the upper corner of the box around all frames.
func (m *Model) Maxs() vec.Vec3 {
	return m.maxs
}

func (m *Model) FrameCount() int {
	return len(m.Frames)
}

func (m *Model) FrameNames() []string {
	names := make([]string, len(m.Frames))
	for i := range m.Frames {
		names[i] = m.Frames[i].Name
	}
	return names
}

// FrameIndex returns the first frame with the given name.
func (m *Model) FrameIndex(name string) (int, bool) {
	for i := range m.Frames {
		if m.Frames[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Bounds returns the box around a single frame.
func (m *Model) Bounds(frame int, translate bool) (vec.Vec3, vec.Vec3, error) {
	if frame < 0 || frame >= len(m.Frames) {
		return vec.Vec3{}, vec.Vec3{}, &IndexError{Kind: "frame", Index: frame, Limit: len(m.Frames)}
	}
	f := &m.Frames[frame]
	points := make([]vec.Vec3, len(f.Vertices))
	for i := range f.Vertices {
		points[i] = f.Position(i, translate)
	}
	mins, maxs := vec.Bounds(points)
	return mins, maxs, nil
}

// DrawGroups returns the interpreted command buffer. The result is shared
// and must not be modified.
func (m *Model) DrawGroups() []DrawGroup {
	return m.groups
}
