// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"fmt"
	"math"
)

// Source selects where triangles are taken from.
type Source int

const (
	SourceCommands Source = iota
	SourceTriangles
)

func (s Source) String() string {
	switch s {
	case SourceCommands:
		return "commands"
	case SourceTriangles:
		return "triangles"
	}
	return "unknown"
}

func ParseSource(s string) (Source, error) {
	switch s {
	case "", "commands", "glcmds":
		return SourceCommands, nil
	case "triangles":
		return SourceTriangles, nil
	}
	return SourceCommands, fmt.Errorf("unknown triangle source %q", s)
}

type Options struct {
	// Translate adds the frame translate vector after scaling. Off by default
	// to keep the scale only positions.
	Translate bool
	Source    Source
}

type Vertex struct {
	X, Y, Z float32
	S, T    float32
}

// Geometry is a flat triangle list. Every triangle corner is its own vertex
// and Indices is simply 0..len(Vertices)-1.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint16
}

func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// AssembleGeometry builds the scale only geometry of a frame from the command
// buffer.
func AssembleGeometry(m *Model, frame int) (*Geometry, error) {
	return Assemble(m, frame, Options{})
}

func Assemble(m *Model, frame int, opts Options) (*Geometry, error) {
	if frame < 0 || frame >= len(m.Frames) {
		return nil, &IndexError{Kind: "frame", Index: frame, Limit: len(m.Frames)}
	}
	var tris []Triangle
	switch opts.Source {
	case SourceTriangles:
		var err error
		if tris, err = m.faceTriangles(); err != nil {
			return nil, err
		}
	default:
		tris = Triangulate(m.groups)
	}
	return assemble(&m.Frames[frame], tris, opts.Translate)
}

func assemble(f *Frame, tris []Triangle, translate bool) (*Geometry, error) {
	n := 3 * len(tris)
	if n > math.MaxUint16+1 {
		return nil, &IndexError{Kind: "corner", Index: n - 1, Limit: math.MaxUint16 + 1}
	}
	g := &Geometry{
		Vertices: make([]Vertex, 0, n),
		Indices:  make([]uint16, 0, n),
	}
	for _, tri := range tris {
		for _, c := range tri {
			if c.Vertex < 0 || c.Vertex >= len(f.Vertices) {
				return nil, &IndexError{Kind: "vertex", Index: c.Vertex, Limit: len(f.Vertices)}
			}
			p := f.Position(c.Vertex, translate)
			g.Indices = append(g.Indices, uint16(len(g.Vertices)))
			g.Vertices = append(g.Vertices, Vertex{
				X: p.X,
				Y: p.Y,
				Z: p.Z,
				S: c.S,
				T: c.T,
			})
		}
	}
	return g, nil
}
