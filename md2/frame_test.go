// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"errors"
	"testing"

	"cake/math/vec"
	"cake/md2/md2test"
)

func twoFrames() *md2test.Builder {
	b := &md2test.Builder{
		Frames: []md2test.Frame{{
			Name:      "run1",
			Scale:     [3]float32{0.5, 1, 2},
			Translate: [3]float32{-1, -2, -3},
			Vertices:  []md2test.Vertex{{1, 2, 3}, {255, 0, 128}},
		}, {
			Name:     "run2",
			Scale:    [3]float32{1, 1, 1},
			Vertices: []md2test.Vertex{{4, 5, 6}, {7, 8, 9}},
		}},
	}
	b.Strip(md2test.Corner{S: 0, T: 0, Vertex: 0}, md2test.Corner{S: 0, T: 0, Vertex: 1}, md2test.Corner{S: 0, T: 0, Vertex: 0})
	return b
}

func TestReadFrame(t *testing.T) {
	data := twoFrames().Bytes()
	h, err := readHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	f, err := readFrame(data, &h, 0)
	if err != nil {
		t.Fatalf("readFrame(0) failed: %v", err)
	}
	if f.Name != "run1" {
		t.Errorf("Name = %q, want %q", f.Name, "run1")
	}
	if want := (vec.Vec3{X: 0.5, Y: 1, Z: 2}); f.Scale != want {
		t.Errorf("Scale = %v, want %v", f.Scale, want)
	}
	if want := (vec.Vec3{X: -1, Y: -2, Z: -3}); f.Translate != want {
		t.Errorf("Translate = %v, want %v", f.Translate, want)
	}
	if len(f.Vertices) != 2 {
		t.Fatalf("len(Vertices) = %d, want 2", len(f.Vertices))
	}
	if want := [3]uint8{255, 0, 128}; f.Vertices[1].Position != want {
		t.Errorf("Vertices[1] = %v, want %v", f.Vertices[1].Position, want)
	}

	f, err = readFrame(data, &h, 1)
	if err != nil {
		t.Fatalf("readFrame(1) failed: %v", err)
	}
	if f.Name != "run2" || f.Vertices[0].Position != [3]uint8{4, 5, 6} {
		t.Errorf("readFrame(1) = %+v", f)
	}
}

func TestFramePosition(t *testing.T) {
	data := twoFrames().Bytes()
	h, _ := readHeader(data)
	f, _ := readFrame(data, &h, 0)
	if got, want := f.Position(0, false), (vec.Vec3{X: 0.5, Y: 2, Z: 6}); got != want {
		t.Errorf("Position(0, false) = %v, want %v", got, want)
	}
	if got, want := f.Position(0, true), (vec.Vec3{X: -0.5, Y: 0, Z: 3}); got != want {
		t.Errorf("Position(0, true) = %v, want %v", got, want)
	}
}

func TestReadFrameErrors(t *testing.T) {
	data := twoFrames().Bytes()
	h, _ := readHeader(data)

	var ie *IndexError
	if _, err := readFrame(data, &h, 2); !errors.As(err, &ie) {
		t.Errorf("readFrame(2) = %v, want IndexError", err)
	}
	if _, err := readFrame(data, &h, -1); !errors.As(err, &ie) {
		t.Errorf("readFrame(-1) = %v, want IndexError", err)
	}

	var fe *FormatError
	short := h
	short.FrameSize = 40 + 4
	if _, err := readFrame(data, &short, 0); !errors.As(err, &fe) {
		t.Errorf("readFrame with small frame size = %v, want FormatError", err)
	}
	if _, err := readFrame(data[:h.FrameOffset+h.FrameSize+10], &h, 1); !errors.As(err, &fe) {
		t.Errorf("readFrame on truncated data = %v, want FormatError", err)
	}
}
