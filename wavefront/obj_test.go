// SPDX-License-Identifier: GPL-2.0-or-later

package wavefront

import (
	"bytes"
	"strings"
	"testing"

	"cake/md2"
)

func TestWriteOBJ(t *testing.T) {
	g := &md2.Geometry{
		Vertices: []md2.Vertex{
			{X: 0, Y: 0, Z: 0, S: 0, T: 0},
			{X: 1, Y: 0, Z: 0, S: 1, T: 0},
			{X: 1, Y: 1, Z: 0.5, S: 1, T: 0.25},
		},
		Indices: []uint16{0, 1, 2},
	}
	var buf bytes.Buffer
	if err := WriteOBJ(&buf, &Object{Name: "tri", Geometry: g}); err != nil {
		t.Fatalf("WriteOBJ() failed: %v", err)
	}
	want := `o tri
v 0 0 0
v 1 0 0
v 1 1 0.5
vt 0 1
vt 1 1
vt 1 0.75
f 1/1 2/2 3/3
`
	if got := buf.String(); got != want {
		t.Errorf("WriteOBJ() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteOBJMaterial(t *testing.T) {
	o := &Object{Name: "tris", Skin: "models/tris.pcx", MtlLib: "export.mtl", Geometry: &md2.Geometry{}}
	var obj, mtl bytes.Buffer
	if err := WriteOBJ(&obj, o); err != nil {
		t.Fatal(err)
	}
	if err := WriteMTL(&mtl, o); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(obj.String(), "mtllib export.mtl\nusemtl tris\n") {
		t.Errorf("obj misses material reference:\n%s", obj.String())
	}
	if !strings.Contains(mtl.String(), "newmtl tris\n") || !strings.Contains(mtl.String(), "map_Kd models/tris.pcx\n") {
		t.Errorf("unexpected material:\n%s", mtl.String())
	}
}

func TestWriteOBJSkinWithoutLibrary(t *testing.T) {
	var obj bytes.Buffer
	if err := WriteOBJ(&obj, &Object{Name: "tris", Skin: "tris.pcx", Geometry: &md2.Geometry{}}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(obj.String(), "mtllib") {
		t.Errorf("obj references a material library:\n%s", obj.String())
	}
}

func TestWriteOBJPartialTriangle(t *testing.T) {
	g := &md2.Geometry{Vertices: make([]md2.Vertex, 2), Indices: []uint16{0, 1}}
	if err := WriteOBJ(&bytes.Buffer{}, &Object{Geometry: g}); err == nil {
		t.Error("WriteOBJ() should fail on a partial triangle")
	}
}
