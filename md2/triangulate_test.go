// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"testing"
)

func corners(vertices ...int) []Corner {
	c := make([]Corner, len(vertices))
	for i, v := range vertices {
		c[i] = Corner{Vertex: v, S: float32(v) / 10, T: 1 - float32(v)/10}
	}
	return c
}

func vertexOrder(tris []Triangle) [][3]int {
	r := make([][3]int, len(tris))
	for i, tri := range tris {
		r[i] = [3]int{tri[0].Vertex, tri[1].Vertex, tri[2].Vertex}
	}
	return r
}

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name  string
		group DrawGroup
		want  [][3]int
	}{
		{"strip of 4", DrawGroup{Strip, corners(0, 1, 2, 3)}, [][3]int{{2, 1, 0}, {1, 2, 3}}},
		{"strip of 5", DrawGroup{Strip, corners(0, 1, 2, 3, 4)}, [][3]int{{2, 1, 0}, {1, 2, 3}, {4, 3, 2}}},
		{"fan of 5", DrawGroup{Fan, corners(0, 1, 2, 3, 4)}, [][3]int{{2, 1, 0}, {3, 2, 0}, {4, 3, 0}}},
		{"fan of 3", DrawGroup{Fan, corners(5, 6, 7)}, [][3]int{{7, 6, 5}}},
		{"strip of 2", DrawGroup{Strip, corners(0, 1)}, [][3]int{}},
		{"fan of 1", DrawGroup{Fan, corners(0)}, [][3]int{}},
	}
	for _, tc := range tests {
		got := vertexOrder(tc.group.Triangles())
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: triangle %d = %v, want %v", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestTriangulateKeepsCorners(t *testing.T) {
	tris := DrawGroup{Fan, corners(0, 1, 2)}.Triangles()
	want := Triangle{corners(2)[0], corners(1)[0], corners(0)[0]}
	if tris[0] != want {
		t.Errorf("Triangles() = %+v, want %+v", tris[0], want)
	}
}

func TestTriangleCount(t *testing.T) {
	groups := []DrawGroup{
		{Strip, corners(0, 1, 2, 3, 4, 5, 6)},
		{Fan, corners(0, 1, 2, 3)},
		{Strip, corners(0, 1)},
		{Fan, corners(0, 1, 2)},
	}
	want := 0
	for _, g := range groups {
		if n := len(g.Corners); n >= 3 {
			want += n - 2
		}
	}
	if got := len(Triangulate(groups)); got != want {
		t.Errorf("len(Triangulate()) = %d, want %d", got, want)
	}
	tris := Triangulate(groups)
	// overall order follows the groups
	if tris[0][0].Vertex != 2 || tris[len(tris)-1][2].Vertex != 0 {
		t.Errorf("unexpected order %v", vertexOrder(tris))
	}
}
