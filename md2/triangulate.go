// SPDX-License-Identifier: GPL-2.0-or-later

package md2

// Triangle corners are stored in emission winding order.
type Triangle [3]Corner

// Triangulate expands all groups into independent triangles.
func Triangulate(groups []DrawGroup) []Triangle {
	n := 0
	for _, g := range groups {
		n += triangleCount(len(g.Corners))
	}
	tris := make([]Triangle, 0, n)
	for _, g := range groups {
		tris = g.appendTriangles(tris)
	}
	return tris
}

// Triangles returns the triangles of a single group.
func (g DrawGroup) Triangles() []Triangle {
	return g.appendTriangles(make([]Triangle, 0, triangleCount(len(g.Corners))))
}

func (g DrawGroup) appendTriangles(dst []Triangle) []Triangle {
	if g.Kind == Fan {
		return appendFan(dst, g.Corners)
	}
	return appendStrip(dst, g.Corners)
}

func triangleCount(corners int) int {
	if corners < 3 {
		return 0
	}
	return corners - 2
}

// A strip flips its implicit winding with every new corner.
func appendStrip(dst []Triangle, c []Corner) []Triangle {
	clockwise := false
	for i := 0; i+2 < len(c); i++ {
		if clockwise {
			dst = append(dst, Triangle{c[i], c[i+1], c[i+2]})
		} else {
			dst = append(dst, Triangle{c[i+2], c[i+1], c[i]})
		}
		clockwise = !clockwise
	}
	return dst
}

// All fan triangles share c[0] and keep the same winding.
func appendFan(dst []Triangle, c []Corner) []Triangle {
	for i := 1; i+1 < len(c); i++ {
		dst = append(dst, Triangle{c[i+1], c[i], c[0]})
	}
	return dst
}
