// SPDX-License-Identifier: GPL-2.0-or-later

// Package wavefront writes assembled geometry as Wavefront OBJ text.
package wavefront

import (
	"bufio"
	"io"
	"text/template"

	"cake/md2"

	"github.com/pkg/errors"
)

// Object names one exported mesh. If MtlLib is set the OBJ uses the
// material named like the object from that file, whose texture is Skin.
type Object struct {
	Name     string
	Skin     string
	MtlLib   string
	Geometry *md2.Geometry
}

type face [3]int

type objData struct {
	Name   string
	MtlLib string
	V      []md2.Vertex
	F      []face
}

var (
	objTemplate = template.Must(template.New("obj").Funcs(template.FuncMap{
		"flip": func(t float32) float32 { return 1 - t },
	}).Parse(objText))
	mtlTemplate = template.Must(template.New("mtl").Parse(mtlText))
)

// WriteOBJ writes positions, texture coordinates and 1-based faces.
// OBJ texture space has its origin at the bottom left, so t is flipped.
func WriteOBJ(w io.Writer, o *Object) error {
	g := o.Geometry
	if len(g.Indices)%3 != 0 {
		return errors.Errorf("wavefront: %d indices do not form triangles", len(g.Indices))
	}
	d := objData{
		Name:   o.Name,
		MtlLib: o.MtlLib,
		V:      g.Vertices,
		F:      make([]face, 0, len(g.Indices)/3),
	}
	for i := 0; i < len(g.Indices); i += 3 {
		d.F = append(d.F, face{
			int(g.Indices[i]) + 1,
			int(g.Indices[i+1]) + 1,
			int(g.Indices[i+2]) + 1,
		})
	}
	bw := bufio.NewWriter(w)
	if err := objTemplate.Execute(bw, d); err != nil {
		return errors.Wrap(err, "wavefront")
	}
	return bw.Flush()
}

// WriteMTL writes the material referenced by WriteOBJ.
func WriteMTL(w io.Writer, o *Object) error {
	if err := mtlTemplate.Execute(w, o); err != nil {
		return errors.Wrap(err, "wavefront")
	}
	return nil
}

const objText = `o {{ .Name }}
{{if .MtlLib}}mtllib {{ .MtlLib }}
usemtl {{ .Name }}
{{end}}{{range .V}}v {{ printf "%g" .X }} {{ printf "%g" .Y }} {{ printf "%g" .Z }}
{{end}}{{range .V}}vt {{ printf "%g" .S }} {{ printf "%g" (flip .T) }}
{{end}}{{range .F}}f {{ index . 0 }}/{{ index . 0 }} {{ index . 1 }}/{{ index . 1 }} {{ index . 2 }}/{{ index . 2 }}
{{end}}`

const mtlText = `newmtl {{ .Name }}
Ka 1.000000 1.000000 1.000000
Kd 1.000000 1.000000 1.000000
Ks 0.000000 0.000000 0.000000
illum 1
map_Kd {{ .Skin }}
`
