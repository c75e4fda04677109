// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"cake/cache"
	"cake/config"
	"cake/conlog"
	"cake/crc"
	"cake/filesystem"
	"cake/math/vec"
	"cake/md2"
	"cake/meshpb"
	"cake/pack"
	"cake/wavefront"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cake: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	models *cache.Cache
}

func newCommand(out, errOut io.Writer) *cli.Command {
	a := &app{}
	return &cli.Command{
		Name:      "cake",
		Usage:     "inspect and convert md2 models",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "yaml settings file"},
			&cli.StringFlag{Name: "basedir", Usage: "directory holding " + filesystem.DefaultGame},
			&cli.StringFlag{Name: "game", Usage: "mod directory searched first"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warning or error"},
		},
		Before: a.setup,
		After:  a.shutdown,
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "print header, skins and frames",
				ArgsUsage: "<model>...",
				Action:    a.inspect,
			},
			{
				Name:      "export",
				Usage:     "write one frame as obj or protobuf mesh",
				ArgsUsage: "<model>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "obj", Usage: "obj or mesh"},
					&cli.StringFlag{Name: "frame", Value: "0", Usage: "frame number or name"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout if empty"},
					&cli.BoolFlag{Name: "translate", Usage: "add the frame translation to positions"},
					&cli.StringFlag{Name: "source", Usage: "commands or triangles"},
				},
				Action: a.export,
			},
			{
				Name:   "paths",
				Usage:  "print the directories and archives models are searched in",
				Action: printPaths,
			},
			{
				Name:      "pak",
				Usage:     "list the files of a pack archive",
				ArgsUsage: "<file.pak>",
				Action:    listPack,
			},
		},
	}
}

func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("basedir") {
		cfg.BaseDir = cmd.String("basedir")
	}
	if cmd.IsSet("game") {
		cfg.Game = cmd.String("game")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	conlog.SetOutput(cmd.Root().ErrWriter)
	if err := conlog.SetLevel(cfg.LogLevel); err != nil {
		return ctx, err
	}
	cfg.Mount()
	models, err := cache.New(cfg.CacheSize, readModel)
	if err != nil {
		return ctx, err
	}
	a.cfg = cfg
	a.models = models
	return ctx, nil
}

func (a *app) shutdown(ctx context.Context, cmd *cli.Command) error {
	if a.models != nil {
		a.models.Close()
	}
	filesystem.Close()
	return nil
}

// readModel prefers a file on disk and falls back to the search path.
func readModel(name string) ([]byte, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return os.ReadFile(name)
	}
	return filesystem.ReadFile(name)
}

func (a *app) load(name string) (*cache.Entry, *md2.Model, error) {
	e, err := a.models.Get(name)
	if err != nil {
		return nil, nil, err
	}
	m, ok := e.Model.(*md2.Model)
	if !ok {
		return nil, nil, errors.Errorf("%s is not an md2 model", name)
	}
	return e, m, nil
}

func (a *app) inspect(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("inspect: missing model name")
	}
	w := cmd.Root().Writer
	for _, name := range cmd.Args().Slice() {
		e, m, err := a.load(name)
		if err != nil {
			return err
		}
		printModel(w, e, m)
	}
	return nil
}

func printModel(w io.Writer, e *cache.Entry, m *md2.Model) {
	h := &m.Header
	fmt.Fprintf(w, "%s\n", e.Name)
	fmt.Fprintf(w, "  id        %s\n", e.ID)
	fmt.Fprintf(w, "  size      %s (crc %04x)\n", humanize.Bytes(uint64(e.Size)), e.CRC)
	fmt.Fprintf(w, "  skin      %dx%d\n", h.SkinWidth, h.SkinHeight)
	fmt.Fprintf(w, "  vertices  %s\n", humanize.Comma(int64(h.VertexCount)))
	fmt.Fprintf(w, "  triangles %s\n", humanize.Comma(int64(h.TriangleCount)))
	fmt.Fprintf(w, "  commands  %s words in %d groups\n", humanize.Comma(int64(h.CommandCount)), len(m.DrawGroups()))
	mins, maxs := m.Mins(), m.Maxs()
	fmt.Fprintf(w, "  bounds    (%g %g %g) (%g %g %g)\n", mins.X, mins.Y, mins.Z, maxs.X, maxs.Y, maxs.Z)
	ext := vec.Sub(maxs, mins)
	fmt.Fprintf(w, "  extent    %g x %g x %g, diagonal %.4g\n", ext.X, ext.Y, ext.Z, ext.Length())
	for _, s := range m.Skins {
		fmt.Fprintf(w, "  skin      %s\n", s)
	}
	for i, n := range m.FrameNames() {
		fmt.Fprintf(w, "  frame %3d %s\n", i, n)
	}
}

func frameIndex(m *md2.Model, s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if i < 0 || i >= m.FrameCount() {
			return 0, &md2.IndexError{Kind: "frame", Index: i, Limit: m.FrameCount()}
		}
		return i, nil
	}
	if i, ok := m.FrameIndex(s); ok {
		return i, nil
	}
	return 0, errors.Errorf("no frame named %q", s)
}

func (a *app) export(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("export: need exactly one model name")
	}
	format := cmd.String("format")
	if format != "obj" && format != "mesh" {
		return errors.Errorf("unknown format %q", format)
	}
	name := cmd.Args().First()
	_, m, err := a.load(name)
	if err != nil {
		return err
	}
	frame, err := frameIndex(m, cmd.String("frame"))
	if err != nil {
		return err
	}
	opts := a.cfg.Options()
	if cmd.IsSet("translate") {
		opts.Translate = cmd.Bool("translate")
	}
	if cmd.IsSet("source") {
		if opts.Source, err = md2.ParseSource(cmd.String("source")); err != nil {
			return err
		}
	}
	g, err := md2.Assemble(m, frame, opts)
	if err != nil {
		return errors.Wrapf(err, "%s frame %d", name, frame)
	}
	conlog.WithFields(logrus.Fields{
		"model":     name,
		"frame":     frame,
		"vertices":  len(g.Vertices),
		"triangles": g.TriangleCount(),
	}).Debug("assembled")

	o := &wavefront.Object{Name: filesystem.StripExt(path.Base(name)), Geometry: g}
	out := cmd.String("out")
	if out == "" {
		return writeMesh(cmd.Root().Writer, format, o, frame)
	}
	if format == "obj" && len(m.Skins) > 0 {
		mtl := filesystem.StripExt(out) + ".mtl"
		o.Skin = m.Skins[0]
		o.MtlLib = filepath.Base(mtl)
		if err := writeMaterial(mtl, o); err != nil {
			return err
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := writeMesh(f, format, o, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMesh(w io.Writer, format string, o *wavefront.Object, frame int) error {
	if format == "mesh" {
		_, err := w.Write(meshpb.Marshal(&meshpb.Mesh{Name: o.Name, Frame: frame, Geometry: *o.Geometry}))
		return err
	}
	return wavefront.WriteOBJ(w, o)
}

func writeMaterial(name string, o *wavefront.Object) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := wavefront.WriteMTL(f, o); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printPaths(ctx context.Context, cmd *cli.Command) error {
	w := cmd.Root().Writer
	fmt.Fprintf(w, "base dir  %s\n", filesystem.BaseDir())
	fmt.Fprintf(w, "game dir  %s\n", filesystem.GameDir())
	for i, sp := range filesystem.SearchPaths() {
		fmt.Fprintf(w, "  %2d %s\n", i, sp)
	}
	return nil
}

func listPack(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("pak: need exactly one archive")
	}
	p, err := pack.NewPackReader(cmd.Args().First())
	if err != nil {
		return err
	}
	defer p.Close()
	w := cmd.Root().Writer
	var total int64
	for _, n := range p.List() {
		r, err := p.Open(n)
		if err != nil {
			return err
		}
		h := crc.New()
		size, err := io.Copy(h, r)
		if err != nil {
			return errors.Wrapf(err, "%s: %s", p, n)
		}
		total += size
		fmt.Fprintf(w, "%10s  %04x  %s\n", humanize.Bytes(uint64(size)), h.Sum16(), n)
	}
	fmt.Fprintf(w, "%s files, %s\n", humanize.Comma(int64(len(p.List()))), humanize.Bytes(uint64(total)))
	return nil
}
