// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

var (
	headerSize = int64(binary.Size(header{}))
	entrySize  = int32(binary.Size(entry{}))
)

// Pack is a PACK archive. Names are stored lower case with '/' separators.
type Pack struct {
	r     io.ReaderAt
	c     io.Closer
	files map[string]*qfile
	name  string
}

type qfile struct {
	offset int64
	size   int64
}

// Open returns a io.SectionReader for the entry name.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[normalize(name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NewSectionReader(p.r, q.offset, q.size), nil
}

// Size returns the size of the entry name.
func (p *Pack) Size(name string) (int64, bool) {
	q, ok := p.files[normalize(name)]
	if !ok {
		return 0, false
	}
	return q.size, true
}

// List returns all entry names sorted.
func (p *Pack) List() []string {
	names := make([]string, 0, len(p.files))
	for n := range p.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	if p.c == nil {
		return nil
	}
	return p.c.Close()
}

func normalize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.ToLower(strings.TrimPrefix(name, "/"))
}

func (p *Pack) init(size int64) error {
	var h header
	if err := binary.Read(io.NewSectionReader(p.r, 0, headerSize), binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "could not read pack header")
	}
	if !bytes.Equal([]byte("PACK"), h.ID[:]) {
		return errors.Errorf("%s is not a pack", p.name)
	}
	if h.Offset < 0 || h.Size < 0 || int64(h.Offset)+int64(h.Size) > size {
		return errors.Errorf("%s: directory at %d (%d bytes) is outside of the file", p.name, h.Offset, h.Size)
	}
	filenum := h.Size / entrySize
	entries := make([]entry, filenum)
	dir := io.NewSectionReader(p.r, int64(h.Offset), int64(h.Size))
	if err := binary.Read(dir, binary.LittleEndian, entries); err != nil {
		return errors.Wrapf(err, "%s: could not read directory", p.name)
	}
	p.files = make(map[string]*qfile, filenum)
	for _, e := range entries {
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		name := normalize(string(e.Name[:n]))
		if p.files[name] != nil {
			return errors.Errorf("%s: files in pack are not unique (%s)", p.name, name)
		}
		if e.Offset < 0 || e.Size < 0 || int64(e.Offset)+int64(e.Size) > size {
			return errors.Errorf("%s: entry %s is outside of the file", p.name, name)
		}
		p.files[name] = &qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

// NewReader reads the directory of a pack of the given size from r.
func NewReader(r io.ReaderAt, size int64, name string) (*Pack, error) {
	p := &Pack{r: r, name: name}
	if err := p.init(size); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPackReader opens the pack file name.
func NewPackReader(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	p, err := NewReader(f, fi.Size(), name)
	if err != nil {
		f.Close()
		return nil, err
	}
	p.c = f
	return p, nil
}
