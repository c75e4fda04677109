// SPDX-License-Identifier: GPL-2.0-or-later

package filesystem

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"

	"cake/conlog"
	"cake/pack"

	"github.com/pkg/errors"
)

const (
	DefaultGame = "baseq2"
	maxPacks    = 10
)

var (
	baseDir string
	gameDir string
	// searched from first to last
	searchPaths []searchPath
	mutex       sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
	io.ReaderAt
}

type searchPath interface {
	Open(name string) (File, error)
	Stat(name string) (int64, error)
	String() string
	Close() error
}

type dirFileSystem string

func (d dirFileSystem) path(name string) string {
	return filepath.Join(string(d), filepath.FromSlash(path.Clean("/"+name)))
}

func (d dirFileSystem) Open(name string) (File, error) {
	if _, err := d.Stat(name); err != nil {
		return nil, err
	}
	f, err := os.Open(d.path(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d dirFileSystem) Stat(name string) (int64, error) {
	fi, err := os.Stat(d.path(name))
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		return 0, os.ErrNotExist
	}
	return fi.Size(), nil
}

func (d dirFileSystem) String() string {
	return string(d)
}

func (d dirFileSystem) Close() error {
	return nil
}

type packFileSystem struct {
	p *pack.Pack
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

func (p packFileSystem) Open(name string) (File, error) {
	// inside a pack file there is no 'root'. all files are relative to '.'
	f, err := p.p.Open(name)
	if err != nil {
		return nil, err
	}
	return &closer{f}, nil
}

func (p packFileSystem) Stat(name string) (int64, error) {
	n, ok := p.p.Size(name)
	if !ok {
		return 0, os.ErrNotExist
	}
	return n, nil
}

func (p packFileSystem) String() string {
	return p.p.String()
}

func (p packFileSystem) Close() error {
	return p.p.Close()
}

func GameDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return gameDir
}

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir resets the search path to dir/baseq2.
func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	closeAll()
	baseDir = dir
	gameDir = filepath.Join(baseDir, DefaultGame)
	searchPaths = useDir(nil, gameDir)
}

// UseGameDir puts dir on top of the base game. An empty name or the base
// game itself only keeps the base game.
func UseGameDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	closeAll()
	root := filepath.Join(baseDir, DefaultGame)
	searchPaths = useDir(nil, root)
	gameDir = root
	if dir == "" || dir == DefaultGame {
		return
	}
	gameDir = filepath.Join(baseDir, dir)
	searchPaths = useDir(searchPaths, gameDir)
}

// useDir returns the search paths of dir in front of paths: pak files from
// high number to low number and then the directory itself.
func useDir(paths []searchPath, dir string) []searchPath {
	var front []searchPath
	for i := 0; i < maxPacks; i++ {
		pfp := filepath.Join(dir, fmt.Sprintf("pak%d.pak", i))
		p, err := pack.NewPackReader(pfp)
		if err != nil {
			if !os.IsNotExist(err) {
				conlog.Warnf("skipping %s: %v", pfp, err)
			}
			continue
		}
		conlog.Debugf("added pack %s (%d files)", pfp, len(p.List()))
		front = append([]searchPath{packFileSystem{p}}, front...)
	}
	front = append(front, dirFileSystem(dir))
	return append(front, paths...)
}

func closeAll() {
	for _, sp := range searchPaths {
		sp.Close()
	}
	searchPaths = nil
}

// Close releases all open pack files.
func Close() {
	mutex.Lock()
	defer mutex.Unlock()
	closeAll()
}

// SearchPaths lists the search order for diagnostics.
func SearchPaths() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	r := make([]string, len(searchPaths))
	for i, sp := range searchPaths {
		r[i] = sp.String()
	}
	return r
}

func Stat(name string) (int64, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	for _, sp := range searchPaths {
		if n, err := sp.Stat(name); err == nil {
			return n, nil
		}
	}
	return 0, os.ErrNotExist
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	for _, sp := range searchPaths {
		f, err := sp.Open(name)
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "%s in %s", name, sp)
		}
	}
	return nil, os.ErrNotExist
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
