// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"encoding/binary"
	"sync"

	"cake/filesystem"

	"github.com/pkg/errors"
)

var (
	loaders = make(map[uint32]LoadFunc)
	mutex   sync.RWMutex
)

// LoadFunc decodes the complete file contents of name.
type LoadFunc func(name string, data []byte) (Model, error)

// Register makes a loader available for files starting with magic.
func Register(magic uint32, f LoadFunc) {
	mutex.Lock()
	defer mutex.Unlock()
	loaders[magic] = f
}

// Load reads name from the filesystem and decodes it.
func Load(name string) (Model, error) {
	data, err := filesystem.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", name)
	}
	return Decode(name, data)
}

// Decode picks the loader by the little endian magic at the start of data.
func Decode(name string, data []byte) (Model, error) {
	if len(data) < 4 {
		return nil, errors.Errorf("file %s is too short to be a model", name)
	}
	magic := binary.LittleEndian.Uint32(data)

	mutex.RLock()
	f, ok := loaders[magic]
	mutex.RUnlock()
	if !ok {
		return nil, errors.Errorf("file %s has an unknown file format", name)
	}
	m, err := f(name, data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", name)
	}
	return m, nil
}
