// SPDX-License-Identifier: GPL-2.0-or-later

// Package cache keeps decoded models in memory, bounded by the size of the
// files they were decoded from.
package cache

import (
	"cake/conlog"
	"cake/crc"
	"cake/filesystem"
	"cake/model"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Entry is a loaded model. ID is unique for every load, a model dropped from
// the cache and loaded again gets a new ID.
type Entry struct {
	ID    uuid.UUID
	Name  string
	CRC   uint16
	Size  int
	Model model.Model
}

type ReadFunc func(name string) ([]byte, error)

type Cache struct {
	c    *ristretto.Cache[string, *Entry]
	read ReadFunc
}

// New creates a cache holding up to maxCost bytes of model files. A nil read
// uses the global filesystem.
func New(maxCost int64, read ReadFunc) (*Cache, error) {
	if read == nil {
		read = filesystem.ReadFile
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, *Entry]{
		NumCounters:        1000,
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create model cache")
	}
	return &Cache{c: c, read: read}, nil
}

// Get returns the cached model or loads it.
func (c *Cache) Get(name string) (*Entry, error) {
	if e, ok := c.c.Get(name); ok {
		return e, nil
	}
	data, err := c.read(name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", name)
	}
	m, err := model.Decode(name, data)
	if err != nil {
		return nil, err
	}
	e := &Entry{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  name,
		CRC:   crc.Checksum(data),
		Size:  len(data),
		Model: m,
	}
	if !c.c.Set(name, e, int64(len(data))) {
		conlog.Debugf("model %s was not cached", name)
	}
	c.c.Wait()
	conlog.WithFields(logrus.Fields{
		"model": name,
		"id":    e.ID,
		"crc":   e.CRC,
		"bytes": e.Size,
	}).Debug("loaded model")
	return e, nil
}

// Forget drops name from the cache.
func (c *Cache) Forget(name string) {
	c.c.Del(name)
	c.c.Wait()
}

func (c *Cache) Close() {
	c.c.Close()
}
