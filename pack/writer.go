// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Write stores files as a pack to w. Entries are written in name order.
func Write(w io.Writer, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for n := range files {
		if len(n) >= len(entry{}.Name) {
			return errors.Errorf("pack entry name %q is too long", n)
		}
		names = append(names, n)
	}
	sort.Strings(names)

	var body bytes.Buffer
	entries := make([]entry, 0, len(names))
	offset := int32(headerSize)
	for _, n := range names {
		e := entry{Offset: offset, Size: int32(len(files[n]))}
		copy(e.Name[:], n)
		entries = append(entries, e)
		body.Write(files[n])
		offset += e.Size
	}
	h := header{
		ID:     [4]byte{'P', 'A', 'C', 'K'},
		Offset: offset,
		Size:   int32(len(entries)) * entrySize,
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, entries)
}
