// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	"encoding/binary"

	"github.com/chewxy/math32"
)

// CommandWord is one 32 bit word of the command buffer. Its meaning depends
// only on its position in the stream.
type CommandWord uint32

// Int returns the word as signed count or vertex index.
func (w CommandWord) Int() int32 {
	return int32(w)
}

// Float reinterprets the bits as IEEE-754 single precision texture coordinate.
func (w CommandWord) Float() float32 {
	return math32.Float32frombits(uint32(w))
}

type PrimitiveKind int

const (
	Strip PrimitiveKind = iota
	Fan
)

func (k PrimitiveKind) String() string {
	switch k {
	case Strip:
		return "strip"
	case Fan:
		return "fan"
	}
	return "unknown"
}

type Corner struct {
	Vertex int
	S, T   float32
}

type DrawGroup struct {
	Kind    PrimitiveKind
	Corners []Corner
}

func readCommands(data []byte, h *Header) ([]CommandWord, error) {
	start := h.CommandOffset
	end := start + 4*h.CommandCount
	if end > len(data) {
		return nil, formatErrorf("commands", 0, "%d words at %d exceed file size %d", h.CommandCount, start, len(data))
	}
	words := make([]CommandWord, h.CommandCount)
	for i := range words {
		words[i] = CommandWord(binary.LittleEndian.Uint32(data[start+4*i:]))
	}
	return words, nil
}

// cursor is a word position inside the command buffer.
type cursor int

func (c cursor) remaining(words []CommandWord) int {
	return len(words) - int(c)
}

// offset is the byte offset of c inside the command buffer.
func (c cursor) offset() int {
	return 4 * int(c)
}

// Interpret decodes the command buffer into draw groups. Each group starts
// with a count word n: zero terminates, n > 0 is a strip and n < 0 a fan of
// |n| corners. Every corner is three words: s, t and the vertex index.
func Interpret(words []CommandWord) ([]DrawGroup, error) {
	var groups []DrawGroup
	c := cursor(0)
	for {
		if c.remaining(words) < 1 {
			return nil, formatErrorf("commands", c.offset(), "missing terminating zero")
		}
		n := int(words[c].Int())
		c++
		if n == 0 {
			return groups, nil
		}
		g, next, err := readGroup(words, c, n)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
		c = next
	}
}

func readGroup(words []CommandWord, c cursor, n int) (DrawGroup, cursor, error) {
	g := DrawGroup{Kind: Strip}
	count := n
	if n < 0 {
		g.Kind = Fan
		count = -n
	}
	if c.remaining(words)/3 < count {
		return DrawGroup{}, c, formatErrorf("commands", c.offset(), "%s of %d corners but only %d words left", g.Kind, count, c.remaining(words))
	}
	g.Corners = make([]Corner, count)
	for i := range g.Corners {
		g.Corners[i] = Corner{
			S:      words[c].Float(),
			T:      words[c+1].Float(),
			Vertex: int(words[c+2].Int()),
		}
		c += 3
	}
	return g, c, nil
}
