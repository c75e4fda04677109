// SPDX-License-Identifier: GPL-2.0-or-later

// Package crc implements the 16 bit CRC-CCITT (polynomial 0x1021, initial value
// 0xffff) used to fingerprint loaded files.
package crc

import (
	"hash"
)

const (
	ccittFalse = 0x1021
	cRCInitial = 0xffff
	Size       = 2
)

type table [256]uint16

var ccittFalseTable = makeTable(ccittFalse)

func makeTable(poly uint16) *table {
	t := &table{}
	for i := range t {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

func update(crc uint16, p []byte) uint16 {
	for _, v := range p {
		crc = ccittFalseTable[byte(crc>>8)^v] ^ (crc << 8)
	}
	return crc
}

// Checksum returns the CRC of p.
func Checksum(p []byte) uint16 {
	return update(cRCInitial, p)
}

// Hash16 is a streaming CRC.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

type digest struct {
	crc uint16
}

func New() Hash16 {
	return &digest{cRCInitial}
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Reset()         { d.crc = cRCInitial }
func (d *digest) Sum16() uint16  { return d.crc }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = update(d.crc, p)
	return len(p), nil
}

// Sum appends the big endian checksum to in.
func (d *digest) Sum(in []byte) []byte {
	return append(in, byte(d.crc>>8), byte(d.crc))
}
