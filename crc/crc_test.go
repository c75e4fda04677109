// SPDX-License-Identifier: GPL-2.0-or-later

package crc

import (
	"testing"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"", 0xffff},
		{"123456789", 0x29b1},
		{"A", 0xb915},
	}
	for _, tc := range tests {
		if got := Checksum([]byte(tc.in)); got != tc.want {
			t.Errorf("Checksum(%q) = %#04x, want %#04x", tc.in, got, tc.want)
		}
	}
}

func TestStreaming(t *testing.T) {
	h := New()
	h.Write([]byte("1234"))
	h.Write([]byte("56789"))
	if got := h.Sum16(); got != 0x29b1 {
		t.Errorf("Sum16() = %#04x, want 0x29b1", got)
	}
	if got := h.Sum(nil); len(got) != Size || got[0] != 0x29 || got[1] != 0xb1 {
		t.Errorf("Sum(nil) = %x", got)
	}
	h.Reset()
	if got := h.Sum16(); got != 0xffff {
		t.Errorf("Sum16() after Reset = %#04x", got)
	}
}
