// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"errors"
	"testing"

	"cake/math/vec"
)

type fake struct {
	name string
}

func (f *fake) Name() string    { return f.name }
func (f *fake) Mins() vec.Vec3  { return vec.Vec3{} }
func (f *fake) Maxs() vec.Vec3  { return vec.Vec3{X: 1, Y: 1, Z: 1} }
func (f *fake) FrameCount() int { return 1 }

const fakeMagic = 'E'<<24 | 'K'<<16 | 'A'<<8 | 'F'

var errBroken = errors.New("broken")

func init() {
	Register(fakeMagic, func(name string, data []byte) (Model, error) {
		if len(data) > 4 {
			return nil, errBroken
		}
		return &fake{name}, nil
	})
}

func TestDecode(t *testing.T) {
	m, err := Decode("a.fak", []byte("FAKE"))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if m.Name() != "a.fak" {
		t.Errorf("Name() = %q, want %q", m.Name(), "a.fak")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte("FA")},
		{"unknown", []byte("NOPE")},
		{"broken", []byte("FAKE!")},
	}
	for _, tc := range tests {
		if _, err := Decode(tc.name, tc.data); err == nil {
			t.Errorf("Decode(%s) should fail", tc.name)
		}
	}
}

func TestDecodeKeepsCause(t *testing.T) {
	_, err := Decode("broken", []byte("FAKE!"))
	if !errors.Is(err, errBroken) {
		t.Errorf("Decode() = %v, want wrapped %v", err, errBroken)
	}
}
