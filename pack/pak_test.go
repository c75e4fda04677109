// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

var docs = map[string][]byte{
	"doc1.txt":           []byte("this is the first doc 2. version\r\n"),
	"models/tris.md2":    []byte("IDP2"),
	"testdir/doc4.txt":   []byte("this is the fourth doc 2. version"),
	"players/male/a.pcx": {},
}

func writePak(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "pak0.pak")
	var b bytes.Buffer
	if err := Write(&b, docs); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := os.WriteFile(name, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestPak(t *testing.T) {
	pakFile := writePak(t)
	p, err := NewPackReader(pakFile)
	if err != nil {
		t.Fatalf("could not open %s: %v", pakFile, err)
	}
	defer p.Close()
	if p.String() != pakFile {
		t.Errorf("pack String error: want %v got %v", pakFile, p.String())
	}
	for name, want := range docs {
		f, err := p.Open(name)
		if err != nil {
			t.Errorf("Open(%s) failed: %v", name, err)
			continue
		}
		got, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("Could not read %s: %v", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s contents is %q, want %q", name, got, want)
		}
	}
	if _, err := p.Open("doc2.txt"); !os.IsNotExist(err) {
		t.Errorf("Open(doc2.txt) = %v, want not exist", err)
	}
}

func TestPakNamesAreNormalized(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, docs); err != nil {
		t.Fatal(err)
	}
	p, err := NewReader(bytes.NewReader(b.Bytes()), int64(b.Len()), "mem")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := p.Size("\\Models\\TRIS.md2"); !ok || n != 4 {
		t.Errorf("Size() = %d, %v, want 4, true", n, ok)
	}
	want := []string{"doc1.txt", "models/tris.md2", "players/male/a.pcx", "testdir/doc4.txt"}
	got := p.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNotAPak(t *testing.T) {
	data := []byte("KCAP\x0c\x00\x00\x00\x00\x00\x00\x00")
	if _, err := NewReader(bytes.NewReader(data), int64(len(data)), "bad"); err == nil {
		t.Error("NewReader() should fail on a wrong id")
	}
	data = []byte("PACK\xff\x00\x00\x00\x40\x00\x00\x00")
	if _, err := NewReader(bytes.NewReader(data), int64(len(data)), "bad"); err == nil {
		t.Error("NewReader() should fail on a directory outside of the file")
	}
}
