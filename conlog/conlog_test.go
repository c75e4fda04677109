// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLevel(t *testing.T) {
	old := get()
	defer SetLogger(old)
	SetLogger(newLogger())

	var buf bytes.Buffer
	SetOutput(&buf)
	Debugf("hidden %d", 1)
	Printf("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("unexpected output at info level: %q", buf.String())
	}

	buf.Reset()
	if err := SetLevel("debug"); err != nil {
		t.Fatal(err)
	}
	WithFields(logrus.Fields{"model": "tris.md2"}).Debug("loaded")
	if !strings.Contains(buf.String(), "model=tris.md2") {
		t.Errorf("missing field in %q", buf.String())
	}
	if err := SetLevel("loud"); err == nil {
		t.Error("SetLevel(loud) should fail")
	}
}
