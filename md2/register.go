// SPDX-License-Identifier: GPL-2.0-or-later

package md2

import (
	qm "cake/model"
)

func init() {
	qm.Register(Magic, load)
}

func load(name string, data []byte) (qm.Model, error) {
	m, err := Load(data)
	if err != nil {
		return nil, err
	}
	m.name = name
	return m, nil
}
