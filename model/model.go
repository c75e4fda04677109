// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"cake/math/vec"
)

// Model is implemented by every registered file format.
type Model interface {
	Name() string
	Mins() vec.Vec3
	Maxs() vec.Vec3
	FrameCount() int
}
