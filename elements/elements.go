// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elements provides concrete layout components for the tree:
// a generic [Sizer], [Text], [Image], and a [Group] container.
// All of them implement [layout.Element] and describe themselves for
// introspection dumps.
package elements

import (
	"fmt"
	"image/color"

	"github.com/laytree/laytree/tree"
)

func init() {
	tree.AddComponentType("sizer", func() tree.Component { return NewSizer() })
	tree.AddComponentType("text", func() tree.Component { return NewText("") })
	tree.AddComponentType("image", func() tree.Component { return NewImage(0, 0) })
	tree.AddComponentType("group", func() tree.Component { return NewGroup() })
}

// Align specifies how a [Group] aligns its children on the cross axis.
type Align int32

const (
	// Start aligns children to the start (top, left) of the group.
	Start Align = iota

	// Center aligns children around the center of the group.
	Center

	// End aligns children to the end (bottom, right) of the group.
	End

	// Stretch stretches children to fill the group on the cross axis.
	Stretch
)

func (a Align) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	case Stretch:
		return "Stretch"
	}
	return fmt.Sprintf("Align(%d)", int32(a))
}

// colorString returns a #RRGGBBAA hex form of the given color.
func colorString(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
