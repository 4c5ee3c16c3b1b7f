// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"strconv"

	"github.com/laytree/laytree/base/keylist"
	"github.com/laytree/laytree/layout"
	"github.com/laytree/laytree/math32"
	"github.com/laytree/laytree/tree"
)

// Group is a layout-group container component. Its layout inputs are
// derived from the aggregated sizes of its owner node's children: along
// the stacking direction children are summed with gaps, and across it
// the maximum child size is used.
type Group struct {
	tree.ComponentBase

	// Direction is the stacking axis of the group.
	Direction layout.Axis

	// Gap is the space between adjacent children along the
	// stacking direction.
	Gap float32 `yaml:"gap,omitempty" json:"gap,omitempty"`

	// Padding is the total extra space added to each axis.
	Padding math32.Vector2 `yaml:"padding,omitempty" json:"padding,omitempty"`

	// AlignChildren is how children are aligned on the cross axis.
	AlignChildren Align `yaml:"alignChildren,omitempty" json:"alignChildren,omitempty"`

	// Pri is the layout priority.
	Pri int `yaml:"pri,omitempty" json:"pri,omitempty"`

	// cached layout inputs, updated by the Compute methods
	minW, prefW, flexW float32
	minH, prefH, flexH float32
}

// NewGroup returns a new [Group] stacking vertically.
func NewGroup() *Group {
	return &Group{Direction: layout.Vertical}
}

// SetDirection sets the stacking axis and returns the group for chaining.
func (g *Group) SetDirection(axis layout.Axis) *Group {
	g.Direction = axis
	return g
}

// SetGap sets the gap between children and returns the group for chaining.
func (g *Group) SetGap(gap float32) *Group {
	g.Gap = gap
	return g
}

// SetPadding sets the per-axis padding and returns the group for chaining.
func (g *Group) SetPadding(w, h float32) *Group {
	g.Padding.Set(w, h)
	return g
}

// SetAlignChildren sets the cross-axis child alignment and returns the
// group for chaining.
func (g *Group) SetAlignChildren(align Align) *Group {
	g.AlignChildren = align
	return g
}

// SetPriority sets the layout priority and returns the group for chaining.
func (g *Group) SetPriority(pri int) *Group {
	g.Pri = pri
	return g
}

// compute aggregates the owner's children along the given axis,
// updating the cached layout inputs for that axis.
func (g *Group) compute(axis layout.Axis) {
	var min, pref, flex float32
	count := 0
	if g.Owner != nil && g.Owner.AsTree().This != nil {
		for _, kid := range g.Owner.AsTree().Children {
			if kid == nil || kid.AsTree().This == nil || !kid.AsTree().Active {
				continue
			}
			ks := layout.NodeSize(kid, axis)
			if axis == g.Direction {
				min += ks.Min
				pref += ks.Preferred
				flex += ks.Flexible
			} else {
				min = math32.Max(min, ks.Min)
				pref = math32.Max(pref, ks.Preferred)
				flex = math32.Max(flex, ks.Flexible)
			}
			count++
		}
	}
	if axis == g.Direction && count > 1 {
		gaps := g.Gap * float32(count-1)
		min += gaps
		pref += gaps
	}
	pad := g.Padding.X
	if axis == layout.Vertical {
		pad = g.Padding.Y
	}
	min += pad
	pref += pad
	if axis == layout.Horizontal {
		g.minW, g.prefW, g.flexW = min, pref, flex
	} else {
		g.minH, g.prefH, g.flexH = min, pref, flex
	}
}

// ComputeHorizontal implements [layout.Element] by aggregating the
// owner's children horizontally.
func (g *Group) ComputeHorizontal() {
	g.compute(layout.Horizontal)
}

// ComputeVertical implements [layout.Element] by aggregating the
// owner's children vertically.
func (g *Group) ComputeVertical() {
	g.compute(layout.Vertical)
}

func (g *Group) MinWidth() float32        { return g.minW }
func (g *Group) MinHeight() float32       { return g.minH }
func (g *Group) PreferredWidth() float32  { return g.prefW }
func (g *Group) PreferredHeight() float32 { return g.prefH }
func (g *Group) FlexibleWidth() float32   { return g.flexW }
func (g *Group) FlexibleHeight() float32  { return g.flexH }
func (g *Group) Priority() int            { return g.Pri }

// Describe returns curated summary fields for introspection dumps.
func (g *Group) Describe() *keylist.List[string, string] {
	d := keylist.New[string, string]()
	d.Set("Direction", g.Direction.String())
	d.Set("AlignChildren", g.AlignChildren.String())
	d.Set("Gap", strconv.FormatFloat(float64(g.Gap), 'g', -1, 32))
	d.Set("Padding", g.Padding.String())
	return d
}
