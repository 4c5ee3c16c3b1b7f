// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"github.com/laytree/laytree/base/keylist"
	"github.com/laytree/laytree/math32"
	"github.com/laytree/laytree/tree"
)

// Sizer is a generic layout element with directly settable per-axis
// minimum, preferred, and flexible sizes. A negative component is the
// "no opinion" sentinel and is ignored during aggregation; [NewSizer]
// starts with no opinion on everything.
type Sizer struct {
	tree.ComponentBase

	// Min is the minimum size. Negative components mean no opinion.
	Min math32.Vector2

	// Pref is the preferred size. Negative components mean no opinion.
	Pref math32.Vector2

	// Flex is the flexible size weight, a unitless weight indicating how
	// much of remaining space to claim relative to siblings.
	// Negative components mean no opinion.
	Flex math32.Vector2

	// Pri is the layout priority: higher always overrides lower
	// when aggregating sizes from multiple components.
	Pri int `yaml:"pri,omitempty" json:"pri,omitempty"`

	// Ignore excludes this component from size aggregation despite
	// it being present and active.
	Ignore bool `yaml:"ignore,omitempty" json:"ignore,omitempty"`
}

// NewSizer returns a new [Sizer] with no opinion on any size.
func NewSizer() *Sizer {
	return &Sizer{
		Min:  math32.Vector2Scalar(-1),
		Pref: math32.Vector2Scalar(-1),
		Flex: math32.Vector2Scalar(-1),
	}
}

// SetMin sets the minimum size and returns the sizer for chaining.
func (sz *Sizer) SetMin(w, h float32) *Sizer {
	sz.Min.Set(w, h)
	return sz
}

// SetPreferred sets the preferred size and returns the sizer for chaining.
func (sz *Sizer) SetPreferred(w, h float32) *Sizer {
	sz.Pref.Set(w, h)
	return sz
}

// SetFlexible sets the flexible size weight and returns the sizer for chaining.
func (sz *Sizer) SetFlexible(w, h float32) *Sizer {
	sz.Flex.Set(w, h)
	return sz
}

// SetFixed sets both the minimum and preferred size to the given size
// and returns the sizer for chaining.
func (sz *Sizer) SetFixed(w, h float32) *Sizer {
	sz.Min.Set(w, h)
	sz.Pref.Set(w, h)
	return sz
}

// SetPriority sets the layout priority and returns the sizer for chaining.
func (sz *Sizer) SetPriority(pri int) *Sizer {
	sz.Pri = pri
	return sz
}

// SetIgnore sets whether to ignore layout and returns the sizer for chaining.
func (sz *Sizer) SetIgnore(ignore bool) *Sizer {
	sz.Ignore = ignore
	return sz
}

// ComputeHorizontal implements [layout.Element]; the sizes are static.
func (sz *Sizer) ComputeHorizontal() {}

// ComputeVertical implements [layout.Element]; the sizes are static.
func (sz *Sizer) ComputeVertical() {}

func (sz *Sizer) MinWidth() float32        { return sz.Min.X }
func (sz *Sizer) MinHeight() float32       { return sz.Min.Y }
func (sz *Sizer) PreferredWidth() float32  { return sz.Pref.X }
func (sz *Sizer) PreferredHeight() float32 { return sz.Pref.Y }
func (sz *Sizer) FlexibleWidth() float32   { return sz.Flex.X }
func (sz *Sizer) FlexibleHeight() float32  { return sz.Flex.Y }
func (sz *Sizer) Priority() int            { return sz.Pri }

// IgnoreLayout implements the opt-out capability.
func (sz *Sizer) IgnoreLayout() bool { return sz.Ignore }

// Describe returns curated summary fields for introspection dumps.
func (sz *Sizer) Describe() *keylist.List[string, string] {
	d := keylist.New[string, string]()
	d.Set("Min", sz.Min.String())
	d.Set("Preferred", sz.Pref.String())
	d.Set("Flexible", sz.Flex.String())
	return d
}
