// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the minimum, preferred, and flexible size of a
// container node along one axis by aggregating the self-reported sizes of
// its layout-contributing components, honoring a priority override rule.
package layout

import (
	"fmt"

	"github.com/laytree/laytree/math32"
	"github.com/laytree/laytree/tree"
)

// Axis is one of the two independent directions along which size is
// computed separately.
type Axis int32

const (
	// Horizontal is the X axis.
	Horizontal Axis = iota

	// Vertical is the Y axis.
	Vertical
)

// AxisN is the number of axes.
const AxisN = 2

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	return fmt.Sprintf("Axis(%d)", int32(a))
}

// Other returns the opposite axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// AxisFromString returns the axis with the given case-insensitive name
// ("horizontal"/"h"/"x" or "vertical"/"v"/"y").
func AxisFromString(s string) (Axis, error) {
	switch s {
	case "horizontal", "Horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "Vertical", "v", "y":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("layout.AxisFromString: unknown axis %q", s)
}

// Element is the capability interface for components that can report
// per-axis layout sizes. The Compute methods recompute the component's
// internal cached size state for one axis, and must be called before the
// corresponding read accessors within the same layout pass.
//
// A negative value from any accessor is a "no opinion" sentinel: it is
// never considered during aggregation.
type Element interface {

	// ComputeHorizontal recomputes the horizontal layout inputs of this
	// component, updating its internal cached size state.
	ComputeHorizontal()

	// ComputeVertical recomputes the vertical layout inputs of this
	// component, updating its internal cached size state.
	ComputeVertical()

	// MinWidth returns the minimum width needed by this component.
	MinWidth() float32

	// PreferredWidth returns the preferred width of this component.
	PreferredWidth() float32

	// FlexibleWidth returns the flexible width weight of this component.
	// Flexible size is a unitless weight relative to siblings, not a length.
	FlexibleWidth() float32

	// MinHeight returns the minimum height needed by this component.
	MinHeight() float32

	// PreferredHeight returns the preferred height of this component.
	PreferredHeight() float32

	// FlexibleHeight returns the flexible height weight of this component.
	FlexibleHeight() float32

	// Priority returns the layout priority of this component. When
	// aggregating, a higher priority always overrides a lower one.
	Priority() int
}

// IgnoreLayouter is the capability interface for components that can opt
// out of layout despite being present and active.
type IgnoreLayouter interface {

	// IgnoreLayout returns whether this component is excluded
	// from size aggregation.
	IgnoreLayout() bool
}

// Activer is the capability interface used to filter candidates;
// it is satisfied by [tree.ComponentBase].
type Activer interface {

	// ActiveAndEnabled returns whether this component is enabled and
	// attached to an active node.
	ActiveAndEnabled() bool
}

// Sizes is the aggregated layout size of one node along one axis.
// It is immutable once produced.
type Sizes struct {

	// Node is the node these sizes were computed for.
	Node tree.Node

	// Min is the minimum size needed, in scaled units.
	Min float32

	// Preferred is the preferred size, in scaled units.
	// It is always at least [Sizes.Min].
	Preferred float32

	// Flexible is the unitless flexible size weight. It is never scaled.
	Flexible float32
}

func (s Sizes) String() string {
	name := "nil"
	if s.Node != nil && s.Node.AsTree().This != nil {
		name = s.Node.AsTree().Name
	}
	return fmt.Sprintf("%s: min=%v preferred=%v flexible=%v", name, s.Min, s.Preferred, s.Flexible)
}

// accumulator tracks the best (value, priority) candidate seen so far for
// one of the three size kinds. The explicit set flag replaces the usual
// "priority starts at minus infinity" sentinel.
type accumulator struct {
	value    float32
	priority int
	set      bool
}

// add considers a new candidate value with the given priority.
// The rules, in order:
//
//  1. negative candidate values are a "no opinion" sentinel and are
//     always dropped, regardless of priority;
//  2. a strictly higher priority replaces both value and priority
//     unconditionally, even if the new value is smaller;
//  3. at equal priority, a strictly greater value replaces the value;
//  4. otherwise the candidate is dropped, so an exact tie on both
//     priority and value keeps the first-seen value.
func (a *accumulator) add(value float32, priority int) {
	if value < 0 {
		return
	}
	if !a.set || priority > a.priority {
		a.value = value
		a.priority = priority
		a.set = true
	} else if priority == a.priority && value > a.value {
		a.value = value
	}
}

// ContainerSize computes the aggregated size of the given container node
// along the given axis from the given ordered candidate components.
// Candidates that are inactive, disabled, or that ignore layout are
// skipped. Each remaining candidate is recomputed for the axis before its
// sizes are read. Min and preferred results are scaled by the absolute
// value of the container's local scale on the axis; preferred is clamped
// to at least min before scaling; flexible is a unitless weight and is
// never scaled. A nil or destroyed node, or no eligible candidates,
// yields all-zero sizes.
func ContainerSize(n tree.Node, axis Axis, elems []Element) Sizes {
	if n == nil || n.AsTree().This == nil {
		return Sizes{}
	}
	var min, pref, flex accumulator
	for _, el := range elems {
		if el == nil {
			continue
		}
		if ac, ok := el.(Activer); ok && !ac.ActiveAndEnabled() {
			continue
		}
		if ig, ok := el.(IgnoreLayouter); ok && ig.IgnoreLayout() {
			continue
		}
		// recompute must precede all reads for the same candidate,
		// including the priority, which may be established during recompute
		if axis == Horizontal {
			el.ComputeHorizontal()
			pri := el.Priority()
			min.add(el.MinWidth(), pri)
			pref.add(el.PreferredWidth(), pri)
			flex.add(el.FlexibleWidth(), pri)
		} else {
			el.ComputeVertical()
			pri := el.Priority()
			min.add(el.MinHeight(), pri)
			pref.add(el.PreferredHeight(), pri)
			flex.add(el.FlexibleHeight(), pri)
		}
	}
	scale := n.AsTree().Transform.Scale.X
	if axis == Vertical {
		scale = n.AsTree().Transform.Scale.Y
	}
	scale = math32.Abs(scale)
	return Sizes{
		Node:      n,
		Min:       min.value * scale,
		Preferred: math32.Max(min.value, pref.value) * scale,
		Flexible:  flex.value,
	}
}

// Elements returns the layout-capable components attached to the given
// node, in component order. It does not recurse into children.
func Elements(n tree.Node) []Element {
	if n == nil || n.AsTree().This == nil {
		return nil
	}
	var els []Element
	for _, c := range n.AsTree().Components {
		if c == nil || c.AsComponent().IsDestroyed() {
			continue
		}
		if el, ok := c.(Element); ok {
			els = append(els, el)
		}
	}
	return els
}

// NodeSize computes the aggregated size of the given node along the given
// axis from its own attached layout-capable components.
// See [ContainerSize].
func NodeSize(n tree.Node, axis Axis) Sizes {
	return ContainerSize(n, axis, Elements(n))
}
