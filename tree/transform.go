// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/laytree/laytree/math32"

// Transform is the local transform of a node relative to its parent.
// It is not a component: it is intrinsic to every node, and is therefore
// excluded from component enumeration and introspection dumps.
type Transform struct {

	// Pos is the local position of the node relative to its parent.
	Pos math32.Vector3

	// Rot is the local rotation of the node relative to its parent,
	// as Euler angles in degrees.
	Rot math32.Vector3

	// Scale is the local scale of the node relative to its parent.
	// [Transform.Defaults] sets a zero scale to (1, 1, 1).
	Scale math32.Vector3
}

// Defaults sets default transform values: a zero scale becomes the
// identity scale (1, 1, 1).
func (t *Transform) Defaults() {
	if t.Scale.IsZero() {
		t.Scale = math32.Vector3Scalar(1)
	}
}

// World transforms are composed up the parent chain using translation,
// component-wise scale, and additive Euler rotation. This is a deliberate
// simplification: rotation does not participate in position composition,
// which is sufficient for axis-aligned layout geometry.

// WorldPosition returns the world position of this node, composed from the
// local positions and scales of all of its parents.
func (n *NodeBase) WorldPosition() math32.Vector3 {
	pos := n.Transform.Pos
	for p := n.Parent; p != nil; p = p.AsTree().Parent {
		pt := &p.AsTree().Transform
		pos = pt.Pos.Add(pos.Mul(pt.Scale))
	}
	return pos
}

// WorldRotation returns the world rotation of this node in Euler degrees,
// as the sum of the local rotations of this node and all of its parents.
func (n *NodeBase) WorldRotation() math32.Vector3 {
	rot := n.Transform.Rot
	for p := n.Parent; p != nil; p = p.AsTree().Parent {
		rot = rot.Add(p.AsTree().Transform.Rot)
	}
	return rot
}

// WorldScale returns the world scale of this node, as the component-wise
// product of the local scales of this node and all of its parents.
func (n *NodeBase) WorldScale() math32.Vector3 {
	scale := n.Transform.Scale
	for p := n.Parent; p != nil; p = p.AsTree().Parent {
		scale = scale.Mul(p.AsTree().Transform.Scale)
	}
	return scale
}
