// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laytree/laytree/math32"
	. "github.com/laytree/laytree/tree"
)

func TestTransformDefaults(t *testing.T) {
	n := NewNodeBase()
	assert.Equal(t, math32.Vec3(1, 1, 1), n.Transform.Scale)

	tf := Transform{Scale: math32.Vec3(2, 2, 2)}
	tf.Defaults()
	assert.Equal(t, math32.Vec3(2, 2, 2), tf.Scale)
}

func TestWorldScale(t *testing.T) {
	root := NewNodeBase()
	root.Transform.Scale.Set(2, 3, 1)
	child := NewNodeBase(root)
	child.Transform.Scale.Set(4, 5, 1)

	assert.Equal(t, math32.Vec3(8, 15, 1), child.WorldScale())
	assert.Equal(t, math32.Vec3(2, 3, 1), root.WorldScale())
}

func TestWorldPosition(t *testing.T) {
	root := NewNodeBase()
	root.Transform.Pos.Set(10, 20, 0)
	child := NewNodeBase(root)
	child.Transform.Pos.Set(1, 2, 0)

	assert.Equal(t, math32.Vec3(11, 22, 0), child.WorldPosition())

	// parent scale applies to child local position
	root.Transform.Scale.Set(2, 2, 1)
	assert.Equal(t, math32.Vec3(12, 24, 0), child.WorldPosition())
}

func TestWorldRotation(t *testing.T) {
	root := NewNodeBase()
	root.Transform.Rot.Set(0, 0, 45)
	child := NewNodeBase(root)
	child.Transform.Rot.Set(0, 0, 15)

	assert.Equal(t, math32.Vec3(0, 0, 60), child.WorldRotation())
}
