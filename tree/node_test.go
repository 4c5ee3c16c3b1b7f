// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/laytree/laytree/tree"
)

func TestNodeAddChild(t *testing.T) {
	parent := NewNodeBase()
	child := &NodeBase{}
	parent.AddChild(child)
	child.SetName("child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/node-base/child1", child.Path())
}

func TestNodeAutoNaming(t *testing.T) {
	parent := NewNodeBase()
	c0 := NewNodeBase(parent)
	c1 := NewNodeBase(parent)
	assert.Equal(t, "node-base-0", c0.Name)
	assert.Equal(t, "node-base-1", c1.Name)
}

func TestNodePath(t *testing.T) {
	a := NewNodeBase()
	a.SetName("a")
	b := NewNodeBase(a).SetName("b")
	c := NewNodeBase(b).SetName("c")
	d := NewNodeBase(c).SetName("d")

	assert.Equal(t, "/a/b/c/d", d.Path())
	assert.Equal(t, "c/d", d.PathFrom(b))
	assert.Equal(t, "", b.PathFrom(b))
}

func TestNodeEscapePaths(t *testing.T) {
	parent := NewNodeBase()
	parent.SetName("par1")
	child := NewNodeBase(parent).SetName("child1/child1")
	assert.Equal(t, `/par1/child1\\child1`, child.Path())
	found := parent.FindPath(child.Path())
	assert.Equal(t, Node(child), found)
}

func TestNodeFindPath(t *testing.T) {
	parent := NewNodeBase()
	parent.SetName("root")
	a := NewNodeBase(parent).SetName("a")
	b := NewNodeBase(a).SetName("b")
	NewNodeBase(a).SetName("c")

	assert.Equal(t, Node(b), parent.FindPath("a/b"))
	assert.Equal(t, Node(b), parent.FindPath("a/[0]"))
	assert.Equal(t, Node(a.Child(1)), parent.FindPath("a/[-1]"))
	assert.Nil(t, parent.FindPath("a/missing"))
}

func TestNodeChildByName(t *testing.T) {
	parent := NewNodeBase()
	for _, name := range []string{"a", "b", "c", "d"} {
		NewNodeBase(parent).SetName(name)
	}
	require.Equal(t, 4, parent.NumChildren())
	assert.Equal(t, "c", parent.ChildByName("c").AsTree().Name)
	assert.Nil(t, parent.ChildByName("missing"))
	assert.Equal(t, 3, IndexByName(parent.Children, "d"))
	assert.Equal(t, -1, IndexByName(parent.Children, "missing"))
}

func TestNodeIndexInParent(t *testing.T) {
	parent := NewNodeBase()
	var kids []*NodeBase
	for i := 0; i < 5; i++ {
		kids = append(kids, NewNodeBase(parent))
	}
	for i, kid := range kids {
		assert.Equal(t, i, kid.IndexInParent())
	}
	assert.Equal(t, -1, parent.IndexInParent())
}

func TestNodeDeleteChild(t *testing.T) {
	parent := NewNodeBase()
	child := NewNodeBase(parent).SetName("child1")
	assert.True(t, parent.DeleteChild(child))
	assert.Equal(t, 0, parent.NumChildren())
	assert.True(t, child.IsDestroyed())
}

func TestNodeDeleteChildByName(t *testing.T) {
	parent := NewNodeBase()
	NewNodeBase(parent).SetName("child1")
	assert.False(t, parent.DeleteChildByName("missing"))
	assert.True(t, parent.DeleteChildByName("child1"))
	assert.Equal(t, 0, parent.NumChildren())
}

func TestNodeDestroy(t *testing.T) {
	parent := NewNodeBase()
	child := NewNodeBase(parent)
	grandchild := NewNodeBase(child)

	parent.Destroy()
	assert.True(t, parent.IsDestroyed())
	assert.True(t, child.IsDestroyed())
	assert.True(t, grandchild.IsDestroyed())
}

func TestNodeDelete(t *testing.T) {
	parent := NewNodeBase()
	child := NewNodeBase(parent)
	child.Delete()
	assert.Equal(t, 0, parent.NumChildren())
	assert.True(t, child.IsDestroyed())
	assert.False(t, parent.IsDestroyed())
}

func TestMoveToParent(t *testing.T) {
	p1 := NewNodeBase()
	p1.SetName("p1")
	p2 := NewNodeBase()
	p2.SetName("p2")
	child := NewNodeBase(p1).SetName("child")

	MoveToParent(child, p2)
	assert.Equal(t, 0, p1.NumChildren())
	assert.Equal(t, 1, p2.NumChildren())
	assert.Equal(t, "/p2/child", child.Path())
}

func TestActiveInHierarchy(t *testing.T) {
	root := NewNodeBase()
	mid := NewNodeBase(root)
	leaf := NewNodeBase(mid)

	assert.True(t, leaf.ActiveInHierarchy())
	mid.Active = false
	assert.False(t, leaf.ActiveInHierarchy())
	assert.False(t, mid.ActiveInHierarchy())
	assert.True(t, root.ActiveInHierarchy())
	mid.Active = true
	leaf.Active = false
	assert.False(t, leaf.ActiveInHierarchy())
	assert.True(t, mid.ActiveInHierarchy())
}

func TestIsRootAndRoot(t *testing.T) {
	root := NewNodeBase()
	child := NewNodeBase(root)
	grandchild := NewNodeBase(child)

	assert.True(t, IsRoot(root))
	assert.False(t, IsRoot(child))
	assert.Equal(t, Node(root), Root(grandchild))
	assert.Equal(t, Node(root), Root(root))
}

func TestParentByName(t *testing.T) {
	root := NewNodeBase()
	root.SetName("root")
	mid := NewNodeBase(root).SetName("mid")
	leaf := NewNodeBase(mid).SetName("leaf")

	assert.Equal(t, Node(mid), leaf.ParentByName("mid"))
	assert.Equal(t, Node(root), leaf.ParentByName("root"))
	assert.Nil(t, leaf.ParentByName("missing"))
}

func TestNodeString(t *testing.T) {
	var nilNode *NodeBase
	assert.Equal(t, "nil", nilNode.String())
	n := NewNodeBase()
	n.SetName("me")
	assert.Equal(t, "/me", n.String())
}

func TestNodeClone(t *testing.T) {
	root := NewNodeBase()
	root.SetName("root")
	root.Layer = 3
	root.Transform.Pos.Set(1, 2, 3)
	child := NewNodeBase(root).SetName("child")
	child.Layer = 7

	clone := root.Clone().AsTree()
	require.NotNil(t, clone)
	assert.Equal(t, "root", clone.Name)
	assert.Equal(t, 3, clone.Layer)
	assert.Equal(t, root.Transform.Pos, clone.Transform.Pos)
	require.Equal(t, 1, clone.NumChildren())
	cc := clone.Child(0).AsTree()
	assert.Equal(t, "child", cc.Name)
	assert.Equal(t, 7, cc.Layer)

	// mutating the clone must not affect the original
	cc.Layer = 9
	assert.Equal(t, 7, child.Layer)
}
