// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core tree
// functionality. You must use NodeBase as an embedded struct in all
// higher-level tree types.
//
// All nodes must be properly initialized by using [NewNodeBase], [New],
// [NodeBase.AddChild], [NodeBase.InsertChild], or [NodeBase.Clone].
// This ensures that the [NodeBase.This] field is set correctly and the
// [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to
	// other children of the same parent. It can be used for finding and
	// serializing nodes. If not otherwise set, it defaults to the ID
	// (kebab-case) name of the node type combined with the total number of
	// children that have ever been added to the node's parent.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows
	// methods defined on base types to call methods defined on higher-level
	// types. This is set to nil when the node is destroyed, which is the
	// liveness check used throughout: a node with a nil This is dead.
	This Node `copier:"-" json:"-" yaml:"-"`

	// Parent is the parent of this node, which is set automatically when this
	// node is added as a child of a parent. To change the parent of a node,
	// use [MoveToParent]; you should typically not set this field directly.
	// Nodes can only have one parent at a time.
	Parent Node `copier:"-" json:"-" yaml:"-"`

	// Children is the list of children of this node. All of them are set to
	// have this node as their parent. You can directly modify this list, but
	// you should typically use the various NodeBase child helper functions
	// when applicable so that everything is updated properly.
	Children []Node `copier:"-" json:",omitempty"`

	// Components is the ordered list of components attached to this node.
	// Use [NodeBase.AddComponent] to attach one so that its owner
	// back-reference is set correctly.
	Components []Component `copier:"-" json:",omitempty"`

	// Transform is the local transform of this node relative to its parent:
	// position, rotation (Euler angles in degrees), and scale.
	Transform Transform

	// Layer is an integer layer/category tag for this node, used only
	// for grouping and diagnostics.
	Layer int

	// Active is whether this node is locally active. A node participates in
	// layout and hit-testing only if it and all of its parents are active;
	// see [NodeBase.ActiveInHierarchy].
	Active bool

	// numLifetimeChildren is the number of children that have ever been added
	// to this node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point
	// for finding us in our parent next time. It is not guaranteed to be
	// accurate; use the [NodeBase.IndexInParent] method.
	index int

	// depth is the depth of the node while using [NodeBase.WalkDownBreadth].
	depth int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of the node and returns the node so that
// further configuration calls can be chained.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// IsDestroyed returns whether this node has been destroyed
// (or was never properly initialized).
func (n *NodeBase) IsDestroyed() bool {
	return n == nil || n.This == nil
}

// ActiveInHierarchy returns whether this node and all of its parents
// are active and live.
func (n *NodeBase) ActiveInHierarchy() bool {
	if n.IsDestroyed() || !n.Active {
		return false
	}
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().ActiveInHierarchy()
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index) // very fast if index is close
	n.index = idx
	return idx
}

// ParentByName finds first parent recursively up hierarchy that matches
// the given name. It returns nil if not found.
func (n *NodeBase) ParentByName(name string) Node {
	if IsRoot(n) {
		return nil
	}
	if n.Parent.AsTree().Name == name {
		return n.Parent
	}
	return n.Parent.AsTree().ParentByName(name)
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found. The optional startIndex arg allows for
// optimized bidirectional find if you have an idea where it might be.
func (n *NodeBase) ChildByName(name string, startIndex ...int) Node {
	return n.Child(IndexByName(n.Children, name, startIndex...))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [Node] Names separated by / delimiters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given parent node,
// using [Node] Names separated by / delimiters.
//
// The paths that it returns exclude the name of the parent and the
// leading slash; for example, in the tree a/b/c/d/e, the result of
// d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	// critical to get This
	parent = parent.AsTree().This
	// we bail a level below the parent so it isn't in the path
	if n.Parent == nil || n.Parent == parent {
		return EscapePathName(n.Name)
	}
	ppath := n.Parent.AsTree().PathFrom(parent)
	return ppath + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node.
// FindPath only works correctly when names are unique.
// The given path must be consistent with the format produced
// by [NodeBase.PathFrom]. There is also support for index-based
// access (ie: [0] for the first child) for cases where indexes
// are more useful than names. It returns nil if no node is found
// at the given path.
func (n *NodeBase) FindPath(path string) Node {
	curn := n.This
	pels := strings.Split(strings.Trim(strings.TrimSpace(path), "\""), "/")
	for _, pe := range pels {
		if len(pe) == 0 {
			continue
		}
		idx := findPathChild(curn, UnescapePathName(pe))
		if idx < 0 {
			return nil
		}
		curn = curn.AsTree().Children[idx]
	}
	return curn
}

// findPathChild finds the child with the given string representation in [NodeBase.FindPath].
func findPathChild(n Node, child string) int {
	if child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err != nil {
			return idx
		}
		if idx < 0 { // from end
			idx = len(n.AsTree().Children) + idx
		}
		return idx
	}
	return IndexByName(n.AsTree().Children, child)
}

// Adding and Inserting Children:

// AddChild adds given child at end of children list.
// The kid node is assumed to not be on another tree (see [MoveToParent])
// and the existing name should be unique among children.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n)
}

// InsertChild adds given child at position in children list.
// The kid node is assumed to not be on another tree (see [MoveToParent])
// and the existing name should be unique among children.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n)
}

// Deleting Children:

// DeleteChildAt deletes child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildByName deletes child node by name, returning false
// if it can not find it.
func (n *NodeBase) DeleteChildByName(name string) bool {
	idx := IndexByName(n.Children, name)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0] // preserves capacity of list
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys the node, all of its children,
// and all of its attached components.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.DeleteComponents()
	n.This = nil
}

// Deep Copy:

// CopyFrom copies the data, components, and children of the given node
// to this node. Only copying to the same type is supported. The struct
// field tag copier:"-" can be added for any fields that should not be
// copied. Also, unexported fields are not copied.
// See [Node.CopyFieldsFrom] for more information on field copying.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("tree.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	copyFrom(n.This, from)
}

// copyFrom is the implementation of [NodeBase.CopyFrom].
func copyFrom(to, from Node) {
	tot := to.AsTree()
	fromt := from.AsTree()

	to.CopyFieldsFrom(from)

	tot.DeleteComponents()
	for _, c := range fromt.Components {
		if c == nil || c.AsComponent().IsDestroyed() {
			continue
		}
		nc := NewComponentInstance(c)
		if nc == nil {
			continue
		}
		if err := copier.CopyWithOption(nc, c, copier.Option{CaseSensitive: true, DeepCopy: true}); err != nil {
			slog.Error("tree.NodeBase.CopyFrom: component copy", "err", err)
			continue
		}
		tot.AddComponent(nc)
	}

	tot.DeleteChildren()
	for _, kid := range fromt.Children {
		if kid == nil || kid.AsTree().This == nil {
			continue
		}
		nk := kid.AsTree().NewInstance()
		InitNode(nk)
		nk.AsTree().SetName(kid.AsTree().Name)
		tot.Children = append(tot.Children, nk)
		SetParent(nk, tot)
		copyFrom(nk, kid)
	}
}

// Clone creates and returns a deep copy of the tree from this node down.
// Any pointers within the cloned tree will correctly point within the new
// cloned tree (see [NodeBase.CopyFrom] for more information).
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsTree().SetName(n.Name)
	nc.AsTree().CopyFrom(n.This)
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node.
// By default, it does a deep copy of all of the fields of the node
// that do not have a `copier:"-"` struct tag.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Event methods:

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
