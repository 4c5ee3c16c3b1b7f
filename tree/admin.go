// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// admin.go has infrastructure code outside of the [Node] interface.

// New returns a new node of the given type with the given optional parent.
// If the name is unspecified, it defaults to the ID (kebab-case) name of
// the type, plus the number of lifetime children of the parent.
func New[T Node](parent ...Node) T {
	var n T
	n = reflect.New(reflect.TypeOf(n).Elem()).Interface().(T)
	InitNode(n)
	if len(parent) == 0 {
		n.AsTree().SetName(typeIDName(n))
		return n
	}
	p := parent[0].AsTree()
	p.Children = append(p.Children, n)
	SetParent(n, p)
	return n
}

// NewNodeBase returns a new [NodeBase] with the given optional parent.
func NewNodeBase(parent ...Node) *NodeBase {
	return New[*NodeBase](parent...)
}

// InitNode initializes the node, setting its This field to itself and
// applying transform defaults. It calls [Node.Init] the first time.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		nb.Active = true
		nb.Transform.Defaults()
		n.Init()
	}
}

// NewInstance returns a new uninitialized instance of this node's type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent *NodeBase) {
	n := child.AsTree()
	n.Parent = parent.This
	parent.numLifetimeChildren++
	if n.Name == "" {
		n.SetName(typeIDName(child) + "-" + strconv.FormatUint(parent.numLifetimeChildren-1, 10)) // must subtract 1 so we start at 0
	}
	child.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	oldParent := child.AsTree().Parent
	if oldParent != nil {
		op := oldParent.AsTree()
		idx := IndexOf(op.Children, child)
		if idx >= 0 {
			op.Children = append(op.Children[:idx], op.Children[idx+1:]...)
		}
	}
	parent.AsTree().AddChild(child)
}

// IsRoot returns whether the given node is the root node in its tree.
func IsRoot(n *NodeBase) bool {
	return n.This == nil || n.Parent == nil || n.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n.AsTree()) {
		return n
	}
	return Root(n.AsTree().Parent)
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument allows
// for optimized bidirectional searching if you have an idea where
// the node might be, which can be a key speedup for large slices.
// If no start index is given, it starts in the middle, which is a
// good default.
func IndexOf(children []Node, child Node, startIndex ...int) int {
	return findFast(len(children), func(i int) bool { return children[i] == child }, startIndex...)
}

// IndexByName returns the index of the first node in the given slice that
// has the given name, or -1 if none is found. The optional startIndex
// argument works as in [IndexOf].
func IndexByName(children []Node, name string, startIndex ...int) int {
	return findFast(len(children), func(i int) bool { return children[i].AsTree().Name == name }, startIndex...)
}

// findFast is an optimized bidirectional search over n items,
// starting from the given optional index (middle by default).
func findFast(n int, match func(i int) bool, startIndex ...int) int {
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 {
		si = startIndex[0]
	}
	if si < 0 {
		si = 0
	}
	if si >= n {
		si = n - 1
	}
	upi := si + 1
	dni := si
	for upi < n || dni >= 0 {
		if upi < n {
			if match(upi) {
				return upi
			}
			upi++
		}
		if dni >= 0 {
			if match(dni) {
				return dni
			}
			dni--
		}
	}
	return -1
}

// typeIDName returns the kebab-case name of the concrete type of the
// given node or component, without the package path.
func typeIDName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return toKebab(t.Name())
}

// toKebab converts a CamelCase name to kebab-case.
func toKebab(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteRune('-')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
