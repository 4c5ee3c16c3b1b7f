// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"reflect"
)

// Component is an interface that all node components satisfy.
// A component is a polymorphic behavior object attached to a [Node];
// the core functionality is defined on [ComponentBase], which all
// component types must embed.
type Component interface {

	// AsComponent returns the [ComponentBase] of this Component.
	AsComponent() *ComponentBase
}

// ComponentBase provides the core functionality for node components.
// The zero value is enabled; use [ComponentBase.Disabled] to turn a
// component off without detaching it.
type ComponentBase struct {

	// Owner is the node this component is attached to. It is set by
	// [NodeBase.AddComponent] and cleared when the component is destroyed.
	Owner Node `copier:"-" json:"-" yaml:"-"`

	// Disabled turns this component off while leaving it attached.
	// A disabled component does not participate in layout.
	Disabled bool `json:",omitempty" yaml:",omitempty"`

	// destroyed is whether this component has been destroyed.
	destroyed bool
}

// AsComponent returns the [ComponentBase] for this Component.
func (cb *ComponentBase) AsComponent() *ComponentBase {
	return cb
}

// ActiveAndEnabled returns whether this component is attached to a live,
// active-in-hierarchy node, is not disabled, and is not destroyed.
func (cb *ComponentBase) ActiveAndEnabled() bool {
	if cb == nil || cb.destroyed || cb.Disabled || cb.Owner == nil {
		return false
	}
	return cb.Owner.AsTree().ActiveInHierarchy()
}

// IsDestroyed returns whether this component has been destroyed.
func (cb *ComponentBase) IsDestroyed() bool {
	return cb == nil || cb.destroyed
}

// Destroy marks the component as destroyed and detaches it from its owner.
// Destroyed components are skipped by enumeration and introspection.
func (cb *ComponentBase) Destroy() {
	cb.destroyed = true
	cb.Owner = nil
}

// AddComponent attaches the given component at the end of this node's
// component list, setting its owner back-reference.
func (n *NodeBase) AddComponent(c Component) {
	c.AsComponent().Owner = n.This
	n.Components = append(n.Components, c)
}

// NumComponents returns the number of components attached to this node.
func (n *NodeBase) NumComponents() int {
	return len(n.Components)
}

// DeleteComponent detaches and destroys the given component,
// returning false if it is not attached to this node.
func (n *NodeBase) DeleteComponent(c Component) bool {
	for i, ec := range n.Components {
		if ec == c {
			n.Components = append(n.Components[:i], n.Components[i+1:]...)
			c.AsComponent().Destroy()
			return true
		}
	}
	return false
}

// DeleteComponents detaches and destroys all components of this node.
func (n *NodeBase) DeleteComponents() {
	comps := n.Components
	n.Components = n.Components[:0]
	for _, c := range comps {
		if c == nil {
			continue
		}
		c.AsComponent().Destroy()
	}
}

// ComponentOf returns the first component of this node with the given
// concrete type, or the zero value if there is none.
func ComponentOf[T Component](n Node) T {
	var zv T
	if n == nil || n.AsTree().This == nil {
		return zv
	}
	for _, c := range n.AsTree().Components {
		if tc, ok := c.(T); ok {
			return tc
		}
	}
	return zv
}

// Component kinds: a registry of component type makers by kind name,
// used for rebuilding components from snapshots (see snapshot.go).

var (
	componentMakers = map[string]func() Component{}
	componentKinds  = map[reflect.Type]string{}
)

// AddComponentType registers a maker for the given component kind name.
// Component packages typically call this in an init function for each
// of their concrete component types.
func AddComponentType(kind string, maker func() Component) {
	componentMakers[kind] = maker
	componentKinds[reflect.TypeOf(maker())] = kind
}

// ComponentKind returns the registered kind name of the given component,
// or the empty string if its type has not been registered.
func ComponentKind(c Component) string {
	return componentKinds[reflect.TypeOf(c)]
}

// NewComponentOfKind returns a new component of the given registered kind,
// or an error if the kind is unknown.
func NewComponentOfKind(kind string) (Component, error) {
	maker, ok := componentMakers[kind]
	if !ok {
		return nil, fmt.Errorf("tree.NewComponentOfKind: unknown component kind %q", kind)
	}
	return maker(), nil
}

// NewComponentInstance returns a new zero-valued component with the same
// concrete type as the given component.
func NewComponentInstance(c Component) Component {
	nc, _ := reflect.New(reflect.TypeOf(c).Elem()).Interface().(Component)
	return nc
}
