// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect renders a deterministic, indentation-structured text
// dump of a node subtree for diagnostics: per-node geometry, per-component
// layout sizes, curated component summaries, and a bounded reflective
// dump of exported component fields.
package inspect

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/laytree/laytree/base/indent"
	"github.com/laytree/laytree/base/keylist"
	"github.com/laytree/laytree/base/reflectx"
	"github.com/laytree/laytree/layout"
	"github.com/laytree/laytree/tree"
)

// Describer is the capability interface for components that provide a
// curated, ordered summary of themselves for dumps. Described pairs are
// emitted before the generic reflective field dump.
type Describer interface {

	// Describe returns an ordered mapping of summary field
	// names to string values.
	Describe() *keylist.List[string, string]
}

// indentWidth is how much the indentation grows per tree level.
const indentWidth = 2

// nullDump is returned by [DumpTree] for a nil or destroyed root.
const nullDump = "null"

// DumpTree returns a multi-line text dump of the subtree rooted at the
// given node. A nil or destroyed root yields the literal "null" string.
// It never fails on a well-formed live tree; inaccessible component
// fields are rendered as "<inaccessible>" rather than aborting the dump.
func DumpTree(root tree.Node) string {
	if root == nil || root.AsTree().This == nil {
		return nullDump
	}
	var sb strings.Builder
	dumpNode(&sb, root, 0)
	return strings.TrimRight(sb.String(), " \t\n")
}

// dumpNode writes one node and recurses into its children, with the
// given leading indentation in spaces.
func dumpNode(sb *strings.Builder, n tree.Node, ind int) {
	nb := n.AsTree()
	pre := indent.Spaces(ind, 1)

	fmt.Fprintf(sb, "%s- %s (%d children, layer %d, active=%v)\n",
		pre, nb.Name, nb.NumChildren(), nb.Layer, nb.ActiveInHierarchy())
	fmt.Fprintf(sb, "%s  world: pos %s rot %s scale %s; local: pos %s rot %s\n",
		pre, nb.WorldPosition(), nb.WorldRotation(), nb.WorldScale(),
		nb.Transform.Pos, nb.Transform.Rot)

	for _, c := range nb.Components {
		if c == nil || c.AsComponent().IsDestroyed() {
			continue
		}
		dumpComponent(sb, c, ind+indentWidth)
	}

	live := 0
	for _, kid := range nb.Children {
		if kid != nil && kid.AsTree().This != nil {
			live++
		}
	}
	if live == 0 {
		return
	}
	fmt.Fprintf(sb, "%s  Children:\n", pre)
	for _, kid := range nb.Children {
		if kid == nil || kid.AsTree().This == nil {
			continue
		}
		dumpNode(sb, kid, ind+indentWidth)
	}
}

// dumpComponent writes the header line for one component, followed by
// its curated summary pairs and a reflective dump of the exported fields
// declared directly on its concrete type.
func dumpComponent(sb *strings.Builder, c tree.Component, ind int) {
	pre := indent.Spaces(ind, 1)
	typ := reflectx.NonPointerType(reflect.TypeOf(c))

	if el, ok := c.(layout.Element); ok {
		// per-component query: recompute each axis, then read it
		el.ComputeHorizontal()
		mw, pw, fw := el.MinWidth(), el.PreferredWidth(), el.FlexibleWidth()
		el.ComputeVertical()
		mh, ph, fh := el.MinHeight(), el.PreferredHeight(), el.FlexibleHeight()
		fmt.Fprintf(sb, "%s[%s] min: (%v, %v) preferred: (%v, %v) flexible: (%v, %v)\n",
			pre, typ, mw, mh, pw, ph, fw, fh)
	} else {
		fmt.Fprintf(sb, "%s[%s]\n", pre, typ)
	}

	if d, ok := c.(Describer); ok {
		dl := d.Describe()
		for i, key := range dl.Keys {
			fmt.Fprintf(sb, "%s  %s = %s\n", pre, key, dl.Values[i])
		}
	}

	dumpFields(sb, c, typ, pre)
}

// dumpFields writes the exported fields declared directly on the
// concrete type of the given component (embedded base fields are not
// repeated). Each field is rendered individually so that one
// inaccessible field does not abort the whole dump.
func dumpFields(sb *strings.Builder, c tree.Component, typ reflect.Type, pre string) {
	v := reflectx.NonPointerValue(reflect.ValueOf(c))
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		fmt.Fprintf(sb, "%s  %s = %s\n", pre, f.Name, fieldString(v.Field(i)))
	}
}

// fieldString renders one field value, recovering from any per-field
// reflection failure.
func fieldString(v reflect.Value) (s string) {
	defer func() {
		if recover() != nil {
			s = "<inaccessible>"
		}
	}()
	if !v.CanInterface() {
		return "<inaccessible>"
	}
	return reflectx.ToString(v.Interface())
}
