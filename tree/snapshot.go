// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/laytree/laytree/base/errors"
)

// Snapshot is a plain, serializable description of a node subtree,
// used for capturing debug trees and for building trees from files.
// It records names, transforms, layers, active flags, components by
// registered kind, and children; it does not preserve the concrete Go
// type of nodes, which are rebuilt as [NodeBase].
type Snapshot struct {
	Name      string               `yaml:"name" json:"name"`
	Layer     int                  `yaml:"layer,omitempty" json:"layer,omitempty"`
	Active    *bool                `yaml:"active,omitempty" json:"active,omitempty"`
	Transform *Transform           `yaml:"transform,omitempty" json:"transform,omitempty"`
	Comps     []*ComponentSnapshot `yaml:"components,omitempty" json:"components,omitempty"`
	Children  []*Snapshot          `yaml:"children,omitempty" json:"children,omitempty"`
}

// ComponentSnapshot is a serializable description of a single component:
// its registered kind name plus its exported fields as a generic map.
type ComponentSnapshot struct {
	Kind string         `yaml:"kind" json:"kind"`
	Data map[string]any `yaml:"data,omitempty" json:"data,omitempty"`
}

// Snapshot returns a [Snapshot] of the subtree rooted at this node.
// Components whose types have not been registered with
// [AddComponentType] are skipped with a logged error.
func (n *NodeBase) Snapshot() *Snapshot {
	if n.IsDestroyed() {
		return nil
	}
	active := n.Active
	tf := n.Transform
	sn := &Snapshot{
		Name:      n.Name,
		Layer:     n.Layer,
		Active:    &active,
		Transform: &tf,
	}
	for _, c := range n.Components {
		if c == nil || c.AsComponent().IsDestroyed() {
			continue
		}
		kind := ComponentKind(c)
		if kind == "" {
			errors.Log(fmt.Errorf("tree.Snapshot: component type %T is not registered; skipping", c))
			continue
		}
		data, err := componentData(c)
		if err != nil {
			errors.Log(err)
			continue
		}
		sn.Comps = append(sn.Comps, &ComponentSnapshot{Kind: kind, Data: data})
	}
	for _, kid := range n.Children {
		if kid == nil || kid.AsTree().This == nil {
			continue
		}
		sn.Children = append(sn.Children, kid.AsTree().Snapshot())
	}
	return sn
}

// componentData round-trips the component through YAML to produce a
// generic field map.
func componentData(c Component) (map[string]any, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("tree.Snapshot: marshal component %T: %w", c, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("tree.Snapshot: unmarshal component %T: %w", c, err)
	}
	return data, nil
}

// Build constructs a new [NodeBase] subtree from this snapshot.
// It returns an error for any component of an unknown kind.
func (sn *Snapshot) Build() (*NodeBase, error) {
	n := NewNodeBase()
	if err := sn.buildInto(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (sn *Snapshot) buildInto(n *NodeBase) error {
	n.SetName(sn.Name)
	n.Layer = sn.Layer
	if sn.Active != nil {
		n.Active = *sn.Active
	}
	if sn.Transform != nil {
		n.Transform = *sn.Transform
		n.Transform.Defaults()
	}
	for _, cs := range sn.Comps {
		c, err := NewComponentOfKind(cs.Kind)
		if err != nil {
			return err
		}
		if len(cs.Data) > 0 {
			b, err := yaml.Marshal(cs.Data)
			if err != nil {
				return fmt.Errorf("tree.Snapshot.Build: component %q: %w", cs.Kind, err)
			}
			if err := yaml.Unmarshal(b, c); err != nil {
				return fmt.Errorf("tree.Snapshot.Build: component %q: %w", cs.Kind, err)
			}
		}
		n.AddComponent(c)
	}
	for _, ks := range sn.Children {
		if ks == nil {
			continue
		}
		kid := NewNodeBase(n)
		if err := ks.buildInto(kid); err != nil {
			return err
		}
	}
	return nil
}

// Save writes a YAML snapshot of the subtree rooted at the given node
// to the given writer.
func Save(n Node, w io.Writer) error {
	if n == nil || n.AsTree().This == nil {
		return errors.Log(errors.New("tree.Save: nil or destroyed node"))
	}
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(n.AsTree().Snapshot()); err != nil {
		return errors.Log(err)
	}
	return errors.Log(e.Close())
}

// SaveFile saves a YAML snapshot of the subtree rooted at the given node
// to the given filename.
func SaveFile(n Node, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer f.Close()
	return Save(n, f)
}

// Open reads a YAML snapshot (JSON, being a subset of YAML, is also
// accepted) from the given reader and builds the corresponding tree.
func Open(r io.Reader) (*NodeBase, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Log(err)
	}
	sn := &Snapshot{}
	if err := yaml.Unmarshal(b, sn); err != nil {
		return nil, errors.Log(fmt.Errorf("tree.Open: %w", err))
	}
	n, err := sn.Build()
	return n, errors.Log(err)
}

// OpenFile reads a YAML snapshot from the given filename and builds the
// corresponding tree.
func OpenFile(filename string) (*NodeBase, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer f.Close()
	return Open(f)
}
