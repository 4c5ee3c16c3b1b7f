// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laytree/laytree/elements"
	"github.com/laytree/laytree/math32"
	. "github.com/laytree/laytree/tree"
)

func TestSnapshotRoundTrip(t *testing.T) {
	root := NewNodeBase()
	root.SetName("root")
	root.Layer = 2
	root.Transform.Pos.Set(5, 6, 0)
	root.AddComponent(elements.NewGroup().SetGap(4))

	label := NewNodeBase(root).SetName("label")
	label.AddComponent(elements.NewText("hello").SetFontSize(14))

	box := NewNodeBase(root).SetName("box")
	box.Active = false
	box.AddComponent(elements.NewSizer().SetFixed(10, 20))

	var buf bytes.Buffer
	require.NoError(t, Save(root, &buf))

	got, err := Open(&buf)
	require.NoError(t, err)
	assert.Equal(t, "root", got.Name)
	assert.Equal(t, 2, got.Layer)
	assert.Equal(t, math32.Vec3(5, 6, 0), got.Transform.Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), got.Transform.Scale)
	require.Equal(t, 2, got.NumChildren())

	g := ComponentOf[*elements.Group](got)
	require.NotNil(t, g)
	assert.Equal(t, float32(4), g.Gap)

	gl := got.ChildByName("label")
	require.NotNil(t, gl)
	tx := ComponentOf[*elements.Text](gl)
	require.NotNil(t, tx)
	assert.Equal(t, "hello", tx.Text)
	assert.Equal(t, float32(14), tx.FontSize)

	gb := got.ChildByName("box")
	require.NotNil(t, gb)
	assert.False(t, gb.AsTree().Active)
	sz := ComponentOf[*elements.Sizer](gb)
	require.NotNil(t, sz)
	assert.Equal(t, math32.Vec2(10, 20), sz.Min)
	assert.Equal(t, math32.Vec2(10, 20), sz.Pref)
	assert.Equal(t, math32.Vec2(-1, -1), sz.Flex)
}

func TestOpenHandWrittenYAML(t *testing.T) {
	src := `
name: root
layer: 2
transform:
  pos: {x: 5, y: 6, z: 0}
components:
  - kind: group
    data:
      gap: 4
children:
  - name: label
    components:
      - kind: text
        data:
          text: hello
          fontSize: 14
`
	got, err := Open(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "root", got.Name)
	assert.Equal(t, 2, got.Layer)
	assert.Equal(t, math32.Vec3(5, 6, 0), got.Transform.Pos)
	// unspecified scale gets the identity default
	assert.Equal(t, math32.Vec3(1, 1, 1), got.Transform.Scale)
	assert.True(t, got.Active)

	label := got.ChildByName("label")
	require.NotNil(t, label)
	tx := ComponentOf[*elements.Text](label)
	require.NotNil(t, tx)
	assert.Equal(t, "hello", tx.Text)
	assert.Equal(t, float32(14), tx.FontSize)
	// maker defaults survive a partial overlay
	assert.Equal(t, "sans", tx.Font)
}

func TestOpenUnknownComponentKind(t *testing.T) {
	src := `
name: root
components:
  - kind: warp-drive
`
	_, err := Open(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warp-drive")
}

func TestOpenMalformed(t *testing.T) {
	_, err := Open(strings.NewReader("name: [unclosed"))
	assert.Error(t, err)
}

func TestSaveNilNode(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Save(nil, &buf))
}

func TestSnapshotSkipsDestroyed(t *testing.T) {
	root := NewNodeBase()
	root.SetName("root")
	kid := NewNodeBase(root).SetName("kid")
	NewNodeBase(root).SetName("kept")
	root.DeleteChild(kid)

	sn := root.Snapshot()
	require.NotNil(t, sn)
	require.Len(t, sn.Children, 1)
	assert.Equal(t, "kept", sn.Children[0].Name)
}
