// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"image/color"

	"github.com/laytree/laytree/base/keylist"
	"github.com/laytree/laytree/math32"
	"github.com/laytree/laytree/tree"
)

// Image is an image component. Its preferred size is its natural size;
// its minimum size defaults to zero (an image can shrink).
type Image struct {
	tree.ComponentBase

	// Natural is the natural (intrinsic) size of the image.
	Natural math32.Vector2

	// Min is the minimum size. It defaults to zero.
	Min math32.Vector2 `yaml:"min,omitempty" json:"min,omitempty"`

	// Tint is the color tint applied to the image.
	Tint color.RGBA

	// Pri is the layout priority.
	Pri int `yaml:"pri,omitempty" json:"pri,omitempty"`
}

// NewImage returns a new [Image] with the given natural size
// and a white (identity) tint.
func NewImage(w, h float32) *Image {
	return &Image{
		Natural: math32.Vec2(w, h),
		Tint:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetMin sets the minimum size and returns the image for chaining.
func (im *Image) SetMin(w, h float32) *Image {
	im.Min.Set(w, h)
	return im
}

// SetTint sets the color tint and returns the image for chaining.
func (im *Image) SetTint(c color.RGBA) *Image {
	im.Tint = c
	return im
}

// SetPriority sets the layout priority and returns the image for chaining.
func (im *Image) SetPriority(pri int) *Image {
	im.Pri = pri
	return im
}

// ComputeHorizontal implements [layout.Element]; the sizes are static.
func (im *Image) ComputeHorizontal() {}

// ComputeVertical implements [layout.Element]; the sizes are static.
func (im *Image) ComputeVertical() {}

func (im *Image) MinWidth() float32        { return im.Min.X }
func (im *Image) MinHeight() float32       { return im.Min.Y }
func (im *Image) PreferredWidth() float32  { return im.Natural.X }
func (im *Image) PreferredHeight() float32 { return im.Natural.Y }
func (im *Image) FlexibleWidth() float32   { return 0 }
func (im *Image) FlexibleHeight() float32  { return 0 }
func (im *Image) Priority() int            { return im.Pri }

// Describe returns curated summary fields for introspection dumps.
func (im *Image) Describe() *keylist.List[string, string] {
	d := keylist.New[string, string]()
	d.Set("Natural", im.Natural.String())
	d.Set("Tint", colorString(im.Tint))
	return d
}
