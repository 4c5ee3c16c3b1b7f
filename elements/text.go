// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elements

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/laytree/laytree/base/keylist"
	"github.com/laytree/laytree/tree"
)

// Character metrics as fractions of the font size, for the simple
// monospace-style estimate used here.
const (
	charWidthFactor  = 0.6
	lineHeightFactor = 1.2
)

// Text is a text component. Its preferred size is a simple measured
// estimate from the text content and font size; its minimum size is one
// character / one line.
type Text struct {
	tree.ComponentBase

	// Text is the text content. Lines are separated by newlines.
	Text string

	// Font is the font family name.
	Font string `yaml:"font,omitempty" json:"font,omitempty"`

	// FontSize is the font point size.
	FontSize float32 `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`

	// Color is the text color.
	Color color.RGBA

	// Pri is the layout priority.
	Pri int `yaml:"pri,omitempty" json:"pri,omitempty"`

	// cached layout inputs, updated by the Compute methods
	minW, prefW float32
	minH, prefH float32
}

// NewText returns a new [Text] with the given content and
// default font settings.
func NewText(text string) *Text {
	return &Text{
		Text:     text,
		Font:     "sans",
		FontSize: 12,
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// SetFont sets the font family name and returns the text for chaining.
func (tx *Text) SetFont(font string) *Text {
	tx.Font = font
	return tx
}

// SetFontSize sets the font point size and returns the text for chaining.
func (tx *Text) SetFontSize(size float32) *Text {
	tx.FontSize = size
	return tx
}

// SetColor sets the text color and returns the text for chaining.
func (tx *Text) SetColor(c color.RGBA) *Text {
	tx.Color = c
	return tx
}

// SetPriority sets the layout priority and returns the text for chaining.
func (tx *Text) SetPriority(pri int) *Text {
	tx.Pri = pri
	return tx
}

// longestLine returns the rune length of the longest line of the text.
func (tx *Text) longestLine() int {
	longest := 0
	for _, ln := range strings.Split(tx.Text, "\n") {
		if n := len([]rune(ln)); n > longest {
			longest = n
		}
	}
	return longest
}

// numLines returns the number of lines of the text, 0 for empty text.
func (tx *Text) numLines() int {
	if tx.Text == "" {
		return 0
	}
	return strings.Count(tx.Text, "\n") + 1
}

// ComputeHorizontal implements [layout.Element], estimating the width
// from the longest line.
func (tx *Text) ComputeHorizontal() {
	cw := charWidthFactor * tx.FontSize
	if tx.Text == "" {
		tx.minW, tx.prefW = 0, 0
		return
	}
	tx.minW = cw
	tx.prefW = cw * float32(tx.longestLine())
}

// ComputeVertical implements [layout.Element], estimating the height
// from the line count.
func (tx *Text) ComputeVertical() {
	lh := lineHeightFactor * tx.FontSize
	nl := tx.numLines()
	if nl == 0 {
		tx.minH, tx.prefH = 0, 0
		return
	}
	tx.minH = lh
	tx.prefH = lh * float32(nl)
}

func (tx *Text) MinWidth() float32        { return tx.minW }
func (tx *Text) MinHeight() float32       { return tx.minH }
func (tx *Text) PreferredWidth() float32  { return tx.prefW }
func (tx *Text) PreferredHeight() float32 { return tx.prefH }
func (tx *Text) FlexibleWidth() float32   { return 0 }
func (tx *Text) FlexibleHeight() float32  { return 0 }
func (tx *Text) Priority() int            { return tx.Pri }

// Describe returns curated summary fields for introspection dumps.
func (tx *Text) Describe() *keylist.List[string, string] {
	d := keylist.New[string, string]()
	d.Set("Text", strconv.Quote(tx.Text))
	d.Set("Font", tx.Font)
	d.Set("FontSize", strconv.FormatFloat(float64(tx.FontSize), 'g', -1, 32))
	d.Set("Color", colorString(tx.Color))
	return d
}
