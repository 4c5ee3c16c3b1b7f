// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/laytree/laytree/math32"
)

func TestScalars(t *testing.T) {
	assert.Equal(t, float32(2), Abs(-2))
	assert.Equal(t, float32(2), Abs(2))
	assert.Equal(t, float32(5), Max(3, 5))
	assert.Equal(t, float32(3), Min(3, 5))
}

func TestVector2(t *testing.T) {
	v := Vec2(1, 2)
	assert.Equal(t, "(1, 2)", v.String())
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(3, 4)))
	assert.Equal(t, Vec2(3, 8), v.Mul(Vec2(3, 4)))
	assert.Equal(t, Vec2(2, 4), v.MulScalar(2))
	assert.Equal(t, Vec2(3, 4), v.Max(Vec2(3, 4)))
	assert.Equal(t, Vec2(1, 2), v.Min(Vec2(3, 4)))
	assert.True(t, Vector2{}.IsZero())
	assert.False(t, v.IsZero())
	assert.Equal(t, Vec2(7, 7), Vector2Scalar(7))
}

func TestVector3(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, "(1, 2, 3)", v.String())
	assert.Equal(t, Vec3(2, 4, 6), v.Add(v))
	assert.Equal(t, Vec3(0, 0, 0), v.Sub(v))
	assert.Equal(t, Vec3(1, 4, 9), v.Mul(v))
	assert.Equal(t, Vec3(3, 6, 9), v.MulScalar(3))
	assert.True(t, Vector3{}.IsZero())
	assert.Equal(t, Vec3(1, 1, 1), Vector3Scalar(1))
}
