// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/laytree/laytree/base/reflectx"
)

func TestToStringScalars(t *testing.T) {
	assert.Equal(t, "nil", ToString(nil))
	assert.Equal(t, "3", ToString(3))
	assert.Equal(t, "3.5", ToString(3.5))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "hi", ToString("hi"))
}

func TestToStringSlices(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", ToString([]int{1, 2, 3}))
	assert.Equal(t, "[a, b]", ToString([2]string{"a", "b"}))
	assert.Equal(t, "[]", ToString([]int{}))
	assert.Equal(t, "[[1], [2, 3]]", ToString([][]int{{1}, {2, 3}}))
}

func TestToStringMaps(t *testing.T) {
	assert.Equal(t, "{a: 1, b: 2}", ToString(map[string]int{"b": 2, "a": 1}))
	var m map[string]int
	assert.Equal(t, "nil", ToString(m))
}

func TestToStringPointers(t *testing.T) {
	x := 7
	assert.Equal(t, "7", ToString(&x))
	var p *int
	assert.Equal(t, "nil", ToString(p))
}

type named struct{ Name string }

func (n named) String() string { return "named:" + n.Name }

func TestToStringStringer(t *testing.T) {
	assert.Equal(t, "named:x", ToString(named{Name: "x"}))
	assert.Equal(t, "[named:a, named:b]", ToString([]named{{"a"}, {"b"}}))
}
