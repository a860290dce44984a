// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.Equal(t, Vector2{2, 9}, v.Add(Vec2(3, 2)))
	assert.Equal(t, Vector2{-4, 5}, v.Sub(Vec2(3, 2)))
	assert.Equal(t, Vector2{3, 7}, v.Max(Vec2(3, 2)))

	v.SetMin(Vec2(3, 2))
	assert.Equal(t, Vector2{-1, 2}, v)
	v.SetMax(Vec2(0, 0))
	assert.Equal(t, Vector2{0, 2}, v)
	v.SetAddScalar(1)
	assert.Equal(t, Vector2{1, 3}, v)
	v.SetSubScalar(2)
	assert.Equal(t, Vector2{-1, 1}, v)
	assert.Equal(t, "(1, 2.5)", Vec2(1, 2.5).String())
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 20)
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.False(t, b.ContainsPoint(Vec2(11, 0)))
	assert.True(t, b.IntersectsBox(B2(9, 19, 30, 30)))
	assert.False(t, b.IntersectsBox(B2(11, 0, 30, 30)))
	assert.Equal(t, B2(5, 5, 15, 25), b.Translate(Vec2(5, 5)))
	assert.Equal(t, B2(0, 0, 10, 20), B2(10, 20, 0, 0).Canon())

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	e.ExpandByPoint(Vec2(1, 1))
	e.ExpandByBox(B2(-1, 0, 0, 3))
	assert.Equal(t, B2(-1, 0, 1, 3), e)
	e.ExpandByScalar(1)
	assert.Equal(t, B2(-2, -1, 2, 4), e)

	var pb Box2
	pb.SetFromPoints([]Vector2{{3, 1}, {0, 4}})
	assert.Equal(t, B2(0, 1, 3, 4), pb)
	assert.Equal(t, B2(1, 2, 4, 6), B2FromSize(Vec2(1, 2), Vec2(3, 4)))

	assert.Equal(t, float32(2), Abs(-2))
	assert.Equal(t, float32(3), Ceil(2.1))
	assert.Equal(t, float32(2), Min(5, 2))
	assert.Equal(t, float32(5), Max(5, 2))
}
