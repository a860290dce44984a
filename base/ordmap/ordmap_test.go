// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, 1, om.ValueByKey("key1"))
	assert.Equal(t, 0, om.ValueByKey("missing"))
	_, ok := om.ValueByKeyTry("missing")
	assert.False(t, ok)

	old, replaced := om.Add("key1", 11)
	assert.True(t, replaced)
	assert.Equal(t, 1, old)
	assert.Equal(t, []string{"key0", "key1", "key2"}, om.Keys())
	assert.Equal(t, []int{0, 11, 2}, om.Values())

	v, ok := om.DeleteKey("key0")
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	_, ok = om.DeleteKey("key0")
	assert.False(t, ok)
	assert.Equal(t, []string{"key1", "key2"}, om.Keys())
	assert.Equal(t, 2, om.ValueByKey("key2"))

	var keys []string
	for k := range om.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"key1", "key2"}, keys)

	om.Reset()
	assert.Equal(t, 0, om.Len())
	om.Add("again", 3)
	assert.Equal(t, 3, om.ValueByKey("again"))

	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
}
