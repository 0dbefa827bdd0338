//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddObjectSelectsFirstOneOnly(t *testing.T) {
	c := NewCanvasModel(800, 600)
	c.AddObject(NewTurtle("t1", nil))
	assert.Equal(t, "t1", c.Selected)

	c.AddObject(NewTurtle("t2", nil))
	assert.Equal(t, "t1", c.Selected, "the second object must not steal selection from the first")
}

func TestRemoveObjectTransfersSelection(t *testing.T) {
	c := NewCanvasModel(800, 600)
	c.AddObject(NewTurtle("t1", nil))
	c.AddObject(NewTurtle("t2", nil))
	c.RemoveObject("t1")
	assert.Equal(t, "t2", c.Selected)

	c.RemoveObject("t2")
	assert.Equal(t, "", c.Selected)
}

func TestDrawLineAxisAlignedPaintsExpectedPixels(t *testing.T) {
	c := NewCanvasModel(11, 11)
	c.DrawLine(-5, 0, 5, 0, 7, 1)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, float32(7), c.ColorUnder(0, 0))
	assert.Equal(t, float32(7), c.ColorUnder(-5, 0))
	assert.Equal(t, float32(7), c.ColorUnder(5, 0))
}

func TestColorUnderFallsBackToBackgroundWhenUnpainted(t *testing.T) {
	c := NewCanvasModel(11, 11)
	c.BgColor = 3
	assert.Equal(t, float32(3), c.ColorUnder(2, 2))
}

func TestResizeClearsLinesAndPixels(t *testing.T) {
	c := NewCanvasModel(11, 11)
	c.BgColor = 1
	c.DrawLine(0, 0, 1, 1, 9, 1)
	require.Len(t, c.Lines, 1)
	c.Resize(5, 5)
	assert.Empty(t, c.Lines)
	assert.Equal(t, float32(1), c.ColorUnder(0, 0), "the painted origin pixel must read as background after resize")
	assert.Equal(t, 5, c.Width)
	assert.Equal(t, 5, c.Height)
}

func TestObjectNamesPreservesCreationOrder(t *testing.T) {
	c := NewCanvasModel(10, 10)
	c.AddObject(NewTurtle("a", nil))
	c.AddObject(NewText("b"))
	c.AddObject(NewTurtle("c", nil))
	assert.Equal(t, []string{"a", "b", "c"}, c.ObjectNames())
}
