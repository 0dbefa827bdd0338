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

func TestForwardDrawsAndAdvancesAlongHeading(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("newturtle \"t talkto \"t forward 10")
	require.NoError(t, err)
	o, ok := interp.Canvas.Object("t")
	require.True(t, ok)
	assert.InDelta(t, 0, o.X, 1e-4)
	assert.InDelta(t, 10, o.Y, 1e-4, "heading 0 points north, +Y")
	require.Len(t, interp.Canvas.Lines, 1)
}

func TestRightTurnsClockwiseAndWrapsHeading(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("newturtle \"t talkto \"t right 370")
	require.NoError(t, err)
	o, _ := interp.Canvas.Object("t")
	assert.InDelta(t, 10, o.Heading, 1e-4)
}

func TestPenUpSuppressesLineDrawing(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("newturtle \"t talkto \"t pu forward 10")
	require.NoError(t, err)
	assert.Empty(t, interp.Canvas.Lines)
}

func TestTowardsPointsAtTarget(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("newturtle \"t talkto \"t")
	require.NoError(t, err)
	tok, err := interp.Interpret("output towards [10 0]")
	require.NoError(t, err)
	n, ok := tok.(Number)
	require.True(t, ok)
	assert.InDelta(t, 90, n.Value, 1e-3, "a target due east of the origin is heading 90")
}

func TestWordConcatenatesArguments(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output word \"foo \"bar")
	require.NoError(t, err)
	assert.Equal(t, Word{Value: "foobar"}, tok)
}

func TestButfirstAndButlastOnWordAndList(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output butfirst \"hello")
	require.NoError(t, err)
	assert.Equal(t, Word{Value: "ello"}, tok)

	tok, err = interp.Interpret("output butlast [a b c]")
	require.NoError(t, err)
	assert.Equal(t, List{Body: "a b"}, tok)
}

func TestItemIsOneIndexedAndRejectsOutOfRange(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output item 2 [a b c]")
	require.NoError(t, err)
	assert.Equal(t, Word{Value: "b"}, tok)

	_, err = interp.Interpret("output item 0 [a b c]")
	require.Error(t, err)
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrDomainError, e.Kind)
}

func TestFputAndLputPreserveKind(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output fput \"a [b c]")
	require.NoError(t, err)
	assert.Equal(t, List{Body: "a b c"}, tok)

	tok, err = interp.Interpret("output lput \"z [a b]")
	require.NoError(t, err)
	assert.Equal(t, List{Body: "a b z"}, tok)
}

func TestAsciiAndCharRoundTripNamedKeys(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output ascii \"space")
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 32}, tok)

	tok, err = interp.Interpret("output char 32")
	require.NoError(t, err)
	assert.Equal(t, Word{Value: "space"}, tok)
}

func TestSetsizeAcceptsScalarOrList(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("newturtle \"t talkto \"t setsize 5")
	require.NoError(t, err)
	o, _ := interp.Canvas.Object("t")
	assert.Equal(t, float32(5), o.Width)
	assert.Equal(t, float32(5), o.Height)

	_, err = interp.Interpret("setsize [3 4]")
	require.NoError(t, err)
	assert.Equal(t, float32(3), o.Width)
	assert.Equal(t, float32(4), o.Height)
}

func TestDivideByZeroIsDomainTagged(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("output 1 / 0")
	require.Error(t, err)
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrDivideByZero, e.Kind)
}

func TestSqrtOfNegativeIsDomainError(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("output sqrt -1")
	require.Error(t, err)
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrDomainError, e.Kind)
}

func TestTrigUsesDegrees(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output sin 90")
	require.NoError(t, err)
	n, ok := tok.(Number)
	require.True(t, ok)
	assert.InDelta(t, 1, n.Value, 1e-4)
}

func TestPickDrawsFromSequenceElements(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output pick [x]")
	require.NoError(t, err)
	assert.Equal(t, Word{Value: "x"}, tok)
}
