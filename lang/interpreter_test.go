//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import (
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	logger := log.New(noopWriter{}, "", 0)
	return NewInterpreter(t.TempDir(), NewEventChannel(), logger)
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestInterpretArithmeticOutput(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.Interpret("output 3 + 4 * 2")
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 11}, tok)
}

func TestMakeWritesToExistingScopeElseGlobal(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("make \"x 1")
	require.NoError(t, err)

	require.NoError(t, interp.Data.PushScope())
	interp.Data.InitLocal("x", Number{Value: 99})
	_, err = interp.Interpret("make \"x 2")
	require.NoError(t, err)
	v, ok := interp.Data.GetVariable("x")
	require.True(t, ok)
	assert.Equal(t, Number{Value: 2}, v, "make must overwrite the innermost scope holding the name")
	interp.Data.PopScope()

	v, ok = interp.Data.GetVariable("x")
	require.True(t, ok)
	assert.Equal(t, Number{Value: 1}, v, "the global binding must be untouched by the inner overwrite")
}

func TestUserProcedureRecursion(t *testing.T) {
	interp := newTestInterpreter(t)
	def := "to fact :n\nif :n < 1 [output 1]\noutput :n * fact :n - 1\nend"
	_, err := interp.Interpret(def)
	require.NoError(t, err)
	tok, err := interp.Interpret("output fact 5")
	require.NoError(t, err)
	assert.Equal(t, Number{Value: 120}, tok)
}

func TestCarefullyCatchesAndRecordsError(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("carefully [output 1 / 0] [make \"caught \"yes]")
	require.NoError(t, err)
	v, ok := interp.Data.GetVariable("caught")
	require.True(t, ok)
	assert.Equal(t, Word{Value: "yes"}, v)
	assert.NotEmpty(t, interp.Data.LastError())
}

func TestInterpretMainHandlesErrorWithoutPropagating(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.InterpretMain("output :undefinedvar")
	require.NoError(t, err, "top-level errors must be absorbed, not returned")
	assert.Equal(t, Void{}, tok)
	assert.False(t, interp.IsRunning())
	assert.Equal(t, 1, interp.Data.Depth(), "scope must be reset to global after a top-level error")
}

func TestInterpretMainCleanCompletionEmitsDoneAndStopsRunning(t *testing.T) {
	interp := newTestInterpreter(t)
	tok, err := interp.InterpretMain("make \"x 1")
	require.NoError(t, err)
	assert.Equal(t, Void{}, tok)
	assert.False(t, interp.IsRunning(), "running must clear once the main frame is exhausted")
	assert.Equal(t, 1, interp.Data.Depth())

	select {
	case evt := <-interp.Events.Events():
		assert.Equal(t, EvtDone, evt.Kind, "a clean run must still emit Done so a host can observe idle")
	case <-time.After(time.Second):
		t.Fatal("expected a Done event on clean completion")
	}
}

func TestForeverExitsOnInterrupt(t *testing.T) {
	interp := newTestInterpreter(t)
	go func() {
		time.Sleep(50 * time.Millisecond)
		interp.Events.PostInput(InputEvent{Kind: InInterrupt})
	}()
	_, err := interp.Interpret("forever [print 1]")
	require.Error(t, err)
	assert.True(t, IsInterrupt(err))
}

func TestTurtlesownDefaultPropagatesToNewAndExistingTurtles(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Interpret("newturtle \"a")
	require.NoError(t, err)
	_, err = interp.Interpret("turtlesown \"mood")
	require.NoError(t, err)
	_, err = interp.Interpret("newturtle \"b")
	require.NoError(t, err)

	for _, name := range []string{"a", "b"} {
		obj, ok := interp.Canvas.Object(name)
		require.True(t, ok)
		_, has := obj.Backpack["mood"]
		assert.True(t, has, "%s must carry the mood property", name)
	}
}
