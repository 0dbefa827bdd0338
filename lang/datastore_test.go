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

func TestScopeDequeInnermostFirst(t *testing.T) {
	ds := NewDataStore("")
	ds.SetVariable("x", Number{Value: 1})
	require.NoError(t, ds.PushScope())
	ds.InitLocal("x", Number{Value: 2})

	v, ok := ds.GetVariable("x")
	require.True(t, ok)
	assert.Equal(t, Number{Value: 2}, v, "the innermost binding must shadow the outer one")

	ds.PopScope()
	v, ok = ds.GetVariable("x")
	require.True(t, ok)
	assert.Equal(t, Number{Value: 1}, v, "popping the scope must reveal the outer binding again")
}

func TestSetVariableWritesWhereFoundElseGlobal(t *testing.T) {
	ds := NewDataStore("")
	require.NoError(t, ds.PushScope())
	ds.SetVariable("fresh", Word{Value: "a"})
	v, ok := ds.GetVariable("fresh")
	require.True(t, ok)
	assert.Equal(t, Word{Value: "a"}, v)

	ds.PopScope()
	_, ok = ds.GetVariable("fresh")
	assert.True(t, ok, "a name never seen by make before the push must land in global, not the scope it happened to be called from")
}

func TestPushScopeEnforcesDepthCap(t *testing.T) {
	ds := NewDataStore("")
	for i := 0; i < maxScopeDepth-1; i++ {
		require.NoError(t, ds.PushScope())
	}
	err := ds.PushScope()
	require.Error(t, err)
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrScopeDepthExceeded, e.Kind)
}

func TestResetScopeDropsAllButGlobal(t *testing.T) {
	ds := NewDataStore("")
	require.NoError(t, ds.PushScope())
	require.NoError(t, ds.PushScope())
	assert.Equal(t, 3, ds.Depth())
	ds.ResetScope()
	assert.Equal(t, 1, ds.Depth())
}

func TestClearNameRemovesFromOwningScope(t *testing.T) {
	ds := NewDataStore("")
	ds.SetVariable("x", Number{Value: 1})
	require.NoError(t, ds.PushScope())
	ds.InitLocal("x", Number{Value: 2})

	ds.ClearName("x")
	_, ok := ds.GetVariable("x")
	require.True(t, ok, "clearname must only remove the innermost binding, not the global one")

	ds.PopScope()
	_, ok = ds.GetVariable("x")
	assert.True(t, ok)
}

func TestBackpackDefaultsAreIndependentCopies(t *testing.T) {
	ds := NewDataStore("")
	ds.DeclareBackpackProperty("mood", Word{Value: "neutral"})
	a := ds.BackpackDefaults()
	a["mood"] = Word{Value: "happy"}

	b := ds.BackpackDefaults()
	assert.Equal(t, Word{Value: "neutral"}, b["mood"], "mutating one turtle's backpack copy must not affect the declared default")
}

func TestProcedureNamesListsDefinedProcedures(t *testing.T) {
	ds := NewDataStore("")
	ds.DefineProcedure(&Procedure{Name: "square", Params: []string{"size"}, Body: "repeat 4 [forward :size right 90]"})
	names := ds.ProcedureNames()
	assert.Equal(t, []string{"square"}, names)
}
