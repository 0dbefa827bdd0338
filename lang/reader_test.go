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

func newTestVocab() *Vocabulary {
	v := NewVocabulary()
	registerAllBuiltins(v)
	return v
}

func readOne(t *testing.T, vocab *Vocabulary, src string) Token {
	t.Helper()
	r := NewReader(vocab)
	r.PushFrame(src, false)
	tok, err := r.ReadToken()
	require.NoError(t, err)
	return tok
}

// TestInfixAssociativity pins the reader's right-nesting rule: the right
// operand of an infix operator is read by a full recursive ReadToken,
// which itself tries infix continuation first, so a trailing operator binds
// to the right operand before the left operator's invocation is built.
// Operators have no precedence: any trailing operator nests this way.
func TestInfixAssociativity(t *testing.T) {
	vocab := newTestVocab()
	tok := readOne(t, vocab, "3 + 4 * 2")

	sum, ok := tok.(Invocation)
	require.True(t, ok, "expected an Invocation, got %T", tok)
	assert.Equal(t, "sum", sum.Command.Name)
	require.Len(t, sum.Args, 2)
	assert.Equal(t, Number{Value: 3}, sum.Args[0])

	product, ok := sum.Args[1].(Invocation)
	require.True(t, ok, "expected sum's second argument to be an Invocation, got %T", sum.Args[1])
	assert.Equal(t, "product", product.Command.Name)
	require.Len(t, product.Args, 2)
	assert.Equal(t, Number{Value: 4}, product.Args[0])
	assert.Equal(t, Number{Value: 2}, product.Args[1])
}

func TestReadIdentifierKeepsBracketedRegionIntact(t *testing.T) {
	vocab := newTestVocab()
	tok := readOne(t, vocab, "print [a b c]")

	iv, ok := tok.(Invocation)
	require.True(t, ok)
	assert.Equal(t, "print", iv.Command.Name)
	require.Len(t, iv.Args, 1)
	lst, ok := iv.Args[0].(List)
	require.True(t, ok)
	assert.Equal(t, "a b c", lst.Body)
}

func TestReadTokenUnmatchedBracketFails(t *testing.T) {
	vocab := newTestVocab()
	r := NewReader(vocab)
	r.PushFrame("print [a b", false)
	_, err := r.ReadToken()
	require.Error(t, err)
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrUnmatchedBrackets, e.Kind)
}

func TestResolveIdentifierVariableAndWordAndNumber(t *testing.T) {
	vocab := newTestVocab()
	assert.Equal(t, VariableRef{Name: "x"}, readOne(t, vocab, ":x"))
	assert.Equal(t, Word{Value: "hello"}, readOne(t, vocab, "\"hello"))
	assert.Equal(t, Number{Value: 42}, readOne(t, vocab, "42"))
	assert.Equal(t, Boolean{Value: true}, readOne(t, vocab, "true"))
}

func TestCommandLookupIsCaseInsensitive(t *testing.T) {
	vocab := newTestVocab()
	tok := readOne(t, vocab, "FORWARD 10")
	iv, ok := tok.(Invocation)
	require.True(t, ok)
	assert.Equal(t, "forward", iv.Command.Name)
}

func TestAgainRewindsFrameToStart(t *testing.T) {
	vocab := newTestVocab()
	r := NewReader(vocab)
	r.PushFrame("print 1", false)
	_, err := r.ReadToken()
	require.NoError(t, err)
	_, err = r.ReadToken()
	require.True(t, IsEOF(err))

	r.ReturnToStart()
	tok, err := r.ReadToken()
	require.NoError(t, err)
	iv, ok := tok.(Invocation)
	require.True(t, ok)
	assert.Equal(t, "print", iv.Command.Name)
}

func TestReadProcedureLiteral(t *testing.T) {
	vocab := newTestVocab()
	src := "square :size\nrepeat 4 [forward :size right 90]\nend"
	r := NewReader(vocab)
	r.PushFrame(src, false)
	f := r.top()
	lit, err := r.readProcedureLiteral(f)
	require.NoError(t, err)
	assert.Equal(t, "square", lit.Name)
	assert.Equal(t, []string{"size"}, lit.Params)
	assert.Equal(t, "repeat 4 [forward :size right 90]", lit.Body)
}
