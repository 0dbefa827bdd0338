//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import (
	"math/rand"
	"strconv"
	"strings"
)

// randN returns a random int in [0, n). Go 1.20+ auto-seeds the global
// source, so no explicit seeding is needed (spec §4.7 `random`/`pick`).
func randN(n int) int {
	return rand.Intn(n)
}

// numArg coerces args[pos] to a Number, accepting a numeric Word as well
// (the source language does not distinguish "3" typed as a word from
// typed as a number at the call boundary).
func numArg(name string, pos int, args []Token) (float32, error) {
	switch t := args[pos].(type) {
	case Number:
		return t.Value, nil
	case Word:
		if n, err := strconv.ParseFloat(t.Value, 32); err == nil {
			return float32(n), nil
		}
	}
	return 0, errTypef(name, pos, "number")
}

func boolArg(name string, pos int, args []Token) (bool, error) {
	b, ok := args[pos].(Boolean)
	if !ok {
		return false, errTypef(name, pos, "boolean")
	}
	return b.Value, nil
}

// wordArg coerces args[pos] to its string value, accepting Number and
// Boolean too so `word "a 3` and `newturtle 1` work without a separate
// cast command.
func wordArg(name string, pos int, args []Token) (string, error) {
	switch t := args[pos].(type) {
	case Word:
		return t.Value, nil
	case Number, Boolean:
		return DisplayString(t), nil
	}
	return "", errTypef(name, pos, "word")
}

// sequence is the word/list polymorphism common to Logo-family list
// commands: a Word is a sequence of one-character Words, a List is its
// already-parsed leaves. Grounded on the source's shared handling of
// `first`/`last`/`butfirst`/`item`/`count` across both kinds (see
// original_source's command/core.rs list-processing group).
type sequence struct {
	isWord bool
	leaves []Token
}

func toSequence(name string, pos int, args []Token, ds *DataStore) (sequence, error) {
	switch t := args[pos].(type) {
	case Word:
		runes := []rune(t.Value)
		leaves := make([]Token, len(runes))
		for idx, r := range runes {
			leaves[idx] = Word{Value: string(r)}
		}
		return sequence{isWord: true, leaves: leaves}, nil
	case List:
		leaves, err := ParseList(t.Body, true, ds)
		if err != nil {
			return sequence{}, err
		}
		return sequence{isWord: false, leaves: leaves}, nil
	}
	return sequence{}, errTypef(name, pos, "word or list")
}

// rebuild reassembles leaves into the same kind of token the sequence
// came from.
func (s sequence) rebuild(leaves []Token) Token {
	if s.isWord {
		var sb strings.Builder
		for _, l := range leaves {
			sb.WriteString(DisplayString(l))
		}
		return Word{Value: sb.String()}
	}
	return List{Body: JoinListString(leaves)}
}

// currentObject returns the selected object, failing NoSuchObject if
// nothing is selected, used by every motion/accessor command that acts
// implicitly on "the current turtle" (spec §4.5).
func currentObject(i *Interpreter) (*Object, error) {
	o, ok := i.Canvas.SelectedObject()
	if !ok {
		return nil, errNoSuchObject("<none selected>")
	}
	return o, nil
}

// namedObject looks up an object by name, failing NoSuchObject.
func namedObject(i *Interpreter, name string) (*Object, error) {
	o, ok := i.Canvas.Object(name)
	if !ok {
		return nil, errNoSuchObject(name)
	}
	return o, nil
}

func boolTok(v bool) Token { return Boolean{Value: v} }
func numTok(v float32) Token { return Number{Value: v} }
func wordTok(v string) Token { return Word{Value: v} }

// runBody interprets a List or Word body as a statement sequence in a
// fresh non-paren frame, discarding its result -- the shape needed by
// `if`, `repeat`, `forever`, and friends.
func runBody(i *Interpreter, body string) error {
	_, err := i.Interpret(body)
	return err
}
