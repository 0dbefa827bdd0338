//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "math"

// registerPredicateBuiltins implements spec §4.7 "Predicates".
func registerPredicateBuiltins(v *Vocabulary) {
	equalq := &Command{Name: "equal?", Arity: FixedArgs(2), Reserved: true, Action: actionEqualq}
	must(v, equalq)
	must(v, &Command{Name: "greater?", Arity: FixedArgs(2), Reserved: true, Action: actionGreaterq})
	must(v, &Command{Name: "less?", Arity: FixedArgs(2), Reserved: true, Action: actionLessq})
	must(v, &Command{Name: "and", Arity: VariadicArgs(2), Reserved: true, Action: actionAnd})
	must(v, &Command{Name: "or", Arity: VariadicArgs(2), Reserved: true, Action: actionOr})
	must(v, &Command{Name: "not", Arity: FixedArgs(1), Reserved: true, Action: actionNot})
	must(v, &Command{Name: "number?", Arity: FixedArgs(1), Reserved: true, Action: actionNumberq})
	must(v, &Command{Name: "word?", Arity: FixedArgs(1), Reserved: true, Action: actionWordq})
	must(v, &Command{Name: "list?", Arity: FixedArgs(1), Reserved: true, Action: actionListq})
	must(v, &Command{Name: "empty?", Arity: FixedArgs(1), Reserved: true, Action: actionEmptyq})
	must(v, &Command{Name: "member?", Arity: FixedArgs(2), Reserved: true, Action: actionMemberq})
	must(v, &Command{Name: "touching?", Arity: FixedArgs(1), Reserved: true, Action: actionTouchingq})
	must(v, &Command{Name: "clicked?", Arity: NoArgs(), Reserved: true, Action: actionClickedq})
	must(v, &Command{Name: "key?", Arity: NoArgs(), Reserved: true, Action: actionKeyq})
	must(v, &Command{Name: "keydown?", Arity: FixedArgs(1), Reserved: true, Action: actionKeydownq})
}

func actionEqualq(i *Interpreter, name string, args []Token) (Token, error) {
	return Boolean{Value: TokensEqual(args[0], args[1])}, nil
}

func actionGreaterq(i *Interpreter, name string, args []Token) (Token, error) {
	a, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	b, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: a > b}, nil
}

func actionLessq(i *Interpreter, name string, args []Token) (Token, error) {
	a, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	b, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: a < b}, nil
}

func actionAnd(i *Interpreter, name string, args []Token) (Token, error) {
	for idx := range args {
		b, err := boolArg(name, idx, args)
		if err != nil {
			return nil, err
		}
		if !b {
			return Boolean{Value: false}, nil
		}
	}
	return Boolean{Value: true}, nil
}

func actionOr(i *Interpreter, name string, args []Token) (Token, error) {
	for idx := range args {
		b, err := boolArg(name, idx, args)
		if err != nil {
			return nil, err
		}
		if b {
			return Boolean{Value: true}, nil
		}
	}
	return Boolean{Value: false}, nil
}

func actionNot(i *Interpreter, name string, args []Token) (Token, error) {
	b, err := boolArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: !b}, nil
}

func actionNumberq(i *Interpreter, name string, args []Token) (Token, error) {
	_, ok := args[0].(Number)
	return Boolean{Value: ok}, nil
}

func actionWordq(i *Interpreter, name string, args []Token) (Token, error) {
	_, ok := args[0].(Word)
	return Boolean{Value: ok}, nil
}

func actionListq(i *Interpreter, name string, args []Token) (Token, error) {
	_, ok := args[0].(List)
	return Boolean{Value: ok}, nil
}

func actionEmptyq(i *Interpreter, name string, args []Token) (Token, error) {
	switch t := args[0].(type) {
	case Word:
		return Boolean{Value: len(t.Value) == 0}, nil
	case List:
		leaves, err := ParseList(t.Body, false, i.Data)
		if err != nil {
			return nil, err
		}
		return Boolean{Value: len(leaves) == 0}, nil
	}
	return nil, errTypef(name, 0, "word or list")
}

func actionMemberq(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 1, args, i.Data)
	if err != nil {
		return nil, err
	}
	for _, l := range seq.leaves {
		if TokensEqual(l, args[0]) {
			return Boolean{Value: true}, nil
		}
	}
	return Boolean{Value: false}, nil
}

// actionTouchingq reports whether the current object's bounding box
// overlaps the named object's, a simple axis-aligned-rectangle test
// (spec §4.7; exact collision geometry is left to the implementer).
func actionTouchingq(i *Interpreter, name string, args []Token) (Token, error) {
	otherName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	other, err := namedObject(i, otherName)
	if err != nil {
		return nil, err
	}
	self, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	sw, sh := math.Abs(float64(self.Width))/2, math.Abs(float64(self.Height))/2
	ow, oh := math.Abs(float64(other.Width))/2, math.Abs(float64(other.Height))/2
	overlap := math.Abs(float64(self.X-other.X)) <= sw+ow && math.Abs(float64(self.Y-other.Y)) <= sh+oh
	return Boolean{Value: overlap}, nil
}

func actionClickedq(i *Interpreter, name string, args []Token) (Token, error) {
	return Boolean{Value: i.Input.HasClick()}, nil
}

func actionKeyq(i *Interpreter, name string, args []Token) (Token, error) {
	return Boolean{Value: i.Input.HasKey()}, nil
}

func actionKeydownq(i *Interpreter, name string, args []Token) (Token, error) {
	key, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: i.Input.IsKeyDown(key)}, nil
}
