//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// registerCanvasBuiltins implements spec §4.7 "Canvas background".
func registerCanvasBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "bg", Arity: NoArgs(), Reserved: true, Action: actionBg})
	must(v, &Command{Name: "setbg", Arity: FixedArgs(1), Reserved: true, Action: actionSetbg})
	must(v, &Command{Name: "newprojectsize", Arity: FixedArgs(1), Reserved: true, Action: actionNewprojectsize})
	must(v, &Command{Name: "clean", Arity: NoArgs(), Reserved: true, Action: actionClean})
	must(v, &Command{Name: "cg", Arity: NoArgs(), Reserved: true, Action: actionCg})
}

func actionBg(i *Interpreter, name string, args []Token) (Token, error) {
	return Number{Value: i.Canvas.BgColor}, nil
}

func actionSetbg(i *Interpreter, name string, args []Token) (Token, error) {
	c, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	i.Canvas.BgColor = c
	i.Events.Send(UIEvent{Kind: EvtBgColor, Number: c})
	return Void{}, nil
}

func actionNewprojectsize(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "[w h]")
	}
	leaves, err := ParseList(lst.Body, true, i.Data)
	if err != nil {
		return nil, err
	}
	if len(leaves) != 2 {
		return nil, errArity(name, 2, len(leaves))
	}
	w, ok1 := leaves[0].(Number)
	h, ok2 := leaves[1].(Number)
	if !ok1 || !ok2 {
		return nil, errTypef(name, 0, "[number number]")
	}
	i.Canvas.Resize(int(w.Value), int(h.Value))
	i.Events.Send(UIEvent{Kind: EvtCanvasSize, W: w.Value, H: h.Value})
	return Void{}, nil
}

func actionClean(i *Interpreter, name string, args []Token) (Token, error) {
	i.Canvas.Clean()
	i.Events.Send(UIEvent{Kind: EvtClean})
	return Void{}, nil
}

func actionCg(i *Interpreter, name string, args []Token) (Token, error) {
	i.Canvas.Clean()
	i.Events.Send(UIEvent{Kind: EvtClean})
	if o, err := currentObject(i); err == nil {
		moveTo(i, o, 0, 0)
		setHeading(i, o, 0)
	}
	return Void{}, nil
}

// registerInfixOperators installs the operator table the reader's
// tryInfixContinuation consults (spec §4.1 step 7): each symbol maps
// onto the corresponding prefix command's action, so `3 + 4` and
// `sum 3 4` share one implementation.
func registerInfixOperators(v *Vocabulary) {
	bind := func(symbol, target string) {
		cmd, ok := v.Lookup(target)
		if !ok {
			panic("infix target not registered: " + target)
		}
		v.RegisterInfix(&Command{Name: symbol, Arity: FixedArgs(2), Reserved: true, Action: cmd.Action})
	}
	bind("+", "sum")
	bind("-", "difference")
	bind("*", "product")
	bind("/", "quotient")
	bind("^", "power")
	bind("%", "remainder")
	bind("=", "equal?")
	bind(">", "greater?")
	bind("<", "less?")
}
