//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// registerFlowBuiltins implements spec §4.7 "Control flow".
func registerFlowBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "if", Arity: FixedArgs(2), Reserved: true, Action: actionIf})
	must(v, &Command{Name: "ifelse", Arity: FixedArgs(3), Reserved: true, Action: actionIfelse})
	must(v, &Command{Name: "repeat", Arity: FixedArgs(2), Reserved: true, Action: actionRepeat})
	must(v, &Command{Name: "forever", Arity: FixedArgs(1), Reserved: true, Action: actionForever})
	must(v, &Command{Name: "dotimes", Arity: FixedArgs(2), Reserved: true, Action: actionDotimes})
	must(v, &Command{Name: "dolist", Arity: FixedArgs(2), Reserved: true, Action: actionDolist})
	must(v, &Command{Name: "carefully", Arity: FixedArgs(2), Reserved: true, Action: actionCarefully})
	must(v, &Command{Name: "errormessage", Arity: NoArgs(), Reserved: true, Action: actionErrormessage})
}

func bodyText(tok Token) (string, error) {
	switch t := tok.(type) {
	case List:
		return t.Body, nil
	case Word:
		return t.Value, nil
	}
	return "", errTypef("body", 0, "word or list")
}

func actionIf(i *Interpreter, name string, args []Token) (Token, error) {
	cond, ok := args[0].(Boolean)
	if !ok {
		return nil, errTypef(name, 0, "boolean")
	}
	if !cond.Value {
		return Void{}, nil
	}
	body, err := bodyText(args[1])
	if err != nil {
		return nil, err
	}
	return Void{}, runBody(i, body)
}

func actionIfelse(i *Interpreter, name string, args []Token) (Token, error) {
	cond, ok := args[0].(Boolean)
	if !ok {
		return nil, errTypef(name, 0, "boolean")
	}
	branch := args[2]
	if cond.Value {
		branch = args[1]
	}
	body, err := bodyText(branch)
	if err != nil {
		return nil, err
	}
	return Void{}, runBody(i, body)
}

func actionRepeat(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	body, err := bodyText(args[1])
	if err != nil {
		return nil, err
	}
	for count := 0; count < int(n); count++ {
		if err := runBody(i, body); err != nil {
			return nil, err
		}
	}
	return Void{}, nil
}

// actionForever loops the body until an error (normally Interrupt)
// propagates out, per spec §4.7: "only exits by interrupt or error".
func actionForever(i *Interpreter, name string, args []Token) (Token, error) {
	body, err := bodyText(args[0])
	if err != nil {
		return nil, err
	}
	for {
		if err := runBody(i, body); err != nil {
			return nil, err
		}
	}
}

// actionDotimes implements `dotimes [var n] body`: run body once per
// iteration with var bound to 1..n in a fresh scope each time.
func actionDotimes(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "[var n]")
	}
	leaves, err := ParseList(lst.Body, false, i.Data)
	if err != nil {
		return nil, err
	}
	if len(leaves) != 2 {
		return nil, errArity(name, 2, len(leaves))
	}
	varName := DisplayString(leaves[0])
	countTok, evalErr := i.Evaluate(leaves[1])
	if evalErr != nil {
		return nil, evalErr
	}
	count, ok := countTok.(Number)
	if !ok {
		return nil, errTypef(name, 0, "[var number]")
	}
	body, err := bodyText(args[1])
	if err != nil {
		return nil, err
	}
	for n := 1; n <= int(count.Value); n++ {
		if _, err := i.InterpretInNewScope(body, []Binding{{Name: varName, Value: Number{Value: float32(n)}}}); err != nil {
			return nil, err
		}
	}
	return Void{}, nil
}

// actionDolist implements `dolist [var list] body`: run body once per
// element of list with var bound to that element in a fresh scope.
func actionDolist(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "[var list]")
	}
	leaves, err := ParseList(lst.Body, false, i.Data)
	if err != nil {
		return nil, err
	}
	if len(leaves) != 2 {
		return nil, errArity(name, 2, len(leaves))
	}
	varName := DisplayString(leaves[0])
	listTok, evalErr := i.Evaluate(leaves[1])
	if evalErr != nil {
		return nil, evalErr
	}
	targetList, ok := listTok.(List)
	if !ok {
		return nil, errTypef(name, 0, "[var list]")
	}
	items, err := ParseList(targetList.Body, true, i.Data)
	if err != nil {
		return nil, err
	}
	body, err := bodyText(args[1])
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, err := i.InterpretInNewScope(body, []Binding{{Name: varName, Value: item}}); err != nil {
			return nil, err
		}
	}
	return Void{}, nil
}

// actionCarefully implements `carefully [try] [catch]` (spec §7): run
// try; if it signals any error other than Interrupt, record the message
// and run catch instead.
func actionCarefully(i *Interpreter, name string, args []Token) (Token, error) {
	tryBody, err := bodyText(args[0])
	if err != nil {
		return nil, err
	}
	result, tryErr := i.Interpret(tryBody)
	if tryErr == nil {
		return result, nil
	}
	if IsInterrupt(tryErr) {
		return nil, tryErr
	}
	i.Data.SetLastError(tryErr.Error())
	catchBody, err := bodyText(args[1])
	if err != nil {
		return nil, err
	}
	return i.Interpret(catchBody)
}

func actionErrormessage(i *Interpreter, name string, args []Token) (Token, error) {
	return Word{Value: i.Data.LastError()}, nil
}
