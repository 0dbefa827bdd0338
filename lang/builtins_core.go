//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "strings"

// registerAllBuiltins wires the entire built-in vocabulary (spec §4.7)
// plus the five features SPEC_FULL.md §C supplements from
// original_source. Order matches the family breakdown of spec §2.
func registerAllBuiltins(v *Vocabulary) {
	registerCoreBuiltins(v)
	registerObjectBuiltins(v)
	registerMotionBuiltins(v)
	registerAccessorBuiltins(v)
	registerMathBuiltins(v)
	registerPredicateBuiltins(v)
	registerWordListBuiltins(v)
	registerFlowBuiltins(v)
	registerIOBuiltins(v)
	registerFileBuiltins(v)
	registerCanvasBuiltins(v)
	registerInfixOperators(v)
}

func must(v *Vocabulary, cmd *Command) {
	if err := v.Register(cmd); err != nil {
		panic(err)
	}
}

func aliasMust(v *Vocabulary, newName string, cmd *Command) {
	if err := v.Alias(newName, cmd); err != nil {
		panic(err)
	}
}

// registerCoreBuiltins implements spec §4.7 "Definition and binding" plus
// `turtlesown`, `again`, and the hidden `__paren` dispatcher.
func registerCoreBuiltins(v *Vocabulary) {
	makeCmd := &Command{Name: "make", Arity: FixedArgs(2), Reserved: true, Action: actionMake}
	must(v, makeCmd)

	to := &Command{Name: "to", Arity: FixedArgs(1), Reserved: true, Action: actionTo}
	must(v, to)

	local := &Command{Name: "local", Arity: FixedArgs(1), Reserved: true, Action: actionLocal}
	must(v, local)

	let := &Command{Name: "let", Arity: FixedArgs(1), Reserved: true, Action: actionLet}
	must(v, let)

	clearname := &Command{Name: "clearname", Arity: FixedArgs(1), Reserved: true, Action: actionClearname}
	must(v, clearname)

	clearnames := &Command{Name: "clearnames", Arity: NoArgs(), Reserved: true, Action: actionClearnames}
	must(v, clearnames)

	output := &Command{Name: "output", Arity: FixedArgs(1), Reserved: true, Action: actionOutput}
	must(v, output)
	aliasMust(v, "op", output)

	run := &Command{Name: "run", Arity: FixedArgs(1), Reserved: true, Action: actionRun}
	must(v, run)

	turtlesown := &Command{Name: "turtlesown", Arity: FixedArgs(1), Reserved: true, Action: actionTurtlesown}
	must(v, turtlesown)

	again := &Command{Name: "again", Arity: NoArgs(), Reserved: true, Action: actionAgain}
	must(v, again)

	paren := &Command{Name: "__paren", Arity: FixedArgs(1), Reserved: true, Action: actionParen}
	must(v, paren)

	procs := &Command{Name: "procedures", Arity: NoArgs(), Reserved: true, Action: actionProcedures}
	must(v, procs)
}

func actionMake(i *Interpreter, name string, args []Token) (Token, error) {
	varName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	i.Data.SetVariable(varName, args[1])
	return Void{}, nil
}

// actionTo is the action behind the procedure-definition command (spec
// §4.3 "Procedure definition"): args[0] arrives as the ProcedureLiteral
// the reader captured; registering it installs a command whose own
// action re-looks-up the procedure by name on every call, so
// redefinition and recursion both work without cyclic references.
func actionTo(i *Interpreter, name string, args []Token) (Token, error) {
	lit, ok := args[0].(ProcedureLiteral)
	if !ok {
		return nil, errTypef(name, 0, "procedure literal")
	}
	proc := &Procedure{Name: lit.Name, Params: lit.Params, Body: lit.Body}
	i.Data.DefineProcedure(proc)
	cmd := &Command{
		Name:     proc.Name,
		Arity:    FixedArgs(len(proc.Params)),
		Reserved: false,
		Action:   actionUserProcedure,
	}
	if err := i.Vocab.Register(cmd); err != nil {
		return nil, err
	}
	return Void{}, nil
}

func actionUserProcedure(i *Interpreter, name string, args []Token) (Token, error) {
	proc, ok := i.Data.GetProcedure(name)
	if !ok {
		return nil, errNoSuchObject(name)
	}
	if len(args) != len(proc.Params) {
		return nil, errArity(name, len(proc.Params), len(args))
	}
	bindings := make([]Binding, len(proc.Params))
	for idx, p := range proc.Params {
		bindings[idx] = Binding{Name: p, Value: args[idx]}
	}
	return i.InterpretInNewScope(proc.Body, bindings)
}

func actionLocal(i *Interpreter, name string, args []Token) (Token, error) {
	varName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	i.Data.InitLocal(varName, Word{Value: ""})
	return Void{}, nil
}

// actionLet implements `let [name value name value ...]` (spec §4.4): a
// trailing name with no following value is silently dropped.
func actionLet(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "list")
	}
	leaves, err := ParseList(lst.Body, true, i.Data)
	if err != nil {
		return nil, err
	}
	for idx := 0; idx+1 < len(leaves); idx += 2 {
		varName := DisplayString(leaves[idx])
		i.Data.InitLocal(varName, leaves[idx+1])
	}
	return Void{}, nil
}

func actionClearname(i *Interpreter, name string, args []Token) (Token, error) {
	switch t := args[0].(type) {
	case Word:
		i.Data.ClearName(t.Value)
	case List:
		leaves, err := ParseList(t.Body, false, i.Data)
		if err != nil {
			return nil, err
		}
		for _, l := range leaves {
			i.Data.ClearName(DisplayString(l))
		}
	default:
		return nil, errTypef(name, 0, "word or list")
	}
	return Void{}, nil
}

func actionClearnames(i *Interpreter, name string, args []Token) (Token, error) {
	i.Data.ClearNames()
	return Void{}, nil
}

// actionOutput is recognized specially by the driver (IsOutput in
// token.go): evaluating it here just returns its argument, and the
// driver's main loop treats that return as "unwind this frame".
func actionOutput(i *Interpreter, name string, args []Token) (Token, error) {
	return args[0], nil
}

// actionRun re-interprets a Word or List body as a fresh statement
// sequence, the non-paren counterpart of __paren.
func actionRun(i *Interpreter, name string, args []Token) (Token, error) {
	var body string
	switch t := args[0].(type) {
	case Word:
		body = t.Value
	case List:
		body = t.Body
	default:
		return nil, errTypef(name, 0, "word or list")
	}
	return i.Interpret(body)
}

// actionTurtlesown implements spec §4.3's backpack-property definition:
// register a getter and a setter, default-initialise every existing
// turtle, and record the property centrally so new turtles inherit it
// (SPEC_FULL.md §D resolves the open question this way).
func actionTurtlesown(i *Interpreter, name string, args []Token) (Token, error) {
	prop, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	def := Token(Word{Value: ""})
	i.Data.DeclareBackpackProperty(prop, def)

	for _, objName := range i.Canvas.ObjectNames() {
		obj, _ := i.Canvas.Object(objName)
		if obj.Kind == KindTurtle {
			if obj.Backpack == nil {
				obj.Backpack = make(map[string]Token)
			}
			if _, ok := obj.Backpack[prop]; !ok {
				obj.Backpack[prop] = def
			}
		}
	}

	getter := &Command{Name: prop, Arity: NoArgs(), Action: func(i *Interpreter, name string, args []Token) (Token, error) {
		o, err := currentObject(i)
		if err != nil {
			return nil, err
		}
		if o.Kind != KindTurtle {
			return nil, errNoSuchObject(o.Name)
		}
		v, ok := o.Backpack[prop]
		if !ok {
			return nil, Errorf(ErrMissingProperty, "%s has no %s property", o.Name, prop)
		}
		return v, nil
	}}
	if err := i.Vocab.Register(getter); err != nil {
		return nil, err
	}

	setterName := "set" + prop
	setter := &Command{Name: setterName, Arity: FixedArgs(1), Action: func(i *Interpreter, name string, args []Token) (Token, error) {
		o, err := currentObject(i)
		if err != nil {
			return nil, err
		}
		if o.Kind != KindTurtle {
			return nil, errNoSuchObject(o.Name)
		}
		if o.Backpack == nil {
			o.Backpack = make(map[string]Token)
		}
		o.Backpack[prop] = args[0]
		return Void{}, nil
	}}
	return Void{}, i.Vocab.Register(setter)
}

// actionAgain implements `again` (spec §4.1): rewind the enclosing
// frame's cursor to the start.
func actionAgain(i *Interpreter, name string, args []Token) (Token, error) {
	i.Reader.ReturnToStart()
	return Void{}, nil
}

// actionParen is the hidden command the reader installs for every `(`
// group (spec §4.7 "Hidden"): its inner text is re-interpreted as an
// output-terminated expression, so `(3 + 4) * 2` evaluates the
// parenthesized group to a value before the outer infix continuation
// sees it.
func actionParen(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "list")
	}
	body := lst.Body
	if !strings.HasPrefix(strings.TrimSpace(body), "output ") && !strings.HasPrefix(strings.TrimSpace(body), "op ") {
		body = "output " + body
	}
	return i.InterpretInParenthesis(body)
}

// actionProcedures is SPEC_FULL.md §C's supplemented introspection
// command: it returns the names of every user-defined procedure as a
// list, grounded on original_source's `procedures` builtin in
// command/dictionary.rs.
func actionProcedures(i *Interpreter, name string, args []Token) (Token, error) {
	names := i.Data.ProcedureNames()
	return List{Body: strings.Join(names, " ")}, nil
}
