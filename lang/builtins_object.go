//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// registerObjectBuiltins implements spec §4.7 "Object lifecycle /
// selection" plus the `showtext`/`hidetext` pair SPEC_FULL.md §C
// supplements from original_source's text-visibility commands.
func registerObjectBuiltins(v *Vocabulary) {
	newturtle := &Command{Name: "newturtle", Arity: FixedArgs(1), Reserved: true, Action: actionNewturtle}
	must(v, newturtle)

	newtext := &Command{Name: "newtext", Arity: FixedArgs(1), Reserved: true, Action: actionNewtext}
	must(v, newtext)

	remove := &Command{Name: "remove", Arity: FixedArgs(1), Reserved: true, Action: actionRemove}
	must(v, remove)

	talkto := &Command{Name: "talkto", Arity: FixedArgs(1), Reserved: true, Action: actionTalkto}
	must(v, talkto)
	aliasMust(v, "tto", talkto)

	ask := &Command{Name: "ask", Arity: FixedArgs(2), Reserved: true, Action: actionAsk}
	must(v, ask)

	who := &Command{Name: "who", Arity: NoArgs(), Reserved: true, Action: actionWho}
	must(v, who)

	showtext := &Command{Name: "showtext", Arity: NoArgs(), Reserved: true, Action: actionShowtext}
	must(v, showtext)

	hidetext := &Command{Name: "hidetext", Arity: NoArgs(), Reserved: true, Action: actionHidetext}
	must(v, hidetext)
}

func actionNewturtle(i *Interpreter, name string, args []Token) (Token, error) {
	objName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if _, exists := i.Canvas.Object(objName); exists {
		return nil, Errorf(ErrDuplicateObject, "%s already exists", objName)
	}
	obj := NewTurtle(objName, i.Data.BackpackDefaults())
	i.Canvas.AddObject(obj)
	i.Events.Send(UIEvent{Kind: EvtNewTurtle, Name: objName})
	i.Events.Send(UIEvent{Kind: EvtObjectPos, Name: objName, X: obj.X, Y: obj.Y})
	return Void{}, nil
}

func actionNewtext(i *Interpreter, name string, args []Token) (Token, error) {
	objName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if _, exists := i.Canvas.Object(objName); exists {
		return nil, Errorf(ErrDuplicateObject, "%s already exists", objName)
	}
	obj := NewText(objName)
	i.Canvas.AddObject(obj)
	i.Events.Send(UIEvent{Kind: EvtNewText, Name: objName})
	return Void{}, nil
}

func actionRemove(i *Interpreter, name string, args []Token) (Token, error) {
	objName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if _, ok := i.Canvas.Object(objName); !ok {
		return nil, errNoSuchObject(objName)
	}
	i.Canvas.RemoveObject(objName)
	i.Events.Send(UIEvent{Kind: EvtRemoveObject, Name: objName})
	return Void{}, nil
}

func actionTalkto(i *Interpreter, name string, args []Token) (Token, error) {
	objName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if _, ok := i.Canvas.Object(objName); !ok {
		return nil, errNoSuchObject(objName)
	}
	i.Canvas.Select(objName)
	return Void{}, nil
}

// actionAsk implements `ask "<name> [<code>]`: save the current
// selection, switch to name, run code, restore (spec §4.5).
func actionAsk(i *Interpreter, name string, args []Token) (Token, error) {
	objName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if _, ok := i.Canvas.Object(objName); !ok {
		return nil, errNoSuchObject(objName)
	}
	var body string
	switch t := args[1].(type) {
	case Word:
		body = t.Value
	case List:
		body = t.Body
	default:
		return nil, errTypef(name, 1, "word or list")
	}
	saved := i.Canvas.Selected
	i.Canvas.Select(objName)
	result, err := i.Interpret(body)
	i.Canvas.Select(saved)
	return result, err
}

// actionWho returns the name of the currently selected object.
func actionWho(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Word{Value: o.Name}, nil
}

// actionShowtext and actionHidetext implement the text-visibility pair
// SPEC_FULL.md §C supplements, grounded on original_source's
// `show_text`/`hide_text` in command/object.rs: they toggle the current
// text object's Visible flag and mirror it via ObjectVisible, the same
// event `st`/`ht` use for turtles.
func actionShowtext(i *Interpreter, name string, args []Token) (Token, error) {
	return setTextVisible(i, true)
}

func actionHidetext(i *Interpreter, name string, args []Token) (Token, error) {
	return setTextVisible(i, false)
}

func setTextVisible(i *Interpreter, visible bool) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	if o.Kind != KindText {
		return nil, errTypef("showtext", 0, "text object")
	}
	o.Visible = visible
	i.Events.Send(UIEvent{Kind: EvtObjectVisible, Name: o.Name, Bool: visible})
	return Void{}, nil
}
