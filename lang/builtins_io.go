//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "time"

// registerIOBuiltins implements spec §4.7 "Timing and I/O".
func registerIOBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "wait", Arity: FixedArgs(1), Reserved: true, Action: actionWait})
	must(v, &Command{Name: "timer", Arity: NoArgs(), Reserved: true, Action: actionTimer})
	must(v, &Command{Name: "resett", Arity: NoArgs(), Reserved: true, Action: actionResett})
	must(v, &Command{Name: "readchar", Arity: NoArgs(), Reserved: true, Action: actionReadchar})
	must(v, &Command{Name: "readclick", Arity: NoArgs(), Reserved: true, Action: actionReadclick})

	print := &Command{Name: "print", Arity: FixedArgs(1), Reserved: true, Action: actionPrint}
	must(v, print)
	aliasMust(v, "pr", print)
	aliasMust(v, "show", print)

	must(v, &Command{Name: "announce", Arity: FixedArgs(1), Reserved: true, Action: actionAnnounce})

	ct := &Command{Name: "cleartext", Arity: NoArgs(), Reserved: true, Action: actionCleartext}
	must(v, ct)
	aliasMust(v, "ct", ct)

	must(v, &Command{Name: "cc", Arity: NoArgs(), Reserved: true, Action: actionCc})
}

// actionWait sleeps the interpreter thread for the requested duration
// and emits a Wait UI event so the renderer can repaint mid-animation
// (spec §5 "Suspension points").
func actionWait(i *Interpreter, name string, args []Token) (Token, error) {
	ms, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	i.Events.Send(UIEvent{Kind: EvtWait, Ms: int(ms)})
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return Void{}, nil
}

func actionTimer(i *Interpreter, name string, args []Token) (Token, error) {
	return Number{Value: i.TimerTenths()}, nil
}

func actionResett(i *Interpreter, name string, args []Token) (Token, error) {
	i.ResetTimer()
	return Void{}, nil
}

func actionReadchar(i *Interpreter, name string, args []Token) (Token, error) {
	key, ok := i.Input.NextKey()
	if !ok {
		return Word{Value: ""}, nil
	}
	return Word{Value: key}, nil
}

func actionReadclick(i *Interpreter, name string, args []Token) (Token, error) {
	x, y, ok := i.Input.NextClick()
	if !ok {
		return List{Body: "0 0"}, nil
	}
	return List{Body: Number{Value: x}.String() + " " + Number{Value: y}.String()}, nil
}

func actionPrint(i *Interpreter, name string, args []Token) (Token, error) {
	i.Events.Send(UIEvent{Kind: EvtConsolePrint, Text: DisplayString(args[0])})
	return Void{}, nil
}

func actionAnnounce(i *Interpreter, name string, args []Token) (Token, error) {
	i.Events.Send(UIEvent{Kind: EvtAnnounce, Text: DisplayString(args[0])})
	return Void{}, nil
}

func actionCleartext(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	if o.Kind != KindText {
		return nil, errTypef(name, 0, "text object")
	}
	o.Body = ""
	i.Events.Send(UIEvent{Kind: EvtTextClear, Name: o.Name})
	return Void{}, nil
}

func actionCc(i *Interpreter, name string, args []Token) (Token, error) {
	i.Events.Send(UIEvent{Kind: EvtClearConsole})
	return Void{}, nil
}
