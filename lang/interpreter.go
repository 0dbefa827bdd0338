//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import (
	"fmt"
	"log"
	"time"
)

// Binding is one (name, value) pair passed to InterpretInNewScope when
// invoking a user procedure or a `dotimes`/`dolist` body.
type Binding struct {
	Name  string
	Value Token
}

// Interpreter is the driver described in spec §4.3: it owns the
// vocabulary, the reader, the data store, the canvas, the input buffer,
// and the outbound/inbound event channel, and evaluates tokens,
// coordinating scope and propagating errors. Grounded on swatcl's
// Interpreter (command table + call frames + Evaluate loop), generalized
// per spec to a scope deque, a canvas model, and an event-channel pair
// the Tcl interpreter never needed.
type Interpreter struct {
	Vocab  *Vocabulary
	Reader *Reader
	Data   *DataStore
	Canvas *CanvasModel
	Input  *InputBuffer
	Events *EventChannel
	Logger *log.Logger

	// Debug gates the per-dispatch trace line, mirroring the
	// DEBUG-gated println!("{} {:?}", ...) in the original interpreter.
	Debug bool

	startTime time.Time
	running   bool
}

// NewInterpreter builds a fully wired interpreter: a fresh data store
// rooted at baseDir, a default-sized canvas, an empty input buffer, and
// the full built-in vocabulary registered (spec §4.7).
func NewInterpreter(baseDir string, events *EventChannel, logger *log.Logger) *Interpreter {
	vocab := NewVocabulary()
	interp := &Interpreter{
		Vocab:  vocab,
		Data:   NewDataStore(baseDir),
		Canvas: NewCanvasModel(800, 600),
		Input:  NewInputBuffer(),
		Events: events,
		Logger: logger,
	}
	interp.Reader = NewReader(vocab)
	registerAllBuiltins(vocab)
	return interp
}

// IsRunning reports whether a top-level program is currently executing.
func (i *Interpreter) IsRunning() bool {
	return i.running
}

// TimerTenths returns tenths-of-seconds elapsed since the timer was last
// reset (spec §4.7 `timer`).
func (i *Interpreter) TimerTenths() float32 {
	return float32(time.Since(i.startTime).Seconds() * 10)
}

// ResetTimer zeroes the program timer (spec §4.7 `resett`).
func (i *Interpreter) ResetTimer() {
	i.startTime = time.Now()
}

// Reset discards the data store and canvas and rebuilds them from
// defaults. Only permitted when no program is running (spec §4.4,
// §5 "Reset policy").
func (i *Interpreter) Reset() error {
	if i.running {
		return fmt.Errorf("cannot reset while a program is running")
	}
	i.Data = NewDataStore(i.Data.BaseDir)
	i.Canvas = NewCanvasModel(800, 600)
	i.Input = NewInputBuffer()
	i.Reader = NewReader(i.Vocab)
	return nil
}

// Interpret pushes a non-paren frame, runs the read/eval loop, and pops
// the frame. Errors propagate to the caller.
func (i *Interpreter) Interpret(code string) (Token, error) {
	return i.executeCode(code, false, false)
}

// InterpretMain is like Interpret, but additionally resets the program
// timer and installs top-level error handling: errors are formatted and
// emitted to the UI rather than re-raised (spec §7 "Top-level").
func (i *Interpreter) InterpretMain(code string) (Token, error) {
	i.ResetTimer()
	i.running = true
	return i.executeCode(code, false, true)
}

// InterpretInParenthesis pushes a paren frame, so variadic commands read
// until the frame is exhausted, then runs the loop.
func (i *Interpreter) InterpretInParenthesis(code string) (Token, error) {
	return i.executeCode(code, true, false)
}

// InterpretInNewScope pushes a scope, binds each (name, value) pair as a
// local, runs code, removes those bindings, and pops the scope -- used
// for procedure calls, `dotimes`, and `dolist` (spec §4.3). `ask` runs
// its body through Interpret, in the caller's scope.
func (i *Interpreter) InterpretInNewScope(code string, params []Binding) (Token, error) {
	if err := i.Data.PushScope(); err != nil {
		return nil, err
	}
	for _, p := range params {
		i.Data.InitLocal(p.Name, p.Value)
	}
	result, err := i.Interpret(code)
	for _, p := range params {
		i.Data.ClearName(p.Name)
	}
	i.Data.PopScope()
	return result, err
}

// executeCode is the shared engine behind the four Interpret* entry
// points (spec §4.3 "Main loop").
func (i *Interpreter) executeCode(code string, inParen bool, handleError bool) (Token, error) {
	if code == "" {
		return Void{}, nil
	}
	i.Reader.PushFrame(code, inParen)
	for {
		if err := i.drainInput(); err != nil {
			if handleError {
				i.handleTopLevelError(err)
				return Void{}, nil
			}
			i.Reader.PopFrame()
			return nil, err
		}

		tok, err := i.Reader.ReadToken()
		if err != nil {
			if IsEOF(err) {
				i.Reader.PopFrame()
				break
			}
			if handleError {
				i.handleTopLevelError(err)
				return Void{}, nil
			}
			i.Reader.PopFrame()
			return nil, err
		}

		isReturn := IsOutput(tok)
		result, evalErr := i.Evaluate(tok)
		if evalErr != nil {
			if handleError {
				i.handleTopLevelError(evalErr)
				return Void{}, nil
			}
			i.Reader.PopFrame()
			return nil, evalErr
		}
		if isReturn {
			i.Reader.PopFrame()
			if handleError {
				i.finishTopLevel()
			}
			return result, nil
		}
	}
	if handleError {
		i.finishTopLevel()
	}
	return Void{}, nil
}

// finishTopLevel implements the clean-completion half of spec §4.3's
// `exit_scope`/`clean_up` sequence: reset the scope to global and emit
// Done, mirroring the error path in handleTopLevelError so a host never
// waits past a successful top-level run for the Done event spec §5
// requires before issuing Reset/InterpretMain again.
func (i *Interpreter) finishTopLevel() {
	i.Data.ResetScope()
	if i.Events != nil {
		i.Events.Send(UIEvent{Kind: EvtDone})
	}
	i.running = false
}

// drainInput non-blockingly drains all pending input events, dispatching
// them; an Interrupt event surfaces as ErrInterrupt (spec §4.6).
func (i *Interpreter) drainInput() error {
	if i.Events == nil {
		return nil
	}
	for {
		evt, ok := i.Events.tryRecvInput()
		if !ok {
			return nil
		}
		switch evt.Kind {
		case InKeyDown:
			i.Input.PressKey(evt.Key)
		case InKeyUp:
			i.Input.ReleaseKey(evt.Key)
		case InClick:
			i.Input.Click(evt.X, evt.Y)
		case InInterrupt:
			return errInterrupt()
		}
	}
}

// Evaluate dispatches a single token (spec §4.3 "Main loop" step 4).
func (i *Interpreter) Evaluate(tok Token) (Token, error) {
	switch t := tok.(type) {
	case Invocation:
		args := make([]Token, len(t.Args))
		for idx, a := range t.Args {
			v, err := i.Evaluate(a)
			if err != nil {
				return nil, err
			}
			args[idx] = v
		}
		if i.Debug && i.Logger != nil {
			i.Logger.Printf("%s %v", t.Command.Name, args)
		}
		return t.Command.Action(i, t.Command.Name, args)
	case VariableRef:
		v, ok := i.Data.GetVariable(t.Name)
		if !ok {
			return nil, errUnboundf(t.Name)
		}
		return v, nil
	case Undefined:
		return nil, errUnknownf(t.Identifier)
	default:
		return tok, nil
	}
}

// handleTopLevelError implements spec §7's top-level error policy:
// format and emit the error (unless it is the Interrupt sentinel), clear
// every lexer frame, reset the scope to global, and emit Done.
func (i *Interpreter) handleTopLevelError(err error) {
	if !IsInterrupt(err) {
		msg := fmt.Sprintf("error: %v", err)
		if i.Events != nil {
			i.Events.Send(UIEvent{Kind: EvtConsolePrint, Text: msg})
		}
		if i.Logger != nil {
			i.Logger.Printf("interpreter error: %v", err)
		}
	}
	i.Reader.ClearFrames()
	i.finishTopLevel()
}
