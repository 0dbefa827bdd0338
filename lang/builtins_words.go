//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "strings"

// registerWordListBuiltins implements spec §4.7 "Words and lists".
func registerWordListBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "word", Arity: VariadicArgs(2), Reserved: true, Action: actionWord})
	list := &Command{Name: "list", Arity: VariadicArgs(2), Reserved: true, Action: actionList}
	must(v, list)
	aliasMust(v, "se", list)
	aliasMust(v, "sentence", list)

	must(v, &Command{Name: "count", Arity: FixedArgs(1), Reserved: true, Action: actionCount})
	must(v, &Command{Name: "item", Arity: FixedArgs(2), Reserved: true, Action: actionItem})
	must(v, &Command{Name: "first", Arity: FixedArgs(1), Reserved: true, Action: actionFirst})
	must(v, &Command{Name: "last", Arity: FixedArgs(1), Reserved: true, Action: actionLast})

	bf := &Command{Name: "butfirst", Arity: FixedArgs(1), Reserved: true, Action: actionButfirst}
	must(v, bf)
	aliasMust(v, "bf", bf)

	bl := &Command{Name: "butlast", Arity: FixedArgs(1), Reserved: true, Action: actionButlast}
	must(v, bl)
	aliasMust(v, "bl", bl)

	must(v, &Command{Name: "fput", Arity: FixedArgs(2), Reserved: true, Action: actionFput})
	must(v, &Command{Name: "lput", Arity: FixedArgs(2), Reserved: true, Action: actionLput})
	must(v, &Command{Name: "ascii", Arity: FixedArgs(1), Reserved: true, Action: actionAscii})
	must(v, &Command{Name: "char", Arity: FixedArgs(1), Reserved: true, Action: actionChar})
}

func actionWord(i *Interpreter, name string, args []Token) (Token, error) {
	var sb strings.Builder
	for idx := range args {
		w, err := wordArg(name, idx, args)
		if err != nil {
			return nil, err
		}
		sb.WriteString(w)
	}
	return Word{Value: sb.String()}, nil
}

func actionList(i *Interpreter, name string, args []Token) (Token, error) {
	return List{Body: JoinListString(args)}, nil
}

func actionCount(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 0, args, i.Data)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(len(seq.leaves))}, nil
}

func actionItem(i *Interpreter, name string, args []Token) (Token, error) {
	idx, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	seq, err := toSequence(name, 1, args, i.Data)
	if err != nil {
		return nil, err
	}
	n := int(idx)
	if n < 1 || n > len(seq.leaves) {
		return nil, Errorf(ErrDomainError, "%s: index %d out of range", name, n)
	}
	return seq.leaves[n-1], nil
}

func actionFirst(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 0, args, i.Data)
	if err != nil {
		return nil, err
	}
	if len(seq.leaves) == 0 {
		return nil, Errorf(ErrDomainError, "%s: empty", name)
	}
	return seq.leaves[0], nil
}

func actionLast(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 0, args, i.Data)
	if err != nil {
		return nil, err
	}
	if len(seq.leaves) == 0 {
		return nil, Errorf(ErrDomainError, "%s: empty", name)
	}
	return seq.leaves[len(seq.leaves)-1], nil
}

func actionButfirst(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 0, args, i.Data)
	if err != nil {
		return nil, err
	}
	if len(seq.leaves) == 0 {
		return nil, Errorf(ErrDomainError, "%s: empty", name)
	}
	return seq.rebuild(seq.leaves[1:]), nil
}

func actionButlast(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 0, args, i.Data)
	if err != nil {
		return nil, err
	}
	if len(seq.leaves) == 0 {
		return nil, Errorf(ErrDomainError, "%s: empty", name)
	}
	return seq.rebuild(seq.leaves[:len(seq.leaves)-1]), nil
}

func actionFput(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 1, args, i.Data)
	if err != nil {
		return nil, err
	}
	leaves := append([]Token{args[0]}, seq.leaves...)
	return seq.rebuild(leaves), nil
}

func actionLput(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 1, args, i.Data)
	if err != nil {
		return nil, err
	}
	leaves := append(append([]Token{}, seq.leaves...), args[0])
	return seq.rebuild(leaves), nil
}

// namedKeyCodes maps the six reserved special-key names to their ASCII
// codes (spec §6 "Key naming").
var namedKeyCodes = map[string]int{
	"space": 32,
	"enter": 10,
	"left":  37,
	"up":    38,
	"right": 39,
	"down":  40,
}

var codeToName = func() map[int]string {
	m := make(map[int]string, len(namedKeyCodes))
	for name, code := range namedKeyCodes {
		m[code] = name
	}
	return m
}()

func actionAscii(i *Interpreter, name string, args []Token) (Token, error) {
	w, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if code, ok := namedKeyCodes[strings.ToLower(w)]; ok {
		return Number{Value: float32(code)}, nil
	}
	runes := []rune(w)
	if len(runes) != 1 {
		return nil, errTypef(name, 0, "single character")
	}
	return Number{Value: float32(runes[0])}, nil
}

func actionChar(i *Interpreter, name string, args []Token) (Token, error) {
	code, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	n := int(code)
	if nm, ok := codeToName[n]; ok {
		return Word{Value: nm}, nil
	}
	return Word{Value: string(rune(n))}, nil
}
