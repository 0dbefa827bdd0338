//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// registerAccessorBuiltins implements spec §4.7 "Object accessors" and
// their setters.
func registerAccessorBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "xcor", Arity: NoArgs(), Reserved: true, Action: actionXcor})
	must(v, &Command{Name: "ycor", Arity: NoArgs(), Reserved: true, Action: actionYcor})
	must(v, &Command{Name: "pos", Arity: NoArgs(), Reserved: true, Action: actionPos})
	must(v, &Command{Name: "heading", Arity: NoArgs(), Reserved: true, Action: actionHeading})
	must(v, &Command{Name: "color", Arity: NoArgs(), Reserved: true, Action: actionColor})
	must(v, &Command{Name: "size", Arity: NoArgs(), Reserved: true, Action: actionSize})
	must(v, &Command{Name: "pensize", Arity: NoArgs(), Reserved: true, Action: actionPensize})
	must(v, &Command{Name: "shape", Arity: NoArgs(), Reserved: true, Action: actionShape})
	must(v, &Command{Name: "fontsize", Arity: NoArgs(), Reserved: true, Action: actionFontsize})

	visibleq := &Command{Name: "visible?", Arity: NoArgs(), Reserved: true, Action: actionVisibleq}
	must(v, visibleq)

	setc := &Command{Name: "setc", Arity: FixedArgs(1), Reserved: true, Action: actionSetcolor}
	must(v, setc)
	aliasMust(v, "setcolor", setc)

	must(v, &Command{Name: "setsize", Arity: FixedArgs(1), Reserved: true, Action: actionSetsize})
	must(v, &Command{Name: "setpensize", Arity: FixedArgs(1), Reserved: true, Action: actionSetpensize})
	must(v, &Command{Name: "setfontsize", Arity: FixedArgs(1), Reserved: true, Action: actionSetfontsize})
	must(v, &Command{Name: "setstyle", Arity: FixedArgs(1), Reserved: true, Action: actionSetstyle})
}

func actionXcor(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Number{Value: o.X}, nil
}

func actionYcor(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Number{Value: o.Y}, nil
}

func actionPos(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return List{Body: Number{Value: o.X}.String() + " " + Number{Value: o.Y}.String()}, nil
}

func actionHeading(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Number{Value: o.Heading}, nil
}

func actionColor(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Number{Value: o.Color}, nil
}

func actionSize(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return List{Body: Number{Value: o.Width}.String() + " " + Number{Value: o.Height}.String()}, nil
}

func actionPensize(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Number{Value: o.PenWidth}, nil
}

func actionShape(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	switch o.Shape.Kind {
	case ShapeCircle:
		return Word{Value: "circle"}, nil
	case ShapeSquare:
		return Word{Value: "square"}, nil
	case ShapeImage:
		return Word{Value: o.Shape.Path}, nil
	default:
		return Word{Value: "triangle"}, nil
	}
}

func actionFontsize(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Number{Value: o.FontSize}, nil
}

func actionVisibleq(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	return Boolean{Value: o.Visible}, nil
}

func actionSetcolor(i *Interpreter, name string, args []Token) (Token, error) {
	c, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.Color = c
	i.Events.Send(UIEvent{Kind: EvtObjectColor, Name: o.Name, Number: c})
	return Void{}, nil
}

func actionSetsize(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	switch t := args[0].(type) {
	case Number:
		o.Width, o.Height = t.Value, t.Value
	case List:
		leaves, err := ParseList(t.Body, true, i.Data)
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
		o.Width, o.Height = w.Value, h.Value
	default:
		return nil, errTypef(name, 0, "number or [number number]")
	}
	i.Events.Send(UIEvent{Kind: EvtObjectSize, Name: o.Name, W: o.Width, H: o.Height})
	return Void{}, nil
}

func actionSetpensize(i *Interpreter, name string, args []Token) (Token, error) {
	w, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.PenWidth = w
	return Void{}, nil
}

func actionSetfontsize(i *Interpreter, name string, args []Token) (Token, error) {
	sz, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.FontSize = sz
	i.Events.Send(UIEvent{Kind: EvtTextSize, Name: o.Name, Number: sz})
	return Void{}, nil
}

// actionSetstyle accepts a list of style words (`bold`, `italic`,
// `underline`) and rebuilds the style bitmask from scratch.
func actionSetstyle(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "list")
	}
	leaves, err := ParseList(lst.Body, false, i.Data)
	if err != nil {
		return nil, err
	}
	var style StyleSet
	for _, l := range leaves {
		switch foldName(DisplayString(l)) {
		case "bold":
			style |= StyleSet(StyleBold)
		case "italic":
			style |= StyleSet(StyleItalic)
		case "underline":
			style |= StyleSet(StyleUnderline)
		}
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.TextStyle = style
	i.Events.Send(UIEvent{Kind: EvtTextStyle, Name: o.Name, Style: style})
	return Void{}, nil
}
