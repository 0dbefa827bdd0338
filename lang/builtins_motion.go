//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "math"

// registerMotionBuiltins implements spec §4.7 "Turtle motion" plus the
// `distance`/`towards` pair SPEC_FULL.md §C supplements from
// original_source's command/motion.rs.
func registerMotionBuiltins(v *Vocabulary) {
	fd := &Command{Name: "forward", Arity: FixedArgs(1), Reserved: true, Action: actionForward}
	must(v, fd)
	aliasMust(v, "fd", fd)

	bk := &Command{Name: "back", Arity: FixedArgs(1), Reserved: true, Action: actionBack}
	must(v, bk)
	aliasMust(v, "bk", bk)

	lt := &Command{Name: "left", Arity: FixedArgs(1), Reserved: true, Action: actionLeft}
	must(v, lt)
	aliasMust(v, "lt", lt)

	rt := &Command{Name: "right", Arity: FixedArgs(1), Reserved: true, Action: actionRight}
	must(v, rt)
	aliasMust(v, "rt", rt)

	must(v, &Command{Name: "setx", Arity: FixedArgs(1), Reserved: true, Action: actionSetx})
	must(v, &Command{Name: "sety", Arity: FixedArgs(1), Reserved: true, Action: actionSety})
	must(v, &Command{Name: "setpos", Arity: FixedArgs(1), Reserved: true, Action: actionSetpos})
	must(v, &Command{Name: "home", Arity: NoArgs(), Reserved: true, Action: actionHome})

	seth := &Command{Name: "seth", Arity: FixedArgs(1), Reserved: true, Action: actionSeth}
	must(v, seth)
	aliasMust(v, "setheading", seth)

	must(v, &Command{Name: "pd", Arity: NoArgs(), Reserved: true, Action: actionPd})
	must(v, &Command{Name: "pu", Arity: NoArgs(), Reserved: true, Action: actionPu})
	must(v, &Command{Name: "st", Arity: NoArgs(), Reserved: true, Action: actionSt})
	must(v, &Command{Name: "ht", Arity: NoArgs(), Reserved: true, Action: actionHt})

	setsh := &Command{Name: "setsh", Arity: FixedArgs(1), Reserved: true, Action: actionSetshape}
	must(v, setsh)
	aliasMust(v, "setshape", setsh)

	must(v, &Command{Name: "distance", Arity: FixedArgs(1), Reserved: true, Action: actionDistance})
	must(v, &Command{Name: "towards", Arity: FixedArgs(1), Reserved: true, Action: actionTowards})
}

func headingVector(heading float32) (float32, float32) {
	rad := float64(heading) * math.Pi / 180
	return float32(math.Sin(rad)), float32(math.Cos(rad))
}

// moveTo updates a turtle's position, draws a line if pen-down, and
// emits the mirroring UI events (spec §4.5/§4.6).
func moveTo(i *Interpreter, o *Object, nx, ny float32) {
	ox, oy := o.X, o.Y
	o.X, o.Y = nx, ny
	if o.PenDown {
		i.Canvas.DrawLine(ox, oy, nx, ny, o.Color, o.PenWidth)
		i.Events.Send(UIEvent{Kind: EvtAddLine, Name: o.Name, Line: Line{X1: ox, Y1: oy, X2: nx, Y2: ny, Color: o.Color, Width: o.PenWidth}})
	}
	i.Events.Send(UIEvent{Kind: EvtObjectPos, Name: o.Name, X: nx, Y: ny})
}

func setHeading(i *Interpreter, o *Object, heading float32) {
	for heading < 0 {
		heading += 360
	}
	heading = float32(math.Mod(float64(heading), 360))
	o.Heading = heading
	i.Events.Send(UIEvent{Kind: EvtTurtleHeading, Name: o.Name, Number: heading})
}

func actionForward(i *Interpreter, name string, args []Token) (Token, error) {
	dist, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	dx, dy := headingVector(o.Heading)
	moveTo(i, o, o.X+dx*dist, o.Y+dy*dist)
	return Void{}, nil
}

func actionBack(i *Interpreter, name string, args []Token) (Token, error) {
	dist, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	dx, dy := headingVector(o.Heading)
	moveTo(i, o, o.X-dx*dist, o.Y-dy*dist)
	return Void{}, nil
}

func actionLeft(i *Interpreter, name string, args []Token) (Token, error) {
	deg, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	setHeading(i, o, o.Heading-deg)
	return Void{}, nil
}

func actionRight(i *Interpreter, name string, args []Token) (Token, error) {
	deg, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	setHeading(i, o, o.Heading+deg)
	return Void{}, nil
}

func actionSetx(i *Interpreter, name string, args []Token) (Token, error) {
	x, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	moveTo(i, o, x, o.Y)
	return Void{}, nil
}

func actionSety(i *Interpreter, name string, args []Token) (Token, error) {
	y, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	moveTo(i, o, o.X, y)
	return Void{}, nil
}

// actionSetpos accepts only a two-element list `[x y]`; any other
// argument is a type mismatch. Scalar positioning is done by setx/sety.
func actionSetpos(i *Interpreter, name string, args []Token) (Token, error) {
	lst, ok := args[0].(List)
	if !ok {
		return nil, errTypef(name, 0, "list")
	}
	leaves, err := ParseList(lst.Body, true, i.Data)
	if err != nil {
		return nil, err
	}
	if len(leaves) != 2 {
		return nil, errArity(name, 2, len(leaves))
	}
	x, ok1 := leaves[0].(Number)
	y, ok2 := leaves[1].(Number)
	if !ok1 || !ok2 {
		return nil, errTypef(name, 0, "[number number]")
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	moveTo(i, o, x.Value, y.Value)
	return Void{}, nil
}

func actionHome(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	moveTo(i, o, 0, 0)
	setHeading(i, o, 0)
	return Void{}, nil
}

func actionSeth(i *Interpreter, name string, args []Token) (Token, error) {
	deg, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	setHeading(i, o, deg)
	return Void{}, nil
}

func actionPd(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.PenDown = true
	return Void{}, nil
}

func actionPu(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.PenDown = false
	return Void{}, nil
}

func actionSt(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.Visible = true
	i.Events.Send(UIEvent{Kind: EvtObjectVisible, Name: o.Name, Bool: true})
	return Void{}, nil
}

func actionHt(i *Interpreter, name string, args []Token) (Token, error) {
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.Visible = false
	i.Events.Send(UIEvent{Kind: EvtObjectVisible, Name: o.Name, Bool: false})
	return Void{}, nil
}

func actionSetshape(i *Interpreter, name string, args []Token) (Token, error) {
	shapeName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	shape, ok := i.Data.Shape(shapeName)
	if !ok {
		return nil, errNoSuchObject(shapeName)
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	o.Shape = shape
	i.Events.Send(UIEvent{Kind: EvtTurtleShape, Name: o.Name, Shape: shape})
	return Void{}, nil
}

// actionDistance and actionTowards are SPEC_FULL.md §C's supplemented
// navigation helpers, grounded on original_source's
// `distance`/`towards` in command/motion.rs: they compute against
// either a named object or an [x y] list target.
func targetXY(i *Interpreter, name string, tok Token) (float32, float32, error) {
	switch t := tok.(type) {
	case Word:
		o, err := namedObject(i, t.Value)
		if err != nil {
			return 0, 0, err
		}
		return o.X, o.Y, nil
	case List:
		leaves, err := ParseList(t.Body, true, i.Data)
		if err != nil {
			return 0, 0, err
		}
		if len(leaves) != 2 {
			return 0, 0, errArity(name, 2, len(leaves))
		}
		x, ok1 := leaves[0].(Number)
		y, ok2 := leaves[1].(Number)
		if !ok1 || !ok2 {
			return 0, 0, errTypef(name, 0, "[number number]")
		}
		return x.Value, y.Value, nil
	}
	return 0, 0, errTypef(name, 0, "word or [number number]")
}

func actionDistance(i *Interpreter, name string, args []Token) (Token, error) {
	tx, ty, err := targetXY(i, name, args[0])
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	dx, dy := float64(tx-o.X), float64(ty-o.Y)
	return Number{Value: float32(math.Sqrt(dx*dx + dy*dy))}, nil
}

func actionTowards(i *Interpreter, name string, args []Token) (Token, error) {
	tx, ty, err := targetXY(i, name, args[0])
	if err != nil {
		return nil, err
	}
	o, err := currentObject(i)
	if err != nil {
		return nil, err
	}
	dx, dy := float64(tx-o.X), float64(ty-o.Y)
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return Number{Value: float32(deg)}, nil
}
