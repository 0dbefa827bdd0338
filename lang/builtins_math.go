//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import "math"

// registerMathBuiltins implements spec §4.7 "Arithmetic".
func registerMathBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "sum", Arity: VariadicArgs(2), Reserved: true, Action: actionSum})
	must(v, &Command{Name: "difference", Arity: FixedArgs(2), Reserved: true, Action: actionDifference})
	must(v, &Command{Name: "product", Arity: VariadicArgs(2), Reserved: true, Action: actionProduct})
	must(v, &Command{Name: "quotient", Arity: FixedArgs(2), Reserved: true, Action: actionQuotient})
	must(v, &Command{Name: "remainder", Arity: FixedArgs(2), Reserved: true, Action: actionRemainder})
	must(v, &Command{Name: "power", Arity: FixedArgs(2), Reserved: true, Action: actionPower})
	must(v, &Command{Name: "sqrt", Arity: FixedArgs(1), Reserved: true, Action: actionSqrt})
	must(v, &Command{Name: "minus", Arity: FixedArgs(1), Reserved: true, Action: actionMinus})
	must(v, &Command{Name: "abs", Arity: FixedArgs(1), Reserved: true, Action: actionAbs})
	must(v, &Command{Name: "int", Arity: FixedArgs(1), Reserved: true, Action: actionInt})
	must(v, &Command{Name: "round", Arity: FixedArgs(1), Reserved: true, Action: actionRound})
	must(v, &Command{Name: "sin", Arity: FixedArgs(1), Reserved: true, Action: actionSin})
	must(v, &Command{Name: "cos", Arity: FixedArgs(1), Reserved: true, Action: actionCos})
	must(v, &Command{Name: "tan", Arity: FixedArgs(1), Reserved: true, Action: actionTan})
	must(v, &Command{Name: "arctan", Arity: FixedArgs(1), Reserved: true, Action: actionArctan})
	must(v, &Command{Name: "exp", Arity: FixedArgs(1), Reserved: true, Action: actionExp})
	must(v, &Command{Name: "ln", Arity: FixedArgs(1), Reserved: true, Action: actionLn})
	must(v, &Command{Name: "log", Arity: FixedArgs(2), Reserved: true, Action: actionLog})
	must(v, &Command{Name: "pi", Arity: NoArgs(), Reserved: true, Action: actionPi})
	must(v, &Command{Name: "random", Arity: FixedArgs(1), Reserved: true, Action: actionRandom})
	must(v, &Command{Name: "pick", Arity: FixedArgs(1), Reserved: true, Action: actionPick})
}

func actionSum(i *Interpreter, name string, args []Token) (Token, error) {
	var total float32
	for idx := range args {
		n, err := numArg(name, idx, args)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return Number{Value: total}, nil
}

func actionDifference(i *Interpreter, name string, args []Token) (Token, error) {
	a, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	b, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: a - b}, nil
}

func actionProduct(i *Interpreter, name string, args []Token) (Token, error) {
	total := float32(1)
	for idx := range args {
		n, err := numArg(name, idx, args)
		if err != nil {
			return nil, err
		}
		total *= n
	}
	return Number{Value: total}, nil
}

func actionQuotient(i *Interpreter, name string, args []Token) (Token, error) {
	a, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	b, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, NewError(ErrDivideByZero, "divide by zero")
	}
	return Number{Value: a / b}, nil
}

func actionRemainder(i *Interpreter, name string, args []Token) (Token, error) {
	a, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	b, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, NewError(ErrDivideByZero, "divide by zero")
	}
	return Number{Value: float32(math.Mod(float64(a), float64(b)))}, nil
}

func actionPower(i *Interpreter, name string, args []Token) (Token, error) {
	a, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	b, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Pow(float64(a), float64(b)))}, nil
}

func actionSqrt(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, NewError(ErrDomainError, "sqrt of a negative number")
	}
	return Number{Value: float32(math.Sqrt(float64(n)))}, nil
}

func actionMinus(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: -n}, nil
}

func actionAbs(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return Number{Value: n}, nil
}

func actionInt(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Floor(float64(n)))}, nil
}

func actionRound(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Round(float64(n)))}, nil
}

func actionSin(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Sin(float64(n) * math.Pi / 180))}, nil
}

func actionCos(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Cos(float64(n) * math.Pi / 180))}, nil
}

func actionTan(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Tan(float64(n) * math.Pi / 180))}, nil
}

func actionArctan(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Atan(float64(n)) * 180 / math.Pi)}, nil
}

func actionExp(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	return Number{Value: float32(math.Exp(float64(n)))}, nil
}

func actionLn(i *Interpreter, name string, args []Token) (Token, error) {
	n, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, NewError(ErrDomainError, "ln of a non-positive number")
	}
	return Number{Value: float32(math.Log(float64(n)))}, nil
}

func actionLog(i *Interpreter, name string, args []Token) (Token, error) {
	base, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	value, err := numArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	if value <= 0 || base <= 0 || base == 1 {
		return nil, NewError(ErrDomainError, "log of a non-positive number or invalid base")
	}
	return Number{Value: float32(math.Log(float64(value)) / math.Log(float64(base)))}, nil
}

func actionPi(i *Interpreter, name string, args []Token) (Token, error) {
	return Number{Value: float32(math.Pi)}, nil
}

// actionRandom draws from the auto-seeded global math/rand source rather
// than maintaining its own *rand.Rand, matching the teacher's preference
// for the standard generator over a hand-rolled PRNG.
func actionRandom(i *Interpreter, name string, args []Token) (Token, error) {
	upper, err := numArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	if upper <= 0 {
		return nil, NewError(ErrDomainError, "random requires a positive upper bound")
	}
	return Number{Value: float32(randN(int(upper)))}, nil
}

// actionPick returns a random character from a word or a random item
// from a list.
func actionPick(i *Interpreter, name string, args []Token) (Token, error) {
	seq, err := toSequence(name, 0, args, i.Data)
	if err != nil {
		return nil, err
	}
	if len(seq.leaves) == 0 {
		return nil, NewError(ErrDomainError, "pick requires a non-empty word or list")
	}
	return seq.leaves[randN(len(seq.leaves))], nil
}
