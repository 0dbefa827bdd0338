//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// Arity describes how many arguments a command consumes when the reader
// pulls them off the active frame (spec §4.1 "Argument reading by
// arity").
type Arity struct {
	kind arityKind
	n    int
}

type arityKind int

const (
	arityNone arityKind = iota
	arityFixed
	arityVariadic
)

// NoArgs is the arity of a command that takes no arguments.
func NoArgs() Arity { return Arity{kind: arityNone} }

// FixedArgs is the arity of a command that always takes exactly n
// arguments.
func FixedArgs(n int) Arity { return Arity{kind: arityFixed, n: n} }

// VariadicArgs is the arity of a command that takes at least min
// arguments, and more when read inside parentheses.
func VariadicArgs(min int) Arity { return Arity{kind: arityVariadic, n: min} }

// Min returns the minimum argument count implied by the arity.
func (a Arity) Min() int {
	switch a.kind {
	case arityFixed, arityVariadic:
		return a.n
	default:
		return 0
	}
}

// CommandAction is the callable behind a command: given the interpreter,
// the command's own name (so one action can back several aliases or a
// family of generated accessors), and the already-evaluated argument
// vector, it produces a result token or fails. This is the
// kind-tag-plus-dispatcher shape spec §9 calls for in place of the
// source's captured action closures stored inline on each entry -- here
// the closure is still a Go func value, but the table holds *Command
// values behind a name, not behind object identity, so redefinition
// and aliasing stay simple.
type CommandAction func(i *Interpreter, name string, args []Token) (Token, error)

// Command is one entry in the vocabulary: a built-in or a user-defined
// procedure wrapper.
type Command struct {
	Name     string
	Arity    Arity
	Reserved bool
	Action   CommandAction
}

// Vocabulary is the name-keyed registry of prefix commands and, in a
// separate table, infix operators (spec §4.2).
type Vocabulary struct {
	commands map[string]*Command
	infix    map[string]*Command
}

// NewVocabulary creates an empty command dictionary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		commands: make(map[string]*Command),
		infix:    make(map[string]*Command),
	}
}

// Register adds cmd to the prefix table, overwriting any existing
// non-reserved entry of the same name. Overwriting a reserved entry
// fails with ErrReservedName.
func (v *Vocabulary) Register(cmd *Command) error {
	if existing, ok := v.commands[cmd.Name]; ok && existing.Reserved {
		return Errorf(ErrReservedName, "%s is a primitive and cannot be redefined", cmd.Name)
	}
	v.commands[cmd.Name] = cmd
	return nil
}

// RegisterInfix adds cmd to the infix operator table.
func (v *Vocabulary) RegisterInfix(cmd *Command) {
	v.infix[cmd.Name] = cmd
}

// Alias registers cmd's action under a second name without touching the
// original entry. The alias is reserved iff cmd is reserved.
func (v *Vocabulary) Alias(newName string, cmd *Command) error {
	return v.Register(&Command{Name: newName, Arity: cmd.Arity, Reserved: cmd.Reserved, Action: cmd.Action})
}

// Lookup returns the prefix command registered under name, if any.
func (v *Vocabulary) Lookup(name string) (*Command, bool) {
	c, ok := v.commands[name]
	return c, ok
}

// LookupInfix returns the infix operator registered under name, if any.
func (v *Vocabulary) LookupInfix(name string) (*Command, bool) {
	c, ok := v.infix[name]
	return c, ok
}

// UserProcedureNames returns every registered prefix command name whose
// Reserved flag is false: user-defined procedures and the getter/setter
// commands installed by `turtlesown`. The `procedures` built-in does not
// use it; it lists DataStore.ProcedureNames instead.
func (v *Vocabulary) UserProcedureNames() []string {
	names := make([]string, 0)
	for name, cmd := range v.commands {
		if !cmd.Reserved {
			names = append(names, name)
		}
	}
	return names
}
