//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

// Procedure is a user-defined command: a name, its formal parameters,
// and its unparsed body text. Equality is by name (spec §3).
type Procedure struct {
	Name   string
	Params []string
	Body   string
}

// Equal compares procedures by name only, per spec §3.
func (p Procedure) Equal(o Procedure) bool {
	return p.Name == o.Name
}
