//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import (
	"strconv"
	"strings"
)

// ParseList tokenizes the raw text carried by a List token into leaves
// (spec §4.3 "List parsing"). In unsubstituted mode, `:name` references
// are kept as VariableRef leaves; in substituted mode they are resolved
// immediately against ds, failing with ErrUnbound if undefined.
func ParseList(body string, substituted bool, ds *DataStore) ([]Token, error) {
	f := newFrame(body, false)
	var out []Token
	for {
		f.skipSpace()
		if f.atEOF() {
			break
		}
		word, err := scanBracketAwareWord(f)
		if err != nil {
			return nil, err
		}
		if word == "" {
			break
		}
		tok, err := classifyListWord(word, substituted, ds)
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func classifyListWord(word string, substituted bool, ds *DataStore) (Token, error) {
	if strings.HasPrefix(word, ":") {
		name := word[1:]
		if substituted {
			v, ok := ds.GetVariable(name)
			if !ok {
				return nil, errUnboundf(name)
			}
			return v, nil
		}
		return VariableRef{Name: name}, nil
	}
	if strings.HasPrefix(word, "\"") {
		return Word{Value: word[1:]}, nil
	}
	if n, err := strconv.ParseFloat(word, 32); err == nil {
		return Number{Value: float32(n)}, nil
	}
	switch foldName(word) {
	case "true":
		return Boolean{Value: true}, nil
	case "false":
		return Boolean{Value: false}, nil
	}
	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") && len(word) >= 2 {
		return List{Body: word[1 : len(word)-1]}, nil
	}
	return Word{Value: word}, nil
}

// JoinListString renders a leaf slice back into list-body text, used
// whenever a list-processing command (butfirst, lput, ...) must produce
// a new List token from a subset of another list's leaves. Grounded on
// the original's `tokens.join_to_list_string()` pattern (see
// original_source/.../command/core.rs `make`).
//
// A Word is written as its bare value rather than its quoted source
// form (Word.String()): inside a list body an unquoted token already
// denotes a word per classifyListWord, so quoting it here would read
// back fine but corrupt a subsequent DisplayString of the rebuilt list.
func JoinListString(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if w, ok := t.(Word); ok {
			parts[i] = w.Value
		} else {
			parts[i] = t.String()
		}
	}
	return strings.Join(parts, " ")
}

// DisplayString renders a token the way `print`/`show` present it to the
// user: words lose their leading `"`, lists lose their brackets and show
// their raw body text, and everything else matches String().
func DisplayString(tok Token) string {
	switch t := tok.(type) {
	case Word:
		return t.Value
	case List:
		return t.Body
	case VariableRef:
		return ":" + t.Name
	default:
		return tok.String()
	}
}
