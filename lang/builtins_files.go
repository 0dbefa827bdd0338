//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lang

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// registerFileBuiltins implements spec §4.7 "File and assets". All
// paths are relative to the data store's BaseDir; image-bearing
// commands additionally register the asset and bounce a UI event so the
// renderer (which owns actual image decoding, per spec §1 "Out of
// scope") can load it.
func registerFileBuiltins(v *Vocabulary) {
	must(v, &Command{Name: "currentdir", Arity: NoArgs(), Reserved: true, Action: actionCurrentdir})
	must(v, &Command{Name: "chdir", Arity: FixedArgs(1), Reserved: true, Action: actionChdir})
	must(v, &Command{Name: "files", Arity: NoArgs(), Reserved: true, Action: actionFiles})
	must(v, &Command{Name: "directories", Arity: NoArgs(), Reserved: true, Action: actionDirectories})
	must(v, &Command{Name: "pictlist", Arity: NoArgs(), Reserved: true, Action: actionPictlist})
	must(v, &Command{Name: "textlist", Arity: NoArgs(), Reserved: true, Action: actionTextlist})
	must(v, &Command{Name: "loadshape", Arity: FixedArgs(2), Reserved: true, Action: actionLoadshape})
	must(v, &Command{Name: "loadpict", Arity: FixedArgs(1), Reserved: true, Action: actionLoadpict})
	must(v, &Command{Name: "placepict", Arity: FixedArgs(2), Reserved: true, Action: actionPlacepict})
	must(v, &Command{Name: "loadtext", Arity: FixedArgs(1), Reserved: true, Action: actionLoadtext})
}

func resolvePath(i *Interpreter, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(i.Data.BaseDir, name)
}

func actionCurrentdir(i *Interpreter, name string, args []Token) (Token, error) {
	return Word{Value: i.Data.BaseDir}, nil
}

func actionChdir(i *Interpreter, name string, args []Token) (Token, error) {
	dir, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	target := resolvePath(i, dir)
	info, statErr := os.Stat(target)
	if statErr != nil || !info.IsDir() {
		return nil, Errorf(ErrIOError, "%s: no such directory", dir)
	}
	i.Data.BaseDir = target
	return Void{}, nil
}

func listDir(i *Interpreter, onlyDirs bool, suffixes ...string) ([]string, error) {
	entries, err := os.ReadDir(i.Data.BaseDir)
	if err != nil {
		return nil, Errorf(ErrIOError, "%s: %v", i.Data.BaseDir, err)
	}
	var out []string
	for _, e := range entries {
		if onlyDirs != e.IsDir() {
			continue
		}
		if len(suffixes) > 0 {
			matched := false
			lower := strings.ToLower(e.Name())
			for _, sfx := range suffixes {
				if strings.HasSuffix(lower, sfx) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, e.Name())
	}
	return out, nil
}

func actionFiles(i *Interpreter, name string, args []Token) (Token, error) {
	names, err := listDir(i, false)
	if err != nil {
		return nil, err
	}
	return List{Body: strings.Join(names, " ")}, nil
}

func actionDirectories(i *Interpreter, name string, args []Token) (Token, error) {
	names, err := listDir(i, true)
	if err != nil {
		return nil, err
	}
	return List{Body: strings.Join(names, " ")}, nil
}

func actionPictlist(i *Interpreter, name string, args []Token) (Token, error) {
	names, err := listDir(i, false, ".png", ".jpg", ".jpeg", ".gif", ".bmp")
	if err != nil {
		return nil, err
	}
	return List{Body: strings.Join(names, " ")}, nil
}

func actionTextlist(i *Interpreter, name string, args []Token) (Token, error) {
	names, err := listDir(i, false, ".txt")
	if err != nil {
		return nil, err
	}
	return List{Body: strings.Join(names, " ")}, nil
}

func actionLoadshape(i *Interpreter, name string, args []Token) (Token, error) {
	shapeName, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	path, err := wordArg(name, 1, args)
	if err != nil {
		return nil, err
	}
	full := resolvePath(i, path)
	if _, err := os.Stat(full); err != nil {
		return nil, Errorf(ErrIOError, "%s: %v", path, err)
	}
	i.Data.RegisterShape(shapeName, ShapeDescriptor{Kind: ShapeImage, Path: full})
	i.Canvas.RegisterImage(full)
	i.Events.Send(UIEvent{Kind: EvtAddShape, Name: shapeName, Path: full})
	return Void{}, nil
}

func actionLoadpict(i *Interpreter, name string, args []Token) (Token, error) {
	path, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	full := resolvePath(i, path)
	if _, err := os.Stat(full); err != nil {
		return nil, Errorf(ErrIOError, "%s: %v", path, err)
	}
	i.Canvas.RegisterImage(full)
	i.Events.Send(UIEvent{Kind: EvtBgPicture, Path: full})
	return Void{}, nil
}

func actionPlacepict(i *Interpreter, name string, args []Token) (Token, error) {
	path, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	lst, ok := args[1].(List)
	if !ok {
		return nil, errTypef(name, 1, "[x y w h]")
	}
	leaves, err := ParseList(lst.Body, true, i.Data)
	if err != nil {
		return nil, err
	}
	if len(leaves) != 4 {
		return nil, errArity(name, 4, len(leaves))
	}
	nums := make([]float32, 4)
	for idx, l := range leaves {
		n, ok := l.(Number)
		if !ok {
			return nil, errTypef(name, 1, "[x y w h]")
		}
		nums[idx] = n.Value
	}
	full := resolvePath(i, path)
	if _, err := os.Stat(full); err != nil {
		return nil, Errorf(ErrIOError, "%s: %v", path, err)
	}
	i.Canvas.RegisterImage(full)
	i.Events.Send(UIEvent{Kind: EvtPlacePicture, Path: full, X: nums[0], Y: nums[1], W: nums[2], H: nums[3]})
	return Void{}, nil
}

// actionLoadtext reads a text asset relative to BaseDir. Project text
// assets predating UTF-8 (old Windows exports in particular) are
// Windows-1252; anything that isn't valid UTF-8 is decoded as such
// rather than surfacing mojibake or an I/O error to the script.
func actionLoadtext(i *Interpreter, name string, args []Token) (Token, error) {
	path, err := wordArg(name, 0, args)
	if err != nil {
		return nil, err
	}
	full := resolvePath(i, path)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, Errorf(ErrIOError, "%s: %v", path, err)
	}
	if !utf8.Valid(data) {
		decoded, decErr := charmap.Windows1252.NewDecoder().Bytes(data)
		if decErr == nil {
			data = decoded
		}
	}
	return Word{Value: string(data)}, nil
}
