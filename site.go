// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import (
	"fmt"
	"runtime"
)

// Site identifies the call site of an unwrap operation: the enclosing
// function, source file, line and column. A failed unwrap renders it on the
// location line of its diagnostic block.
type Site struct {
	Scope  string // dotted path of the enclosing function, e.g. "mypkg.MyFunc"
	File   string
	Line   int // 1-based
	Column int // 1-based
}

// String renders the site the way it appears in the diagnostic block.
func (s Site) String() string {
	return fmt.Sprintf("%s:%d,%d in %s", s.File, s.Line, s.Column, s.Scope)
}

// Caller returns the Site of a function further up the calling goroutine's
// stack. Passing 0 describes the caller of Caller itself.
//
// The Go runtime does not track column numbers, so Column is always 1. Call
// sites that need an exact column supply a Site themselves to the *At
// operations.
func Caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{Scope: "unknown", File: "unknown"}
	}
	s := Site{Scope: "unknown", File: file, Line: line, Column: 1}
	if fn := runtime.FuncForPC(pc); fn != nil {
		s.Scope = fn.Name()
	}
	return s
}
