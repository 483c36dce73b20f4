// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package unwrap provides drop-in replacements for unwrapping optional and
// result-shaped values that panic with a verbose, precisely located
// diagnostic instead of a bare runtime error.
//
// A failed unwrap never returns. It panics with a banner naming the violated
// expectation, the exact call site, an optional message and the debug form of
// the offending container, so the point of failure is visible at a glance
// instead of pointing somewhere inside a library. It is intended for tests
// and invariant checks, where a loud, located failure beats a recoverable
// error.
package unwrap

import (
	"fmt"
	"strings"
)

const (
	bannerWidth  = 80
	bannerBorder = "********************************************************************************"
)

// abort assembles the diagnostic block and panics with it. It never returns.
//
// The block layout is fixed: tooling matches on the border and title lines,
// so any change to it is a breaking one.
func abort(op, variant string, site Site, message, debug string) {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(bannerBorder + "\n")
	fmt.Fprintf(&b, "!   %-*s!\n", bannerWidth-5, op+" called on "+variant)
	b.WriteString(bannerBorder + "\n")
	b.WriteString(site.String() + "\n")
	if message != "" {
		b.WriteString(message + "\n")
	}
	b.WriteString("\n")
	if debug != "" {
		b.WriteString(debug + "\n\n")
	}
	panic(b.String())
}

// Value unwraps and returns val if err is nil.
// It panics with a diagnostic locating the call if err is not nil.
func Value[T any](val T, err error) T {
	if err != nil {
		abort("unwrap", "Result::Err", Caller(1), "", fmt.Sprintf("Err(%#v)", err))
	}
	return val
}

// NoError panics with a diagnostic locating the call if err is not nil.
func NoError(err error) {
	if err != nil {
		abort("unwrap", "Result::Err", Caller(1), "", fmt.Sprintf("Err(%#v)", err))
	}
}
