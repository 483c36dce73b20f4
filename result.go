// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import "fmt"

// Result holds either a success value of type T or a failure value of type E.
type Result[T, E any] struct {
	val T
	err E
	ok  bool
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{val: v, ok: true} }

// Err returns a Result holding the failure value e.
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{err: e} }

// From lifts a conventional Go return pair into a Result.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether r holds a failure value.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Get returns the success value and whether r holds one.
func (r Result[T, E]) Get() (T, bool) { return r.val, r.ok }

// GetErr returns the failure value and whether r holds one.
func (r Result[T, E]) GetErr() (E, bool) { return r.err, !r.ok }

// GoString renders r as Ok(<value>) or Err(<value>), so the debug form
// always shows which arm was populated.
func (r Result[T, E]) GoString() string {
	if r.ok {
		return fmt.Sprintf("Ok(%#v)", r.val)
	}
	return fmt.Sprintf("Err(%#v)", r.err)
}

// Unwrap returns the success value.
// If r holds a failure, it panics with a diagnostic locating the call.
func (r Result[T, E]) Unwrap() T { return r.UnwrapAt(Caller(1), "") }

// Unwrapf is like Unwrap, but the diagnostic carries a message rendered from
// format and args.
func (r Result[T, E]) Unwrapf(format string, args ...any) T {
	return r.UnwrapAt(Caller(1), fmt.Sprintf(format, args...))
}

// UnwrapAt returns the success value. If r holds a failure, it panics with a
// diagnostic naming site and printing the failure arm as Err(<value>). An
// empty message is omitted from the block.
func (r Result[T, E]) UnwrapAt(site Site, message string) T {
	if !r.ok {
		abort("unwrap", "Result::Err", site, message, fmt.Sprintf("%#v", r))
	}
	return r.val
}

// UnwrapErr returns the failure value.
// If r holds a success, it panics with a diagnostic locating the call.
func (r Result[T, E]) UnwrapErr() E { return r.UnwrapErrAt(Caller(1), "") }

// UnwrapErrf is like UnwrapErr, but the diagnostic carries a message
// rendered from format and args.
func (r Result[T, E]) UnwrapErrf(format string, args ...any) E {
	return r.UnwrapErrAt(Caller(1), fmt.Sprintf(format, args...))
}

// UnwrapErrAt returns the failure value. If r holds a success, it panics
// with a diagnostic naming site and printing the success arm as Ok(<value>).
// An empty message is omitted from the block.
func (r Result[T, E]) UnwrapErrAt(site Site, message string) E {
	if r.ok {
		abort("unwrap_err", "Result::Ok", site, message, fmt.Sprintf("%#v", r))
	}
	return r.err
}
