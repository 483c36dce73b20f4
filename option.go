// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import "fmt"

// Option holds zero or one value of type T.
type Option[T any] struct {
	val  T
	some bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{val: v, some: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.val, o.some }

// UnwrapOr returns the held value, or def if o is empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.val
	}
	return def
}

// GoString renders o as Some(<value>) or None.
func (o Option[T]) GoString() string {
	if o.some {
		return fmt.Sprintf("Some(%#v)", o.val)
	}
	return "None"
}

// Unwrap returns the held value.
// If o is empty, it panics with a diagnostic locating the call.
func (o Option[T]) Unwrap() T { return o.UnwrapAt(Caller(1), "") }

// Unwrapf is like Unwrap, but the diagnostic carries a message rendered from
// format and args.
func (o Option[T]) Unwrapf(format string, args ...any) T {
	return o.UnwrapAt(Caller(1), fmt.Sprintf(format, args...))
}

// UnwrapAt returns the held value. If o is empty, it panics with a
// diagnostic naming site. An empty message is omitted from the block.
//
// There is no payload to print for an empty Option, so unlike the Result
// operations the block carries no debug line.
func (o Option[T]) UnwrapAt(site Site, message string) T {
	if !o.some {
		abort("unwrap", "Option::None", site, message, "")
	}
	return o.val
}
