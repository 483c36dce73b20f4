// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package testutil provides helpers for common testing scenarios.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual fails the test if got is not equal to want.
// It prints a diff of both values upon failure.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values are not equal (-want +got):\n%s", diff)
	}
}

// AssertContains fails the test if s does not contain substr.
func AssertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("%q does not contain %q", s, substr)
	}
}

// AssertPanics runs f and fails the test if it does not panic.
// It returns the recovered panic value, rendered as a string.
func AssertPanics(t *testing.T, f func()) string {
	t.Helper()
	var (
		panicked bool
		payload  string
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				payload = fmt.Sprint(r)
			}
		}()
		f()
	}()
	if !panicked {
		t.Fatal("The code did not panic")
	}
	return payload
}
