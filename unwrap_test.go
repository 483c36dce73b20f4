// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package unwrap

import (
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/unwrap/testutil"
)

func TestValue(t *testing.T) {
	t.Run("with nil error", func(t *testing.T) {
		result := Value("success", nil)
		testutil.AssertEqual(t, result, "success")
	})

	t.Run("with non-nil error", func(t *testing.T) {
		text := testutil.AssertPanics(t, func() {
			Value("failure", errors.New("something went wrong"))
		})
		testutil.AssertContains(t, text, "unwrap called on Result::Err")
		testutil.AssertContains(t, text, "something went wrong")
		testutil.AssertContains(t, text, "unwrap_test.go")
	})
}

func TestNoError(t *testing.T) {
	t.Run("with nil error", func(t *testing.T) {
		// Should not panic.
		NoError(nil)
	})

	t.Run("with non-nil error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("The code did not panic")
			}
		}()
		NoError(errors.New("something went wrong"))
	})
}

// TestDiagnosticBlockLayout pins down the exact shape of the emitted block.
// Tooling matches on these lines, so a mismatch here is a breaking change.
func TestDiagnosticBlockLayout(t *testing.T) {
	var (
		border = strings.Repeat("*", 80)
		site   = Site{Scope: "example.main", File: "example.go", Line: 42, Column: 7}
	)

	t.Run("unwrap on Result::Err with message", func(t *testing.T) {
		text := testutil.AssertPanics(t, func() {
			Err[int, int](32).UnwrapAt(site, "Here's a message 23")
		})
		want := strings.Join([]string{
			"", "",
			border,
			"!   unwrap called on Result::Err                                               !",
			border,
			"example.go:42,7 in example.main",
			"Here's a message 23",
			"",
			"Err(32)",
			"", "",
		}, "\n")
		testutil.AssertEqual(t, text, want)
	})

	t.Run("unwrap on Option::None without message", func(t *testing.T) {
		text := testutil.AssertPanics(t, func() {
			None[int]().UnwrapAt(site, "")
		})
		want := strings.Join([]string{
			"", "",
			border,
			"!   unwrap called on Option::None                                              !",
			border,
			"example.go:42,7 in example.main",
			"", "",
		}, "\n")
		testutil.AssertEqual(t, text, want)
	})

	t.Run("unwrap_err on Result::Ok without message", func(t *testing.T) {
		text := testutil.AssertPanics(t, func() {
			Ok[int, int](32).UnwrapErrAt(site, "")
		})
		want := strings.Join([]string{
			"", "",
			border,
			"!   unwrap_err called on Result::Ok                                            !",
			border,
			"example.go:42,7 in example.main",
			"",
			"Ok(32)",
			"", "",
		}, "\n")
		testutil.AssertEqual(t, text, want)
	})
}
