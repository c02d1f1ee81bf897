package delta

import (
	"errors"
	"strings"
	"testing"
)

// assertError checks that err matches expected, which may be a bool (simply
// whether an error was expected), a string (a substring of the error
// message), or an *InvalidFragmentList (checked with errors.As, and its Index
// compared).
func assertError(t *testing.T, expected interface{}, actual error, action string) {
	t.Helper()

	switch exp := expected.(type) {
	case bool:
		if exp && actual == nil {
			t.Fatalf("expected error %s, but got nil", action)
		}
		if !exp && actual != nil {
			t.Fatalf("unexpected error %s: %v", action, actual)
		}
	case string:
		if actual == nil {
			t.Fatalf("expected error %s containing %q, but got nil", action, exp)
		}
		if !strings.Contains(actual.Error(), exp) {
			t.Fatalf("incorrect error %s: expected message containing %q, actual: %v", action, exp, actual)
		}
	case *InvalidFragmentList:
		var got *InvalidFragmentList
		if !errors.As(actual, &got) {
			t.Fatalf("incorrect error %s: expected *InvalidFragmentList, actual: %T (%v)", action, actual, actual)
		}
		if got.Index != exp.Index {
			t.Fatalf("incorrect error %s: expected index %d, actual %d", action, exp.Index, got.Index)
		}
	default:
		t.Fatalf("unsupported expected error type: %T", exp)
	}
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, but function returned normally")
		}
	}()
	fn()
}
