// Package assert provides a small assertion framework for testing
// containers and sequences, relying on generics. All assertions are
// "fatal" and cause the test to abort at the failure line (rather
// than continue on error).
package assert

import (
	"cmp"
	"errors"
	"iter"
	"strings"
	"testing"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failure")
	}
}

// False causes a test to fail if the condition is true.
func False(t testing.TB, cond bool) {
	t.Helper()
	if cond {
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal. Be aware that two different pointers and objects passed as
// interfaces that are implemented by pointer receivers are comparable
// as equal and will fail this assertion even if their *values* are
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// Zero fails a test if the value is not the zero-value for its type.
func Zero[T comparable](t testing.TB, val T) {
	t.Helper()

	var zero T
	if zero != val {
		t.Fatalf("expected zero for value of type %T <%v>", val, val)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// NotErrorIs is an assertion form of !errors.Is.
func NotErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		t.Fatalf("error <%v>, is <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Fatal("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// Substring asserts that the substring is present in the string.
func Substring(t testing.TB, str, substr string) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Fatalf("expected %q to contain substring %q", str, substr)
	}
}

// EqualItems compares the values in two slices and fails the test
// if the lengths differ or any pair of items is not equal.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	for idx := range one {
		if one[idx] != two[idx] {
			t.Fatalf("items at index %d [%v vs %v] are not equal", idx, one[idx], two[idx])
		}
	}
}

// EqualSeq drains the sequence and compares the values it produced
// to the expected slice, in order.
func EqualSeq[T comparable](t testing.TB, seq iter.Seq[T], expected []T) {
	t.Helper()
	var got []T
	for v := range seq {
		got = append(got, v)
	}

	if len(got) != len(expected) {
		t.Fatalf("sequence produced %d items %v, expected %d %v", len(got), got, len(expected), expected)
	}
	EqualItems(t, got, expected)
}

// Ascending fails the test if any item in the slice is less than the
// item before it.
func Ascending[T cmp.Ordered](t testing.TB, items []T) {
	t.Helper()
	for idx := 1; idx < len(items); idx++ {
		if items[idx] < items[idx-1] {
			t.Fatalf("items at index %d and %d [%v > %v] are out of order", idx-1, idx, items[idx-1], items[idx])
		}
	}
}

// SameItems fails the test unless both slices hold the same items
// with the same multiplicity, in any order.
func SameItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if len(one) != len(two) {
		t.Fatalf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	counts := make(map[T]int, len(one))
	for _, it := range one {
		counts[it]++
	}
	for _, it := range two {
		counts[it]--
	}
	for it, n := range counts {
		if n != 0 {
			t.Fatalf("item <%v> appears %d more times in the first slice", it, n)
		}
	}
}
