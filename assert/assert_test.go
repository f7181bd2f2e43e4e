package assert_test

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"testing"

	"github.com/tychoish/sll/assert"
)

func TestAssertion(t *testing.T) {
	var strVal string = "merlin"

	var err error

	t.Run("Passing", func(t *testing.T) {
		assert.True(t, true)
		assert.False(t, false)
		assert.Equal(t, 1, 1)
		assert.NotEqual(t, 10, 1)
		assert.Zero(t, "")
		assert.Error(t, errors.New(strVal))
		assert.NotError(t, err)
		assert.ErrorIs(t, fmt.Errorf("end: %w", io.EOF), io.EOF)
		assert.NotErrorIs(t, errors.New(strVal), io.EOF)
		assert.Panic(t, func() { panic(strVal) })
		assert.NotPanic(t, func() {})
		assert.Substring(t, "merlin the cat", strVal)
	})
	t.Run("Sequences", func(t *testing.T) {
		assert.EqualItems(t, []int{1, 2, 3}, []int{1, 2, 3})
		assert.EqualItems[int](t, nil, []int{})
		assert.EqualSeq(t, slices.Values([]string{"a", "b"}), []string{"a", "b"})
		assert.EqualSeq(t, slices.Values([]string{}), nil)
		assert.Ascending(t, []int{1, 1, 2, 9})
		assert.Ascending[int](t, nil)
		assert.SameItems(t, []int{3, 1, 2, 1}, []int{1, 1, 2, 3})
	})
}
