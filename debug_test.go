package sll

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tychoish/sll/assert"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDiagnostics(t *testing.T) {
	t.Run("Layout", func(t *testing.T) {
		list := NewFromSlice([]int{8, 5, 1})
		rows := list.Layout()
		assert.Equal(t, len(rows), 3)

		assert.Equal(t, rows[0], LayoutRow[int]{Position: 0, Value: 1, ID: 3, Marker: "Last Push"})
		assert.Equal(t, rows[1], LayoutRow[int]{Position: 1, Value: 5, ID: 2})
		assert.Equal(t, rows[2], LayoutRow[int]{Position: 2, Value: 8, ID: 1, Marker: "First Push"})
	})
	t.Run("LayoutSingle", func(t *testing.T) {
		rows := NewFromSlice([]int{1}).Layout()
		assert.Equal(t, len(rows), 1)
		assert.Equal(t, rows[0].Marker, "Last Push")
	})
	t.Run("LayoutEmpty", func(t *testing.T) {
		assert.Equal(t, len(New[int]().Layout()), 0)
	})
	t.Run("IdentitiesAreStable", func(t *testing.T) {
		list := NewFromSlice([]int{8, 5, 1})
		before := list.Layout()
		_, _ = list.Pop()
		after := list.Layout()
		assert.Equal(t, after[0].ID, before[1].ID)
		assert.Equal(t, after[1].ID, before[2].ID)

		list.Push(1)
		assert.NotEqual(t, list.Layout()[0].ID, before[0].ID)
	})
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, NewFromSlice([]int{8, 5, 1}).String(), "[1 5 8]")
		assert.Equal(t, New[int]().String(), "[]")
		assert.Equal(t, fmt.Sprint(NewFromSlice([]int{2, 1})), "[1 2]")
	})
	t.Run("GoString", func(t *testing.T) {
		assert.Equal(t, NewFromSlice([]int{8, 5, 1}).GoString(), "LinkedList Some(1, Some(5, Some(8, None)))")
		assert.Equal(t, New[int]().GoString(), "LinkedList None")
		assert.Equal(t, fmt.Sprintf("%#v", NewFromSlice([]string{"a"})), `LinkedList Some("a", None)`)
	})
	t.Run("DebugMemory", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, NewFromSlice([]int{2, 1}).DebugMemory(buf))
		assert.Equal(t, buf.String(), "LinkedList Debug:\nLinkedList Some(1, Some(2, None))\n")

		assert.Error(t, New[int]().DebugMemory(failingWriter{}))
	})
	t.Run("PrintMemoryLayout", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, NewFromSlice([]int{8, 5, 1}).PrintMemoryLayout(buf))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, len(lines), 7)
		assert.Equal(t, lines[0], "LinkedList Memory Layout (FIFO):")
		assert.Equal(t, lines[1], strings.Repeat("-", 35))
		assert.Substring(t, lines[2], "Memory Location")
		assert.Substring(t, lines[3], "<----- Last Push")
		assert.True(t, strings.HasPrefix(lines[3], "0    |\t1"))
		assert.False(t, strings.Contains(lines[4], "<-----"))
		assert.Substring(t, lines[5], "<----- First Push")
		assert.True(t, strings.HasPrefix(lines[5], "2    |\t8"))
		assert.Equal(t, lines[6], strings.Repeat("-", 35))
	})
	t.Run("PrintMemoryLayoutEmpty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NotError(t, New[int]().PrintMemoryLayout(buf))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, len(lines), 4)

		assert.Error(t, New[int]().PrintMemoryLayout(failingWriter{}))
	})
	t.Run("LogMemoryLayout", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		NewFromSlice([]int{8, 5, 1}).LogMemoryLayout(zap.New(core))

		assert.Equal(t, logs.Len(), 4)
		summary := logs.FilterMessage("linked list layout").All()
		assert.Equal(t, len(summary), 1)
		assert.Equal(t, summary[0].Level, zapcore.InfoLevel)
		assert.Equal(t, summary[0].ContextMap()["size"], any(int64(3)))
		assert.Equal(t, summary[0].ContextMap()["element_type"], any("int"))

		nodes := logs.FilterMessage("linked list node").All()
		assert.Equal(t, len(nodes), 3)
		assert.Equal(t, nodes[0].ContextMap()["marker"], any("Last Push"))
		assert.Equal(t, nodes[2].ContextMap()["marker"], any("First Push"))
		_, hasMarker := nodes[1].ContextMap()["marker"]
		assert.False(t, hasMarker)
	})
	t.Run("LogMemoryLayoutLevel", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		NewFromSlice([]int{8, 5, 1}).LogMemoryLayout(zap.New(core))
		assert.Equal(t, logs.Len(), 1)
	})
}
