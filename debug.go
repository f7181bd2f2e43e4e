package sll

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

const (
	markerLastPush  = "Last Push"
	markerFirstPush = "First Push"
)

// LayoutRow describes one node of a list: its position counted from
// the head, its value, and the identity token assigned to the node
// when it was pushed. Marker is "Last Push" for the head and "First
// Push" for the tail of a list with more than one element.
type LayoutRow[T any] struct {
	Position int
	Value    T
	ID       uint64
	Marker   string
}

// Layout returns a row for every node in the list, head to tail.
func (l *List[T]) Layout() []LayoutRow[T] {
	rows := make([]LayoutRow[T], 0, l.size)
	last := l.size - 1

	idx := 0
	for n := l.head; n != nil; n = n.next {
		row := LayoutRow[T]{Position: idx, Value: n.value, ID: n.id}
		switch idx {
		case 0:
			row.Marker = markerLastPush
		case last:
			row.Marker = markerFirstPush
		}
		rows = append(rows, row)
		idx++
	}
	return rows
}

// String returns the values of the list, head to tail, in the same
// form as fmt.Sprint of a slice.
func (l *List[T]) String() string { return fmt.Sprint(l.Slice()) }

// GoString renders the node chain as nested text, for example
// "LinkedList Some(1, Some(5, Some(8, None)))". Used by the %#v verb.
func (l *List[T]) GoString() string {
	buf := &strings.Builder{}
	buf.WriteString("LinkedList ")
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(buf, "Some(%#v, ", n.value)
	}
	buf.WriteString("None")
	buf.WriteString(strings.Repeat(")", l.size))
	return buf.String()
}

// DebugMemory writes the nested representation of the node chain to
// w.
func (l *List[T]) DebugMemory(w io.Writer) error {
	_, err := fmt.Fprintf(w, "LinkedList Debug:\n%#v\n", l)
	return err
}

// PrintMemoryLayout writes a table of the list's nodes to w, one row
// per node from head to tail, with the node identity in place of a
// memory address.
func (l *List[T]) PrintMemoryLayout(w io.Writer) error {
	buf := &strings.Builder{}
	rule := strings.Repeat("-", 35)

	buf.WriteString("LinkedList Memory Layout (FIFO):\n")
	buf.WriteString(rule + "\n")
	fmt.Fprintf(buf, "%-4s |\t%-4s\t| %-17s\n", "Node", "Data", "Memory Location")

	for _, row := range l.Layout() {
		line := fmt.Sprintf("%-4d |\t%-4v\t| %-17s", row.Position, row.Value, fmt.Sprintf("%#016x", row.ID))
		if row.Marker != "" {
			line += " <----- " + row.Marker
		}
		buf.WriteString(line + "\n")
	}
	buf.WriteString(rule + "\n")

	_, err := io.WriteString(w, buf.String())
	return err
}

// LogMemoryLayout emits one structured record per node at debug
// level, preceded by a summary record at info level.
func (l *List[T]) LogMemoryLayout(logger *zap.Logger) {
	logger.Info("linked list layout",
		zap.Int("size", l.size),
		zap.String("element_type", l.ElementType()),
	)

	for _, row := range l.Layout() {
		fields := []zap.Field{
			zap.Int("position", row.Position),
			zap.Any("value", row.Value),
			zap.Uint64("id", row.ID),
		}
		if row.Marker != "" {
			fields = append(fields, zap.String("marker", row.Marker))
		}
		logger.Debug("linked list node", fields...)
	}
}
