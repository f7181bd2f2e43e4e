package sll

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON produces a JSON array of the values in the list, from
// head to tail. By supporting json.Marshaler and json.Unmarshaler,
// lists can behave as arrays in larger json objects.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')

	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			buf.WriteByte(',')
		}

		e, err := json.Marshal(n.value)
		if err != nil {
			return nil, err
		}

		buf.Write(e)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON array and pushes its values onto the
// list so that, afterwards, iterating the list yields the array's
// values in order followed by whatever the list held before. Existing
// items are not removed. Nothing is pushed if any value fails to
// decode.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	var items []T
	if err := json.Unmarshal(in, &items); err != nil {
		return err
	}

	for i := len(items) - 1; i >= 0; i-- {
		l.Push(items[i])
	}
	return nil
}
