package sll

import "cmp"

// Sort reorders the list so that values descend from head to tail.
//
// The values are copied into a slice, sorted ascending with
// QuickSort, and then pushed back in slice order; because Push
// prepends, the largest value ends up at the head. Nodes are
// reallocated during the rebuild, so any pointer obtained from Get or
// Ref before sorting no longer refers to an element of the list.
func (l *List[T]) Sort() {
	if l.size < 2 {
		return
	}

	items := l.Slice()
	QuickSort(items)

	l.Clear()
	l.Append(items...)
}

// IsSorted reports whether the values descend (or repeat) from head to
// tail, which is the order Sort produces.
func (l *List[T]) IsSorted() bool {
	if l.head == nil {
		return true
	}

	for n := l.head; n.next != nil; n = n.next {
		if n.value < n.next.value {
			return false
		}
	}
	return true
}

// QuickSort sorts the slice in ascending order, in place, using a
// recursive Hoare partition around the middle element.
func QuickSort[T cmp.Ordered](items []T) {
	if len(items) < 2 {
		return
	}
	quickSort(items, 0, len(items)-1)
}

func quickSort[T cmp.Ordered](items []T, fst, lst int) {
	if fst >= lst {
		return
	}

	i, j := fst, lst
	pivot := items[(fst+lst)/2]

	for i <= j {
		for items[i] < pivot {
			i++
		}
		for items[j] > pivot {
			j--
		}
		if i <= j {
			items[i], items[j] = items[j], items[i]
			i++
			j--
		}
	}

	quickSort(items, fst, j)
	quickSort(items, i, lst)
}
