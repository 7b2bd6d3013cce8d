package ipfmt

import "iter"

// List is a doubly-linked ordered sequence of E. It implements [Value]
// and renders identically to [Seq] over the same elements. The zero
// List is empty and ready to use.
type List[E any] struct {
	root listNode[E] // sentinel: root.next is front, root.prev is back
	size int
}

type listNode[E any] struct {
	elem       E
	prev, next *listNode[E]
}

// NewList returns a list holding elems in order.
func NewList[E any](elems ...E) *List[E] {
	l := &List[E]{}
	for _, e := range elems {
		l.PushBack(e)
	}
	return l
}

// Collect drains seq into a new list.
func Collect[E any](seq iter.Seq[E]) *List[E] {
	l := &List[E]{}
	for e := range seq {
		l.PushBack(e)
	}
	return l
}

func (l *List[E]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// PushBack appends e to the list.
func (l *List[E]) PushBack(e E) {
	l.lazyInit()
	n := &listNode[E]{elem: e, prev: l.root.prev, next: &l.root}
	l.root.prev.next = n
	l.root.prev = n
	l.size++
}

// PushFront prepends e to the list.
func (l *List[E]) PushFront(e E) {
	l.lazyInit()
	n := &listNode[E]{elem: e, prev: &l.root, next: l.root.next}
	l.root.next.prev = n
	l.root.next = n
	l.size++
}

// Len reports the number of elements.
func (l *List[E]) Len() int { return l.size }

// All iterates elements front to back.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.root.next == nil {
			return
		}
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Backward iterates elements back to front.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if l.root.prev == nil {
			return
		}
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.elem) {
				return
			}
		}
	}
}

func (l *List[E]) appendDotted(dst []byte) []byte {
	first := true
	for e := range l.All() {
		if !first {
			dst = append(dst, '.')
		}
		first = false
		dst = appendElem(dst, e)
	}
	return dst
}
