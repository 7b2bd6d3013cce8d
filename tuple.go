package ipfmt

// Tuple2 is a fixed-size record whose two fields may carry distinct
// types. Only the homogeneous instantiation Tuple2[T, T] is renderable,
// through [Uniform2].
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 is the three-field record counterpart of [Tuple2].
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 is the four-field record counterpart of [Tuple2].
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Uniform2 classifies a two-field tuple whose fields share one type.
// Fields render in declaration order through their default textual
// form, joined with '.'. A tuple with mixed field types does not unify
// with Tuple2[T, T] and the call fails to compile; there is no runtime
// path for heterogeneous tuples.
func Uniform2[T any](t Tuple2[T, T]) Value {
	return tupleValue[T]{t.A, t.B}
}

// Uniform3 is [Uniform2] for three fields.
func Uniform3[T any](t Tuple3[T, T, T]) Value {
	return tupleValue[T]{t.A, t.B, t.C}
}

// Uniform4 is [Uniform2] for four fields.
func Uniform4[T any](t Tuple4[T, T, T, T]) Value {
	return tupleValue[T]{t.A, t.B, t.C, t.D}
}

type tupleValue[T any] []T

func (v tupleValue[T]) appendDotted(dst []byte) []byte {
	for i, f := range v {
		if i > 0 {
			dst = append(dst, '.')
		}
		dst = appendElem(dst, f)
	}
	return dst
}
