package ipfmt

import "fmt"

// Seq classifies a slice as an ordered sequence. Elements render through
// their default textual form, joined with '.'. A nil or empty slice
// renders as a bare newline. Nested sequences are not re-joined
// recursively; the element's own textual form is used as-is.
func Seq[E any](elems []E) Value { return seqValue[E](elems) }

type seqValue[E any] []E

func (v seqValue[E]) appendDotted(dst []byte) []byte {
	for i, e := range v {
		if i > 0 {
			dst = append(dst, '.')
		}
		dst = appendElem(dst, e)
	}
	return dst
}

// appendElem renders one sequence or tuple element in its native %v
// textual form.
func appendElem(dst []byte, e any) []byte {
	return fmt.Appendf(dst, "%v", e)
}
